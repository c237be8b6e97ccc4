package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/noah-isme/inquiry-desk/internal/models"
)

// Undecided is the campus sentinel for students who have not picked a campus.
const Undecided = "Undecided"

//go:embed catalog.yaml
var defaultData []byte

// Advisor is the contact an inquiry is routed to. Email may be empty.
type Advisor struct {
	Name  string `yaml:"name" json:"name"`
	Email string `yaml:"email" json:"email"`
}

// Campus describes one campus, the programs it offers and its advisors per credit type.
type Campus struct {
	Name     string                        `yaml:"name" json:"name"`
	Programs []string                      `yaml:"programs" json:"programs"`
	Advisors map[models.CreditType]Advisor `yaml:"advisors" json:"advisors"`
}

type document struct {
	Programs []string `yaml:"programs"`
	Campuses []Campus `yaml:"campuses"`
}

// Catalog is the immutable program and advisor directory. It is safe for concurrent use.
type Catalog struct {
	programs []string
	campuses []Campus
	byName   map[string]*Campus
}

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	c, err := Load(defaultData)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded data is invalid: %v", err))
	}
	return c
}

// LoadFile reads a YAML catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Load(data)
}

// Load parses and validates a YAML catalog document.
func Load(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	known := make(map[string]struct{}, len(doc.Programs))
	for _, p := range doc.Programs {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, fmt.Errorf("catalog: blank program name")
		}
		if _, dup := known[p]; dup {
			return nil, fmt.Errorf("catalog: duplicate program %q", p)
		}
		known[p] = struct{}{}
	}

	c := &Catalog{
		programs: append([]string(nil), doc.Programs...),
		campuses: make([]Campus, 0, len(doc.Campuses)),
		byName:   make(map[string]*Campus, len(doc.Campuses)),
	}

	for _, campus := range doc.Campuses {
		if strings.TrimSpace(campus.Name) == "" {
			return nil, fmt.Errorf("catalog: blank campus name")
		}
		if _, dup := c.byName[campus.Name]; dup {
			return nil, fmt.Errorf("catalog: duplicate campus %q", campus.Name)
		}
		for _, p := range campus.Programs {
			if _, ok := known[p]; !ok {
				return nil, fmt.Errorf("catalog: campus %q offers unknown program %q", campus.Name, p)
			}
		}
		for _, ct := range models.CreditTypes() {
			if _, ok := campus.Advisors[ct]; !ok {
				return nil, fmt.Errorf("catalog: campus %q has no %s advisor", campus.Name, ct)
			}
		}
		if campus.Name == Undecided && len(campus.Programs) > 0 {
			return nil, fmt.Errorf("catalog: %s campus cannot offer programs", Undecided)
		}
		c.campuses = append(c.campuses, campus)
	}

	for i := range c.campuses {
		c.byName[c.campuses[i].Name] = &c.campuses[i]
	}
	if _, ok := c.byName[Undecided]; !ok {
		return nil, fmt.Errorf("catalog: missing %s campus", Undecided)
	}

	return c, nil
}

// Programs returns program names in form order.
func (c *Catalog) Programs() []string {
	return append([]string(nil), c.programs...)
}

// Campuses returns campus names in display order, including the Undecided sentinel.
func (c *Catalog) Campuses() []string {
	names := make([]string, 0, len(c.campuses))
	for _, campus := range c.campuses {
		names = append(names, campus.Name)
	}
	return names
}

// CreditTypes returns the supported credit types.
func (c *Catalog) CreditTypes() []models.CreditType {
	return models.CreditTypes()
}

// ProgramsOfferedAt returns the programs a campus offers. Unknown campuses and Undecided yield an empty slice.
func (c *Catalog) ProgramsOfferedAt(campus string) []string {
	entry, ok := c.byName[campus]
	if !ok || campus == Undecided {
		return []string{}
	}
	return append([]string{}, entry.Programs...)
}

// Offers reports whether campus offers program.
func (c *Catalog) Offers(campus, program string) bool {
	for _, p := range c.ProgramsOfferedAt(campus) {
		if p == program {
			return true
		}
	}
	return false
}

// AdvisorFor returns the advisor for a campus and credit type, or a synthesized
// "<campus> Advising Team" contact with no email when the directory has no entry.
func (c *Catalog) AdvisorFor(campus string, creditType models.CreditType) Advisor {
	if entry, ok := c.byName[campus]; ok {
		if advisor, ok := entry.Advisors[creditType]; ok {
			return advisor
		}
	}
	return Advisor{Name: campus + " Advising Team"}
}

// CampusesOffering lists, in catalog order, every campus other than Undecided that offers program.
func (c *Catalog) CampusesOffering(program string) []string {
	var names []string
	for _, campus := range c.campuses {
		if campus.Name == Undecided {
			continue
		}
		for _, p := range campus.Programs {
			if p == program {
				names = append(names, campus.Name)
				break
			}
		}
	}
	return names
}

// Directory returns a copy of every campus entry in display order.
func (c *Catalog) Directory() []Campus {
	out := make([]Campus, 0, len(c.campuses))
	for _, campus := range c.campuses {
		advisors := make(map[models.CreditType]Advisor, len(campus.Advisors))
		for k, v := range campus.Advisors {
			advisors[k] = v
		}
		out = append(out, Campus{
			Name:     campus.Name,
			Programs: append([]string{}, campus.Programs...),
			Advisors: advisors,
		})
	}
	return out
}
