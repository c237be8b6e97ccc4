package drafts

import (
	"fmt"
	"strings"

	"github.com/noah-isme/inquiry-desk/internal/catalog"
	"github.com/noah-isme/inquiry-desk/internal/models"
)

// UnavailableProgram has no campus offering yet and always gets the upcoming-program notice.
const UnavailableProgram = "AI/Machine Learning"

// Placeholders substituted by Normalize for blank form fields.
const (
	DefaultName        = "Student"
	PlaceholderProgram = "[Program / Pathway]"
	PlaceholderCampus  = "[Campus]"
	PlaceholderCredit  = "[Credit Type]"
)

// Variant names the student email branch that was rendered.
type Variant string

const (
	VariantUnavailable Variant = "unavailable"
	VariantUndecided   Variant = "undecided"
	VariantForwarded   Variant = "forwarded"
	VariantNotOffered  Variant = "not_offered"
)

const (
	studentSubject   = "Subject: Your Inquiry Has Been Received—CCC Technology Programs"
	studentIntro     = "Thank you for your interest in the CCC Center for Information Technologies! We're excited to help you explore technology programs at the City Colleges of Chicago."
	studentSignature = "Best regards,\nTech@CCC.edu Team"
	advisorSignature = "Best regards,\nCoET Team"

	aiCreditGap      = "Unfortunately we are not offering AI/Machine Learning credit courses until Fall 2026."
	aiCreditUpcoming = "However, starting in March, we’re launching a 14-month Continuing Education Program on Machine Learning in collaboration with AWS. The program will be led by industry experts and designed to help you build practical skills. If you are interested feel free to reach out — we're here to help!"
	aiNonCredit      = "Starting in March, we will be launching a 14-month Continuing Education Program on Machine Learning in collaboration with AWS. The program will be led by industry experts and designed to help you build practical skills. If you are interested feel free to reach out — we're here to help!"

	undecidedLead    = "Since you selected %s and are undecided on the Campus here are the schools that offer %s:"
	reachOut         = "If you are interested feel free to reach out — we're here to help!"
	forwardedLead    = "To best support you, we've forwarded your information to %s College. A representative from that campus will be reaching out to you shortly."
	forwardedLinks   = "In the meantime, feel free to explore our programs here:\nAcademic Catalog:  https://catalog.ccc.edu/programs/#filter=.filter_3\nCE Class Search:  https://apps.ccc.edu/scheduling/continuinged/"
	notOfferedLead   = "Unfortunately we are not offering %s at %s."
	notOfferedOthers = "However, %s is offered at the following campuses:"
	notOfferedClose  = "If you have any questions or need help finding a program that fits your goals, feel free to reach out — we're here to help!"
	noCampuses       = "None currently"

	advisorSubject    = "Subject: Student Inquiry - %s (%s) | %s"
	advisorOffered    = "A prospective student submitted interest in your %s program."
	advisorFollowUp   = "Please follow up as appropriate."
	advisorNotOffered = "A prospective student submitted interest in %s but selected %s as their preferred campus. Since %s is not offered at %s, we are sharing this inquiry for your awareness."
)

// Input is a normalized inquiry. Program, Campus and CreditType are expected to be non-empty.
type Input struct {
	Name       string
	Program    string
	Campus     string
	CreditType models.CreditType
}

// Drafts bundles both rendered emails.
type Drafts struct {
	Student     string
	Advisor     string
	OfferedHere bool
	Variant     Variant
}

// Engine renders drafts against a catalog. It holds no mutable state.
type Engine struct {
	catalog *catalog.Catalog
}

// NewEngine builds an engine; a nil catalog selects the embedded default.
func NewEngine(c *catalog.Catalog) *Engine {
	if c == nil {
		c = catalog.Default()
	}
	return &Engine{catalog: c}
}

// Catalog exposes the directory the engine renders against.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Normalize applies the form defaults for blank fields. Call it once before rendering
// so both emails see the same values.
func Normalize(name, program, campus string, creditType models.CreditType) Input {
	in := Input{
		Name:       strings.TrimSpace(name),
		Program:    program,
		Campus:     campus,
		CreditType: creditType,
	}
	if in.Name == "" {
		in.Name = DefaultName
	}
	if in.Program == "" {
		in.Program = PlaceholderProgram
	}
	if in.Campus == "" {
		in.Campus = PlaceholderCampus
	}
	if in.CreditType == "" {
		in.CreditType = PlaceholderCredit
	}
	return in
}

// Render produces both drafts for one inquiry.
func (e *Engine) Render(in Input) Drafts {
	return Drafts{
		Student:     e.StudentEmail(in),
		Advisor:     e.AdvisorEmail(in),
		OfferedHere: e.catalog.Offers(in.Campus, in.Program),
		Variant:     e.StudentVariant(in),
	}
}

// StudentVariant reports which student branch applies; the first match wins.
func (e *Engine) StudentVariant(in Input) Variant {
	switch {
	case in.Program == UnavailableProgram:
		return VariantUnavailable
	case in.Campus == catalog.Undecided:
		return VariantUndecided
	case e.catalog.Offers(in.Campus, in.Program):
		return VariantForwarded
	default:
		return VariantNotOffered
	}
}

// StudentEmail renders the reply to the student. A blank name is addressed as "Student".
func (e *Engine) StudentEmail(in Input) string {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = DefaultName
	}

	var body []string
	switch e.StudentVariant(in) {
	case VariantUnavailable:
		if in.CreditType == models.CreditTypeCredit {
			body = []string{aiCreditGap, aiCreditUpcoming}
		} else {
			body = []string{aiNonCredit}
		}
	case VariantUndecided:
		body = []string{
			fmt.Sprintf(undecidedLead, in.Program, in.Program),
			e.campusList(in.Program),
			reachOut,
		}
	case VariantForwarded:
		body = []string{fmt.Sprintf(forwardedLead, in.Campus), forwardedLinks}
	default:
		body = []string{
			fmt.Sprintf(notOfferedLead, in.Program, in.Campus),
			fmt.Sprintf(notOfferedOthers, in.Program),
			e.campusList(in.Program),
			notOfferedClose,
		}
	}

	paragraphs := append([]string{studentSubject, "Dear " + name + ",", studentIntro}, body...)
	paragraphs = append(paragraphs, studentSignature)
	return strings.Join(paragraphs, "\n\n")
}

// AdvisorEmail renders the internal notice for the campus advisor. The name is used as given.
func (e *Engine) AdvisorEmail(in Input) string {
	advisor := e.catalog.AdvisorFor(in.Campus, in.CreditType)

	to := "To: " + advisor.Name
	if advisor.Email != "" {
		to += " <" + advisor.Email + ">"
	}
	header := to + "\n" + fmt.Sprintf(advisorSubject, in.Program, in.CreditType, in.Name)

	paragraphs := []string{header, "Hello " + advisor.Name + ","}
	if e.catalog.Offers(in.Campus, in.Program) {
		paragraphs = append(paragraphs, fmt.Sprintf(advisorOffered, in.Program), advisorFollowUp)
	} else {
		paragraphs = append(paragraphs,
			fmt.Sprintf(advisorNotOffered, in.Program, in.Campus, in.Program, in.Campus))
	}
	paragraphs = append(paragraphs, advisorSignature)
	return strings.Join(paragraphs, "\n\n")
}

func (e *Engine) campusList(program string) string {
	campuses := e.catalog.CampusesOffering(program)
	if len(campuses) == 0 {
		return noCampuses
	}
	return strings.Join(campuses, ", ")
}
