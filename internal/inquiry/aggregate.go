package inquiry

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/noah-isme/inquiry-desk/internal/models"
)

// Defaults used when a stored record has a blank campus or program.
const (
	UnknownCampus  = "Undecided"
	UnknownProgram = "Other"
)

// CampusGroup holds the inquiries for one campus in their input order.
type CampusGroup struct {
	Campus    string           `json:"campus"`
	Inquiries []models.Inquiry `json:"inquiries"`
}

// ProgramCount is one bar in a campus summary.
type ProgramCount struct {
	Program string `json:"program"`
	Count   int    `json:"count"`
}

// CampusSummary aggregates a campus with its per-program counts, largest first.
type CampusSummary struct {
	Campus   string         `json:"campus"`
	Total    int            `json:"total"`
	Programs []ProgramCount `json:"programs"`
}

// Filter keeps the items that satisfy every non-empty criterion. Enum fields match exactly;
// Query matches case-insensitively against name, email, message, program and campus,
// space-joined. Query is used as typed, so surrounding spaces are part of the match.
func Filter(items []models.Inquiry, f models.InquiryFilter) []models.Inquiry {
	fold := cases.Fold()
	query := fold.String(f.Query)

	out := make([]models.Inquiry, 0, len(items))
	for _, item := range items {
		if f.Program != "" && item.Program != f.Program {
			continue
		}
		if f.Campus != "" && item.Campus != f.Campus {
			continue
		}
		if f.CreditType != "" && item.CreditType != f.CreditType {
			continue
		}
		if query != "" {
			haystack := strings.Join([]string{item.Name, item.Email, item.Message, item.Program, item.Campus}, " ")
			if !strings.Contains(fold.String(haystack), query) {
				continue
			}
		}
		out = append(out, item)
	}
	return out
}

// GroupByCampus buckets items by campus. Groups appear in first-seen order and
// each keeps the relative order of its items.
func GroupByCampus(items []models.Inquiry) []CampusGroup {
	index := make(map[string]int)
	var groups []CampusGroup
	for _, item := range items {
		campus := orDefault(item.Campus, UnknownCampus)
		pos, ok := index[campus]
		if !ok {
			pos = len(groups)
			index[campus] = pos
			groups = append(groups, CampusGroup{Campus: campus})
		}
		groups[pos].Inquiries = append(groups[pos].Inquiries, item)
	}
	return groups
}

// SummarizeByCampusAndProgram counts inquiries per campus and program.
func SummarizeByCampusAndProgram(items []models.Inquiry) map[string]map[string]int {
	summary := make(map[string]map[string]int)
	for _, item := range items {
		campus := orDefault(item.Campus, UnknownCampus)
		program := orDefault(item.Program, UnknownProgram)
		if summary[campus] == nil {
			summary[campus] = make(map[string]int)
		}
		summary[campus][program]++
	}
	return summary
}

// Breakdown is the ordered form of SummarizeByCampusAndProgram used for charts.
// Campuses keep first-seen order; programs sort by count descending, then by name.
func Breakdown(items []models.Inquiry) []CampusSummary {
	summary := SummarizeByCampusAndProgram(items)

	var result []CampusSummary
	for _, group := range GroupByCampus(items) {
		counts := summary[group.Campus]
		entry := CampusSummary{Campus: group.Campus, Total: len(group.Inquiries)}
		for program, count := range counts {
			entry.Programs = append(entry.Programs, ProgramCount{Program: program, Count: count})
		}
		sort.Slice(entry.Programs, func(i, j int) bool {
			if entry.Programs[i].Count != entry.Programs[j].Count {
				return entry.Programs[i].Count > entry.Programs[j].Count
			}
			return entry.Programs[i].Program < entry.Programs[j].Program
		})
		result = append(result, entry)
	}
	return result
}

// UniqueEmails returns the distinct non-blank emails in input order.
func UniqueEmails(items []models.Inquiry) []string {
	seen := make(map[string]struct{})
	var emails []string
	for _, item := range items {
		email := strings.TrimSpace(item.Email)
		if email == "" {
			continue
		}
		if _, ok := seen[email]; ok {
			continue
		}
		seen[email] = struct{}{}
		emails = append(emails, email)
	}
	return emails
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
