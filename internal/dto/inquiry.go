package dto

import (
	"time"

	"github.com/noah-isme/inquiry-desk/internal/catalog"
	"github.com/noah-isme/inquiry-desk/internal/inquiry"
	"github.com/noah-isme/inquiry-desk/internal/models"
)

// DraftRequest is the generator form. Blank fields fall back to placeholders.
type DraftRequest struct {
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Message    string            `json:"message"`
	Program    string            `json:"program"`
	Campus     string            `json:"campus"`
	CreditType models.CreditType `json:"credit_type"`
}

// DraftResponse carries both drafts and the persistence outcome.
type DraftResponse struct {
	StudentEmail string          `json:"student_email"`
	AdvisorEmail string          `json:"advisor_email"`
	Variant      string          `json:"variant"`
	OfferedHere  bool            `json:"offered_here"`
	Saved        bool            `json:"saved"`
	Backend      string          `json:"backend,omitempty"`
	Inquiry      *models.Inquiry `json:"inquiry,omitempty"`
}

// InquiryRequest records an inquiry without drafting emails.
type InquiryRequest struct {
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Message    string            `json:"message"`
	Program    string            `json:"program"`
	Campus     string            `json:"campus"`
	CreditType models.CreditType `json:"credit_type"`
	CreatedAt  *time.Time        `json:"created_at,omitempty"`
}

// InquiryListResponse is the filtered listing grouped by campus.
type InquiryListResponse struct {
	Total   int                   `json:"total"`
	Matched int                   `json:"matched"`
	Backend string                `json:"backend"`
	Groups  []inquiry.CampusGroup `json:"groups"`
}

// BreakdownResponse drives the per-campus bar charts.
type BreakdownResponse struct {
	Matched  int                     `json:"matched"`
	Campuses []inquiry.CampusSummary `json:"campuses"`
}

// CampusEmailsResponse lists distinct addresses for one campus.
type CampusEmailsResponse struct {
	Campus string   `json:"campus"`
	Emails []string `json:"emails"`
	// Clipboard is the newline-joined text staff paste into a mail client.
	Clipboard string `json:"clipboard"`
}

// CatalogResponse exposes the form options and directory.
type CatalogResponse struct {
	Programs    []string            `json:"programs"`
	Campuses    []string            `json:"campuses"`
	CreditTypes []models.CreditType `json:"credit_types"`
	Directory   []catalog.Campus    `json:"directory"`
}
