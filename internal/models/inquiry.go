package models

import (
	"encoding/json"
	"strconv"
	"time"
)

// CreditType qualifies the enrollment track a student asked about.
type CreditType string

const (
	CreditTypeCredit    CreditType = "Credit"
	CreditTypeNonCredit CreditType = "Non-Credit"
)

// CreditTypes lists the tracks in form order.
func CreditTypes() []CreditType {
	return []CreditType{CreditTypeCredit, CreditTypeNonCredit}
}

// Inquiry is one persisted student interest record. Rows are never updated.
type Inquiry struct {
	ID         string     `db:"id" json:"id,omitempty"`
	Name       string     `db:"name" json:"name"`
	Email      string     `db:"email" json:"email"`
	Message    string     `db:"message" json:"message"`
	Program    string     `db:"program" json:"program"`
	Campus     string     `db:"campus" json:"campus"`
	CreditType CreditType `db:"credit_type" json:"credit_type"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
}

// UnmarshalJSON also accepts the camel-cased creditType key written by older clients.
func (i *Inquiry) UnmarshalJSON(data []byte) error {
	type plain Inquiry
	var raw struct {
		plain
		LegacyCreditType CreditType `json:"creditType"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*i = Inquiry(raw.plain)
	if i.CreditType == "" {
		i.CreditType = raw.LegacyCreditType
	}
	return nil
}

// DisplayKey returns a list key for the record: its id, else its creation time, else its position.
// Only the id is a durable identity.
func (i Inquiry) DisplayKey(index int) string {
	if i.ID != "" {
		return i.ID
	}
	if !i.CreatedAt.IsZero() {
		return i.CreatedAt.UTC().Format(time.RFC3339Nano)
	}
	return strconv.Itoa(index)
}

// InquiryFilter narrows a listing. Empty fields impose no constraint.
type InquiryFilter struct {
	Program    string     `form:"program" json:"program,omitempty"`
	Campus     string     `form:"campus" json:"campus,omitempty"`
	CreditType CreditType `form:"creditType" json:"credit_type,omitempty"`
	Query      string     `form:"q" json:"q,omitempty"`
}
