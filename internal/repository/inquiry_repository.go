package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/inquiry-desk/internal/models"
)

// BackendRemote identifies the Postgres-backed store.
const BackendRemote = "remote"

// InquiryRepository persists inquiries in the inquiries table.
type InquiryRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewInquiryRepository constructs the repository.
func NewInquiryRepository(db *sqlx.DB) *InquiryRepository {
	return &InquiryRepository{db: db, now: time.Now}
}

// Backend names the store for logs and metrics.
func (r *InquiryRepository) Backend() string { return BackendRemote }

// Create inserts one row, filling ID and CreatedAt when unset. inquiry is only
// updated after the insert succeeds.
func (r *InquiryRepository) Create(ctx context.Context, inquiry *models.Inquiry) error {
	entry := *inquiry
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = r.now().UTC()
	}
	const query = `INSERT INTO inquiries (id, name, email, message, program, campus, credit_type, created_at)
VALUES (:id, :name, :email, :message, :program, :campus, :credit_type, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, &entry); err != nil {
		return fmt.Errorf("insert inquiry: %w", err)
	}
	*inquiry = entry
	return nil
}

// ListAll returns every row, newest first.
func (r *InquiryRepository) ListAll(ctx context.Context) ([]models.Inquiry, error) {
	const query = `SELECT id, name, email, message, program, campus, credit_type, created_at
FROM inquiries ORDER BY created_at DESC`
	var items []models.Inquiry
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	return items, nil
}

// ClearAll deletes every row.
func (r *InquiryRepository) ClearAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM inquiries`); err != nil {
		return fmt.Errorf("clear inquiries: %w", err)
	}
	return nil
}
