package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/inquiry-desk/internal/models"
)

func newInquiryRepoMock(t *testing.T) (*InquiryRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "postgres")
	return NewInquiryRepository(sqlxDB), mock, func() {
		sqlxDB.Close()
	}
}

func TestInquiryRepositoryCreate(t *testing.T) {
	repo, mock, cleanup := newInquiryRepoMock(t)
	defer cleanup()
	fixed := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO inquiries (id, name, email, message, program, campus, credit_type, created_at)")).
		WithArgs(sqlmock.AnyArg(), "Avery", "avery@example.com", "", "Cloud", "Wilbur Wright", "Credit", fixed).
		WillReturnResult(sqlmock.NewResult(1, 1))

	inquiry := &models.Inquiry{Name: "Avery", Email: "avery@example.com", Program: "Cloud", Campus: "Wilbur Wright", CreditType: models.CreditTypeCredit}
	require.NoError(t, repo.Create(context.Background(), inquiry))

	assert.NotEmpty(t, inquiry.ID)
	assert.Equal(t, fixed, inquiry.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInquiryRepositoryCreateError(t *testing.T) {
	repo, mock, cleanup := newInquiryRepoMock(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO inquiries").WillReturnError(errors.New("relation does not exist"))

	entry := &models.Inquiry{Name: "x"}
	err := repo.Create(context.Background(), entry)
	assert.ErrorContains(t, err, "insert inquiry")
	assert.Empty(t, entry.ID)
	assert.True(t, entry.CreatedAt.IsZero())
}

func TestInquiryRepositoryListAll(t *testing.T) {
	repo, mock, cleanup := newInquiryRepoMock(t)
	defer cleanup()
	newer := time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)
	older := newer.Add(-time.Hour)

	rows := sqlmock.NewRows([]string{"id", "name", "email", "message", "program", "campus", "credit_type", "created_at"}).
		AddRow("b", "Jordan", "", "", "Cloud", "Harry S Truman", "Non-Credit", newer).
		AddRow("a", "Avery", "", "", "Cybersecurity", "Malcolm X", "Credit", older)
	mock.ExpectQuery(regexp.QuoteMeta("FROM inquiries ORDER BY created_at DESC")).WillReturnRows(rows)

	items, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "b", items[0].ID)
	assert.Equal(t, models.CreditTypeNonCredit, items[0].CreditType)
	assert.Equal(t, BackendRemote, repo.Backend())
}

func TestInquiryRepositoryClearAll(t *testing.T) {
	repo, mock, cleanup := newInquiryRepoMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM inquiries")).WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, repo.ClearAll(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
