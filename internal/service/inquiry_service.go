package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/inquiry-desk/internal/drafts"
	"github.com/noah-isme/inquiry-desk/internal/dto"
	"github.com/noah-isme/inquiry-desk/internal/inquiry"
	"github.com/noah-isme/inquiry-desk/internal/models"
	appErrors "github.com/noah-isme/inquiry-desk/pkg/errors"
)

// AnonymousName is stored for inquiries recorded without a name.
const AnonymousName = "Anonymous"

// InquiryStore persists inquiries. ListAll returns newest first.
type InquiryStore interface {
	Create(ctx context.Context, inquiry *models.Inquiry) error
	ListAll(ctx context.Context) ([]models.Inquiry, error)
	ClearAll(ctx context.Context) error
	Backend() string
}

// InquiryService drafts emails, records inquiries and builds listing views.
type InquiryService struct {
	store   InquiryStore
	engine  *drafts.Engine
	metrics *MetricsService
	logger  *zap.Logger
	now     func() time.Time
}

// NewInquiryService constructs the service. A nil engine renders against the embedded catalog.
func NewInquiryService(store InquiryStore, engine *drafts.Engine, metrics *MetricsService, logger *zap.Logger) *InquiryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if engine == nil {
		engine = drafts.NewEngine(nil)
	}
	return &InquiryService{store: store, engine: engine, metrics: metrics, logger: logger, now: time.Now}
}

// Backend names the active store.
func (s *InquiryService) Backend() string {
	return s.store.Backend()
}

// GenerateDrafts renders both emails and saves the inquiry. A failed save is logged and
// reported through Saved; the drafts are returned regardless.
func (s *InquiryService) GenerateDrafts(ctx context.Context, req dto.DraftRequest) *dto.DraftResponse {
	in := drafts.Normalize(req.Name, req.Program, req.Campus, req.CreditType)
	resp := s.render(in)
	resp.Backend = s.store.Backend()

	entry := &models.Inquiry{
		Name:       in.Name,
		Email:      strings.TrimSpace(req.Email),
		Message:    req.Message,
		Program:    in.Program,
		Campus:     in.Campus,
		CreditType: in.CreditType,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.create(ctx, entry); err != nil {
		s.logger.Error("failed to save inquiry",
			zap.String("backend", resp.Backend),
			zap.String("campus", entry.Campus),
			zap.String("program", entry.Program),
			zap.Error(err),
		)
		return resp
	}

	resp.Saved = true
	resp.Inquiry = entry
	return resp
}

// PreviewDrafts renders both emails without saving anything.
func (s *InquiryService) PreviewDrafts(req dto.DraftRequest) *dto.DraftResponse {
	return s.render(drafts.Normalize(req.Name, req.Program, req.Campus, req.CreditType))
}

// Record stores an inquiry as submitted. Store failures are returned.
func (s *InquiryService) Record(ctx context.Context, req dto.InquiryRequest) (*models.Inquiry, error) {
	entry := &models.Inquiry{
		Name:       strings.TrimSpace(req.Name),
		Email:      strings.TrimSpace(req.Email),
		Message:    req.Message,
		Program:    req.Program,
		Campus:     req.Campus,
		CreditType: req.CreditType,
		CreatedAt:  s.now().UTC(),
	}
	if entry.Name == "" {
		entry.Name = AnonymousName
	}
	if req.CreatedAt != nil && !req.CreatedAt.IsZero() {
		entry.CreatedAt = req.CreatedAt.UTC()
	}

	if err := s.create(ctx, entry); err != nil {
		return nil, appErrors.Wrapf(err, appErrors.ErrStoreUnavailable, "failed to save inquiry")
	}
	return entry, nil
}

// List returns the filtered inquiries grouped by campus.
func (s *InquiryService) List(ctx context.Context, filter models.InquiryFilter) (*dto.InquiryListResponse, error) {
	items, err := s.listAll(ctx)
	if err != nil {
		return nil, err
	}
	matched := inquiry.Filter(items, filter)
	groups := inquiry.GroupByCampus(matched)
	if groups == nil {
		groups = []inquiry.CampusGroup{}
	}
	return &dto.InquiryListResponse{
		Total:   len(items),
		Matched: len(matched),
		Backend: s.store.Backend(),
		Groups:  groups,
	}, nil
}

// Filtered returns the inquiries matching filter in store order.
func (s *InquiryService) Filtered(ctx context.Context, filter models.InquiryFilter) ([]models.Inquiry, error) {
	items, err := s.listAll(ctx)
	if err != nil {
		return nil, err
	}
	return inquiry.Filter(items, filter), nil
}

// Breakdown summarizes the filtered inquiries per campus and program.
func (s *InquiryService) Breakdown(ctx context.Context, filter models.InquiryFilter) (*dto.BreakdownResponse, error) {
	matched, err := s.Filtered(ctx, filter)
	if err != nil {
		return nil, err
	}
	campuses := inquiry.Breakdown(matched)
	if campuses == nil {
		campuses = []inquiry.CampusSummary{}
	}
	return &dto.BreakdownResponse{Matched: len(matched), Campuses: campuses}, nil
}

// CampusEmails collects the distinct emails of one campus group within the filtered list,
// along with the notice shown to staff.
func (s *InquiryService) CampusEmails(ctx context.Context, filter models.InquiryFilter, campus string) (*dto.CampusEmailsResponse, string, error) {
	if strings.TrimSpace(campus) == "" {
		return nil, "", appErrors.Clone(appErrors.ErrValidation, "campus is required")
	}
	matched, err := s.Filtered(ctx, filter)
	if err != nil {
		return nil, "", err
	}

	var members []models.Inquiry
	for _, group := range inquiry.GroupByCampus(matched) {
		if group.Campus == campus {
			members = group.Inquiries
			break
		}
	}

	emails := inquiry.UniqueEmails(members)
	resp := &dto.CampusEmailsResponse{Campus: campus, Emails: emails, Clipboard: strings.Join(emails, "\n")}
	if len(emails) == 0 {
		resp.Emails = []string{}
		return resp, fmt.Sprintf("No emails to copy for %s", campus), nil
	}
	return resp, fmt.Sprintf("Copied %d email(s) from %s", len(emails), campus), nil
}

// ClearAll deletes every stored inquiry.
func (s *InquiryService) ClearAll(ctx context.Context) error {
	start := time.Now()
	err := s.store.ClearAll(ctx)
	s.metrics.ObserveStoreOperation(s.store.Backend(), "clear", err, time.Since(start))
	if err != nil {
		s.logger.Error("failed to clear inquiries", zap.String("backend", s.store.Backend()), zap.Error(err))
		return appErrors.Wrapf(err, appErrors.ErrStoreUnavailable, "failed to clear inquiries")
	}
	s.logger.Info("cleared inquiries", zap.String("backend", s.store.Backend()))
	return nil
}

// Catalog returns the form options and advisor directory.
func (s *InquiryService) Catalog() dto.CatalogResponse {
	c := s.engine.Catalog()
	return dto.CatalogResponse{
		Programs:    c.Programs(),
		Campuses:    c.Campuses(),
		CreditTypes: c.CreditTypes(),
		Directory:   c.Directory(),
	}
}

func (s *InquiryService) render(in drafts.Input) *dto.DraftResponse {
	d := s.engine.Render(in)
	s.metrics.RecordDraft(string(d.Variant), d.OfferedHere)
	return &dto.DraftResponse{
		StudentEmail: d.Student,
		AdvisorEmail: d.Advisor,
		Variant:      string(d.Variant),
		OfferedHere:  d.OfferedHere,
	}
}

func (s *InquiryService) create(ctx context.Context, entry *models.Inquiry) error {
	start := time.Now()
	err := s.store.Create(ctx, entry)
	s.metrics.ObserveStoreOperation(s.store.Backend(), "create", err, time.Since(start))
	return err
}

func (s *InquiryService) listAll(ctx context.Context) ([]models.Inquiry, error) {
	start := time.Now()
	items, err := s.store.ListAll(ctx)
	s.metrics.ObserveStoreOperation(s.store.Backend(), "list", err, time.Since(start))
	if err != nil {
		s.logger.Error("failed to list inquiries", zap.String("backend", s.store.Backend()), zap.Error(err))
		return nil, appErrors.Wrapf(err, appErrors.ErrStoreUnavailable, "failed to load inquiries")
	}
	return items, nil
}
