package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/inquiry-desk/internal/models"
	"github.com/noah-isme/inquiry-desk/pkg/storage"
)

const (
	// BackendLocal identifies the blob-backed fallback store.
	BackendLocal = "local"
	// DefaultLocalKey is the blob key holding the serialized inquiry list.
	DefaultLocalKey = "inquiries:v1"
)

// LocalInquiryRepository keeps the full inquiry list as one JSON array blob, newest first.
type LocalInquiryRepository struct {
	store storage.BlobStore
	key   string
	now   func() time.Time

	mu sync.Mutex
}

// NewLocalInquiryRepository wraps a blob store; an empty key selects DefaultLocalKey.
func NewLocalInquiryRepository(store storage.BlobStore, key string) *LocalInquiryRepository {
	if key == "" {
		key = DefaultLocalKey
	}
	return &LocalInquiryRepository{store: store, key: key, now: time.Now}
}

// Backend names the store for logs and metrics.
func (r *LocalInquiryRepository) Backend() string { return BackendLocal }

// Create prepends the inquiry to the stored list. The minted id and timestamp are
// copied back to inquiry only once the list is saved.
func (r *LocalInquiryRepository) Create(ctx context.Context, inquiry *models.Inquiry) error {
	entry := *inquiry
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = r.now().UTC()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load(ctx)
	if err != nil {
		return err
	}
	items = append([]models.Inquiry{entry}, items...)

	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal inquiries: %w", err)
	}
	if err := r.store.Set(ctx, r.key, string(payload)); err != nil {
		return fmt.Errorf("save inquiries: %w", err)
	}
	*inquiry = entry
	return nil
}

// ListAll returns the stored list as-is.
func (r *LocalInquiryRepository) ListAll(ctx context.Context) ([]models.Inquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

// ClearAll removes the blob.
func (r *LocalInquiryRepository) ClearAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.store.Remove(ctx, r.key); err != nil {
		return fmt.Errorf("clear inquiries: %w", err)
	}
	return nil
}

func (r *LocalInquiryRepository) load(ctx context.Context) ([]models.Inquiry, error) {
	raw, ok, err := r.store.Get(ctx, r.key)
	if err != nil {
		return nil, fmt.Errorf("load inquiries: %w", err)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return []models.Inquiry{}, nil
	}
	var items []models.Inquiry
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decode inquiries: %w", err)
	}
	if items == nil {
		items = []models.Inquiry{}
	}
	return items, nil
}
