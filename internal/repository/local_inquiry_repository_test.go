package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/inquiry-desk/internal/models"
	"github.com/noah-isme/inquiry-desk/pkg/storage"
)

type memoryBlobStore struct {
	mu     sync.Mutex
	values map[string]string
	err    error
}

func newMemoryBlobStore() *memoryBlobStore {
	return &memoryBlobStore{values: map[string]string{}}
}

func (m *memoryBlobStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", false, m.err
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memoryBlobStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.values[key] = value
	return nil
}

func (m *memoryBlobStore) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *memoryBlobStore) Close() error { return nil }

var _ storage.BlobStore = (*memoryBlobStore)(nil)

func TestLocalInquiryRepositoryPrependsNewest(t *testing.T) {
	repo := NewLocalInquiryRepository(newMemoryBlobStore(), "")
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	repo.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	first := &models.Inquiry{Name: "first", Campus: "Malcolm X"}
	second := &models.Inquiry{Name: "second", Campus: "Kennedy-King"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	items, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, *second, items[0])
	assert.Equal(t, *first, items[1])
	assert.NotEqual(t, items[0].ID, items[1].ID)
	assert.Equal(t, BackendLocal, repo.Backend())
}

func TestLocalInquiryRepositoryEmptyAndClear(t *testing.T) {
	store := newMemoryBlobStore()
	repo := NewLocalInquiryRepository(store, "custom")
	ctx := context.Background()

	items, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	store.values["custom"] = "  "
	items, err = repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	require.NoError(t, repo.Create(ctx, &models.Inquiry{Name: "a"}))
	require.NoError(t, repo.ClearAll(ctx))
	_, ok := store.values["custom"]
	assert.False(t, ok)
}

func TestLocalInquiryRepositoryReadsLegacyBlob(t *testing.T) {
	store := newMemoryBlobStore()
	store.values[DefaultLocalKey] = `[{"name":"Old","program":"Cloud","campus":"Wilbur Wright","creditType":"Credit","created_at":"2024-09-01T10:00:00Z"}]`
	repo := NewLocalInquiryRepository(store, "")

	items, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Empty(t, items[0].ID)
	assert.Equal(t, models.CreditTypeCredit, items[0].CreditType)
}

func TestLocalInquiryRepositoryCorruptBlob(t *testing.T) {
	store := newMemoryBlobStore()
	store.values[DefaultLocalKey] = `{not json`
	repo := NewLocalInquiryRepository(store, "")

	_, err := repo.ListAll(context.Background())
	assert.ErrorContains(t, err, "decode inquiries")
	assert.Error(t, repo.Create(context.Background(), &models.Inquiry{Name: "x"}))
}

func TestLocalInquiryRepositoryStoreError(t *testing.T) {
	store := newMemoryBlobStore()
	store.err = errors.New("disk full")
	repo := NewLocalInquiryRepository(store, "")

	entry := &models.Inquiry{Name: "x"}
	err := repo.Create(context.Background(), entry)
	assert.ErrorContains(t, err, "disk full")
	assert.Empty(t, entry.ID)
	assert.True(t, entry.CreatedAt.IsZero())
}

func TestLocalInquiryRepositoryFailedSetLeavesEntryUntouched(t *testing.T) {
	store := &failingSetStore{memoryBlobStore: newMemoryBlobStore()}
	repo := NewLocalInquiryRepository(store, "")

	entry := &models.Inquiry{Name: "x"}
	err := repo.Create(context.Background(), entry)

	assert.ErrorContains(t, err, "save inquiries")
	assert.Equal(t, models.Inquiry{Name: "x"}, *entry)
}

type failingSetStore struct {
	*memoryBlobStore
}

func (f *failingSetStore) Set(context.Context, string, string) error {
	return errors.New("read-only volume")
}

func TestLocalInquiryRepositoryConcurrentCreates(t *testing.T) {
	repo := NewLocalInquiryRepository(newMemoryBlobStore(), "")
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Create(ctx, &models.Inquiry{Name: "n"})
		}()
	}
	wg.Wait()

	items, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 20)
}

func TestLocalInquiryRepositoryFileBackend(t *testing.T) {
	store, err := storage.NewFileBlobStore(t.TempDir())
	require.NoError(t, err)
	repo := NewLocalInquiryRepository(store, "")
	ctx := context.Background()

	entry := &models.Inquiry{Name: "Avery", Email: "a@example.com", Program: "Cloud", Campus: "Wilbur Wright", CreditType: models.CreditTypeNonCredit}
	require.NoError(t, repo.Create(ctx, entry))

	items, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, entry.ID, items[0].ID)
	assert.True(t, entry.CreatedAt.Equal(items[0].CreatedAt))
}
