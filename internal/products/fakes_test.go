package products_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/JaimeStill/product-admin/internal/products"
	"github.com/JaimeStill/product-admin/pkg/lifecycle"
	"github.com/JaimeStill/product-admin/pkg/pagination"
	"github.com/google/uuid"
	"github.com/vincent-petithory/dataurl"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func pngPayload() string {
	return dataurl.New(pngBytes, "image/png").String()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// memStore is an in-memory products.Store.
type memStore struct {
	mu        sync.Mutex
	items     map[uuid.UUID]products.Product
	tick      time.Time
	inserts   int
	updates   int
	insertErr error
}

func newMemStore() *memStore {
	return &memStore{
		items: make(map[uuid.UUID]products.Product),
		tick:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *memStore) next() time.Time {
	s.tick = s.tick.Add(time.Second)
	return s.tick
}

func (s *memStore) Insert(ctx context.Context, p products.Product) (*products.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.insertErr != nil {
		return nil, s.insertErr
	}

	s.inserts++
	p.ID = uuid.New()
	p.CreatedAt = s.next()
	p.UpdatedAt = p.CreatedAt
	s.items[p.ID] = p
	return &p, nil
}

func (s *memStore) Update(ctx context.Context, p products.Product, version time.Time) (*products.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.items[p.ID]
	if !ok || stored.OwnerID != p.OwnerID {
		return nil, products.ErrNotFound
	}
	if !stored.UpdatedAt.Equal(version) {
		return nil, products.ErrConflict
	}

	s.updates++
	p.CreatedAt = stored.CreatedAt
	p.UpdatedAt = s.next()
	s.items[p.ID] = p
	return &p, nil
}

func (s *memStore) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if stored, ok := s.items[id]; ok && stored.OwnerID == ownerID {
		delete(s.items, id)
	}
	return nil
}

func (s *memStore) Find(ctx context.Context, ownerID string, id uuid.UUID) (*products.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.items[id]
	if !ok || stored.OwnerID != ownerID {
		return nil, products.ErrNotFound
	}
	return &stored, nil
}

func (s *memStore) List(ctx context.Context, ownerID string, filters products.Filters) ([]products.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := []products.Product{}
	for _, p := range s.items {
		if p.OwnerID != ownerID {
			continue
		}
		if filters.Name != nil && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(*filters.Name)) {
			continue
		}
		if filters.Price != nil && !p.Price.Equal(*filters.Price) {
			continue
		}
		items = append(items, p)
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *memStore) Search(ctx context.Context, ownerID string, page pagination.PageRequest, filters products.Filters) (*pagination.PageResult[products.Product], error) {
	page.Normalize(pagination.Config{DefaultPageSize: 20, MaxPageSize: 100})

	items, err := s.List(ctx, ownerID, filters)
	if err != nil {
		return nil, err
	}

	total := len(items)
	start := min(page.Offset(), total)
	end := min(start+page.PageSize, total)

	result := pagination.NewPageResult(items[start:end], total, page.Page, page.PageSize)
	return &result, nil
}

// memBlobs is an in-memory storage.System that records every Store call.
type memBlobs struct {
	mu       sync.Mutex
	data     map[string][]byte
	versions map[string]int
	stores   []string
	storeErr error
}

func newMemBlobs() *memBlobs {
	return &memBlobs{
		data:     make(map[string][]byte),
		versions: make(map[string]int),
	}
}

func (b *memBlobs) Start(lc *lifecycle.Coordinator) error { return nil }

func (b *memBlobs) Store(ctx context.Context, key string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.storeErr != nil {
		return b.storeErr
	}

	b.stores = append(b.stores, key)
	b.data[key] = data
	b.versions[key]++
	return nil
}

func (b *memBlobs) Retrieve(ctx context.Context, key string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	data, ok := b.data[key]
	if !ok {
		return nil, errors.New("blob not found")
	}
	return data, nil
}

func (b *memBlobs) URL(ctx context.Context, key string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	v, ok := b.versions[key]
	if !ok {
		return "", errors.New("blob not found")
	}
	return fmt.Sprintf("http://blobs.test/%s?v=%d", key, v), nil
}

func (b *memBlobs) storeCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.stores)
}
