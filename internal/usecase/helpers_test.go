package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/glowgen/backend/internal/domain"
)

func testEmptyProduct() domain.ProductRecord {
	return domain.ProductRecord{}
}

// stubGenerator returns a canned response (or error) and records prompts.
type stubGenerator struct {
	response string
	err      error
	prompts  []string
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

// stubCache is a minimal in-memory CacheRepository without TTL handling.
type stubCache struct {
	mu   sync.Mutex
	data map[string]string
	sets int
}

func newStubCache() *stubCache {
	return &stubCache{data: make(map[string]string)}
}

func (c *stubCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.data[key]
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return value, nil
}

func (c *stubCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	c.sets++
	return nil
}

func (c *stubCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *stubCache) Exists(ctx context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	return ok, nil
}

// memStore is a minimal in-memory PageStore for workflow tests.
type memStore struct {
	mu    sync.Mutex
	pages map[string]interface{}
}

func newMemStore() *memStore {
	return &memStore{pages: make(map[string]interface{})}
}

func (s *memStore) Save(ctx context.Context, name string, page interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pages[name] = page
	return nil
}

func (s *memStore) Load(ctx context.Context, name string, page interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pages[name]; !ok {
		return domain.ErrPageNotFound
	}
	// Tests read saved pages back via the map directly.
	return errors.New("memStore does not decode pages")
}

func (s *memStore) Exists(ctx context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pages[name]
	return ok, nil
}
