package domain

import (
	"context"
	"time"
)

// TextGenerator defines the interface for the optional language model.
// Implementations must be safe for concurrent use. The comparison engine
// never depends on this; only the FAQ and product page services do, and
// they treat every error as "fall back to rule-based text".
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// CacheRepository defines the interface for caching generated answers.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// PageStore defines the interface for persisting and reading generated
// pages as JSON documents. Names are bare document names ("faq",
// "comparison_page"), not paths.
type PageStore interface {
	Save(ctx context.Context, name string, page interface{}) error
	Load(ctx context.Context, name string, page interface{}) error
	Exists(ctx context.Context, name string) (bool, error)
}
