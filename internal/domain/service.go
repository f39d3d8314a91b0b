package domain

import "context"

// RecordRepository defines the interface for record persistence.
// Lookups of a missing record return (nil, nil).
type RecordRepository interface {
	Create(ctx context.Context, record *Record) error
	GetByID(ctx context.Context, id string) (*Record, error)
	List(ctx context.Context, filter RecordFilter) ([]*Record, error)

	// Update rewrites the editable fields of an existing record and reports
	// whether a row matched.
	Update(ctx context.Context, record *Record) (bool, error)

	UpdateRating(ctx context.Context, id string, rating int) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	Ping(ctx context.Context) error
}

// Generator produces a free-text question from a topic.
type Generator interface {
	Generate(ctx context.Context, req GenerationRequest) (*GenerationResult, error)
	Model() string
}

// TokenCounter counts tokens with the tokenizer of the named model.
type TokenCounter interface {
	CountTokens(model, text string) int
	ContextSize(model string) int
}
