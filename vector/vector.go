package vector

import (
	"context"
	"errors"
)

var (
	ErrEmbedding     = errors.New("embedding failed")
	ErrEmptyIndex    = errors.New("index is empty")
	ErrInvalidK      = errors.New("k must be greater than zero")
	ErrNoContext     = errors.New("no context found")
	ErrCountMismatch = errors.New("embedding count mismatch")
)

type Config struct {
	Collection string `yaml:"collection"`
}

// Embedder maps text to fixed-dimension vectors. The method set matches
// langchaingo's embeddings.Embedder so its implementations plug in directly.
type Embedder interface {
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}

// Index stores embedded chunks for the lifetime of a single invocation.
type Index interface {

	// Build embeds every document and stores the resulting chunks.
	// A failure for any document abandons the whole build.
	Build(ctx context.Context, docs []Document) error

	// Query returns up to k chunks ordered by similarity to text, highest first.
	Query(ctx context.Context, text string, k int) ([]Chunk, error)

	// Count returns the number of stored chunks.
	Count() int
}

type IndexFactory func(ctx context.Context) (Index, error)

type Document struct {
	ID       string            `json:"id"`
	Metadata map[string]string `json:"metadata,omitempty"`
	Content  string            `json:"content"`
}

type Chunk struct {
	ID         string            `json:"id"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	Content    string            `json:"content"`
	Embedding  []float32         `json:"embedding,omitempty"`
	Similarity float32           `json:"similarity"`
}
