package chromem

import (
	"context"
	"fmt"
	"strconv"

	"github.com/philippgille/chromem-go"

	"github.com/flarexio/quizblade/vector"
)

const DefaultCollection = "quiz"

// NewIndex creates an in-memory index backed by a fresh chromem database.
// Nothing is persisted; the index lives as long as the returned value.
func NewIndex(embedder vector.Embedder, cfg vector.Config) (vector.Index, error) {
	name := cfg.Collection
	if name == "" {
		name = DefaultCollection
	}

	db := chromem.NewDB()

	c, err := db.CreateCollection(name, nil, embeddingFunc(embedder))
	if err != nil {
		return nil, err
	}

	return &index{
		collection: c,
		embedder:   embedder,
	}, nil
}

// NewIndexFactory returns a factory producing one index per invocation.
func NewIndexFactory(embedder vector.Embedder, cfg vector.Config) vector.IndexFactory {
	return func(ctx context.Context) (vector.Index, error) {
		return NewIndex(embedder, cfg)
	}
}

func embeddingFunc(embedder vector.Embedder) chromem.EmbeddingFunc {
	return func(ctx context.Context, text string) ([]float32, error) {
		return embedder.EmbedQuery(ctx, text)
	}
}

type index struct {
	collection *chromem.Collection
	embedder   vector.Embedder
}

func (idx *index) Build(ctx context.Context, docs []vector.Document) error {
	if len(docs) == 0 {
		return nil
	}

	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.Content
	}

	embeddings, err := idx.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		return fmt.Errorf("%w: %w", vector.ErrEmbedding, err)
	}

	if len(embeddings) != len(docs) {
		return fmt.Errorf("%w: %w", vector.ErrEmbedding, vector.ErrCountMismatch)
	}

	documents := make([]chromem.Document, len(docs))
	for i, doc := range docs {
		id := doc.ID
		if id == "" {
			id = "chunk_" + strconv.Itoa(idx.collection.Count()+i)
		}

		documents[i] = chromem.Document{
			ID:        id,
			Metadata:  doc.Metadata,
			Embedding: embeddings[i],
			Content:   doc.Content,
		}
	}

	return idx.collection.AddDocuments(ctx, documents, 1)
}

func (idx *index) Query(ctx context.Context, text string, k int) ([]vector.Chunk, error) {
	if k <= 0 {
		return nil, vector.ErrInvalidK
	}

	count := idx.collection.Count()
	if count == 0 {
		return nil, vector.ErrEmptyIndex
	}

	if k > count {
		k = count
	}

	embedding, err := idx.embedder.EmbedQuery(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", vector.ErrEmbedding, err)
	}

	results, err := idx.collection.QueryEmbedding(ctx, embedding, k, nil, nil)
	if err != nil {
		return nil, err
	}

	chunks := make([]vector.Chunk, len(results))
	for i, result := range results {
		chunks[i] = vector.Chunk{
			ID:         result.ID,
			Metadata:   result.Metadata,
			Embedding:  result.Embedding,
			Content:    result.Content,
			Similarity: result.Similarity,
		}
	}

	return chunks, nil
}

func (idx *index) Count() int {
	return idx.collection.Count()
}
