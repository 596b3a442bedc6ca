package vector

import "context"

// Retriever answers "most relevant chunk" queries on top of an Index.
type Retriever struct {
	index Index
}

func NewRetriever(index Index) *Retriever {
	return &Retriever{index}
}

func (r *Retriever) RetrieveTopContext(ctx context.Context, query string) (string, error) {
	chunks, err := r.index.Query(ctx, query, 1)
	if err != nil {
		return "", err
	}

	if len(chunks) == 0 {
		return "", ErrNoContext
	}

	return chunks[0].Content, nil
}
