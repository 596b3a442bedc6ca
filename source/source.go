package source

import (
	"context"
	"errors"
)

var (
	ErrObjectNotFound  = errors.New("object not found")
	ErrInvalidLocation = errors.New("invalid location")
)

// Location identifies one object in a storage bucket.
type Location struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
}

func (l Location) Validate() error {
	if l.Bucket == "" || l.Key == "" {
		return ErrInvalidLocation
	}

	return nil
}

// DefaultLocation is the reference document the quiz is grounded on.
var DefaultLocation = Location{
	Bucket: "solana-radar-hackathon2024",
	Key:    "MagicBlock.md",
}

// Source supplies the raw text of a stored document.
type Source interface {
	Fetch(ctx context.Context, bucket string, key string) (string, error)
}
