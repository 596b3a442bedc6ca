package source

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/url"
)

const DefaultScheme = "s3"

// NewAFSSource returns a Source reading objects through viant/afs.
// The scheme must be registered with afs, e.g. by importing afsc/s3.
func NewAFSSource(scheme string) Source {
	if scheme == "" {
		scheme = DefaultScheme
	}

	return &afsSource{
		fs:     afs.New(),
		scheme: scheme,
	}
}

type afsSource struct {
	fs     afs.Service
	scheme string
}

func (s *afsSource) URL(bucket string, key string) string {
	return url.Join(s.scheme+"://"+bucket, key)
}

func (s *afsSource) Fetch(ctx context.Context, bucket string, key string) (string, error) {
	loc := Location{bucket, key}
	if err := loc.Validate(); err != nil {
		return "", err
	}

	URL := s.URL(bucket, key)

	ok, err := s.fs.Exists(ctx, URL)
	if err != nil {
		return "", err
	}

	if !ok {
		return "", fmt.Errorf("%w: %s", ErrObjectNotFound, URL)
	}

	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return "", err
	}

	return string(data), nil
}
