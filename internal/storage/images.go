// Package storage uploads record images to an external object store. The
// portal treats the store as a collaborator: when none is configured,
// records simply persist without an image.
package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/kurin/blazer/b2"
)

// ImageStore persists one image per record and returns its public URL.
type ImageStore interface {
	Store(ctx context.Context, prefix, id, dataURI string) (string, error)
}

// B2Store uploads images to a Backblaze B2 bucket.
type B2Store struct {
	client *b2.Client
	bucket *b2.Bucket
}

var _ ImageStore = (*B2Store)(nil)

// NewB2Store connects to B2 and resolves the bucket.
func NewB2Store(ctx context.Context, keyID, appKey, bucketName string) (*B2Store, error) {
	client, err := b2.NewClient(ctx, keyID, appKey)
	if err != nil {
		return nil, fmt.Errorf("create b2 client: %w", err)
	}
	bucket, err := client.Bucket(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("resolve bucket: %w", err)
	}
	return &B2Store{client: client, bucket: bucket}, nil
}

// Store decodes a base64 data URI and writes it under <prefix>/<id>.jpg.
func (s *B2Store) Store(ctx context.Context, prefix, id, dataURI string) (string, error) {
	data, err := DecodeDataURI(dataURI)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	key := prefix + "/" + id + ".jpg"
	w := s.bucket.Object(key).NewWriter(ctx)
	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		w.Close()
		return "", fmt.Errorf("write object: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close writer: %w", err)
	}

	return fmt.Sprintf("%s/file/%s/%s", s.bucket.BaseURL(), s.bucket.Name(), key), nil
}

// DecodeDataURI strips an optional data: URI header and decodes the base64
// payload.
func DecodeDataURI(s string) ([]byte, error) {
	if strings.HasPrefix(s, "data:") {
		i := strings.Index(s, ",")
		if i < 0 {
			return nil, fmt.Errorf("malformed data uri")
		}
		s = s[i+1:]
	}
	return base64.StdEncoding.DecodeString(s)
}
