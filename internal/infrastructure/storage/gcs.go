package storage

import (
	"context"
	"errors"
	"strings"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"sitecheck/internal/errs"
)

// GCSStorage writes evidence objects to a Google Cloud Storage bucket.
// Credentials come from ADC unless explicit JSON is configured.
type GCSStorage struct {
	bucket          string
	baseURL         string
	credentialsJSON string
}

func NewGCSStorage(bucket string, baseURL string, credentialsJSON string) (*GCSStorage, error) {
	if strings.TrimSpace(bucket) == "" {
		return nil, errors.New("gcs bucket is required")
	}
	return &GCSStorage{
		bucket:          bucket,
		baseURL:         strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		credentialsJSON: credentialsJSON,
	}, nil
}

func (s *GCSStorage) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	client, err := s.newClient(ctx)
	if err != nil {
		return "", errs.Wrap(err, "create gcs client")
	}
	defer client.Close()

	wc := client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	wc.ContentType = contentType

	if _, err := wc.Write(data); err != nil {
		return "", errs.Wrap(err, "write gcs object")
	}
	if err := wc.Close(); err != nil {
		return "", errs.Wrap(err, "close gcs writer")
	}

	return s.objectURL(key), nil
}

func (s *GCSStorage) newClient(ctx context.Context) (*gcs.Client, error) {
	if strings.TrimSpace(s.credentialsJSON) != "" {
		return gcs.NewClient(ctx, option.WithCredentialsJSON([]byte(s.credentialsJSON)))
	}
	return gcs.NewClient(ctx)
}

func (s *GCSStorage) objectURL(key string) string {
	if s.baseURL != "" {
		return s.baseURL + "/" + key
	}
	return "https://storage.googleapis.com/" + s.bucket + "/" + key
}
