package ports

import "context"

// ObjectStorage stores opaque binary payloads under a caller-chosen key
// and returns a publicly resolvable URL. The aggregate only ever holds
// the returned URL, never the bytes.
type ObjectStorage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}
