package analysis

import (
	"context"
	"encoding/json"
	"io"
)

// Request carries the client-submitted image as a data URL.
type Request struct {
	Image string `json:"image"`
}

// Response is returned after a successful remote analysis.
type Response struct {
	RequestID  string          `json:"requestId"`
	Analysis   json.RawMessage `json:"analysis"`
	StorageKey string          `json:"storageKey,omitempty"`
}

// RemoteRequest is the payload sent to the analysis endpoint.
type RemoteRequest struct {
	Image     string  `json:"image"`
	UserID    *string `json:"userId"`
	Timestamp int64   `json:"timestamp"`
	RequestID string  `json:"requestId"`
}

// RemoteClient calls the hosted analysis function.
type RemoteClient interface {
	Analyze(ctx context.Context, req RemoteRequest) (json.RawMessage, error)
}

// ObjectStorage abstracts the S3-compatible blob store for selfies and
// analyzed photos.
type ObjectStorage interface {
	Put(ctx context.Context, key string, data []byte, mimeType string) (StoredObject, error)
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// StoredObject captures persisted blob metadata.
type StoredObject struct {
	Key      string
	Size     int64
	MimeType string
	ETag     string
}
