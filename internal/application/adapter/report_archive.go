package adapter

import "context"

// ReportArchive stores exported plan reports in object storage.
type ReportArchive interface {
	// Store writes the report under the key and returns its location.
	Store(ctx context.Context, key, contentType string, body []byte) (string, error)
}
