package ports

import "context"

// Port: a write-only bucket for published artifacts such as GeoJSON exports.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
}
