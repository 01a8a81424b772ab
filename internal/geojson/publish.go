package geojson

import (
	"context"
	"fmt"

	"github.com/maxvelasco/portuguese-map/internal/catalog"
	"github.com/maxvelasco/portuguese-map/internal/domain"
	"github.com/maxvelasco/portuguese-map/internal/ports"
)

const ContentType = "application/geo+json"

// Publish marshals the collections and saved markers and writes them to
// dst under key. It returns the number of bytes written.
func Publish(ctx context.Context, dst ports.ObjectStore, key string, cols []catalog.Collection, saved []domain.SavedMarker) (int, error) {
	b, err := Marshal(cols, saved)
	if err != nil {
		return 0, fmt.Errorf("publish %s: %w", key, err)
	}
	if err := dst.Put(ctx, key, ContentType, b); err != nil {
		return 0, fmt.Errorf("publish %s: %w", key, err)
	}
	return len(b), nil
}
