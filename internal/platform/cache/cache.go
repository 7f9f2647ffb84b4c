package cache

import (
	"context"

	"github.com/dmaldonadov/retail_backoffice_app/internal/core/domain"
)

// ComboCache caches combo definitions. Combos are immutable reference data,
// so entries never need invalidation, only expiry.
type ComboCache interface {
	// GetCombo returns the cached combo, or (nil, nil) on a miss.
	GetCombo(ctx context.Context, comboID string) (*domain.Combo, error)

	// SetCombo stores a combo definition.
	SetCombo(ctx context.Context, combo domain.Combo) error
}

// NoopComboCache satisfies ComboCache without caching anything. Used when no
// redis address is configured.
type NoopComboCache struct{}

// NewNoopComboCache creates a no-op combo cache
func NewNoopComboCache() *NoopComboCache {
	return &NoopComboCache{}
}

func (n *NoopComboCache) GetCombo(ctx context.Context, comboID string) (*domain.Combo, error) {
	return nil, nil
}

func (n *NoopComboCache) SetCombo(ctx context.Context, combo domain.Combo) error {
	return nil
}
