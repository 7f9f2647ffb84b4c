package repositories

import (
	"context"

	"github.com/dmaldonadov/retail_backoffice_app/internal/core/domain"
)

// ComboReader defines read operations for combo definitions. Combos are
// immutable reference data; there is no writer interface.
type ComboReader interface {
	// FindComboByID retrieves a combo and its constituent lines by ID.
	FindComboByID(ctx context.Context, comboID string) (*domain.Combo, error)

	// ListCombos retrieves a paginated list of active combos.
	ListCombos(ctx context.Context, limit int, offset int) ([]domain.Combo, error)
}

// ComboRepositoryFacade combines all combo-related repository interfaces
type ComboRepositoryFacade interface {
	ComboReader
}
