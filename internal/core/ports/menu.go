package ports

import (
	"context"

	"github.com/cedarhouse/restaurant-api/internal/core/domain"
)

// MenuRepository gives access to the four category tables. Mutations report
// affected rows so callers can tell "not found" apart from success.
type MenuRepository interface {
	// ListAll merges every category into one sequence in table scan order.
	ListAll(ctx context.Context) ([]domain.MenuItem, error)
	Create(ctx context.Context, category domain.Category, name string, price float64) (int64, error)
	Update(ctx context.Context, category domain.Category, id int64, name string, price float64) (int64, error)
	Delete(ctx context.Context, category domain.Category, id int64) (int64, error)
	// Count sums the rows of all four tables.
	Count(ctx context.Context) (int64, error)
}

// MenuItemInput carries a create or update request.
type MenuItemInput struct {
	Table   string
	ID      int64
	Name    string
	Price   float64
	ActorID int64
}

type MenuService interface {
	List(ctx context.Context) ([]domain.MenuItem, error)
	Create(ctx context.Context, in MenuItemInput) (*domain.MenuItem, error)
	Update(ctx context.Context, in MenuItemInput) (*domain.MenuItem, error)
	Delete(ctx context.Context, table string, id, actorID int64) error
}
