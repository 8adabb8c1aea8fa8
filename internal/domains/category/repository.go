package category

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the category document store. Update persists the whole
// record including the subcategory sequence; there is no narrower write for
// subcategories because they have no independent existence.
type Repository interface {
	Create(ctx context.Context, c *Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*Category, error)
	GetBySlug(ctx context.Context, slug string) (*Category, error)
	GetAll(ctx context.Context) ([]*Category, error)
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsBySlug checks global slug uniqueness, skipping exclude
	// (uuid.Nil skips nothing).
	ExistsBySlug(ctx context.Context, slug string, exclude uuid.UUID) (bool, error)
}
