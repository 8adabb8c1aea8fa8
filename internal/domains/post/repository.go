package post

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the post document store. Detail-returning reads expand the
// author/category/subCategory references in one round trip.
type Repository interface {
	Create(ctx context.Context, p *Post) error

	// GetByID returns the bare record; mutation paths use it for the
	// ownership check before touching anything.
	GetByID(ctx context.Context, id uuid.UUID) (*Post, error)

	// GetDetail returns the record with expanded references.
	GetDetail(ctx context.Context, id uuid.UUID) (*Detail, error)

	// FetchAndIncrementView bumps view_count and returns the expanded
	// record in one statement, so the response always reflects the
	// post-increment value.
	FetchAndIncrementView(ctx context.Context, id uuid.UUID) (*Detail, error)

	List(ctx context.Context, f *Filter) ([]*Detail, int, error)
	Update(ctx context.Context, p *Post) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsBySlug(ctx context.Context, slug string, exclude uuid.UUID) (bool, error)

	// Related returns up to limit published posts in the same category,
	// newest first, excluding the source post.
	Related(ctx context.Context, id, categoryID uuid.UUID, limit int) ([]*Detail, error)
}
