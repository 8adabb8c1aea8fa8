package post

import (
	"context"

	user "blog-backend/internal/domains/user"
)

// Service owns the post business rules: defaults, merge semantics, the
// ownership check, and role-based listing visibility. Identifier arguments
// are raw path strings; malformed ids surface as not-found.
type Service interface {
	Create(ctx context.Context, identity *user.User, req *CreatePostRequest) (*Detail, error)
	List(ctx context.Context, identity *user.User, f *Filter) (*ListResponse, error)
	GetByID(ctx context.Context, id string) (*Detail, error)
	Update(ctx context.Context, identity *user.User, id string, req *UpdatePostRequest) (*Detail, error)
	Delete(ctx context.Context, identity *user.User, id string) error
	Related(ctx context.Context, id string) ([]*Detail, error)
}
