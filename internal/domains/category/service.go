package category

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	Create(ctx context.Context, req *CreateCategoryRequest) (*Category, error)
	GetAll(ctx context.Context) ([]*Category, error)
	// GetByIdentifier accepts a well-formed id or a slug in the same path
	// position: id-shaped input is looked up by id, anything else by slug.
	GetByIdentifier(ctx context.Context, identifier string) (*Category, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateCategoryRequest) (*Category, error)
	Delete(ctx context.Context, id uuid.UUID) error

	CreateSubCategory(ctx context.Context, categoryID uuid.UUID, req *SubCategoryRequest) (*Category, error)
	GetSubCategories(ctx context.Context, categoryID uuid.UUID) ([]SubCategory, error)
	UpdateSubCategory(ctx context.Context, categoryID, subCategoryID uuid.UUID, req *SubCategoryRequest) (*Category, error)
	DeleteSubCategory(ctx context.Context, categoryID, subCategoryID uuid.UUID) error
}
