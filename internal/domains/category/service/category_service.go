package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	category "blog-backend/internal/domains/category"
	"blog-backend/internal/shared/utils"
)

type categoryService struct {
	repo category.Repository
}

func NewCategoryService(repo category.Repository) category.Service {
	return &categoryService{repo: repo}
}

func (s *categoryService) Create(ctx context.Context, req *category.CreateCategoryRequest) (*category.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", category.ErrValidation, err)
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.GenerateSlug(req.Name)
	}

	exists, err := s.repo.ExistsBySlug(ctx, slug, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, category.ErrDuplicateSlug
	}

	now := time.Now()
	c := &category.Category{
		ID:            uuid.New(),
		Name:          req.Name,
		Slug:          slug,
		Description:   req.Description,
		SubCategories: []category.SubCategory{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *categoryService) GetAll(ctx context.Context) ([]*category.Category, error) {
	return s.repo.GetAll(ctx)
}

func (s *categoryService) GetByIdentifier(ctx context.Context, identifier string) (*category.Category, error) {
	if id, err := uuid.Parse(identifier); err == nil {
		return s.repo.GetByID(ctx, id)
	}
	return s.repo.GetBySlug(ctx, identifier)
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, req *category.UpdateCategoryRequest) (*category.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", category.ErrValidation, err)
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Slug != "" && req.Slug != c.Slug {
		exists, err := s.repo.ExistsBySlug(ctx, req.Slug, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, category.ErrDuplicateSlug
		}
		c.Slug = req.Slug
	}
	if req.Name != "" {
		c.Name = req.Name
	}
	if req.Description != "" {
		c.Description = req.Description
	}
	c.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *categoryService) CreateSubCategory(ctx context.Context, categoryID uuid.UUID, req *category.SubCategoryRequest) (*category.Category, error) {
	if err := req.ValidateCreate(); err != nil {
		return nil, fmt.Errorf("%w: %v", category.ErrValidation, err)
	}

	c, err := s.repo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.GenerateSlug(req.Name)
	}

	// Sibling-scoped uniqueness: the same slug under a different parent is
	// perfectly fine.
	if c.HasSiblingSlug(slug, uuid.Nil) {
		return nil, category.ErrDuplicateSubSlug
	}

	now := time.Now()
	c.SubCategories = append(c.SubCategories, category.SubCategory{
		ID:          uuid.New(),
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	c.UpdatedAt = now

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *categoryService) GetSubCategories(ctx context.Context, categoryID uuid.UUID) ([]category.SubCategory, error) {
	c, err := s.repo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return c.SubCategories, nil
}

func (s *categoryService) UpdateSubCategory(ctx context.Context, categoryID, subCategoryID uuid.UUID, req *category.SubCategoryRequest) (*category.Category, error) {
	c, err := s.repo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	idx, sub := c.FindSubCategory(subCategoryID)
	if idx < 0 {
		return nil, category.ErrSubCategoryNotFound
	}

	if req.Slug != "" && c.HasSiblingSlug(req.Slug, subCategoryID) {
		return nil, category.ErrDuplicateSubSlug
	}

	if req.Name != "" {
		sub.Name = req.Name
	}
	if req.Slug != "" {
		sub.Slug = req.Slug
	}
	if req.Description != "" {
		sub.Description = req.Description
	}

	// Both the subcategory and its parent are stamped, even when the
	// request changed nothing.
	now := time.Now()
	sub.UpdatedAt = now
	c.UpdatedAt = now

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *categoryService) DeleteSubCategory(ctx context.Context, categoryID, subCategoryID uuid.UUID) error {
	c, err := s.repo.GetByID(ctx, categoryID)
	if err != nil {
		return err
	}

	idx, _ := c.FindSubCategory(subCategoryID)
	if idx < 0 {
		return category.ErrSubCategoryNotFound
	}

	// Remove exactly the matched position; siblings keep their relative order.
	c.SubCategories = append(c.SubCategories[:idx], c.SubCategories[idx+1:]...)
	c.UpdatedAt = time.Now()

	return s.repo.Update(ctx, c)
}
