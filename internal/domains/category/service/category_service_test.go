package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	category "blog-backend/internal/domains/category"
)

// fakeCategoryRepo keeps whole category documents in memory, the same way
// the store persists the subcategory sequence with its parent row.
type fakeCategoryRepo struct {
	categories map[uuid.UUID]*category.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[uuid.UUID]*category.Category{}}
}

func (f *fakeCategoryRepo) Create(_ context.Context, c *category.Category) error {
	cp := *c
	f.categories[c.ID] = &cp
	return nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id uuid.UUID) (*category.Category, error) {
	if c, ok := f.categories[id]; ok {
		cp := *c
		cp.SubCategories = append([]category.SubCategory{}, c.SubCategories...)
		return &cp, nil
	}
	return nil, category.ErrCategoryNotFound
}

func (f *fakeCategoryRepo) GetBySlug(_ context.Context, slug string) (*category.Category, error) {
	for _, c := range f.categories {
		if c.Slug == slug {
			cp := *c
			return &cp, nil
		}
	}
	return nil, category.ErrCategoryNotFound
}

func (f *fakeCategoryRepo) GetAll(_ context.Context) ([]*category.Category, error) {
	all := make([]*category.Category, 0, len(f.categories))
	for _, c := range f.categories {
		cp := *c
		all = append(all, &cp)
	}
	return all, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, c *category.Category) error {
	if _, ok := f.categories[c.ID]; !ok {
		return category.ErrCategoryNotFound
	}
	cp := *c
	f.categories[c.ID] = &cp
	return nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.categories[id]; !ok {
		return category.ErrCategoryNotFound
	}
	delete(f.categories, id)
	return nil
}

func (f *fakeCategoryRepo) ExistsBySlug(_ context.Context, slug string, exclude uuid.UUID) (bool, error) {
	for _, c := range f.categories {
		if c.Slug == slug && c.ID != exclude {
			return true, nil
		}
	}
	return false, nil
}

func seedCategory(repo *fakeCategoryRepo, name, slug string, subs ...category.SubCategory) *category.Category {
	c := &category.Category{
		ID:            uuid.New(),
		Name:          name,
		Slug:          slug,
		SubCategories: subs,
		CreatedAt:     time.Now().Add(-time.Hour),
		UpdatedAt:     time.Now().Add(-time.Hour),
	}
	repo.categories[c.ID] = c
	return c
}

func sub(name, slug string) category.SubCategory {
	return category.SubCategory{
		ID:        uuid.New(),
		Name:      name,
		Slug:      slug,
		CreatedAt: time.Now().Add(-time.Hour),
		UpdatedAt: time.Now().Add(-time.Hour),
	}
}

func TestCreateCategoryDerivesSlug(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo)

	c, err := svc.Create(context.Background(), &category.CreateCategoryRequest{Name: "Công Nghệ"})
	require.NoError(t, err)

	assert.Equal(t, "cong-nghe", c.Slug)
	assert.NotNil(t, c.SubCategories)
	assert.Empty(t, c.SubCategories)
}

func TestCreateCategoryDuplicateSlug(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo)
	seedCategory(repo, "Tech", "tech")

	_, err := svc.Create(context.Background(), &category.CreateCategoryRequest{Name: "Tech"})
	assert.ErrorIs(t, err, category.ErrDuplicateSlug)
}

func TestGetByIdentifier(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo)
	c := seedCategory(repo, "Tech", "tech")

	t.Run("by id", func(t *testing.T) {
		got, err := svc.GetByIdentifier(context.Background(), c.ID.String())
		require.NoError(t, err)
		assert.Equal(t, c.ID, got.ID)
	})

	t.Run("by slug", func(t *testing.T) {
		got, err := svc.GetByIdentifier(context.Background(), "tech")
		require.NoError(t, err)
		assert.Equal(t, c.ID, got.ID)
	})

	t.Run("unknown slug", func(t *testing.T) {
		_, err := svc.GetByIdentifier(context.Background(), "nope")
		assert.ErrorIs(t, err, category.ErrCategoryNotFound)
	})
}

func TestUpdateCategorySlugConflict(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo)
	seedCategory(repo, "Tech", "tech")
	c := seedCategory(repo, "Life", "life")

	_, err := svc.Update(context.Background(), c.ID, &category.UpdateCategoryRequest{Slug: "tech"})
	assert.ErrorIs(t, err, category.ErrDuplicateSlug)

	// Re-submitting its own slug is not a conflict.
	got, err := svc.Update(context.Background(), c.ID, &category.UpdateCategoryRequest{Slug: "life", Name: "Lifestyle"})
	require.NoError(t, err)
	assert.Equal(t, "Lifestyle", got.Name)
	assert.Equal(t, "life", got.Slug)
}

func TestCreateSubCategorySiblingUniqueness(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo)
	tech := seedCategory(repo, "Tech", "tech", sub("Go", "go"))
	life := seedCategory(repo, "Life", "life")

	t.Run("duplicate among siblings rejected", func(t *testing.T) {
		_, err := svc.CreateSubCategory(context.Background(), tech.ID, &category.SubCategoryRequest{Name: "Go"})
		assert.ErrorIs(t, err, category.ErrDuplicateSubSlug)
	})

	t.Run("same slug under a different parent is fine", func(t *testing.T) {
		got, err := svc.CreateSubCategory(context.Background(), life.ID, &category.SubCategoryRequest{Name: "Go"})
		require.NoError(t, err)
		require.Len(t, got.SubCategories, 1)
		assert.Equal(t, "go", got.SubCategories[0].Slug)
	})
}

func TestCreateSubCategoryAppends(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo)
	c := seedCategory(repo, "Tech", "tech", sub("Go", "go"))

	got, err := svc.CreateSubCategory(context.Background(), c.ID, &category.SubCategoryRequest{Name: "Rust"})
	require.NoError(t, err)

	require.Len(t, got.SubCategories, 2)
	assert.Equal(t, "go", got.SubCategories[0].Slug)
	assert.Equal(t, "rust", got.SubCategories[1].Slug)
	assert.True(t, got.UpdatedAt.After(c.CreatedAt))
}

func TestUpdateSubCategory(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo)
	first := sub("Go", "go")
	second := sub("Rust", "rust")
	c := seedCategory(repo, "Tech", "tech", first, second)
	before := c.UpdatedAt

	got, err := svc.UpdateSubCategory(context.Background(), c.ID, second.ID, &category.SubCategoryRequest{
		Name: "Rustlang",
	})
	require.NoError(t, err)

	_, updated := got.FindSubCategory(second.ID)
	require.NotNil(t, updated)
	assert.Equal(t, "Rustlang", updated.Name)
	assert.Equal(t, "rust", updated.Slug)

	// Both the subcategory and its parent get a fresh timestamp.
	assert.True(t, updated.UpdatedAt.After(before))
	assert.True(t, got.UpdatedAt.After(before))

	// The sibling is untouched.
	_, sibling := got.FindSubCategory(first.ID)
	require.NotNil(t, sibling)
	assert.Equal(t, "Go", sibling.Name)
}

func TestUpdateSubCategorySlugConflict(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo)
	first := sub("Go", "go")
	second := sub("Rust", "rust")
	c := seedCategory(repo, "Tech", "tech", first, second)

	_, err := svc.UpdateSubCategory(context.Background(), c.ID, second.ID, &category.SubCategoryRequest{Slug: "go"})
	assert.ErrorIs(t, err, category.ErrDuplicateSubSlug)

	// Keeping its own slug is not a conflict.
	_, err = svc.UpdateSubCategory(context.Background(), c.ID, second.ID, &category.SubCategoryRequest{Slug: "rust"})
	assert.NoError(t, err)
}

func TestUpdateSubCategoryNotFound(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo)
	c := seedCategory(repo, "Tech", "tech")

	_, err := svc.UpdateSubCategory(context.Background(), c.ID, uuid.New(), &category.SubCategoryRequest{Name: "x"})
	assert.ErrorIs(t, err, category.ErrSubCategoryNotFound)
}

func TestDeleteSubCategoryRemovesExactPosition(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo)
	first := sub("Go", "go")
	second := sub("Rust", "rust")
	third := sub("Zig", "zig")
	c := seedCategory(repo, "Tech", "tech", first, second, third)

	err := svc.DeleteSubCategory(context.Background(), c.ID, second.ID)
	require.NoError(t, err)

	stored := repo.categories[c.ID]
	require.Len(t, stored.SubCategories, 2)
	assert.Equal(t, first.ID, stored.SubCategories[0].ID)
	assert.Equal(t, third.ID, stored.SubCategories[1].ID)
}

func TestDeleteSubCategoryNotFound(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo)
	c := seedCategory(repo, "Tech", "tech", sub("Go", "go"))

	err := svc.DeleteSubCategory(context.Background(), c.ID, uuid.New())
	assert.ErrorIs(t, err, category.ErrSubCategoryNotFound)
	assert.Len(t, repo.categories[c.ID].SubCategories, 1)
}
