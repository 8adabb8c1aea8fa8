package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	category "blog-backend/internal/domains/category"
	"blog-backend/pkg/cache"
	"blog-backend/pkg/logger"
)

const (
	cacheKeyAll = "categories:all"
	cacheTTL    = 5 * time.Minute
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository returns the pgx-backed category store. The cache
// holds the full listing; every write invalidates it.
func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) category.Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

func (r *postgresRepository) Create(ctx context.Context, c *category.Category) error {
	subs, err := json.Marshal(c.SubCategories)
	if err != nil {
		return fmt.Errorf("failed to marshal subcategories: %w", err)
	}

	query := `
		INSERT INTO categories (id, name, slug, description, sub_categories, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = r.pool.Exec(ctx, query, c.ID, c.Name, c.Slug, c.Description, subs, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// The unique index backstops the service's read-check when two
			// creates race on the same slug.
			return category.ErrDuplicateSlug
		}
		return fmt.Errorf("failed to create category: %w", err)
	}

	r.invalidate(ctx)
	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*category.Category, error) {
	return r.getOne(ctx, `WHERE slug = $1`, slug)
}

func (r *postgresRepository) getOne(ctx context.Context, where string, arg interface{}) (*category.Category, error) {
	query := `
		SELECT id, name, slug, description, sub_categories, created_at, updated_at
		FROM categories ` + where

	c, err := scanCategory(r.pool.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, category.ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return c, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]*category.Category, error) {
	var cached []*category.Category
	if found, err := r.cache.Get(ctx, cacheKeyAll, &cached); err == nil && found {
		return cached, nil
	} else if err != nil {
		logger.Error("category cache read failed", err)
	}

	query := `
		SELECT id, name, slug, description, sub_categories, created_at, updated_at
		FROM categories
		ORDER BY name ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []*category.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}

	if err := r.cache.Set(ctx, cacheKeyAll, categories, cacheTTL); err != nil {
		logger.Error("category cache write failed", err)
	}

	return categories, nil
}

func (r *postgresRepository) Update(ctx context.Context, c *category.Category) error {
	subs, err := json.Marshal(c.SubCategories)
	if err != nil {
		return fmt.Errorf("failed to marshal subcategories: %w", err)
	}

	query := `
		UPDATE categories
		SET name = $2, slug = $3, description = $4, sub_categories = $5, updated_at = $6
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query, c.ID, c.Name, c.Slug, c.Description, subs, c.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return category.ErrDuplicateSlug
		}
		return fmt.Errorf("failed to update category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return category.ErrCategoryNotFound
	}

	r.invalidate(ctx)
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return category.ErrCategoryNotFound
	}

	r.invalidate(ctx)
	return nil
}

func (r *postgresRepository) ExistsBySlug(ctx context.Context, slug string, exclude uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM categories WHERE slug = $1 AND id <> $2)`,
		slug, exclude,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check category slug: %w", err)
	}
	return exists, nil
}

// invalidate drops the cached listing. Cache failures are logged, never
// surfaced: the database already holds the truth.
func (r *postgresRepository) invalidate(ctx context.Context) {
	if err := r.cache.Delete(ctx, cacheKeyAll); err != nil {
		logger.Error("category cache invalidation failed", err)
	}
}

func scanCategory(row pgx.Row) (*category.Category, error) {
	c := &category.Category{}
	var subs []byte
	if err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &subs, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}

	c.SubCategories = []category.SubCategory{}
	if len(subs) > 0 {
		if err := json.Unmarshal(subs, &c.SubCategories); err != nil {
			return nil, fmt.Errorf("failed to unmarshal subcategories: %w", err)
		}
	}
	return c, nil
}
