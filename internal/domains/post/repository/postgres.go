package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	category "blog-backend/internal/domains/category"
	post "blog-backend/internal/domains/post"
	user "blog-backend/internal/domains/user"
)

// detailColumns is every column a Detail scan expects, in scan order. The
// joined category row carries its subcategory sequence so the subCategory
// reference can be resolved without another round trip.
const detailColumns = `
	p.id, p.title, p.slug, p.description, p.summary, p.content,
	p.author_id, p.category_id, p.sub_category_id,
	p.tags, p.featured_image, p.images, p.status, p.featured, p.view_count,
	p.sections, p.meta, p.created_at, p.updated_at,
	u.id, u.name, u.email, u.profile_image, u.bio,
	c.id, c.name, c.slug, c.sub_categories`

// The joins are LEFT: category deletion leaves its posts in place, and
// those posts keep being served with a null category expansion.
const detailJoins = `
	LEFT JOIN users u ON u.id = p.author_id
	LEFT JOIN categories c ON c.id = p.category_id`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) post.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, p *post.Post) error {
	sections, meta, err := marshalDocs(p)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO posts (
			id, title, slug, description, summary, content,
			author_id, category_id, sub_category_id,
			tags, featured_image, images, status, featured, view_count,
			sections, meta, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9,
			$10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19
		)
	`
	_, err = r.pool.Exec(ctx, query,
		p.ID, p.Title, p.Slug, p.Description, p.Summary, p.Content,
		p.AuthorID, p.CategoryID, p.SubCategoryID,
		p.Tags, p.FeaturedImage, p.Images, p.Status, p.Featured, p.ViewCount,
		sections, meta, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, "create")
	}
	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	query := `
		SELECT id, title, slug, description, summary, content,
			author_id, category_id, sub_category_id,
			tags, featured_image, images, status, featured, view_count,
			sections, meta, created_at, updated_at
		FROM posts
		WHERE id = $1
	`

	p := &post.Post{}
	var sections, meta []byte
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Slug, &p.Description, &p.Summary, &p.Content,
		&p.AuthorID, &p.CategoryID, &p.SubCategoryID,
		&p.Tags, &p.FeaturedImage, &p.Images, &p.Status, &p.Featured, &p.ViewCount,
		&sections, &meta, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, post.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	if err := unmarshalDocs(p, sections, meta); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresRepository) GetDetail(ctx context.Context, id uuid.UUID) (*post.Detail, error) {
	query := `SELECT ` + detailColumns + ` FROM posts p` + detailJoins + ` WHERE p.id = $1`

	d, err := scanDetail(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, post.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post detail: %w", err)
	}
	return d, nil
}

// FetchAndIncrementView bumps the counter and reads the row in one
// statement: the returned record always reflects the incremented value and
// concurrent readers never lose increments. The left joins matter here: the
// outer select yields a row whenever the post exists, so a not-found
// response never carries a persisted increment.
func (r *postgresRepository) FetchAndIncrementView(ctx context.Context, id uuid.UUID) (*post.Detail, error) {
	query := `
		WITH bumped AS (
			UPDATE posts SET view_count = view_count + 1
			WHERE id = $1
			RETURNING *
		)
		SELECT ` + detailColumns + ` FROM bumped p` + detailJoins

	d, err := scanDetail(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, post.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch post: %w", err)
	}
	return d, nil
}

func (r *postgresRepository) List(ctx context.Context, f *post.Filter) ([]*post.Detail, int, error) {
	conditions := []string{}
	args := []interface{}{}

	addCondition := func(expr string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(expr, len(args)))
	}

	if f.CategoryID != nil {
		addCondition("p.category_id = $%d", *f.CategoryID)
	}
	if f.SubCategoryID != nil {
		addCondition("p.sub_category_id = $%d", *f.SubCategoryID)
	}
	if f.Tag != "" {
		addCondition("$%d = ANY(p.tags)", f.Tag)
	}
	if f.AuthorID != nil {
		addCondition("p.author_id = $%d", *f.AuthorID)
	}
	if f.Status != nil {
		addCondition("p.status = $%d", *f.Status)
	}
	if f.Search != "" {
		// Matching is delegated to the store's text index; no ranking.
		addCondition(
			"to_tsvector('english', coalesce(p.title, '') || ' ' || coalesce(p.description, '') || ' ' || array_to_string(p.tags, ' ')) @@ plainto_tsquery('english', $%d)",
			f.Search,
		)
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	// No joins needed: the page query's left joins never drop rows, so
	// counting bare posts agrees with the page.
	var total int
	countQuery := `SELECT COUNT(*) FROM posts p` + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	query := `SELECT ` + detailColumns + ` FROM posts p` + detailJoins + where +
		fmt.Sprintf(" ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, f.Limit, f.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	posts := []*post.Detail{}
	for rows.Next() {
		d, err := scanDetail(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read posts: %w", err)
	}

	return posts, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, p *post.Post) error {
	sections, meta, err := marshalDocs(p)
	if err != nil {
		return err
	}

	query := `
		UPDATE posts SET
			title = $2, description = $3, summary = $4, content = $5,
			category_id = $6, sub_category_id = $7,
			tags = $8, featured_image = $9, images = $10, status = $11, featured = $12,
			sections = $13, meta = $14, updated_at = $15
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		p.ID, p.Title, p.Description, p.Summary, p.Content,
		p.CategoryID, p.SubCategoryID,
		p.Tags, p.FeaturedImage, p.Images, p.Status, p.Featured,
		sections, meta, p.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, "update")
	}
	if tag.RowsAffected() == 0 {
		return post.ErrPostNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return post.ErrPostNotFound
	}
	return nil
}

func (r *postgresRepository) ExistsBySlug(ctx context.Context, slug string, exclude uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM posts WHERE slug = $1 AND id <> $2)`,
		slug, exclude,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check post slug: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) Related(ctx context.Context, id, categoryID uuid.UUID, limit int) ([]*post.Detail, error) {
	query := `SELECT ` + detailColumns + ` FROM posts p` + detailJoins + `
		WHERE p.id <> $1 AND p.category_id = $2 AND p.status = $3
		ORDER BY p.created_at DESC
		LIMIT $4`

	rows, err := r.pool.Query(ctx, query, id, categoryID, post.StatusPublished, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list related posts: %w", err)
	}
	defer rows.Close()

	posts := []*post.Detail{}
	for rows.Next() {
		d, err := scanDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan related post: %w", err)
		}
		posts = append(posts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read related posts: %w", err)
	}

	return posts, nil
}

func scanDetail(row pgx.Row) (*post.Detail, error) {
	d := &post.Detail{}
	var sections, meta, subCategories []byte

	// The joined columns are nullable: a dangling author or category
	// reference leaves the expansion null instead of dropping the post.
	var (
		authorID     *uuid.UUID
		authorName   *string
		authorEmail  *string
		authorImage  *string
		authorBio    *string
		categoryID   *uuid.UUID
		categoryName *string
		categorySlug *string
	)

	err := row.Scan(
		&d.ID, &d.Title, &d.Slug, &d.Description, &d.Summary, &d.Content,
		&d.AuthorID, &d.CategoryID, &d.SubCategoryID,
		&d.Tags, &d.FeaturedImage, &d.Images, &d.Status, &d.Featured, &d.ViewCount,
		&sections, &meta, &d.CreatedAt, &d.UpdatedAt,
		&authorID, &authorName, &authorEmail, &authorImage, &authorBio,
		&categoryID, &categoryName, &categorySlug, &subCategories,
	)
	if err != nil {
		return nil, err
	}

	if authorID != nil {
		d.Author = &user.Summary{
			ID:           *authorID,
			Name:         derefString(authorName),
			Email:        derefString(authorEmail),
			ProfileImage: derefString(authorImage),
			Bio:          derefString(authorBio),
		}
	}
	if categoryID != nil {
		d.Category = &category.Summary{
			ID:   *categoryID,
			Name: derefString(categoryName),
			Slug: derefString(categorySlug),
		}
	}

	if err := unmarshalDocs(&d.Post, sections, meta); err != nil {
		return nil, err
	}

	// Resolve the subCategory reference from the parent category's embedded
	// sequence; a dangling reference simply stays unexpanded.
	if d.SubCategoryID != nil && len(subCategories) > 0 {
		var subs []category.SubCategory
		if err := json.Unmarshal(subCategories, &subs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal subcategories: %w", err)
		}
		for i := range subs {
			if subs[i].ID == *d.SubCategoryID {
				d.SubCategory = &subs[i]
				break
			}
		}
	}

	return d, nil
}

func marshalDocs(p *post.Post) (sections, meta []byte, err error) {
	if p.Sections == nil {
		p.Sections = []post.Section{}
	}
	sections, err = json.Marshal(p.Sections)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal sections: %w", err)
	}
	meta, err = json.Marshal(p.Meta)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal meta: %w", err)
	}
	return sections, meta, nil
}

func unmarshalDocs(p *post.Post, sections, meta []byte) error {
	p.Sections = []post.Section{}
	if len(sections) > 0 {
		if err := json.Unmarshal(sections, &p.Sections); err != nil {
			return fmt.Errorf("failed to unmarshal sections: %w", err)
		}
	}
	if len(meta) > 0 {
		if err := json.Unmarshal(meta, &p.Meta); err != nil {
			return fmt.Errorf("failed to unmarshal meta: %w", err)
		}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	return nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func mapWriteError(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return post.ErrDuplicateSlug
		case "23503":
			return post.ErrInvalidRef
		}
	}
	return fmt.Errorf("failed to %s post: %w", op, err)
}
