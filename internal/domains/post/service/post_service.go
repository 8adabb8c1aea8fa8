package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	post "blog-backend/internal/domains/post"
	user "blog-backend/internal/domains/user"
	"blog-backend/internal/shared/utils"
	"blog-backend/pkg/logger"
)

const relatedLimit = 3

type postService struct {
	repo post.Repository
}

func NewPostService(repo post.Repository) post.Service {
	return &postService{repo: repo}
}

func (s *postService) Create(ctx context.Context, identity *user.User, req *post.CreatePostRequest) (*post.Detail, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", post.ErrValidation, err)
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.GenerateSlug(req.Title)
	}

	exists, err := s.repo.ExistsBySlug(ctx, slug, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, post.ErrDuplicateSlug
	}

	categoryID, _ := uuid.Parse(req.Category) // validated above
	var subCategoryID *uuid.UUID
	if req.SubCategory != "" {
		id, _ := uuid.Parse(req.SubCategory)
		subCategoryID = &id
	}

	status := post.StatusDraft
	if req.Status != "" {
		status, _ = post.ParseStatus(req.Status) // validated above
	}

	tags := []string{}
	if req.Tags != "" {
		tags = utils.SplitTags(req.Tags)
	}

	images := req.Images
	if images == nil {
		images = []string{}
	}
	sections := req.Sections
	if sections == nil {
		sections = []post.Section{}
	}
	meta := post.Meta{}
	if req.Meta != nil {
		meta = *req.Meta
	}

	now := time.Now()
	p := &post.Post{
		ID:          uuid.New(),
		Title:       req.Title,
		Slug:        slug,
		Description: req.Description,
		Summary:     req.Summary,
		Content:     req.Content,
		// The author is always the caller, never a submitted field.
		AuthorID:      identity.ID,
		CategoryID:    categoryID,
		SubCategoryID: subCategoryID,
		Tags:          tags,
		FeaturedImage: req.FeaturedImage,
		Images:        images,
		Status:        status,
		Featured:      req.Featured,
		Sections:      sections,
		Meta:          meta,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	logger.Info("post created", map[string]interface{}{
		"post_id": p.ID.String(),
		"author":  identity.ID.String(),
	})

	return s.repo.GetDetail(ctx, p.ID)
}

// List applies the role-based visibility rule: anonymous and reader callers
// only ever see published posts; authors and admins may filter by an
// explicit status, or see everything when none is given.
func (s *postService) List(ctx context.Context, identity *user.User, f *post.Filter) (*post.ListResponse, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}

	privileged := identity != nil && (identity.Role == user.RoleAuthor || identity.Role == user.RoleAdmin)
	if !privileged {
		published := post.StatusPublished
		f.Status = &published
	}

	posts, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	return post.NewListResponse(posts, f.Page, f.Limit, total), nil
}

func (s *postService) GetByID(ctx context.Context, id string) (*post.Detail, error) {
	postID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	// The view count bump is an intentional write side effect of a
	// successful read, applied for anonymous viewers too.
	return s.repo.FetchAndIncrementView(ctx, postID)
}

func (s *postService) Update(ctx context.Context, identity *user.User, id string, req *post.UpdatePostRequest) (*post.Detail, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", post.ErrValidation, err)
	}

	postID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	p, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if err := checkOwnership(p, identity); err != nil {
		return nil, err
	}

	// Field-merge semantics: present fields overwrite, absent fields stay.
	if req.Title != "" {
		p.Title = req.Title
	}
	if req.Description != "" {
		p.Description = req.Description
	}
	if req.Summary != "" {
		p.Summary = req.Summary
	}
	if req.Content != "" {
		p.Content = req.Content
	}
	if req.Category != "" {
		categoryID, _ := uuid.Parse(req.Category) // validated above
		p.CategoryID = categoryID
	}
	if req.SubCategory != "" {
		subCategoryID, _ := uuid.Parse(req.SubCategory)
		p.SubCategoryID = &subCategoryID
	}
	if req.Tags != "" {
		p.Tags = utils.SplitTags(req.Tags)
	}
	if req.FeaturedImage != "" {
		p.FeaturedImage = req.FeaturedImage
	}
	if req.Images != nil {
		p.Images = req.Images
	}
	if req.Status != "" {
		p.Status, _ = post.ParseStatus(req.Status) // validated above
	}
	if req.Sections != nil {
		p.Sections = req.Sections
	}
	if req.Meta != nil {
		p.Meta = *req.Meta
	}
	p.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	return s.repo.GetDetail(ctx, p.ID)
}

func (s *postService) Delete(ctx context.Context, identity *user.User, id string) error {
	postID, err := parseID(id)
	if err != nil {
		return err
	}

	p, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if err := checkOwnership(p, identity); err != nil {
		return err
	}

	return s.repo.Delete(ctx, postID)
}

func (s *postService) Related(ctx context.Context, id string) ([]*post.Detail, error) {
	postID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	p, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	return s.repo.Related(ctx, p.ID, p.CategoryID, relatedLimit)
}

// checkOwnership permits the recorded author and admins; everyone else is
// forbidden, which is distinct from the verifier's unauthenticated outcome.
func checkOwnership(p *post.Post, identity *user.User) error {
	if identity.Role == user.RoleAdmin {
		return nil
	}
	if p.AuthorID == identity.ID {
		return nil
	}
	return post.ErrNotOwner
}

// parseID treats a malformed id the same as a missing record so the id
// format is not leaked through validation errors.
func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, post.ErrPostNotFound
	}
	return parsed, nil
}
