package post

import (
	"math"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreatePostRequest mirrors the submitted post document. Tags arrive as a
// single comma-delimited string. The author is never client-supplied.
type CreatePostRequest struct {
	Title         string    `json:"title" binding:"required"`
	Slug          string    `json:"slug,omitempty"`
	Description   string    `json:"description,omitempty"`
	Summary       string    `json:"summary,omitempty"`
	Content       string    `json:"content,omitempty"`
	Category      string    `json:"category" binding:"required"`
	SubCategory   string    `json:"subCategory,omitempty"`
	Tags          string    `json:"tags,omitempty"`
	FeaturedImage string    `json:"featuredImage,omitempty"`
	Images        []string  `json:"images,omitempty"`
	Status        string    `json:"status,omitempty"`
	Featured      bool      `json:"featured,omitempty"`
	Sections      []Section `json:"sections,omitempty"`
	Meta          *Meta     `json:"meta,omitempty"`
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Category,
			validation.Required.Error("category is required"),
			is.UUIDv4.Error("category must be a valid id"),
		),
		validation.Field(&r.SubCategory,
			validation.When(r.SubCategory != "", is.UUIDv4.Error("subCategory must be a valid id")),
		),
		validation.Field(&r.Status,
			validation.In(string(StatusDraft), string(StatusPublished), string(StatusArchived)).
				Error("status must be one of draft, published, archived"),
		),
	)
}

// UpdatePostRequest carries the field-merge update: every present field
// overwrites the stored value, absent fields leave it untouched.
type UpdatePostRequest struct {
	Title         string    `json:"title,omitempty"`
	Description   string    `json:"description,omitempty"`
	Summary       string    `json:"summary,omitempty"`
	Content       string    `json:"content,omitempty"`
	Category      string    `json:"category,omitempty"`
	SubCategory   string    `json:"subCategory,omitempty"`
	Tags          string    `json:"tags,omitempty"`
	FeaturedImage string    `json:"featuredImage,omitempty"`
	Images        []string  `json:"images,omitempty"`
	Status        string    `json:"status,omitempty"`
	Sections      []Section `json:"sections,omitempty"`
	Meta          *Meta     `json:"meta,omitempty"`
}

func (r UpdatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Length(1, 255)),
		validation.Field(&r.Category,
			validation.When(r.Category != "", is.UUIDv4.Error("category must be a valid id")),
		),
		validation.Field(&r.SubCategory,
			validation.When(r.SubCategory != "", is.UUIDv4.Error("subCategory must be a valid id")),
		),
		validation.Field(&r.Status,
			validation.In(string(StatusDraft), string(StatusPublished), string(StatusArchived)).
				Error("status must be one of draft, published, archived"),
		),
	)
}

// ListResponse is the paginated listing payload.
type ListResponse struct {
	Posts       []*Detail `json:"posts"`
	CurrentPage int       `json:"currentPage"`
	TotalPages  int       `json:"totalPages"`
	TotalPosts  int       `json:"totalPosts"`
}

func NewListResponse(posts []*Detail, page, limit, total int) *ListResponse {
	return &ListResponse{
		Posts:       posts,
		CurrentPage: page,
		TotalPages:  int(math.Ceil(float64(total) / float64(limit))),
		TotalPosts:  total,
	}
}
