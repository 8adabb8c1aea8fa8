package post

import (
	"time"

	"github.com/google/uuid"

	category "blog-backend/internal/domains/category"
	user "blog-backend/internal/domains/user"
)

// Status is the post lifecycle enum. Transitions are unconstrained: any
// authorized mutator may set any of the three values.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusDraft, StatusPublished, StatusArchived:
		return Status(s), true
	}
	return "", false
}

// Section is an embedded content block.
type Section struct {
	SectionImg         string   `json:"section_img,omitempty"`
	SectionTitle       string   `json:"section_title,omitempty"`
	SectionDescription string   `json:"section_description,omitempty"`
	SectionList        []string `json:"section_list,omitempty"`
}

// Meta holds the SEO metadata sub-document.
type Meta struct {
	MetaTitle       string   `json:"meta_title,omitempty"`
	MetaDescription string   `json:"meta_description,omitempty"`
	MetaKeywords    []string `json:"meta_keywords,omitempty"`
}

type Post struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Description   string     `json:"description"`
	Summary       string     `json:"summary,omitempty"`
	Content       string     `json:"content,omitempty"`
	AuthorID      uuid.UUID  `json:"-"`
	CategoryID    uuid.UUID  `json:"-"`
	SubCategoryID *uuid.UUID `json:"-"`
	Tags          []string   `json:"tags"`
	FeaturedImage string     `json:"featuredImage,omitempty"`
	Images        []string   `json:"images"`
	Status        Status     `json:"status"`
	Featured      bool       `json:"featured"`
	ViewCount     int        `json:"viewCount"`
	Sections      []Section  `json:"sections"`
	Meta          Meta       `json:"meta"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// Detail is a post with its references expanded to summaries, the shape
// every read endpoint returns. Expansions are nullable: a post whose
// category was deleted keeps being served, with a null category.
type Detail struct {
	Post
	Author      *user.Summary         `json:"author"`
	Category    *category.Summary     `json:"category"`
	SubCategory *category.SubCategory `json:"subCategory,omitempty"`
}

// Filter is the list query. A nil Status means no status restriction; the
// service decides that based on the caller's role, never the client alone.
type Filter struct {
	CategoryID    *uuid.UUID
	SubCategoryID *uuid.UUID
	Tag           string
	AuthorID      *uuid.UUID
	Status        *Status
	Search        string
	Page          int
	Limit         int
}

func (f *Filter) Offset() int {
	return (f.Page - 1) * f.Limit
}
