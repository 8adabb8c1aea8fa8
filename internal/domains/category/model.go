package category

import (
	"time"

	"github.com/google/uuid"
)

// SubCategory is an embedded sub-document: it lives inside its parent
// Category's sequence, is saved with the parent, and has no lifecycle of its
// own. Its slug is unique only among siblings.
type SubCategory struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Category owns its subcategory sequence exclusively; the whole sequence is
// persisted as one JSONB document on the category row.
type Category struct {
	ID            uuid.UUID     `json:"id"`
	Name          string        `json:"name"`
	Slug          string        `json:"slug"`
	Description   string        `json:"description,omitempty"`
	SubCategories []SubCategory `json:"subCategories"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// Summary is the reference expansion embedded in post responses.
type Summary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

func (c *Category) Summary() Summary {
	return Summary{ID: c.ID, Name: c.Name, Slug: c.Slug}
}

// FindSubCategory returns the position and value of the subcategory with the
// given id, or (-1, nil) when absent.
func (c *Category) FindSubCategory(id uuid.UUID) (int, *SubCategory) {
	for i := range c.SubCategories {
		if c.SubCategories[i].ID == id {
			return i, &c.SubCategories[i]
		}
	}
	return -1, nil
}

// HasSiblingSlug reports whether another subcategory in the sequence already
// uses slug. exclude skips the subcategory being updated.
func (c *Category) HasSiblingSlug(slug string, exclude uuid.UUID) bool {
	for i := range c.SubCategories {
		if c.SubCategories[i].Slug == slug && c.SubCategories[i].ID != exclude {
			return true
		}
	}
	return false
}
