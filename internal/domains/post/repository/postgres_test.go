package repository

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	post "blog-backend/internal/domains/post"
)

// stubRow replays a fixed column tuple. A nil entry stands in for a SQL
// NULL and leaves the destination untouched.
type stubRow struct {
	vals []interface{}
}

func (r stubRow) Scan(dest ...interface{}) error {
	if len(dest) != len(r.vals) {
		return fmt.Errorf("expected %d destinations, got %d", len(r.vals), len(dest))
	}
	for i, v := range r.vals {
		if v == nil {
			continue
		}
		reflect.ValueOf(dest[i]).Elem().Set(reflect.ValueOf(v))
	}
	return nil
}

func strPtr(s string) *string        { return &s }
func uuidPtr(u uuid.UUID) *uuid.UUID { return &u }

// detailVals builds a row tuple in detailColumns order with the author and
// category rows present.
func detailVals(postID, authorID, categoryID uuid.UUID) []interface{} {
	now := time.Now()
	return []interface{}{
		postID, "Title", "title", "desc", "", "",
		authorID, categoryID, nil,
		[]string{"go"}, "", []string{}, post.StatusPublished, false, 7,
		[]byte(`[]`), []byte(`{}`), now, now,
		uuidPtr(authorID), strPtr("Alice"), strPtr("alice@example.com"), strPtr(""), strPtr(""),
		uuidPtr(categoryID), strPtr("Tech"), strPtr("tech"), []byte(`[]`),
	}
}

func TestScanDetailExpandsReferences(t *testing.T) {
	postID, authorID, categoryID := uuid.New(), uuid.New(), uuid.New()

	d, err := scanDetail(stubRow{vals: detailVals(postID, authorID, categoryID)})
	require.NoError(t, err)

	assert.Equal(t, postID, d.ID)
	assert.Equal(t, 7, d.ViewCount)

	require.NotNil(t, d.Author)
	assert.Equal(t, authorID, d.Author.ID)
	assert.Equal(t, "Alice", d.Author.Name)

	require.NotNil(t, d.Category)
	assert.Equal(t, categoryID, d.Category.ID)
	assert.Equal(t, "tech", d.Category.Slug)

	assert.Nil(t, d.SubCategory)
}

func TestScanDetailResolvesSubCategory(t *testing.T) {
	postID, authorID, categoryID := uuid.New(), uuid.New(), uuid.New()
	subID := uuid.New()

	vals := detailVals(postID, authorID, categoryID)
	vals[8] = uuidPtr(subID)
	vals[len(vals)-1] = []byte(fmt.Sprintf(`[{"id":%q,"name":"Go","slug":"go"}]`, subID))

	d, err := scanDetail(stubRow{vals: vals})
	require.NoError(t, err)

	require.NotNil(t, d.SubCategory)
	assert.Equal(t, subID, d.SubCategory.ID)
	assert.Equal(t, "go", d.SubCategory.Slug)
}

// A post whose category row was deleted still scans: the category
// expansion is null, the post itself is intact.
func TestScanDetailToleratesDeletedCategory(t *testing.T) {
	postID, authorID, categoryID := uuid.New(), uuid.New(), uuid.New()

	vals := detailVals(postID, authorID, categoryID)
	// The category row is gone: every joined column is NULL.
	vals[24] = nil
	vals[25] = nil
	vals[26] = nil
	vals[27] = nil

	d, err := scanDetail(stubRow{vals: vals})
	require.NoError(t, err)

	assert.Nil(t, d.Category)
	assert.Equal(t, postID, d.ID)
	assert.Equal(t, categoryID, d.CategoryID)
	require.NotNil(t, d.Author)
	assert.Equal(t, "Alice", d.Author.Name)
}
