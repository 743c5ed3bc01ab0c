package repository

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanspearman/blog-v1/internal/model/post"
)

func newTestRepository() *PostRepository {
	return NewPostRepository(&CounterIDGenerator{})
}

func TestPostRepository_CreateAssignsID(t *testing.T) {
	r := newTestRepository()

	p := r.Create("T", "C", "A", nil)

	assert.Equal(t, "1", p.ID)
	assert.Equal(t, "T", p.Title)
	assert.Equal(t, "C", p.Content)
	assert.Equal(t, "A", p.Author)
	assert.Nil(t, p.PublishDate)

	stored, ok := r.Get(p.ID)
	require.True(t, ok)
	assert.Nil(t, stored.PublishDate)
}

func TestPostRepository_CreateKeepsSuppliedPublishDate(t *testing.T) {
	r := newTestRepository()
	when := time.Date(2019, 1, 2, 3, 4, 5, 0, time.UTC)

	p := r.Create("T", "C", "A", &when)

	// Mutating the caller's value must not reach the store.
	when = when.Add(time.Hour)

	stored, ok := r.Get(p.ID)
	require.True(t, ok)
	assert.Equal(t, time.Date(2019, 1, 2, 3, 4, 5, 0, time.UTC), *stored.PublishDate)
}

func TestPostRepository_ListPreservesInsertionOrder(t *testing.T) {
	r := newTestRepository()
	r.Create("first", "c", "a", nil)
	r.Create("second", "c", "a", nil)
	r.Create("third", "c", "a", nil)

	posts := r.List()

	require.Len(t, posts, 3)
	assert.Equal(t, []string{"first", "second", "third"}, []string{posts[0].Title, posts[1].Title, posts[2].Title})
}

func TestPostRepository_ListReturnsCopies(t *testing.T) {
	r := newTestRepository()
	when := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	created := r.Create("T", "C", "A", &when)

	posts := r.List()
	posts[0].Title = "changed"
	*posts[0].PublishDate = time.Time{}

	stored, ok := r.Get(created.ID)
	require.True(t, ok)
	assert.Equal(t, "T", stored.Title)
	assert.False(t, stored.PublishDate.IsZero())
}

func TestPostRepository_UpdateReplacesTitleAndContentOnly(t *testing.T) {
	r := newTestRepository()
	created := r.Create("T", "C", "A", nil)

	updated, err := r.Update(post.Post{ID: created.ID, Title: "T2", Content: "C2", Author: "someone else"})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "T2", updated.Title)
	assert.Equal(t, "C2", updated.Content)
	assert.Equal(t, "A", updated.Author)
	assert.Equal(t, created.PublishDate, updated.PublishDate)

	stored, _ := r.Get(created.ID)
	assert.Equal(t, updated, stored)
}

func TestPostRepository_UpdateUnknownID(t *testing.T) {
	r := newTestRepository()
	r.Create("T", "C", "A", nil)

	_, err := r.Update(post.Post{ID: "missing", Title: "x", Content: "y"})
	assert.ErrorIs(t, err, post.ErrNotFound)
	assert.Equal(t, 1, r.Count())
}

func TestPostRepository_Delete(t *testing.T) {
	r := newTestRepository()
	a := r.Create("a", "c", "x", nil)
	b := r.Create("b", "c", "x", nil)
	c := r.Create("c", "c", "x", nil)

	assert.True(t, r.Delete(b.ID))

	posts := r.List()
	require.Len(t, posts, 2)
	assert.Equal(t, a.ID, posts[0].ID)
	assert.Equal(t, c.ID, posts[1].ID)

	_, ok := r.Get(b.ID)
	assert.False(t, ok)
}

func TestPostRepository_DeleteUnknownIDIsNoop(t *testing.T) {
	r := newTestRepository()
	r.Create("a", "c", "x", nil)

	assert.False(t, r.Delete("missing"))
	assert.Equal(t, 1, r.Count())
}

func TestPostRepository_IDsStayUniqueAfterDelete(t *testing.T) {
	r := newTestRepository()
	first := r.Create("a", "c", "x", nil)
	r.Delete(first.ID)

	second := r.Create("b", "c", "x", nil)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestPostRepository_ConcurrentCreates(t *testing.T) {
	r := NewPostRepository(UUIDGenerator{})

	const workers, perWorker = 8, 50
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				r.Create("t", "c", "a", nil)
				_ = r.List()
			}
		}()
	}
	wg.Wait()

	posts := r.List()
	require.Len(t, posts, workers*perWorker)

	seen := make(map[string]struct{}, len(posts))
	for _, p := range posts {
		_, dup := seen[p.ID]
		require.False(t, dup, "duplicate id %s", p.ID)
		seen[p.ID] = struct{}{}
	}
}

func TestNewIDGenerator(t *testing.T) {
	gen, err := NewIDGenerator("counter")
	require.NoError(t, err)
	assert.Equal(t, "1", gen.NewID())
	assert.Equal(t, "2", gen.NewID())

	gen, err = NewIDGenerator("uuid")
	require.NoError(t, err)
	_, err = uuid.Parse(gen.NewID())
	assert.NoError(t, err)

	_, err = NewIDGenerator("sha1")
	assert.Error(t, err)
}
