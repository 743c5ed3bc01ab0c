package repository

import (
	"slices"
	"sync"
	"time"

	"github.com/bryanspearman/blog-v1/internal/model/post"
)

// PostRepository is the in-memory post store.
//
// Posts are kept in insertion order. Writers are serialised by mu; readers
// share it and receive copies.
type PostRepository struct {
	mu    sync.RWMutex
	posts []post.Post
	ids   IDGenerator
}

// NewPostRepository creates an empty store that takes ids from ids.
func NewPostRepository(ids IDGenerator) *PostRepository {
	return &PostRepository{
		ids: ids,
	}
}

// Create appends a new post and returns it with its assigned id.
// publishDate is stored only when the caller supplies one.
func (r *PostRepository) Create(title, content, author string, publishDate *time.Time) post.Post {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := post.Post{
		ID:      r.ids.NewID(),
		Title:   title,
		Content: content,
		Author:  author,
	}
	if publishDate != nil {
		ts := *publishDate
		p.PublishDate = &ts
	}
	r.posts = append(r.posts, p)

	return clonePost(p)
}

// List returns every post in insertion order.
func (r *PostRepository) List() []post.Post {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]post.Post, len(r.posts))
	for i, p := range r.posts {
		out[i] = clonePost(p)
	}
	return out
}

// Get returns the post with the given id.
func (r *PostRepository) Get(id string) (post.Post, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return clonePost(r.posts[i]), true
	}
	return post.Post{}, false
}

// Update replaces the title and content of the post identified by p.ID.
// ID, author and publish date are preserved. Returns post.ErrNotFound when
// no such post exists.
func (r *PostRepository) Update(p post.Post) (post.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(p.ID)
	if i < 0 {
		return post.Post{}, post.ErrNotFound
	}

	r.posts[i].Title = p.Title
	r.posts[i].Content = p.Content

	return clonePost(r.posts[i]), nil
}

// Delete removes the post with the given id and reports whether one was
// removed. Deleting an unknown id is not an error.
func (r *PostRepository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return false
	}
	r.posts = slices.Delete(r.posts, i, i+1)
	return true
}

// Count returns the number of stored posts.
func (r *PostRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.posts)
}

// indexOf must be called with mu held.
func (r *PostRepository) indexOf(id string) int {
	return slices.IndexFunc(r.posts, func(p post.Post) bool {
		return p.ID == id
	})
}

func clonePost(p post.Post) post.Post {
	if p.PublishDate != nil {
		ts := *p.PublishDate
		p.PublishDate = &ts
	}
	return p
}
