package seed

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanspearman/blog-v1/internal/model/post"
	"github.com/bryanspearman/blog-v1/internal/repository"
)

func TestPosts_CreatesRequestedCount(t *testing.T) {
	repo := repository.NewPostRepository(&repository.CounterIDGenerator{})
	logger := zerolog.Nop()

	created := Posts(repo, 3, 1, &logger)

	require.Len(t, created, 3)
	assert.Equal(t, 3, repo.Count())
	for _, p := range created {
		assert.NotEmpty(t, p.Title)
		assert.NotEmpty(t, p.Content)
		assert.NotEmpty(t, p.Author)
		assert.NotNil(t, p.PublishDate)
	}
}

func TestPosts_StampsPublishDate(t *testing.T) {
	repo := repository.NewPostRepository(&repository.CounterIDGenerator{})
	logger := zerolog.Nop()
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	posts(repo, 2, 7, at, &logger)

	for _, p := range repo.List() {
		require.NotNil(t, p.PublishDate)
		assert.Equal(t, at, *p.PublishDate)
	}
}

func TestPosts_SameSeedSameContent(t *testing.T) {
	logger := zerolog.Nop()

	a := Posts(&recorder{}, 2, 42, &logger)
	b := Posts(&recorder{}, 2, 42, &logger)

	require.Len(t, a, 2)
	assert.Equal(t, a, b)
}

func TestPosts_ZeroIsNoop(t *testing.T) {
	repo := repository.NewPostRepository(repository.UUIDGenerator{})
	logger := zerolog.Nop()

	assert.Empty(t, Posts(repo, 0, 0, &logger))
	assert.Zero(t, repo.Count())
}

type recorder struct{}

func (recorder) Create(title, content, author string, publishDate *time.Time) post.Post {
	return post.Post{ID: "x", Title: title, Content: content, Author: author}
}
