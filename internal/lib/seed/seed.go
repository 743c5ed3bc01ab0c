// Package seed fills an empty store with sample posts at startup.
package seed

import (
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/rs/zerolog"

	"github.com/bryanspearman/blog-v1/internal/model/post"
)

// PostCreator is the subset of the post store the seeder writes through.
type PostCreator interface {
	Create(title, content, author string, publishDate *time.Time) post.Post
}

// Posts creates n sample posts in store and returns them in creation order.
//
// A non-zero seed makes the generated titles, bodies and authors
// reproducible. Every sample post is published at the time of seeding.
func Posts(store PostCreator, n int, seed int64, logger *zerolog.Logger) []post.Post {
	return posts(store, n, seed, time.Now().UTC(), logger)
}

func posts(store PostCreator, n int, seed int64, publishedAt time.Time, logger *zerolog.Logger) []post.Post {
	if n <= 0 {
		return nil
	}

	faker := gofakeit.New(seed)

	created := make([]post.Post, 0, n)
	for i := 0; i < n; i++ {
		p := store.Create(
			strings.TrimSuffix(faker.Sentence(4), "."),
			faker.Paragraph(2, 3, 12, " "),
			faker.Name(),
			&publishedAt,
		)
		created = append(created, p)
	}

	logger.Info().Int("count", len(created)).Msg("seeded sample posts")

	return created
}
