package repository

import (
	"fmt"

	"github.com/bryanspearman/blog-v1/internal/server"
)

// Repositories is a container for all repository instances, built once at
// startup and handed to the service layer.
type Repositories struct {
	Posts *PostRepository
}

// NewRepositories constructs the repository container.
//
// The post id scheme comes from s.Config.Store.IDStrategy.
func NewRepositories(s *server.Server) (*Repositories, error) {
	ids, err := NewIDGenerator(s.Config.Store.IDStrategy)
	if err != nil {
		return nil, fmt.Errorf("failed to create post id generator: %w", err)
	}

	return &Repositories{
		Posts: NewPostRepository(ids),
	}, nil
}
