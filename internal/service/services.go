package service

import (
	"github.com/bryanspearman/blog-v1/internal/repository"
	"github.com/bryanspearman/blog-v1/internal/server"
)

type Services struct {
	Post *PostService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	postService := NewPostService(s, repos.Posts)

	// Audit events need the Redis backed job queue.
	if s.Job != nil {
		postService.events = s.Job
	}

	return &Services{
		Post: postService,
	}, nil
}
