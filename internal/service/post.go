package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/bryanspearman/blog-v1/internal/lib/job"
	"github.com/bryanspearman/blog-v1/internal/model/post"
	"github.com/bryanspearman/blog-v1/internal/repository"
	"github.com/bryanspearman/blog-v1/internal/server"
)

// PostEventPublisher receives post lifecycle events. Delivery is best effort.
type PostEventPublisher interface {
	EnqueuePostEvent(ctx context.Context, p job.PostEventPayload) error
}

type PostService struct {
	server *server.Server
	repo   *repository.PostRepository
	events PostEventPublisher
	now    func() time.Time
}

func NewPostService(s *server.Server, repo *repository.PostRepository) *PostService {
	svc := &PostService{
		server: s,
		repo:   repo,
		now:    time.Now,
	}
	svc.server.Metrics.PostsStored.Set(float64(repo.Count()))
	return svc
}

func (s *PostService) ListPosts(ctx context.Context, _ *post.ListPostsPayload) []post.Post {
	return s.repo.List()
}

func (s *PostService) GetPost(ctx context.Context, payload *post.GetPostPayload) (post.Post, error) {
	p, ok := s.repo.Get(payload.ID)
	if !ok {
		s.reject("not_found")
		return post.Post{}, errors.Wrapf(post.ErrNotFound, "get post %s", payload.ID)
	}
	return p, nil
}

func (s *PostService) CreatePost(ctx context.Context, payload *post.CreatePostPayload) (post.Post, error) {
	logger := zerolog.Ctx(ctx)

	if err := requireFields(
		field{"title", payload.Title},
		field{"content", payload.Content},
		field{"author", payload.Author},
	); err != nil {
		s.reject("validation")
		logger.Warn().Str("field", err.Field).Msg(err.Error())
		return post.Post{}, err
	}
	if *payload.Title == "" {
		s.reject("validation")
		return post.Post{}, &post.ValidationError{Field: "title", Reason: "must not be empty"}
	}

	created := s.repo.Create(*payload.Title, *payload.Content, *payload.Author, nil)

	s.server.Metrics.PostsCreated.Inc()
	s.server.Metrics.PostsStored.Set(float64(s.repo.Count()))

	logger.Info().
		Str("post_id", created.ID).
		Str("author", created.Author).
		Msg("Created blog post")

	s.publish(ctx, job.EventCreated, created)

	return created, nil
}

// UpdatePost replaces the title and content of the post named by the path.
// The body id must repeat the path id exactly.
func (s *PostService) UpdatePost(ctx context.Context, payload *post.UpdatePostPayload) (post.Post, error) {
	logger := zerolog.Ctx(ctx)

	if err := requireFields(
		field{"title", payload.Title},
		field{"content", payload.Content},
		field{"id", payload.ID},
	); err != nil {
		s.reject("validation")
		logger.Warn().Str("field", err.Field).Msg(err.Error())
		return post.Post{}, err
	}
	if *payload.Title == "" {
		s.reject("validation")
		return post.Post{}, &post.ValidationError{Field: "title", Reason: "must not be empty"}
	}

	if payload.PathID != *payload.ID {
		s.reject("id_mismatch")
		err := &post.ConsistencyError{PathID: payload.PathID, BodyID: *payload.ID}
		logger.Warn().Msg(err.Error())
		return post.Post{}, err
	}

	logger.Info().Str("post_id", payload.PathID).Msg("Updating blog post")

	updated, err := s.repo.Update(post.Post{
		ID:      payload.PathID,
		Title:   *payload.Title,
		Content: *payload.Content,
	})
	if err != nil {
		s.reject("not_found")
		return post.Post{}, errors.Wrapf(err, "update post %s", payload.PathID)
	}

	s.server.Metrics.PostsUpdated.Inc()
	s.publish(ctx, job.EventUpdated, updated)

	return updated, nil
}

// DeletePost removes the post if it exists. Unknown ids are ignored.
func (s *PostService) DeletePost(ctx context.Context, payload *post.DeletePostPayload) {
	logger := zerolog.Ctx(ctx)

	if !s.repo.Delete(payload.ID) {
		logger.Debug().Str("post_id", payload.ID).Msg("delete of unknown blog post ignored")
		return
	}

	s.server.Metrics.PostsDeleted.Inc()
	s.server.Metrics.PostsStored.Set(float64(s.repo.Count()))

	logger.Info().Str("post_id", payload.ID).Msg("Deleted blog post")

	s.publish(ctx, job.EventDeleted, post.Post{ID: payload.ID})
}

func (s *PostService) reject(reason string) {
	s.server.Metrics.RequestsRejected.WithLabelValues(reason).Inc()
}

func (s *PostService) publish(ctx context.Context, event string, p post.Post) {
	if s.events == nil {
		return
	}

	err := s.events.EnqueuePostEvent(ctx, job.PostEventPayload{
		Event:      event,
		PostID:     p.ID,
		Title:      p.Title,
		Author:     p.Author,
		OccurredAt: s.now().UTC(),
	})
	if err != nil {
		zerolog.Ctx(ctx).Error().
			Err(err).
			Str("event", event).
			Str("post_id", p.ID).
			Msg("failed to enqueue post event")
	}
}

type field struct {
	name  string
	value *string
}

// requireFields reports the first field that was absent from the body.
func requireFields(fields ...field) *post.ValidationError {
	for _, f := range fields {
		if f.value == nil {
			return &post.ValidationError{Field: f.name}
		}
	}
	return nil
}

// StoredPosts returns the number of posts currently held.
func (s *PostService) StoredPosts() int {
	return s.repo.Count()
}
