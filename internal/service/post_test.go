package service

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanspearman/blog-v1/internal/config"
	"github.com/bryanspearman/blog-v1/internal/lib/job"
	"github.com/bryanspearman/blog-v1/internal/metrics"
	"github.com/bryanspearman/blog-v1/internal/model/post"
	"github.com/bryanspearman/blog-v1/internal/repository"
	"github.com/bryanspearman/blog-v1/internal/server"
)

type recordingPublisher struct {
	events []job.PostEventPayload
	err    error
}

func (r *recordingPublisher) EnqueuePostEvent(_ context.Context, p job.PostEventPayload) error {
	r.events = append(r.events, p)
	return r.err
}

func newTestPostService(t *testing.T) (*PostService, *recordingPublisher) {
	t.Helper()

	logger := zerolog.Nop()
	s := &server.Server{
		Config:  config.DefaultConfig(),
		Logger:  &logger,
		Metrics: metrics.New(),
	}

	svc := NewPostService(s, repository.NewPostRepository(&repository.CounterIDGenerator{}))
	pub := &recordingPublisher{}
	svc.events = pub
	svc.now = func() time.Time { return time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC) }
	return svc, pub
}

func strPtr(s string) *string { return &s }

func createPayload(title, content, author string) *post.CreatePostPayload {
	return &post.CreatePostPayload{Title: strPtr(title), Content: strPtr(content), Author: strPtr(author)}
}

func TestPostService_CreatePost(t *testing.T) {
	svc, pub := newTestPostService(t)
	ctx := context.Background()

	created, err := svc.CreatePost(ctx, createPayload("T", "C", "A"))
	require.NoError(t, err)

	assert.Equal(t, "1", created.ID)
	assert.Equal(t, []post.Post{created}, svc.ListPosts(ctx, &post.ListPostsPayload{}))

	m := svc.server.Metrics
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PostsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PostsStored))

	require.Len(t, pub.events, 1)
	assert.Equal(t, job.EventCreated, pub.events[0].Event)
	assert.Equal(t, "1", pub.events[0].PostID)
}

func TestPostService_CreatePostMissingFields(t *testing.T) {
	svc, pub := newTestPostService(t)

	_, err := svc.CreatePost(context.Background(), &post.CreatePostPayload{Title: strPtr("T"), Author: strPtr("A")})

	var verr *post.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "content", verr.Field)
	assert.Equal(t, "Missing `content` in request body", err.Error())
	assert.Zero(t, svc.repo.Count())
	assert.Empty(t, pub.events)
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.server.Metrics.RequestsRejected.WithLabelValues("validation")))
}

func TestPostService_CreatePostEnqueueFailureIsIgnored(t *testing.T) {
	svc, pub := newTestPostService(t)
	pub.err = errors.New("redis down")

	_, err := svc.CreatePost(context.Background(), createPayload("T", "C", "A"))

	require.NoError(t, err)
	assert.Equal(t, 1, svc.repo.Count())
}

func TestPostService_CreatePostWithoutPublisher(t *testing.T) {
	svc, _ := newTestPostService(t)
	svc.events = nil

	_, err := svc.CreatePost(context.Background(), createPayload("T", "C", "A"))
	require.NoError(t, err)
}

func TestPostService_GetPost(t *testing.T) {
	svc, _ := newTestPostService(t)
	ctx := context.Background()
	created, _ := svc.CreatePost(ctx, createPayload("T", "C", "A"))

	got, err := svc.GetPost(ctx, &post.GetPostPayload{ID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = svc.GetPost(ctx, &post.GetPostPayload{ID: "404"})
	assert.True(t, errors.Is(err, post.ErrNotFound))
}

func TestPostService_UpdatePost(t *testing.T) {
	svc, pub := newTestPostService(t)
	ctx := context.Background()
	created, _ := svc.CreatePost(ctx, createPayload("T", "C", "A"))

	updated, err := svc.UpdatePost(ctx, &post.UpdatePostPayload{
		Title: strPtr("T2"), Content: strPtr("C2"), ID: strPtr(created.ID), PathID: created.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "T2", updated.Title)
	assert.Equal(t, "C2", updated.Content)
	assert.Equal(t, "A", updated.Author)
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.server.Metrics.PostsUpdated))
	require.Len(t, pub.events, 2)
	assert.Equal(t, job.EventUpdated, pub.events[1].Event)
}

func TestPostService_UpdatePostIDMismatch(t *testing.T) {
	svc, _ := newTestPostService(t)
	ctx := context.Background()
	created, _ := svc.CreatePost(ctx, createPayload("T", "C", "A"))

	_, err := svc.UpdatePost(ctx, &post.UpdatePostPayload{
		Title: strPtr("T2"), Content: strPtr("C2"), ID: strPtr("other"), PathID: created.ID,
	})

	var cerr *post.ConsistencyError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "Request path id (1) and request body id (other) must match", err.Error())
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.server.Metrics.RequestsRejected.WithLabelValues("id_mismatch")))

	stored, _ := svc.repo.Get(created.ID)
	assert.Equal(t, "T", stored.Title)
}

func TestPostService_UpdatePostMissingID(t *testing.T) {
	svc, _ := newTestPostService(t)

	_, err := svc.UpdatePost(context.Background(), &post.UpdatePostPayload{
		Title: strPtr("T"), Content: strPtr("C"), PathID: "1",
	})

	assert.EqualError(t, err, "Missing `id` in request body")
}

func TestPostService_UpdatePostUnknownID(t *testing.T) {
	svc, _ := newTestPostService(t)

	_, err := svc.UpdatePost(context.Background(), &post.UpdatePostPayload{
		Title: strPtr("T"), Content: strPtr("C"), ID: strPtr("9"), PathID: "9",
	})

	assert.True(t, errors.Is(err, post.ErrNotFound))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.server.Metrics.RequestsRejected.WithLabelValues("not_found")))
}

func TestPostService_DeletePost(t *testing.T) {
	svc, pub := newTestPostService(t)
	ctx := context.Background()
	created, _ := svc.CreatePost(ctx, createPayload("T", "C", "A"))

	svc.DeletePost(ctx, &post.DeletePostPayload{ID: created.ID})
	svc.DeletePost(ctx, &post.DeletePostPayload{ID: created.ID})

	assert.Empty(t, svc.ListPosts(ctx, &post.ListPostsPayload{}))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.server.Metrics.PostsDeleted))
	assert.Equal(t, 0.0, testutil.ToFloat64(svc.server.Metrics.PostsStored))
	require.Len(t, pub.events, 2)
	assert.Equal(t, job.EventDeleted, pub.events[1].Event)
}
