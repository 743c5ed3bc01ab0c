package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

// TaskPostEvent is the task type for post lifecycle audit records.
const TaskPostEvent = "post:event"

// Post lifecycle events.
const (
	EventCreated = "created"
	EventUpdated = "updated"
	EventDeleted = "deleted"
)

// PostEventPayload is the JSON payload of a TaskPostEvent task.
type PostEventPayload struct {
	Event      string    `json:"event"`
	PostID     string    `json:"post_id"`
	Title      string    `json:"title,omitempty"`
	Author     string    `json:"author,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewPostEventTask builds an audit task for a post lifecycle event.
// Audit records are low priority and retried a few times before being dropped.
func NewPostEventTask(p PostEventPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskPostEvent,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("low"),
		asynq.Timeout(30*time.Second),
	), nil
}
