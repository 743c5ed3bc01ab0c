package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// handlePostEventTask writes the audit line for a post lifecycle event.
func (j *JobService) handlePostEventTask(ctx context.Context, t *asynq.Task) error {
	var p PostEventPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		// Malformed payloads will never succeed.
		return fmt.Errorf("failed to unmarshal post event payload: %v: %w", err, asynq.SkipRetry)
	}

	if p.PostID == "" || p.Event == "" {
		return fmt.Errorf("post event payload is missing event or post_id: %w", asynq.SkipRetry)
	}

	j.logger.Info().
		Str("type", TaskPostEvent).
		Str("event", p.Event).
		Str("post_id", p.PostID).
		Str("title", p.Title).
		Str("author", p.Author).
		Time("occurred_at", p.OccurredAt).
		Msg("post audit event")

	return nil
}
