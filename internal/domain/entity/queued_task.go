// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// QueuedTask is a pending mutating request captured by the offline gateway,
// to be replayed against the upstream API when connectivity resumes.
// Tasks are drained in insertion (ID) order and removed only after a confirmed
// successful replay.
type QueuedTask struct {
	ID            int64     `json:"id"`              // Auto-increment queue position; defines FIFO order.
	Key           uuid.UUID `json:"key"`             // Idempotency key sent with every replay attempt.
	Method        string    `json:"method"`          // HTTP method of the captured request.
	Path          string    `json:"path"`            // Request path plus query, relative to the API origin.
	ContentType   string    `json:"content_type"`    // Content-Type of the captured body.
	Body          []byte    `json:"body"`            // Raw request body.
	Attempts      int       `json:"attempts"`        // Number of failed replay attempts so far.
	NextAttemptAt time.Time `json:"next_attempt_at"` // Earliest time the next drain pass may retry this task.
	CreatedAt     time.Time `json:"created_at"`      // Timestamp of when the task was enqueued.
}
