// Package broadcast fans one message out to many recipients. A failing
// recipient never aborts the run; every dispatch produces an aggregate
// report tagged with a unique id for log correlation.
package broadcast

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/example/event-assistant/internal/logging"
)

// Failure records one recipient that could not be reached.
type Failure struct {
	UserID int64
	Err    error
}

// Report summarizes a finished dispatch.
type Report struct {
	ID        uuid.UUID
	Attempted int
	Succeeded int
	Failures  []Failure
}

// SendFunc delivers the message to a single recipient. Implementations
// render per-recipient content, e.g. in the recipient's language.
type SendFunc func(ctx context.Context, userID int64) error

// Dispatcher delivers messages to recipient lists sequentially.
type Dispatcher struct {
	timeout time.Duration
	newID   func() uuid.UUID
	logger  *slog.Logger
}

// NewDispatcher creates a dispatcher. timeout bounds a whole run; zero
// means no bound.
func NewDispatcher(timeout time.Duration, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{timeout: timeout, newID: uuid.New, logger: logger}
}

// SetIDGenerator overrides dispatch id generation, for tests.
func (d *Dispatcher) SetIDGenerator(newID func() uuid.UUID) {
	d.newID = newID
}

// Dispatch sends to every recipient in order and reports the outcome.
// Individual failures are recorded and skipped; a cancelled context stops
// the run early with the remaining recipients reported as failures.
func (d *Dispatcher) Dispatch(ctx context.Context, recipients []int64, send SendFunc) Report {
	report := Report{ID: d.newID(), Attempted: len(recipients)}

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	logger := logging.Component(ctx, d.logger, "broadcast").
		With("dispatch_id", report.ID.String(), "recipients", len(recipients))

	for i, userID := range recipients {
		if err := ctx.Err(); err != nil {
			for _, remaining := range recipients[i:] {
				report.Failures = append(report.Failures, Failure{UserID: remaining, Err: err})
			}
			break
		}
		if err := send(ctx, userID); err != nil {
			report.Failures = append(report.Failures, Failure{UserID: userID, Err: err})
			logger.WarnContext(ctx, "broadcast delivery failed", "user_id", userID, "error", err)
			continue
		}
		report.Succeeded++
	}

	logger.InfoContext(ctx, "broadcast finished",
		"succeeded", report.Succeeded,
		"failed", len(report.Failures),
	)
	return report
}
