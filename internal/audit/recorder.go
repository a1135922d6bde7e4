package audit

import (
	"context"
	"log/slog"

	"newsdesk/internal/audit/metrics"
	"newsdesk/pkg/domain"
	"newsdesk/pkg/requestcontext"
)

const defaultBufferSize = 1024

// Publisher mirrors recorded entries to an external sink (Kafka). Optional;
// publish failures are logged and never propagated.
type Publisher interface {
	Publish(ctx context.Context, entry Entry)
}

// Recorder accepts audit entries from request handlers and hands them to a
// background worker over a buffered channel. Record never blocks: when the
// buffer is full the entry is dropped and counted, because an audit stall
// must not slow down or fail the editorial operation that emitted it.
type Recorder struct {
	inbox     chan Entry
	store     Store
	publisher Publisher
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

type Option func(*Recorder)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Recorder) { r.logger = logger }
}

func WithPublisher(p Publisher) Option {
	return func(r *Recorder) { r.publisher = p }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Recorder) { r.metrics = m }
}

func WithBufferSize(n int) Option {
	return func(r *Recorder) {
		if n > 0 {
			r.inbox = make(chan Entry, n)
		}
	}
}

func NewRecorder(store Store, opts ...Option) *Recorder {
	r := &Recorder{
		inbox:  make(chan Entry, defaultBufferSize),
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Record captures an action. The actor snapshot, client metadata, and
// timestamp are taken from the request context at call time, not when the
// worker gets around to persisting.
func (r *Recorder) Record(ctx context.Context, action Action, targetType TargetType, targetID, targetName string, detail map[string]any) {
	entry := Entry{
		ID:         domain.NewAuditID(),
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		TargetName: targetName,
		Detail:     detail,
		ClientIP:   requestcontext.ClientIP(ctx),
		UserAgent:  requestcontext.UserAgent(ctx),
		OccurredAt: requestcontext.Now(ctx),
	}
	if actor := requestcontext.Actor(ctx); actor != nil {
		actorID := actor.ID
		entry.ActorID = &actorID
		entry.ActorName = actor.Name
		entry.ActorRole = string(actor.Role)
	}

	select {
	case r.inbox <- entry:
		if r.metrics != nil {
			r.metrics.IncrementRecorded(string(action))
		}
	default:
		if r.metrics != nil {
			r.metrics.IncrementDropped()
		}
		r.logger.WarnContext(ctx, "audit buffer full, dropping entry",
			"action", action, "target_id", targetID)
	}
}

// Run drains the inbox until the context is cancelled, persisting each entry
// and mirroring it to the publisher when one is configured. Store failures
// are logged and swallowed; losing one entry is preferable to stalling the
// trail behind a retry loop.
func (r *Recorder) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case entry := <-r.inbox:
			if err := r.store.Append(ctx, entry); err != nil {
				r.logger.ErrorContext(ctx, "failed to persist audit entry",
					"action", entry.Action, "target_id", entry.TargetID, "error", err)
			}
			if r.publisher != nil {
				r.publisher.Publish(ctx, entry)
			}
		}
	}
}
