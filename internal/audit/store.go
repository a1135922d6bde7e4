package audit

import (
	"context"
	"time"

	"newsdesk/pkg/domain"
)

// Store persists audit entries.
type Store interface {
	Append(ctx context.Context, entry Entry) error
	List(ctx context.Context, q ListQuery) ([]Entry, error)
	// PurgeOlderThan deletes entries that occurred before the cutoff and
	// returns how many were removed.
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// ListQuery filters the trail. All filters are optional; results are always
// newest-first.
type ListQuery struct {
	Actor      *domain.UserID
	Action     Action
	TargetType TargetType
	TargetID   string
	Limit      int
}
