package audit

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"newsdesk/pkg/domain"
)

// PostgresStore persists audit entries over database/sql. The trail is
// append-only; the only delete path is the retention purge.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Append(ctx context.Context, entry Entry) error {
	detail, err := json.Marshal(entry.Detail)
	if err != nil {
		return fmt.Errorf("marshal audit detail: %w", err)
	}
	if entry.Detail == nil {
		detail = []byte("{}")
	}

	var actorID any
	if entry.ActorID != nil {
		actorID = uuid.UUID(*entry.ActorID)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO audit_log (
			id, action, target_type, target_id, target_name,
			actor_id, actor_name, actor_role,
			detail, client_ip, user_agent, occurred_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`,
		uuid.UUID(entry.ID), string(entry.Action), string(entry.TargetType), entry.TargetID, entry.TargetName,
		actorID, entry.ActorName, entry.ActorRole,
		detail, entry.ClientIP, entry.UserAgent, entry.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("append audit entry: %w", err)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context, q ListQuery) ([]Entry, error) {
	clauses := []string{"TRUE"}
	var args []any

	add := func(clause string, value any) {
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf(clause, len(args)))
	}

	if q.Actor != nil {
		add("actor_id = $%d", uuid.UUID(*q.Actor))
	}
	if q.Action != "" {
		add("action = $%d", string(q.Action))
	}
	if q.TargetType != "" {
		add("target_type = $%d", string(q.TargetType))
	}
	if q.TargetID != "" {
		add("target_id = $%d", q.TargetID)
	}

	limit := q.Limit
	if limit <= 0 {
		limit = 50
	}
	args = append(args, limit)

	query := fmt.Sprintf(`
		SELECT id, action, target_type, target_id, target_name,
			actor_id, actor_name, actor_role,
			detail, client_ip, user_agent, occurred_at
		FROM audit_log
		WHERE %s
		ORDER BY occurred_at DESC
		LIMIT $%d
	`, strings.Join(clauses, " AND "), len(args))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e       Entry
			id      uuid.UUID
			actorID sql.Null[uuid.UUID]
			detail  []byte
		)
		if err := rows.Scan(
			&id, &e.Action, &e.TargetType, &e.TargetID, &e.TargetName,
			&actorID, &e.ActorName, &e.ActorRole,
			&detail, &e.ClientIP, &e.UserAgent, &e.OccurredAt,
		); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		e.ID = domain.AuditID(id)
		if actorID.Valid {
			a := domain.UserID(actorID.V)
			e.ActorID = &a
		}
		if len(detail) > 0 {
			if err := json.Unmarshal(detail, &e.Detail); err != nil {
				return nil, fmt.Errorf("decode audit detail: %w", err)
			}
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *PostgresStore) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM audit_log WHERE occurred_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge audit entries: %w", err)
	}
	return res.RowsAffected()
}
