package calllogrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/WangWilly/xRest/pkgs/commonpkg/model"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Create fills in Id and CreatedAt when unset
func (r *repo) Create(ctx context.Context, db *sqlx.DB, record *model.CallRecord) error {
	if record.Id == uuid.Nil {
		record.Id = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	record.CreatedAt = record.CreatedAt.UTC().Truncate(time.Microsecond)

	stmt := `INSERT INTO call_records(
			id, endpoint, method, path, params, status_code,
			short_circuited, error, duration_ms, created_at
		) VALUES (
			:id, :endpoint, :method, :path, :params, :status_code,
			:short_circuited, :error, :duration_ms, :created_at
		)`
	if _, err := db.NamedExecContext(ctx, stmt, record); err != nil {
		return fmt.Errorf("failed to create call record: %w", err)
	}
	return nil
}
