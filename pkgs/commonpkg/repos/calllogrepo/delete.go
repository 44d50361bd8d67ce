package calllogrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

func (r *repo) DeleteOlderThan(ctx context.Context, db *sqlx.DB, before time.Time) (int64, error) {
	stmt := db.Rebind(`DELETE FROM call_records WHERE created_at < ?`)
	res, err := db.ExecContext(ctx, stmt, before.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to prune call records: %w", err)
	}
	return res.RowsAffected()
}
