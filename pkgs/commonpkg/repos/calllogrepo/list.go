package calllogrepo

import (
	"context"
	"fmt"

	"github.com/WangWilly/xRest/pkgs/commonpkg/model"
	"github.com/jmoiron/sqlx"
)

func (r *repo) ListRecent(ctx context.Context, db *sqlx.DB, limit int) ([]*model.CallRecord, error) {
	stmt := db.Rebind(`SELECT * FROM call_records ORDER BY created_at DESC LIMIT ?`)
	var records []*model.CallRecord
	if err := db.SelectContext(ctx, &records, stmt, normalizeLimit(limit)); err != nil {
		return nil, fmt.Errorf("failed to list call records: %w", err)
	}
	return records, nil
}

func (r *repo) ListByEndpoint(ctx context.Context, db *sqlx.DB, endpoint string, limit int) ([]*model.CallRecord, error) {
	stmt := db.Rebind(`SELECT * FROM call_records WHERE endpoint=? ORDER BY created_at DESC LIMIT ?`)
	var records []*model.CallRecord
	if err := db.SelectContext(ctx, &records, stmt, endpoint, normalizeLimit(limit)); err != nil {
		return nil, fmt.Errorf("failed to list call records of %s: %w", endpoint, err)
	}
	return records, nil
}

// CountByEndpoint returns the busiest endpoints first
func (r *repo) CountByEndpoint(ctx context.Context, db *sqlx.DB) ([]model.EndpointCount, error) {
	stmt := `SELECT endpoint, COUNT(*) AS count
		FROM call_records
		GROUP BY endpoint
		ORDER BY count DESC, endpoint ASC`
	var counts []model.EndpointCount
	if err := db.SelectContext(ctx, &counts, stmt); err != nil {
		return nil, fmt.Errorf("failed to count call records: %w", err)
	}
	return counts, nil
}
