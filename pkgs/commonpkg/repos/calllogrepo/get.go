package calllogrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/WangWilly/xRest/pkgs/commonpkg/model"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Get returns nil without error when no record has id
func (r *repo) Get(ctx context.Context, db *sqlx.DB, id uuid.UUID) (*model.CallRecord, error) {
	stmt := db.Rebind(`SELECT * FROM call_records WHERE id=?`)
	result := &model.CallRecord{}
	err := db.GetContext(ctx, result, stmt, id.String())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get call record: %w", err)
	}
	return result, nil
}
