package services

import (
	"context"
	"time"

	"github.com/WangWilly/xRest/pkgs/commonpkg/clients/asyncclient"
	"github.com/WangWilly/xRest/pkgs/commonpkg/model"
	"github.com/jmoiron/sqlx"
)

type Dispatcher interface {
	Call(ctx context.Context, ep asyncclient.Endpoint, params asyncclient.Params) *asyncclient.Pending
}

type CallLogRepo interface {
	Create(ctx context.Context, db *sqlx.DB, record *model.CallRecord) error
	ListRecent(ctx context.Context, db *sqlx.DB, limit int) ([]*model.CallRecord, error)
	ListByEndpoint(ctx context.Context, db *sqlx.DB, endpoint string, limit int) ([]*model.CallRecord, error)
	CountByEndpoint(ctx context.Context, db *sqlx.DB) ([]model.EndpointCount, error)
	DeleteOlderThan(ctx context.Context, db *sqlx.DB, before time.Time) (int64, error)
}
