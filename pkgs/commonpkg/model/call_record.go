package model

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// CallRecord is one journaled dispatch. Params is the JSON encoded param map
// as the caller supplied it.
type CallRecord struct {
	Id             uuid.UUID      `db:"id"`
	Endpoint       string         `db:"endpoint"`
	Method         string         `db:"method"`
	Path           string         `db:"path"`
	Params         string         `db:"params"`
	StatusCode     int            `db:"status_code"`
	ShortCircuited bool           `db:"short_circuited"`
	Error          sql.NullString `db:"error"`
	DurationMs     int64          `db:"duration_ms"`
	CreatedAt      time.Time      `db:"created_at"`
}

func (r *CallRecord) Failed() bool {
	return r.Error.Valid
}

type EndpointCount struct {
	Endpoint string `db:"endpoint"`
	Count    int    `db:"count"`
}
