package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/WangWilly/xRest/pkgs/commonpkg/clients/asyncclient"
	"github.com/WangWilly/xRest/pkgs/commonpkg/model"
	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"
)

var ErrJournalDisabled = errors.New("call journal is disabled")

// CallService runs endpoints and journals every outcome. The journal is
// write-only from the caller's point of view: a journal failure is logged and
// never changes what Run returns.
type CallService struct {
	db *sqlx.DB

	dispatcher  Dispatcher
	callLogRepo CallLogRepo
	logger      *log.Entry
	now         func() time.Time
}

// NewCallService journals through callLogRepo; pass nil to run without one
func NewCallService(dispatcher Dispatcher, db *sqlx.DB, callLogRepo CallLogRepo) *CallService {
	return &CallService{
		db:          db,
		dispatcher:  dispatcher,
		callLogRepo: callLogRepo,
		logger:      log.WithField("service", "call_service"),
		now:         time.Now,
	}
}

func (s *CallService) JournalEnabled() bool {
	return s.callLogRepo != nil
}

////////////////////////////////////////////////////////////////////////////////

func (s *CallService) Run(ctx context.Context, ep asyncclient.Endpoint, params asyncclient.Params) (*asyncclient.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := s.now()
	res, err := s.dispatcher.Call(ctx, ep, params).Await(ctx)
	elapsed := s.now().Sub(start)

	logger := s.logger.WithFields(log.Fields{
		"endpoint": ep.Name,
		"elapsed":  elapsed,
	})
	if err != nil {
		logger.Debugln("call failed:", err)
	} else {
		logger.Debugln("call done")
	}

	if s.JournalEnabled() {
		record := newCallRecord(ep, params, res, err, elapsed)
		record.CreatedAt = start
		if jerr := s.callLogRepo.Create(ctx, s.db, record); jerr != nil {
			logger.WithError(jerr).Warnln("failed to journal call")
		}
	}
	return res, err
}

func (s *CallService) RunByName(ctx context.Context, name string, params asyncclient.Params) (*asyncclient.Result, error) {
	ep, err := asyncclient.Lookup(name)
	if err != nil {
		return nil, err
	}
	return s.Run(ctx, ep, params)
}

////////////////////////////////////////////////////////////////////////////////

// Recent lists journaled calls, newest first. An empty endpoint lists all.
func (s *CallService) Recent(ctx context.Context, endpoint string, limit int) ([]*model.CallRecord, error) {
	if !s.JournalEnabled() {
		return nil, ErrJournalDisabled
	}
	if endpoint == "" {
		return s.callLogRepo.ListRecent(ctx, s.db, limit)
	}
	ep, err := asyncclient.Lookup(endpoint)
	if err != nil {
		return nil, err
	}
	return s.callLogRepo.ListByEndpoint(ctx, s.db, ep.Name, limit)
}

func (s *CallService) EndpointStats(ctx context.Context) ([]model.EndpointCount, error) {
	if !s.JournalEnabled() {
		return nil, ErrJournalDisabled
	}
	return s.callLogRepo.CountByEndpoint(ctx, s.db)
}

func (s *CallService) Prune(ctx context.Context, maxAge time.Duration) (int64, error) {
	if !s.JournalEnabled() {
		return 0, ErrJournalDisabled
	}
	if maxAge <= 0 {
		return 0, fmt.Errorf("prune: max age must be positive, got %s", maxAge)
	}
	n, err := s.callLogRepo.DeleteOlderThan(ctx, s.db, s.now().Add(-maxAge))
	if err != nil {
		return 0, err
	}
	s.logger.Infof("pruned %d journaled calls", n)
	return n, nil
}

////////////////////////////////////////////////////////////////////////////////

func newCallRecord(ep asyncclient.Endpoint, params asyncclient.Params, res *asyncclient.Result, err error, elapsed time.Duration) *model.CallRecord {
	record := &model.CallRecord{
		Endpoint:   ep.Name,
		Method:     ep.Method,
		Path:       ep.Path,
		Params:     encodeParams(params),
		DurationMs: elapsed.Milliseconds(),
	}

	if err != nil {
		record.Error = sql.NullString{String: err.Error(), Valid: true}
		var reqErr *asyncclient.RequestError
		if errors.As(err, &reqErr) {
			record.StatusCode = reqErr.StatusCode()
		}
		return record
	}

	if res.Response == nil {
		record.ShortCircuited = true
	} else {
		record.StatusCode = res.Response.StatusCode
	}
	return record
}

func encodeParams(params asyncclient.Params) string {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Sprintf("%q", fmt.Sprint(params))
	}
	return string(data)
}
