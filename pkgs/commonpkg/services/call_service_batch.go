package services

import (
	"context"

	"github.com/WangWilly/xRest/pkgs/commonpkg/clients/asyncclient"
	"github.com/WangWilly/xRest/pkgs/workers"
	log "github.com/sirupsen/logrus"
)

type BatchOutcome struct {
	Params asyncclient.Params
	Result *asyncclient.Result
	Err    error
}

// RunBatch runs ep once per param set with at most maxWorkers calls in
// flight. Outcomes keep the order of paramSets.
func (s *CallService) RunBatch(ctx context.Context, ep asyncclient.Endpoint, paramSets []asyncclient.Params, maxWorkers int) []BatchOutcome {
	worker := workers.NewSimpleWorker[asyncclient.Params, BatchOutcome](maxWorkers)
	res := worker.Process(ctx, paramSets, func(ctx context.Context, params asyncclient.Params) BatchOutcome {
		result, err := s.Run(ctx, ep, params)
		return BatchOutcome{Params: params, Result: result, Err: err}
	})

	for _, i := range res.Skipped {
		res.Results[i] = BatchOutcome{Params: paramSets[i], Err: res.Error}
	}

	s.logger.WithFields(log.Fields{
		"endpoint": ep.Name,
		"calls":    res.Stats.Consumed,
		"skipped":  len(res.Skipped),
		"elapsed":  res.Stats.Duration,
	}).Infoln("batch done")
	return res.Results
}
