package calculation

import (
	"context"
	"fmt"

	"github.com/caportal/prorate-calculator/internal/domain"
	"golang.org/x/sync/errgroup"
)

// DefaultBatchWorkers bounds concurrent calculations when the caller passes a non-positive limit.
const DefaultBatchWorkers = 4

// CalculateBatch prorates every request, at most workers at a time. Entries
// keep the order of reqs and carry either a result or their validation error;
// a rejected request never fails the batch. Only cancellation of ctx does.
func (pe *ProrationEngine) CalculateBatch(ctx context.Context, reqs []domain.ProrationRequest, workers int) ([]domain.ReportEntry, error) {
	if workers <= 0 {
		workers = DefaultBatchWorkers
	}
	entries := make([]domain.ReportEntry, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, req := range reqs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, err := pe.CalculateRequest(req)
			entries[i] = domain.ReportEntry{Request: req, Result: result, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch cancelled: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch cancelled: %w", err)
	}

	failed := 0
	for _, e := range entries {
		if e.Err != nil {
			failed++
		}
	}
	pe.Logger.Infof("batch calculated: total=%d rejected=%d", len(entries), failed)
	return entries, nil
}

// RunBatch calculates a loaded batch and wraps the entries in a report.
func (pe *ProrationEngine) RunBatch(ctx context.Context, batch *domain.Batch, workers int) (*domain.ProrationReport, error) {
	entries, err := pe.CalculateBatch(ctx, batch.Calculations, workers)
	if err != nil {
		return nil, err
	}
	return &domain.ProrationReport{
		Title:       batch.Title,
		GeneratedAt: nowFunc().UTC(),
		Entries:     entries,
	}, nil
}

// SingleReport wraps one calculation in a report so it can go through the formatters.
func (pe *ProrationEngine) SingleReport(req domain.ProrationRequest) *domain.ProrationReport {
	result, err := pe.CalculateRequest(req)
	return &domain.ProrationReport{
		GeneratedAt: nowFunc().UTC(),
		Entries:     []domain.ReportEntry{{Request: req, Result: result, Err: err}},
	}
}
