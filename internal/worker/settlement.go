package worker

import (
	"context"
	"errors"
	"fmt"
	"settleup/internal/ledger"
	"settleup/pkg/logger"
	"settleup/pkg/serrors"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// SettlementWorker records the payments of sessions that were just settled.
//
// A job whose session was deleted, or is no longer settled at the job's settle
// version, has nothing to record, so it is cancelled instead of retried. Any other error is
// returned and River retries the job up to its MaxAttempts.
type SettlementWorker struct {
	river.WorkerDefaults[ledger.JobArgs]

	ledger  ledger.Ledger
	timeout time.Duration
}

// NewSettlementWorker constructs a SettlementWorker. A zero timeout keeps
// River's default job timeout.
func NewSettlementWorker(l ledger.Ledger, timeout time.Duration) *SettlementWorker {
	return &SettlementWorker{
		ledger:  l,
		timeout: timeout,
	}
}

// Timeout overrides River's default job timeout when one was configured.
func (w *SettlementWorker) Timeout(job *river.Job[ledger.JobArgs]) time.Duration {
	if w.timeout > 0 {
		return w.timeout
	}

	return w.WorkerDefaults.Timeout(job)
}

func (w *SettlementWorker) Work(ctx context.Context, job *river.Job[ledger.JobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("sessionID", job.Args.SessionID.String()),
		zap.Int64("settleVersion", job.Args.SettleVersion))

	res, err := w.ledger.RecordSettlement(ctx, job.Args.SessionID, job.Args.SettleVersion)
	if err != nil {
		if errors.Is(err, serrors.ErrConflict) || errors.Is(err, serrors.ErrNotFound) {
			logger.Info(ctx, "settlement no longer needed", zap.String("reason", serrors.MessageOf(err)))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in recording settlement", zap.Error(err))

		return fmt.Errorf("could not record settlement: %w", err)
	}

	logger.Info(ctx, "settlement recorded", zap.Int("transfers", len(res.Transfers)))

	return nil
}
