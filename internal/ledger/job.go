package ledger

import (
	"settleup/pkg/domain"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs contains the arguments of the job that records the settlement of a
// session once it has been marked settled.
type JobArgs struct {
	// SessionID and SettleVersion together are unique, so every settle of a
	// session gets its own job even while the job of an earlier settle runs.
	SessionID domain.SessionID `json:"sessionId" river:"unique"`
	// SettleVersion is the settle version of the session when it was enqueued.
	SettleVersion int64 `json:"settleVersion" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the settlement worker.
func (args JobArgs) Kind() string { return "RecordSettlementJob" }

// InsertOpts returns the River options used when the job is enqueued.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
