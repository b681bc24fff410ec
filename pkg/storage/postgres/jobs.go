package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
)

// AddJob enqueues a River job on the same handle the rest of the storage
// uses. Inside a transaction the job only becomes visible to workers once the
// transaction commits, so a settled session and its recording job are written
// together. It reports false when River skipped the job as a duplicate of a
// unique job that is still pending.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	var (
		res *rivertype.JobInsertResult
		err error
	)

	switch db := p.DB.(type) {
	case *sql.Tx:
		res, err = insertJob(func(c *river.Client[*sql.Tx]) (*rivertype.JobInsertResult, error) {
			return c.InsertTx(ctx, db, args, opts)
		}, riverdatabasesql.New(nil))
	case *sql.DB:
		res, err = insertJob(func(c *river.Client[*sql.Tx]) (*rivertype.JobInsertResult, error) {
			return c.Insert(ctx, args, opts)
		}, riverdatabasesql.New(db))
	default:
		return false, fmt.Errorf("unsupported db handle %T", p.DB)
	}
	if err != nil {
		return false, err
	}

	return !res.UniqueSkippedAsDuplicate, nil
}

// insertJob builds an insert-only River client for the driver and runs insert with it.
func insertJob(insert func(c *river.Client[*sql.Tx]) (*rivertype.JobInsertResult, error),
	driver *riverdatabasesql.Driver) (*rivertype.JobInsertResult, error) {
	client, err := river.NewClient[*sql.Tx](driver, &river.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	res, err := insert(client)
	if err != nil {
		return nil, fmt.Errorf("could not insert job: %w", err)
	}

	return res, nil
}
