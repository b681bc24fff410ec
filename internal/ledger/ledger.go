// Package ledger records cash game sessions and their players, and settles
// them into a short list of payments.
package ledger

import (
	"context"
	"fmt"
	"settleup/internal/config"
	"settleup/pkg/cache"
	"settleup/pkg/domain"
	"settleup/pkg/logger"
	"settleup/pkg/metrics"
	"settleup/pkg/serrors"
	"settleup/pkg/storage"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	cursorSeparator = "_"

	// DefaultPageSize is used when Sessions is called without a limit.
	DefaultPageSize = 20
	// MaxPageSize caps the limit accepted by Sessions.
	MaxPageSize = 100
)

var tracer = otel.Tracer("settleup/ledger") //nolint: gochecknoglobals

// Options configure how settlement jobs are enqueued.
type Options struct {
	// MaxAttempts is the maximum number of attempts the background worker should
	// make when recording a settlement before giving up.
	MaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts: cfg.Worker.MaxAttempts,
	}
}

// ledger is the concrete implementation of the Ledger interface.
type ledger struct {
	options Options
	storage storage.Storage
	cache   cache.SettlementCache
	metrics *metrics.Settlements
	now     func() time.Time
}

func (l ledger) CreateSession(ctx context.Context,
	userID domain.UserID,
	name string,
	date time.Time) (*domain.Session, error) {
	if date.IsZero() {
		date = l.now()
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = domain.DefaultSessionName(date)
	}

	session, err := l.storage.StoreSession(ctx, domain.Session{
		UserID: userID,
		Name:   name,
		Date:   date,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create session: %w", err)
	}

	return session, nil
}

// Sessions returns a page of the user's sessions, newest first. The cursor is
// the opaque value returned with the previous page.
func (l ledger) Sessions(ctx context.Context,
	userID domain.UserID,
	cursor string,
	limit uint) ([]domain.Session, string, error) {
	var after *storage.SessionCursor
	if cursor != "" {
		c, err := parseCursor(cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		after = &c
	}
	switch {
	case limit == 0:
		limit = DefaultPageSize
	case limit > MaxPageSize:
		limit = MaxPageSize
	}

	page, err := l.storage.UserSessions(ctx, userID, after, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get user sessions: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = formatCursor(*page.NextCursor)
	}

	return page.Sessions, next, nil
}

func (l ledger) Session(ctx context.Context, userID domain.UserID, sessionID domain.SessionID) (*domain.Session, error) {
	session, err := l.storage.SessionByID(ctx, userID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("could not get session: %w", err)
	}
	if session == nil {
		return nil, errSessionNotFound()
	}

	return session, nil
}

// UpdateSession renames or re-dates a session. A blank name is stored as
// empty and displayed as untitled. Settled sessions can still be renamed.
func (l ledger) UpdateSession(ctx context.Context,
	userID domain.UserID,
	sessionID domain.SessionID,
	updates SessionUpdates) (*domain.Session, error) {
	changes := storage.SessionUpdates{Date: updates.Date}
	if updates.Name != nil {
		name := strings.TrimSpace(*updates.Name)
		changes.Name = &name
	}

	var session *domain.Session
	if err := l.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		updated, err := tx.UpdateSession(ctx, userID, sessionID, changes)
		if err != nil {
			return fmt.Errorf("could not update session: %w", err)
		}
		if updated == nil {
			return errSessionNotFound()
		}

		session, err = tx.SessionByID(ctx, userID, sessionID)
		if err != nil {
			return fmt.Errorf("could not reload session: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not update session: %w", err)
	}

	return session, nil
}

func (l ledger) DeleteSession(ctx context.Context, userID domain.UserID, sessionID domain.SessionID) error {
	res, err := l.storage.DeleteSession(ctx, userID, sessionID)
	if err != nil {
		return fmt.Errorf("could not delete session: %w", err)
	}
	if res == nil {
		return errSessionNotFound()
	}

	l.evict(ctx, sessionID)

	return nil
}

func (l ledger) AddPlayer(ctx context.Context,
	userID domain.UserID,
	sessionID domain.SessionID,
	name string,
	totalIn int64) (*domain.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "player name is required")
	}
	if totalIn < 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "buy-in can not be negative")
	}

	var player *domain.Player
	if err := l.withEditableSession(ctx, userID, sessionID, func(tx storage.AllStorage) error {
		stored, err := tx.StorePlayers(ctx, domain.Player{
			SessionID: sessionID,
			Name:      name,
			TotalIn:   totalIn,
		})
		if err != nil {
			return fmt.Errorf("could not store player: %w", err)
		}
		player = &stored[0]

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not add player: %w", err)
	}

	return player, nil
}

func (l ledger) UpdatePlayer(ctx context.Context,
	userID domain.UserID,
	sessionID domain.SessionID,
	playerID domain.PlayerID,
	updates PlayerUpdates) (*domain.Player, error) {
	changes := storage.PlayerUpdates{
		TotalIn:  updates.TotalIn,
		TotalOut: updates.TotalOut,
	}
	if updates.Name != nil {
		name := strings.TrimSpace(*updates.Name)
		if name == "" {
			return nil, serrors.With(serrors.ErrBadRequest, "player name is required")
		}
		changes.Name = &name
	}
	if (updates.TotalIn != nil && *updates.TotalIn < 0) || (updates.TotalOut != nil && *updates.TotalOut < 0) {
		return nil, serrors.With(serrors.ErrBadRequest, "amounts can not be negative")
	}

	var player *domain.Player
	if err := l.withEditableSession(ctx, userID, sessionID, func(tx storage.AllStorage) error {
		updated, err := tx.UpdatePlayer(ctx, sessionID, playerID, changes)
		if err != nil {
			return fmt.Errorf("could not update player: %w", err)
		}
		if updated == nil {
			return errPlayerNotFound()
		}
		player = updated

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not update player: %w", err)
	}

	return player, nil
}

func (l ledger) RemovePlayer(ctx context.Context,
	userID domain.UserID,
	sessionID domain.SessionID,
	playerID domain.PlayerID) error {
	if err := l.withEditableSession(ctx, userID, sessionID, func(tx storage.AllStorage) error {
		removed, err := tx.DeletePlayer(ctx, sessionID, playerID)
		if err != nil {
			return fmt.Errorf("could not delete player: %w", err)
		}
		if removed == nil {
			return errPlayerNotFound()
		}

		return nil
	}); err != nil {
		return fmt.Errorf("could not remove player: %w", err)
	}

	return nil
}

// withEditableSession locks the session and runs cb in the same transaction
// if the players of the session may still change.
func (l ledger) withEditableSession(ctx context.Context,
	userID domain.UserID,
	sessionID domain.SessionID,
	cb func(tx storage.AllStorage) error) error {
	return l.storage.WithTx(ctx, func(tx storage.AllStorage) error { //nolint: wrapcheck
		session, err := tx.SessionForUpdate(ctx, userID, sessionID)
		if err != nil {
			return fmt.Errorf("could not lock session: %w", err)
		}
		if session == nil {
			return errSessionNotFound()
		}
		if session.IsSettled {
			return serrors.With(serrors.ErrConflict, "session is settled, mark it unsettled to edit players")
		}

		return cb(tx)
	})
}

// Preview computes the payments of a session as it stands. An unbalanced
// session is reported, not rejected.
func (l ledger) Preview(ctx context.Context, userID domain.UserID, sessionID domain.SessionID) (*domain.Report, error) {
	ctx, span := tracer.Start(ctx, "ledger.Preview", trace.WithAttributes(
		attribute.String("session.id", sessionID.String())))
	defer span.End()

	session, err := l.Session(ctx, userID, sessionID)
	if err != nil {
		return nil, endSpan(span, err)
	}

	return l.report(ctx, session), nil
}

// Settle marks a balanced session with at least two players as settled and
// enqueues the job that records its payments, both in one transaction.
func (l ledger) Settle(ctx context.Context, userID domain.UserID, sessionID domain.SessionID) (*domain.Report, error) {
	ctx, span := tracer.Start(ctx, "ledger.Settle", trace.WithAttributes(
		attribute.String("session.id", sessionID.String())))
	defer span.End()

	var report *domain.Report
	if err := l.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		session, err := tx.SessionForUpdate(ctx, userID, sessionID)
		if err != nil {
			return fmt.Errorf("could not lock session: %w", err)
		}
		if session == nil {
			return errSessionNotFound()
		}
		if session.IsSettled {
			return serrors.With(serrors.ErrConflict, "session is already settled")
		}
		if len(session.Players) < 2 {
			return serrors.With(serrors.ErrBadRequest, "at least two players are needed to settle")
		}
		if !session.IsBalanced() {
			return serrors.With(serrors.ErrUnbalanced, "%s", session.Imbalance())
		}

		settled := true
		updated, err := tx.UpdateSession(ctx, userID, sessionID, storage.SessionUpdates{IsSettled: &settled})
		if err != nil {
			return fmt.Errorf("could not mark session settled: %w", err)
		}
		if updated == nil {
			return errSessionNotFound()
		}
		session.IsSettled = true
		session.SettleVersion = updated.SettleVersion

		if _, err := tx.AddJob(ctx, JobArgs{
			SessionID:     sessionID,
			SettleVersion: session.SettleVersion,
			maxAttempts:   l.options.MaxAttempts,
		}, nil); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		report = l.report(ctx, session)

		return nil
	}); err != nil {
		return nil, endSpan(span, fmt.Errorf("could not settle session: %w", err))
	}

	// a job of an earlier settle may have filled the cache after Unsettle evicted it
	l.evict(ctx, sessionID)

	logger.Info(ctx, "session settled",
		zap.String("sessionID", sessionID.String()),
		zap.Int64("settleVersion", report.Session.SettleVersion),
		zap.Int("transfers", len(report.Transfers)))

	return report, nil
}

// Unsettle reopens a settled session for editing and drops its recorded payments.
func (l ledger) Unsettle(ctx context.Context, userID domain.UserID, sessionID domain.SessionID) error {
	if err := l.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		session, err := tx.SessionForUpdate(ctx, userID, sessionID)
		if err != nil {
			return fmt.Errorf("could not lock session: %w", err)
		}
		if session == nil {
			return errSessionNotFound()
		}
		if !session.IsSettled {
			return serrors.With(serrors.ErrConflict, "session is not settled")
		}

		settled := false
		if _, err := tx.UpdateSession(ctx, userID, sessionID, storage.SessionUpdates{IsSettled: &settled}); err != nil {
			return fmt.Errorf("could not mark session unsettled: %w", err)
		}
		if err := tx.DeleteSettlement(ctx, sessionID); err != nil {
			return fmt.Errorf("could not delete settlement: %w", err)
		}

		return nil
	}); err != nil {
		return fmt.Errorf("could not unsettle session: %w", err)
	}

	l.evict(ctx, sessionID)

	return nil
}

// Settlement returns the recorded payments of a settled session, reading
// through the cache. Payments recorded for an earlier settle of the session
// are never returned.
func (l ledger) Settlement(ctx context.Context,
	userID domain.UserID,
	sessionID domain.SessionID) (*domain.Settlement, error) {
	session, err := l.Session(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.IsSettled {
		return nil, serrors.With(serrors.ErrNotFound, "session is not settled")
	}

	cached, err := l.cache.Get(ctx, sessionID)
	if err != nil {
		logger.Warn(ctx, "could not read cached settlement",
			zap.String("sessionID", sessionID.String()), zap.Error(err))
	}
	if cached != nil && cached.SettleVersion == session.SettleVersion {
		return cached, nil
	}

	res, err := l.storage.SettlementBySessionID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("could not get settlement: %w", err)
	}
	if res == nil || res.SettleVersion != session.SettleVersion {
		return nil, serrors.With(serrors.ErrNotFound, "settlement is not recorded yet")
	}

	l.fill(ctx, *res)

	return res, nil
}

// RecordSettlement stores the payments of a session that is still settled at
// settleVersion. The session row stays locked until the payments are stored,
// so Unsettle waits for a running job. A session that was deleted meanwhile is
// not found and one that was unsettled or settled again is a conflict, so the
// caller can drop the job.
func (l ledger) RecordSettlement(ctx context.Context,
	sessionID domain.SessionID,
	settleVersion int64) (*domain.Settlement, error) {
	ctx, span := tracer.Start(ctx, "ledger.RecordSettlement", trace.WithAttributes(
		attribute.String("session.id", sessionID.String()),
		attribute.Int64("session.settle_version", settleVersion)))
	defer span.End()

	var res *domain.Settlement
	if err := l.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		session, err := tx.SessionForUpdateUnscoped(ctx, sessionID)
		if err != nil {
			return fmt.Errorf("could not lock session: %w", err)
		}
		if session == nil {
			return errSessionNotFound()
		}
		if !session.IsSettled {
			return serrors.With(serrors.ErrConflict, "session is no longer settled")
		}
		if session.SettleVersion != settleVersion {
			return serrors.With(serrors.ErrConflict, "session was settled again")
		}

		report := l.report(ctx, session)
		res, err = tx.StoreSettlement(ctx, domain.Settlement{
			SessionID:     sessionID,
			SettleVersion: settleVersion,
			Transfers:     report.Transfers,
		})
		if err != nil {
			return fmt.Errorf("could not store settlement: %w", err)
		}

		return nil
	}); err != nil {
		return nil, endSpan(span, fmt.Errorf("could not record settlement: %w", err))
	}

	l.fill(ctx, *res)

	return res, nil
}

// report runs the settlement engine over the session and records its metrics.
func (l ledger) report(ctx context.Context, session *domain.Session) *domain.Report {
	start := time.Now()
	report := domain.NewReport(session)
	l.metrics.Record(ctx, report.Balanced, len(report.Transfers), time.Since(start))

	return report
}

func (l ledger) fill(ctx context.Context, s domain.Settlement) {
	if err := l.cache.Set(ctx, s); err != nil {
		logger.Warn(ctx, "could not cache settlement",
			zap.String("sessionID", s.SessionID.String()), zap.Error(err))
	}
}

func (l ledger) evict(ctx context.Context, sessionID domain.SessionID) {
	if err := l.cache.Delete(ctx, sessionID); err != nil {
		logger.Warn(ctx, "could not evict cached settlement",
			zap.String("sessionID", sessionID.String()), zap.Error(err))
	}
}

// formatCursor encodes a page position as "<created_at RFC3339Nano UTC>_<session id>".
func formatCursor(c storage.SessionCursor) string {
	return c.CreatedAt.UTC().Format(time.RFC3339Nano) + cursorSeparator + c.ID.String()
}

func parseCursor(s string) (storage.SessionCursor, error) {
	ts, id, ok := strings.Cut(s, cursorSeparator)
	if !ok {
		return storage.SessionCursor{}, errors.New("missing session id")
	}
	createdAt, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return storage.SessionCursor{}, errors.Wrap(err, "parse time")
	}
	var sessionID domain.SessionID
	if err := sessionID.UnmarshalText([]byte(id)); err != nil {
		return storage.SessionCursor{}, errors.Wrap(err, "parse session id")
	}

	return storage.SessionCursor{CreatedAt: createdAt, ID: sessionID}, nil
}

func endSpan(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	return err
}

func errSessionNotFound() error { return serrors.With(serrors.ErrNotFound, "session not found") }

func errPlayerNotFound() error { return serrors.With(serrors.ErrNotFound, "player not found") }

// New creates a Ledger backed by the given storage. A nil cache disables
// caching and nil metrics record nothing.
func New(storage storage.Storage,
	settlementCache cache.SettlementCache,
	settlementMetrics *metrics.Settlements,
	options Options) Ledger {
	if settlementCache == nil {
		settlementCache = cache.Nop{}
	}

	return &ledger{
		options: options,
		storage: storage,
		cache:   settlementCache,
		metrics: settlementMetrics,
		now:     time.Now,
	}
}
