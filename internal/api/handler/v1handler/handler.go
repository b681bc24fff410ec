// Package v1handler implements the v1 HTTP API on top of the ledger.
package v1handler

import (
	"context"
	"net/http"
	"settleup/internal/ledger"
	"settleup/pkg/domain"
	"settleup/pkg/logger"
	"settleup/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/jx"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Deps groups the services the v1 handlers call into.
type Deps struct {
	Ledger ledger.Ledger
}

type Handler struct {
	ledger ledger.Ledger
}

func New(deps Deps) *Handler {
	return &Handler{ledger: deps.Ledger}
}

// ErrorResponse is the body of every failed v1 call.
type ErrorResponse struct {
	Code    string
	Message string
}

// ErrorStatusCode pairs an ErrorResponse with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

var statusByKind = map[serrors.Kind]int{
	serrors.ErrNotFound:     http.StatusNotFound,
	serrors.ErrBadRequest:   http.StatusBadRequest,
	serrors.ErrUnauthorized: http.StatusUnauthorized,
	serrors.ErrForbidden:    http.StatusForbidden,
	serrors.ErrConflict:     http.StatusConflict,
	serrors.ErrUnbalanced:   http.StatusUnprocessableEntity,
	serrors.ErrTooLarge:     http.StatusRequestEntityTooLarge,
}

var defaultMessages = map[serrors.Kind]string{
	serrors.ErrNotFound:     "resource not found",
	serrors.ErrBadRequest:   "bad request",
	serrors.ErrUnauthorized: "unauthorized",
	serrors.ErrForbidden:    "forbidden",
	serrors.ErrConflict:     "conflict",
	serrors.ErrUnbalanced:   "session is unbalanced",
	serrors.ErrTooLarge:     "request body is too large",
}

// NewError maps err onto a status code and a response body. Errors without a
// known semantic kind are logged and reported as internal errors.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	return newError(ctx, err)
}

func newError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err)
	status, ok := statusByKind[kind]
	if !ok {
		logger.Error(ctx, "request failed", zap.Error(err))

		return &ErrorStatusCode{
			StatusCode: http.StatusInternalServerError,
			Response: ErrorResponse{
				Code:    serrors.ErrInternal.Error(),
				Message: "internal error",
			},
		}
	}

	logger.Debug(ctx, "request rejected", zap.Error(err))

	msg := serrors.MessageOf(err)
	if msg == "" || msg == kind.Error() {
		msg = defaultMessages[kind]
	}

	return &ErrorStatusCode{
		StatusCode: status,
		Response: ErrorResponse{
			Code:    kind.Error(),
			Message: msg,
		},
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	res := newError(ctx, err)
	writeJSON(w, res.StatusCode, func(e *jx.Encoder) { encodeError(e, res.Response) })
}

// Routes registers the v1 endpoints on r. The caller is expected to install
// the bearer authentication middleware before.
func (h *Handler) Routes(r chi.Router) {
	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", h.handle(h.CreateSession))
		r.Get("/", h.handle(h.ListSessions))

		r.Route("/{sessionID}", func(r chi.Router) {
			r.Get("/", h.handle(h.GetSession))
			r.Patch("/", h.handle(h.UpdateSession))
			r.Delete("/", h.handle(h.DeleteSession))

			r.Post("/players", h.handle(h.AddPlayer))
			r.Patch("/players/{playerID}", h.handle(h.UpdatePlayer))
			r.Delete("/players/{playerID}", h.handle(h.RemovePlayer))

			r.Get("/settlement/preview", h.handle(h.PreviewSettlement))
			r.Get("/settlement", h.handle(h.GetSettlement))
			r.Post("/settle", h.handle(h.Settle))
			r.Post("/unsettle", h.handle(h.Unsettle))
		})
	})
}

// handlerFunc is an endpoint that reports failures as errors.
type handlerFunc func(w http.ResponseWriter, r *http.Request, userID domain.UserID) error

func (h *Handler) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := GetUserIDFromContext(ctx)
		if !ok {
			writeError(ctx, w, serrors.KindOnly(serrors.ErrUnauthorized))

			return
		}

		if err := fn(w, r, userID); err != nil {
			writeError(ctx, w, err)
		}
	}
}

func sessionIDParam(r *http.Request) (domain.SessionID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		return domain.SessionID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid session id")
	}

	return domain.SessionID(id), nil
}

func playerIDParam(r *http.Request) (domain.PlayerID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "playerID"))
	if err != nil {
		return domain.PlayerID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid player id")
	}

	return domain.PlayerID(id), nil
}

// sessionContext parses the session path parameter and attaches it to the
// request logger.
func sessionContext(r *http.Request) (context.Context, domain.SessionID, error) {
	sessionID, err := sessionIDParam(r)
	if err != nil {
		return nil, domain.SessionID{}, err
	}

	return logger.WithFields(r.Context(), zap.Stringer("session_id", sessionID)), sessionID, nil
}
