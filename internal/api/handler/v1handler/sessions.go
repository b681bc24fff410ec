package v1handler

import (
	"net/http"
	"settleup/internal/ledger"
	"settleup/pkg/domain"
	"settleup/pkg/serrors"
	"strconv"
	"time"

	"github.com/go-faster/jx"
)

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request, userID domain.UserID) error {
	body, err := readBody(w, r)
	if err != nil {
		return err
	}
	req, err := decodeSessionRequest(body)
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	var (
		name string
		date time.Time
	)
	if req.Name != nil {
		name = *req.Name
	}
	if req.Date != nil {
		date = *req.Date
	}

	session, err := h.ledger.CreateSession(r.Context(), userID, name, date)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusCreated, func(e *jx.Encoder) { encodeSession(e, session) })

	return nil
}

func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request, userID domain.UserID) error {
	query := r.URL.Query()

	var limit uint64
	if raw := query.Get("limit"); raw != "" {
		var err error
		if limit, err = strconv.ParseUint(raw, 10, 32); err != nil {
			return serrors.Wrap(serrors.ErrBadRequest, err, "invalid limit")
		}
	}

	sessions, next, err := h.ledger.Sessions(r.Context(), userID, query.Get("cursor"), uint(limit))
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeSessionList(e, sessions, next) })

	return nil
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request, userID domain.UserID) error {
	ctx, sessionID, err := sessionContext(r)
	if err != nil {
		return err
	}

	session, err := h.ledger.Session(ctx, userID, sessionID)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeSession(e, session) })

	return nil
}

func (h *Handler) UpdateSession(w http.ResponseWriter, r *http.Request, userID domain.UserID) error {
	ctx, sessionID, err := sessionContext(r)
	if err != nil {
		return err
	}
	body, err := readBody(w, r)
	if err != nil {
		return err
	}
	req, err := decodeSessionRequest(body)
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	session, err := h.ledger.UpdateSession(ctx, userID, sessionID, ledger.SessionUpdates{
		Name: req.Name,
		Date: req.Date,
	})
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeSession(e, session) })

	return nil
}

func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request, userID domain.UserID) error {
	ctx, sessionID, err := sessionContext(r)
	if err != nil {
		return err
	}

	if err := h.ledger.DeleteSession(ctx, userID, sessionID); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)

	return nil
}
