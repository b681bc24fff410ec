package v1handler

import (
	"net/http"
	"settleup/internal/ledger"
	"settleup/pkg/domain"
	"settleup/pkg/serrors"

	"github.com/go-faster/jx"
)

func (h *Handler) AddPlayer(w http.ResponseWriter, r *http.Request, userID domain.UserID) error {
	ctx, sessionID, err := sessionContext(r)
	if err != nil {
		return err
	}
	body, err := readBody(w, r)
	if err != nil {
		return err
	}
	req, err := decodePlayerRequest(body)
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}
	if req.Name == nil {
		return serrors.With(serrors.ErrBadRequest, "player name is required")
	}
	var totalIn int64
	if req.TotalIn != nil {
		totalIn = *req.TotalIn
	}

	player, err := h.ledger.AddPlayer(ctx, userID, sessionID, *req.Name, totalIn)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusCreated, func(e *jx.Encoder) { encodePlayer(e, *player) })

	return nil
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request, userID domain.UserID) error {
	ctx, sessionID, err := sessionContext(r)
	if err != nil {
		return err
	}
	playerID, err := playerIDParam(r)
	if err != nil {
		return err
	}
	body, err := readBody(w, r)
	if err != nil {
		return err
	}
	req, err := decodePlayerRequest(body)
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	player, err := h.ledger.UpdatePlayer(ctx, userID, sessionID, playerID, ledger.PlayerUpdates{
		Name:     req.Name,
		TotalIn:  req.TotalIn,
		TotalOut: req.TotalOut,
	})
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodePlayer(e, *player) })

	return nil
}

func (h *Handler) RemovePlayer(w http.ResponseWriter, r *http.Request, userID domain.UserID) error {
	ctx, sessionID, err := sessionContext(r)
	if err != nil {
		return err
	}
	playerID, err := playerIDParam(r)
	if err != nil {
		return err
	}

	if err := h.ledger.RemovePlayer(ctx, userID, sessionID, playerID); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)

	return nil
}
