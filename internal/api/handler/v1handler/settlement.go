package v1handler

import (
	"net/http"
	"settleup/pkg/domain"

	"github.com/go-faster/jx"
)

// PreviewSettlement computes the transfers of an unsettled session without
// changing it.
func (h *Handler) PreviewSettlement(w http.ResponseWriter, r *http.Request, userID domain.UserID) error {
	ctx, sessionID, err := sessionContext(r)
	if err != nil {
		return err
	}

	report, err := h.ledger.Preview(ctx, userID, sessionID)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeReport(e, report) })

	return nil
}

func (h *Handler) Settle(w http.ResponseWriter, r *http.Request, userID domain.UserID) error {
	ctx, sessionID, err := sessionContext(r)
	if err != nil {
		return err
	}

	report, err := h.ledger.Settle(ctx, userID, sessionID)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeReport(e, report) })

	return nil
}

func (h *Handler) Unsettle(w http.ResponseWriter, r *http.Request, userID domain.UserID) error {
	ctx, sessionID, err := sessionContext(r)
	if err != nil {
		return err
	}

	if err := h.ledger.Unsettle(ctx, userID, sessionID); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)

	return nil
}

// GetSettlement returns the settlement recorded by the worker.
func (h *Handler) GetSettlement(w http.ResponseWriter, r *http.Request, userID domain.UserID) error {
	ctx, sessionID, err := sessionContext(r)
	if err != nil {
		return err
	}

	s, err := h.ledger.Settlement(ctx, userID, sessionID)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeSettlement(e, s) })

	return nil
}
