package v1handler

import (
	"io"
	"net/http"
	"settleup/pkg/domain"
	"settleup/pkg/serrors"
	"settleup/pkg/settlement"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// maxBodySize caps request bodies read by the handlers.
const maxBodySize = 1 << 20

// dateLayout is accepted in addition to RFC 3339 for session dates.
const dateLayout = time.DateOnly

// sessionRequest is the body of session create and update calls.
type sessionRequest struct {
	Name *string
	Date *time.Time
}

// playerRequest is the body of player create and update calls.
type playerRequest struct {
	Name     *string
	TotalIn  *int64
	TotalOut *int64
}

// readBody reads the request body, rejecting bodies over maxBodySize instead
// of truncating them.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	b, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		if maxErr := new(http.MaxBytesError); errors.As(err, &maxErr) {
			return nil, serrors.Wrap(serrors.ErrTooLarge, err,
				"request body is larger than %d bytes", maxErr.Limit)
		}

		return nil, errors.Wrap(err, "read body")
	}

	return b, nil
}

// decodeObject calls field for every key of the JSON object in b. An empty
// body decodes as an empty object and null values are skipped.
func decodeObject(b []byte, field func(d *jx.Decoder, key string) error) error {
	if len(b) == 0 {
		return nil
	}

	return jx.DecodeBytes(b).Obj(func(d *jx.Decoder, key string) error {
		if d.Next() == jx.Null {
			return d.Null()
		}
		if err := field(d, key); err != nil {
			return errors.Wrapf(err, "decode %q", key)
		}

		return nil
	})
}

func decodeSessionRequest(b []byte) (sessionRequest, error) {
	var req sessionRequest
	err := decodeObject(b, func(d *jx.Decoder, key string) error {
		switch key {
		case "name":
			s, err := d.Str()
			if err != nil {
				return err
			}
			req.Name = &s
		case "date":
			s, err := d.Str()
			if err != nil {
				return err
			}
			t, err := parseDate(s)
			if err != nil {
				return err
			}
			req.Date = &t
		default:
			return d.Skip()
		}

		return nil
	})
	if err != nil {
		return sessionRequest{}, errors.Wrap(err, "decode session")
	}

	return req, nil
}

func decodePlayerRequest(b []byte) (playerRequest, error) {
	var req playerRequest
	err := decodeObject(b, func(d *jx.Decoder, key string) error {
		switch key {
		case "name":
			s, err := d.Str()
			if err != nil {
				return err
			}
			req.Name = &s
		case "totalIn":
			v, err := d.Int64()
			if err != nil {
				return err
			}
			req.TotalIn = &v
		case "totalOut":
			v, err := d.Int64()
			if err != nil {
				return err
			}
			req.TotalOut = &v
		default:
			return d.Skip()
		}

		return nil
	})
	if err != nil {
		return playerRequest{}, errors.Wrap(err, "decode player")
	}

	return req, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, errors.Errorf("date %q is neither RFC 3339 nor %s", s, dateLayout)
	}

	return t, nil
}

func encodeTime(e *jx.Encoder, t time.Time) {
	if t.IsZero() {
		e.Null()

		return
	}
	e.Str(t.UTC().Format(time.RFC3339))
}

func encodePlayer(e *jx.Encoder, p domain.Player) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(p.ID.String()) })
		e.Field("sessionId", func(e *jx.Encoder) { e.Str(p.SessionID.String()) })
		e.Field("name", func(e *jx.Encoder) { e.Str(p.Name) })
		e.Field("totalIn", func(e *jx.Encoder) { e.Int64(p.TotalIn) })
		e.Field("totalOut", func(e *jx.Encoder) { e.Int64(p.TotalOut) })
		e.Field("net", func(e *jx.Encoder) { e.Int64(p.Net()) })
		e.Field("createdAt", func(e *jx.Encoder) { encodeTime(e, p.CreatedAt) })
		e.Field("updatedAt", func(e *jx.Encoder) { encodeTime(e, p.UpdatedAt) })
	})
}

func encodePlayers(e *jx.Encoder, players []domain.Player) {
	e.Arr(func(e *jx.Encoder) {
		for _, p := range players {
			encodePlayer(e, p)
		}
	})
}

func encodeSession(e *jx.Encoder, s *domain.Session) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(s.ID.String()) })
		e.Field("name", func(e *jx.Encoder) { e.Str(s.Name) })
		e.Field("displayName", func(e *jx.Encoder) { e.Str(s.DisplayName()) })
		e.Field("date", func(e *jx.Encoder) { encodeTime(e, s.Date) })
		e.Field("isSettled", func(e *jx.Encoder) { e.Bool(s.IsSettled) })
		e.Field("players", func(e *jx.Encoder) { encodePlayers(e, s.Players) })
		e.Field("totalPot", func(e *jx.Encoder) { e.Int64(s.TotalPot()) })
		e.Field("totalOut", func(e *jx.Encoder) { e.Int64(s.TotalOut()) })
		e.Field("discrepancy", func(e *jx.Encoder) { e.Int64(s.Discrepancy()) })
		e.Field("balanced", func(e *jx.Encoder) { e.Bool(s.IsBalanced()) })
		e.Field("createdAt", func(e *jx.Encoder) { encodeTime(e, s.CreatedAt) })
		e.Field("updatedAt", func(e *jx.Encoder) { encodeTime(e, s.UpdatedAt) })
	})
}

func encodeSessionList(e *jx.Encoder, sessions []domain.Session, nextCursor string) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("items", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for i := range sessions {
					encodeSession(e, &sessions[i])
				}
			})
		})
		e.Field("nextCursor", func(e *jx.Encoder) {
			if nextCursor == "" {
				e.Null()

				return
			}
			e.Str(nextCursor)
		})
	})
}

func encodeTransfers(e *jx.Encoder, transfers []settlement.Transfer) {
	e.Arr(func(e *jx.Encoder) {
		for _, t := range transfers {
			e.Obj(func(e *jx.Encoder) {
				e.Field("from", func(e *jx.Encoder) { e.Str(t.From) })
				e.Field("to", func(e *jx.Encoder) { e.Str(t.To) })
				e.Field("amount", func(e *jx.Encoder) { e.Int64(t.Amount) })
			})
		}
	})
}

func encodeReport(e *jx.Encoder, r *domain.Report) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("session", func(e *jx.Encoder) { encodeSession(e, r.Session) })
		e.Field("results", func(e *jx.Encoder) { encodePlayers(e, r.Results) })
		e.Field("transfers", func(e *jx.Encoder) { encodeTransfers(e, r.Transfers) })
		e.Field("totalPot", func(e *jx.Encoder) { e.Int64(r.TotalPot) })
		e.Field("balanced", func(e *jx.Encoder) { e.Bool(r.Balanced) })
		e.Field("discrepancy", func(e *jx.Encoder) { e.Int64(r.Discrepancy) })
	})
}

func encodeSettlement(e *jx.Encoder, s *domain.Settlement) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("sessionId", func(e *jx.Encoder) { e.Str(s.SessionID.String()) })
		e.Field("transfers", func(e *jx.Encoder) { encodeTransfers(e, s.Transfers) })
		e.Field("createdAt", func(e *jx.Encoder) { encodeTime(e, s.CreatedAt) })
	})
}

func encodeError(e *jx.Encoder, r ErrorResponse) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("code", func(e *jx.Encoder) { e.Str(r.Code) })
		e.Field("message", func(e *jx.Encoder) { e.Str(r.Message) })
	})
}

// writeJSON writes the encoded body with the given status.
func writeJSON(w http.ResponseWriter, status int, encode func(e *jx.Encoder)) {
	var e jx.Encoder
	encode(&e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}
