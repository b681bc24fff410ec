package v1handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"settleup/internal/api/handler/v1handler"
	"settleup/internal/ledger"
	"settleup/pkg/domain"
	"settleup/pkg/settlement"
	"strings"
	"testing"
	"time"

	mockledger "settleup/internal/ledger/mock"
	"settleup/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	testUserID    = domain.UserID(uuid.MustParse("7d9c6a57-0b9f-4b57-9f1e-3c2a2f9a1b01"))
	testSessionID = domain.SessionID(uuid.MustParse("5b1f0a0e-8f0c-4d1b-9d55-6e0b5f3c2a10"))
	testPlayerID  = domain.PlayerID(uuid.MustParse("c3a4f1d2-7e6b-4a59-8c1d-0f2e3b4a5c6d"))
	testTime      = time.Date(2026, 10, 10, 12, 0, 0, 0, time.UTC)
)

type fixture struct {
	ledger *mockledger.MockLedger
	router http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	l := mockledger.NewMockLedger(ctrl)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(v1handler.ContextWithUserID(r.Context(), testUserID)))
		})
	})
	v1handler.New(v1handler.Deps{Ledger: l}).Routes(r)

	return &fixture{ledger: l, router: r}
}

func (f *fixture) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	return out
}

func fridayGame() *domain.Session {
	return &domain.Session{
		ID:     testSessionID,
		UserID: testUserID,
		Name:   "Friday Night Poker",
		Date:   time.Date(2026, 10, 9, 0, 0, 0, 0, time.UTC),
		Players: []domain.Player{
			{ID: testPlayerID, SessionID: testSessionID, Name: "John", TotalIn: 100, TotalOut: 250},
			{ID: domain.PlayerID(uuid.New()), SessionID: testSessionID, Name: "Mike", TotalIn: 200, TotalOut: 50},
		},
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func sessionPath(suffix string) string {
	return "/sessions/" + testSessionID.String() + suffix
}

func TestCreateSession(t *testing.T) {
	f := newFixture(t)
	f.ledger.EXPECT().
		CreateSession(gomock.Any(), testUserID, "Friday Night Poker", time.Date(2026, 10, 9, 0, 0, 0, 0, time.UTC)).
		Return(fridayGame(), nil)

	rec := f.do(t, http.MethodPost, "/sessions", `{"name":"Friday Night Poker","date":"2026-10-09"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	out := decode(t, rec)
	require.Equal(t, testSessionID.String(), out["id"])
	require.Equal(t, "Friday Night Poker", out["displayName"])
	require.Equal(t, "2026-10-09T00:00:00Z", out["date"])
	require.InDelta(t, 300, out["totalPot"], 0)
	require.InDelta(t, 300, out["totalOut"], 0)
	require.Equal(t, true, out["balanced"])
	require.Len(t, out["players"], 2)
}

func TestCreateSession_EmptyBody(t *testing.T) {
	f := newFixture(t)
	f.ledger.EXPECT().
		CreateSession(gomock.Any(), testUserID, "", time.Time{}).
		Return(&domain.Session{ID: testSessionID, Name: "Oct 10, 2026", Date: testTime}, nil)

	rec := f.do(t, http.MethodPost, "/sessions", "")

	require.Equal(t, http.StatusCreated, rec.Code)
	out := decode(t, rec)
	require.Equal(t, "Oct 10, 2026", out["name"])
	require.Empty(t, out["players"])
}

func TestCreateSession_InvalidBody(t *testing.T) {
	tests := map[string]string{
		"malformed":    `{"name":`,
		"wrong type":   `{"name":42}`,
		"invalid date": `{"date":"next friday"}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)

			rec := f.do(t, http.MethodPost, "/sessions", body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.JSONEq(t, `{"code":"BAD_REQUEST","message":"invalid request body"}`, rec.Body.String())
		})
	}
}

func TestCreateSession_BodyTooLarge(t *testing.T) {
	f := newFixture(t)
	body := `{"name":"` + strings.Repeat("a", 1<<20) + `"}`

	rec := f.do(t, http.MethodPost, "/sessions", body)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	require.JSONEq(t, `{"code":"TOO_LARGE","message":"request body is larger than 1048576 bytes"}`,
		rec.Body.String())
}

func TestUpdatePlayer_BodyTooLarge(t *testing.T) {
	f := newFixture(t)
	body := `{"name":"Ann","pad":"` + strings.Repeat(" ", 1<<20) + `"}`

	rec := f.do(t, http.MethodPatch,
		"/sessions/"+testSessionID.String()+"/players/"+testPlayerID.String(), body)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	require.Contains(t, rec.Body.String(), `"code":"TOO_LARGE"`)
}

func TestListSessions(t *testing.T) {
	f := newFixture(t)
	f.ledger.EXPECT().
		Sessions(gomock.Any(), testUserID, "2026-10-10T12:00:00Z", uint(5)).
		Return([]domain.Session{*fridayGame()}, "2026-10-01T08:00:00Z", nil)

	rec := f.do(t, http.MethodGet, "/sessions?limit=5&cursor=2026-10-10T12:00:00Z", "")

	require.Equal(t, http.StatusOK, rec.Code)
	out := decode(t, rec)
	require.Len(t, out["items"], 1)
	require.Equal(t, "2026-10-01T08:00:00Z", out["nextCursor"])
}

func TestListSessions_LastPage(t *testing.T) {
	f := newFixture(t)
	f.ledger.EXPECT().
		Sessions(gomock.Any(), testUserID, "", uint(0)).
		Return(nil, "", nil)

	rec := f.do(t, http.MethodGet, "/sessions", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"items":[],"nextCursor":null}`, rec.Body.String())
}

func TestListSessions_InvalidLimit(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/sessions?limit=-1", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"code":"BAD_REQUEST","message":"invalid limit"}`, rec.Body.String())
}

func TestGetSession(t *testing.T) {
	f := newFixture(t)
	f.ledger.EXPECT().Session(gomock.Any(), testUserID, testSessionID).Return(fridayGame(), nil)

	rec := f.do(t, http.MethodGet, sessionPath(""), "")

	require.Equal(t, http.StatusOK, rec.Code)
	out := decode(t, rec)
	players, ok := out["players"].([]any)
	require.True(t, ok)
	john, ok := players[0].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "John", john["name"])
	require.InDelta(t, 150, john["net"], 0)
}

func TestGetSession_Errors(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(t, http.MethodGet, "/sessions/not-a-uuid", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.JSONEq(t, `{"code":"BAD_REQUEST","message":"invalid session id"}`, rec.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		f.ledger.EXPECT().Session(gomock.Any(), testUserID, testSessionID).
			Return(nil, serrors.With(serrors.ErrNotFound, "session not found"))

		rec := f.do(t, http.MethodGet, sessionPath(""), "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		require.JSONEq(t, `{"code":"NOT_FOUND","message":"session not found"}`, rec.Body.String())
	})

	t.Run("internal", func(t *testing.T) {
		f := newFixture(t)
		f.ledger.EXPECT().Session(gomock.Any(), testUserID, testSessionID).
			Return(nil, errors.New("connection reset"))

		rec := f.do(t, http.MethodGet, sessionPath(""), "")

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.JSONEq(t, `{"code":"INTERNAL","message":"internal error"}`, rec.Body.String())
	})
}

func TestUpdateSession(t *testing.T) {
	f := newFixture(t)
	f.ledger.EXPECT().
		UpdateSession(gomock.Any(), testUserID, testSessionID, gomock.Any()).
		DoAndReturn(func(_, _, _ any, updates ledger.SessionUpdates) (*domain.Session, error) {
			require.NotNil(t, updates.Name)
			require.Equal(t, "Saturday Game", *updates.Name)
			require.Nil(t, updates.Date)

			s := fridayGame()
			s.Name = *updates.Name

			return s, nil
		})

	rec := f.do(t, http.MethodPatch, sessionPath(""), `{"name":"Saturday Game","date":null}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Saturday Game", decode(t, rec)["name"])
}

func TestDeleteSession(t *testing.T) {
	f := newFixture(t)
	f.ledger.EXPECT().DeleteSession(gomock.Any(), testUserID, testSessionID).Return(nil)

	rec := f.do(t, http.MethodDelete, sessionPath(""), "")

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.String())
}

func TestAddPlayer(t *testing.T) {
	f := newFixture(t)
	f.ledger.EXPECT().
		AddPlayer(gomock.Any(), testUserID, testSessionID, "Sarah", int64(100)).
		Return(&domain.Player{ID: testPlayerID, SessionID: testSessionID, Name: "Sarah", TotalIn: 100}, nil)

	rec := f.do(t, http.MethodPost, sessionPath("/players"), `{"name":"Sarah","totalIn":100,"note":"ignored"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	out := decode(t, rec)
	require.Equal(t, testPlayerID.String(), out["id"])
	require.InDelta(t, -100, out["net"], 0)
}

func TestAddPlayer_Invalid(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(t, http.MethodPost, sessionPath("/players"), `{"totalIn":100}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.JSONEq(t, `{"code":"BAD_REQUEST","message":"player name is required"}`, rec.Body.String())
	})

	t.Run("fractional amount", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(t, http.MethodPost, sessionPath("/players"), `{"name":"Sarah","totalIn":10.5}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("settled session", func(t *testing.T) {
		f := newFixture(t)
		f.ledger.EXPECT().
			AddPlayer(gomock.Any(), testUserID, testSessionID, "Sarah", int64(0)).
			Return(nil, serrors.With(serrors.ErrConflict, "session is settled, mark it unsettled to edit players"))

		rec := f.do(t, http.MethodPost, sessionPath("/players"), `{"name":"Sarah"}`)

		require.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestUpdatePlayer(t *testing.T) {
	f := newFixture(t)
	f.ledger.EXPECT().
		UpdatePlayer(gomock.Any(), testUserID, testSessionID, testPlayerID, gomock.Any()).
		DoAndReturn(func(_, _, _, _ any, updates ledger.PlayerUpdates) (*domain.Player, error) {
			require.Nil(t, updates.Name)
			require.Nil(t, updates.TotalIn)
			require.NotNil(t, updates.TotalOut)
			require.Equal(t, int64(250), *updates.TotalOut)

			return &domain.Player{ID: testPlayerID, Name: "John", TotalIn: 100, TotalOut: 250}, nil
		})

	rec := f.do(t, http.MethodPatch, sessionPath("/players/"+testPlayerID.String()), `{"totalOut":250}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.InDelta(t, 150, decode(t, rec)["net"], 0)
}

func TestUpdatePlayer_InvalidID(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPatch, sessionPath("/players/42"), `{"totalOut":250}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"code":"BAD_REQUEST","message":"invalid player id"}`, rec.Body.String())
}

func TestRemovePlayer(t *testing.T) {
	f := newFixture(t)
	f.ledger.EXPECT().RemovePlayer(gomock.Any(), testUserID, testSessionID, testPlayerID).Return(nil)

	rec := f.do(t, http.MethodDelete, sessionPath("/players/"+testPlayerID.String()), "")

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestPreviewSettlement(t *testing.T) {
	f := newFixture(t)
	f.ledger.EXPECT().Preview(gomock.Any(), testUserID, testSessionID).
		DoAndReturn(func(_, _, _ any) (*domain.Report, error) {
			s := fridayGame()
			s.Players[1].TotalOut = 0

			return domain.NewReport(s), nil
		})

	rec := f.do(t, http.MethodGet, sessionPath("/settlement/preview"), "")

	require.Equal(t, http.StatusOK, rec.Code)
	out := decode(t, rec)
	require.Equal(t, false, out["balanced"])
	require.InDelta(t, -50, out["discrepancy"], 0)
	require.Equal(t, []any{map[string]any{"from": "Mike", "to": "John", "amount": float64(150)}}, out["transfers"])
}

func TestSettle(t *testing.T) {
	f := newFixture(t)
	f.ledger.EXPECT().Settle(gomock.Any(), testUserID, testSessionID).
		Return(nil, serrors.With(serrors.ErrUnbalanced, "cash-outs are $50 short"))

	rec := f.do(t, http.MethodPost, sessionPath("/settle"), "")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.JSONEq(t, `{"code":"UNBALANCED","message":"cash-outs are $50 short"}`, rec.Body.String())
}

func TestUnsettle(t *testing.T) {
	f := newFixture(t)
	f.ledger.EXPECT().Unsettle(gomock.Any(), testUserID, testSessionID).Return(nil)

	rec := f.do(t, http.MethodPost, sessionPath("/unsettle"), "")

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestGetSettlement(t *testing.T) {
	f := newFixture(t)
	f.ledger.EXPECT().Settlement(gomock.Any(), testUserID, testSessionID).
		Return(&domain.Settlement{
			SessionID: testSessionID,
			Transfers: []settlement.Transfer{{From: "Mike", To: "John", Amount: 150}},
			CreatedAt: testTime,
		}, nil)

	rec := f.do(t, http.MethodGet, sessionPath("/settlement"), "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{
		"sessionId": "`+testSessionID.String()+`",
		"transfers": [{"from": "Mike", "to": "John", "amount": 150}],
		"createdAt": "2026-10-10T12:00:00Z"
	}`, rec.Body.String())
}

func TestRoutes_RequireUser(t *testing.T) {
	r := chi.NewRouter()
	v1handler.New(v1handler.Deps{}).Routes(r)

	req := httptest.NewRequest(http.MethodGet, "/sessions", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"code":"UNAUTHORIZED","message":"unauthorized"}`, rec.Body.String())
}
