package domain

import (
	"fmt"
	"settleup/pkg/settlement"
	"time"

	"github.com/google/uuid"
)

// SessionNameLayout formats the default name of a session created without one.
const SessionNameLayout = "Jan 2, 2006"

// untitledSession is shown for sessions whose name was cleared.
const untitledSession = "Untitled Session"

// SessionID uniquely identifies a cash game session.
type SessionID uuid.UUID

// String returns the canonical UUID representation.
func (id SessionID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the ID as its canonical UUID string.
func (id SessionID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText decodes a UUID string into the ID.
func (id *SessionID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// Session is a single cash game: who played, what each of them bought in for
// and cashed out with, and whether the debts have been settled.
type Session struct {
	// ID is the unique identifier of the session.
	ID SessionID `json:"id"`
	// UserID is the owner who records the session.
	UserID UserID `json:"userId"`

	// Name is a free-form label, e.g. "Friday Night Poker".
	Name string `json:"name"`
	// Date is when the game was played.
	Date time.Time `json:"date"`
	// Players holds the participants in the order they were added.
	Players []Player `json:"players"`
	// IsSettled is set once the payments have been confirmed.
	IsSettled bool `json:"isSettled"`
	// SettleVersion is bumped every time the session is settled. A recorded
	// settlement belongs to the version it was computed for.
	SettleVersion int64 `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the session was soft-deleted; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}

// DefaultSessionName is the name given to a session created at t without one.
func DefaultSessionName(t time.Time) string {
	return t.Format(SessionNameLayout)
}

// DisplayName returns the name to show for the session.
func (s *Session) DisplayName() string {
	if s.Name == "" {
		return untitledSession
	}

	return s.Name
}

// TotalPot is the sum of all buy-ins.
func (s *Session) TotalPot() int64 {
	var total int64
	for _, p := range s.Players {
		total += p.TotalIn
	}

	return total
}

// TotalOut is the sum of all cash-outs.
func (s *Session) TotalOut() int64 {
	var total int64
	for _, p := range s.Players {
		total += p.TotalOut
	}

	return total
}

// Discrepancy is how much the cash-outs exceed the buy-ins. It is negative
// when cash-outs fall short and zero for a balanced session.
func (s *Session) Discrepancy() int64 {
	return s.TotalOut() - s.TotalPot()
}

// IsBalanced reports whether every chip bought was cashed out.
func (s *Session) IsBalanced() bool {
	return s.Discrepancy() == 0
}

// Imbalance describes by how much cash-outs miss the buy-ins, or returns ""
// when the session is balanced.
func (s *Session) Imbalance() string {
	switch diff := s.Discrepancy(); {
	case diff > 0:
		return fmt.Sprintf("cash-outs exceed buy-ins by $%d", diff)
	case diff < 0:
		return fmt.Sprintf("cash-outs are $%d short", -diff)
	default:
		return ""
	}
}

// Balances converts the players into settlement input, keeping player order.
func (s *Session) Balances() []settlement.Balance {
	out := make([]settlement.Balance, len(s.Players))
	for i, p := range s.Players {
		out[i] = p.Balance()
	}

	return out
}

// Player returns the player with the given ID, or nil.
func (s *Session) Player(id PlayerID) *Player {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return &s.Players[i]
		}
	}

	return nil
}
