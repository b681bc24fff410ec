package domain

import (
	"settleup/pkg/settlement"
	"time"

	"github.com/google/uuid"
)

// PlayerID uniquely identifies a player within a session.
type PlayerID uuid.UUID

// String returns the canonical UUID representation.
func (id PlayerID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the ID as its canonical UUID string.
func (id PlayerID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText decodes a UUID string into the ID.
func (id *PlayerID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// Player is one participant of a session. Amounts are whole currency units.
type Player struct {
	ID        PlayerID  `json:"id"`
	SessionID SessionID `json:"sessionId"`

	// Name is not required to be unique within a session.
	Name string `json:"name"`
	// TotalIn is everything the player bought in for.
	TotalIn int64 `json:"totalIn"`
	// TotalOut is what the player cashed out with.
	TotalOut int64 `json:"totalOut"`
	// Position orders players in the sequence they joined the session.
	Position int64 `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Net is the player's result: positive for a winner, negative for a loser.
func (p *Player) Net() int64 {
	return p.TotalOut - p.TotalIn
}

// Balance returns the player's settlement input.
func (p *Player) Balance() settlement.Balance {
	return settlement.Balance{Name: p.Name, Net: p.Net()}
}
