package domain

import (
	"cmp"
	"settleup/pkg/settlement"
	"slices"
	"time"
)

// Settlement is the recorded outcome of a settled session.
type Settlement struct {
	SessionID SessionID `json:"sessionId"`
	// SettleVersion is the session settle version the transfers were computed for.
	SettleVersion int64                 `json:"settleVersion"`
	Transfers     []settlement.Transfer `json:"transfers"`
	CreatedAt     time.Time             `json:"createdAt"`
}

// Report is everything needed to present the payouts of a session.
type Report struct {
	Session *Session
	// Results lists the players from the biggest winner to the biggest loser.
	Results []Player
	// Transfers are the payments that square everyone up.
	Transfers []settlement.Transfer
	// TotalPot is the sum of all buy-ins.
	TotalPot int64
	// Balanced reports whether cash-outs matched buy-ins when the report was built.
	Balanced bool
	// Discrepancy is TotalOut - TotalPot.
	Discrepancy int64
}

// NewReport settles the session and assembles the report.
func NewReport(s *Session) *Report {
	results := slices.Clone(s.Players)
	slices.SortStableFunc(results, func(a, b Player) int {
		return cmp.Compare(b.Net(), a.Net())
	})

	return &Report{
		Session:     s,
		Results:     results,
		Transfers:   settlement.Settle(s.Balances()),
		TotalPot:    s.TotalPot(),
		Balanced:    s.IsBalanced(),
		Discrepancy: s.Discrepancy(),
	}
}
