package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"settleup/pkg/domain"
	"settleup/pkg/serrors"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/require"
)

const fridayGame = `
name: Friday Night Poker
players:
  - {name: John, in: 100, out: 250}
  - {name: Mike, in: 200, out: 50}
  - {name: Sarah, in: 100, out: 200}
  - {name: Tom, in: 150, out: 50}
`

func TestLoadSession(t *testing.T) {
	s, err := loadSession(strings.NewReader(fridayGame))
	require.NoError(t, err)
	require.Equal(t, "Friday Night Poker", s.Name)
	require.Len(t, s.Players, 4)
	require.Equal(t, int64(550), s.TotalPot())
	require.True(t, s.IsBalanced())
}

func TestLoadSession_Invalid(t *testing.T) {
	tests := map[string]string{
		"empty":           "",
		"unknown field":   "players:\n  - {name: John, in: 100, paid: 5}\n",
		"missing name":    "players:\n  - {in: 100, out: 20}\n",
		"negative amount": "players:\n  - {name: John, in: -100}\n",
		"not a number":    "players:\n  - {name: John, in: lots}\n",
	}

	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := loadSession(strings.NewReader(in))
			require.ErrorIs(t, err, serrors.ErrBadRequest)
		})
	}
}

func TestCheckStrict(t *testing.T) {
	s, err := loadSession(strings.NewReader(fridayGame))
	require.NoError(t, err)
	require.NoError(t, checkStrict(s))

	s.Players[0].TotalOut = 200
	err = checkStrict(s)
	require.ErrorIs(t, err, serrors.ErrUnbalanced)
	require.EqualError(t, err, "cash-outs are $50 short")

	err = checkStrict(&domain.Session{Players: s.Players[:1]})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestRenderReport(t *testing.T) {
	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)

	s, err := loadSession(strings.NewReader(fridayGame))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderReport(&buf, domain.NewReport(s)))

	out := buf.String()
	require.Contains(t, out, "Friday Night Poker")
	require.Contains(t, out, "Total pot: $550")
	require.Contains(t, out, "-$150")
	require.Regexp(t, `Mike\s*\|\s*John\s*\|\s*\$150`, out)
	require.Regexp(t, `Tom\s*\|\s*Sarah\s*\|\s*\$100`, out)
	require.NotContains(t, out, "short")
}

func TestRenderReport_Unbalanced(t *testing.T) {
	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)

	s := &domain.Session{Players: []domain.Player{
		{Name: "John", TotalIn: 100, TotalOut: 100},
		{Name: "Mike", TotalIn: 100, TotalOut: 130},
	}}

	var buf bytes.Buffer
	require.NoError(t, renderReport(&buf, domain.NewReport(s)))

	out := buf.String()
	require.Contains(t, out, "Untitled Session")
	require.Contains(t, out, "cash-outs exceed buy-ins by $30")
}

func TestSignToken(t *testing.T) {
	_, err := signToken("not a key", "1b4e28ba-2fa1-11d2-883f-0016d3cca427", time.Hour, time.Now())
	require.Error(t, err)

	_, err = signToken("", "alice", time.Hour, time.Now())
	require.ErrorContains(t, err, "subject must be a user UUID")
}
