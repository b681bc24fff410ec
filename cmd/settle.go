package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"settleup/pkg/domain"
	"settleup/pkg/serrors"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// playersFile is the input of the settle command:
//
//	name: Friday Night Poker
//	players:
//	  - {name: John, in: 100, out: 250}
//	  - {name: Mike, in: 200, out: 50}
type playersFile struct {
	Name    string `yaml:"name"`
	Players []struct {
		Name string `yaml:"name"`
		In   int64  `yaml:"in"`
		Out  int64  `yaml:"out"`
	} `yaml:"players"`
}

// loadSession decodes a players file into an unsaved session.
func loadSession(r io.Reader) (*domain.Session, error) {
	var f playersFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, serrors.With(serrors.ErrBadRequest, "players file is empty")
		}

		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not parse players file")
	}

	session := &domain.Session{Name: f.Name}
	for i, p := range f.Players {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return nil, serrors.With(serrors.ErrBadRequest, "player #%d has no name", i+1)
		}
		if p.In < 0 || p.Out < 0 {
			return nil, serrors.With(serrors.ErrBadRequest, "amounts of %s can not be negative", name)
		}
		session.Players = append(session.Players, domain.Player{Name: name, TotalIn: p.In, TotalOut: p.Out})
	}

	return session, nil
}

// checkStrict applies the same guards the ledger applies before settling.
func checkStrict(s *domain.Session) error {
	if len(s.Players) < 2 {
		return serrors.With(serrors.ErrBadRequest, "at least two players are needed to settle")
	}
	if !s.IsBalanced() {
		return serrors.With(serrors.ErrUnbalanced, "%s", s.Imbalance())
	}

	return nil
}

func money(v int64) string {
	if v < 0 {
		return "-$" + strconv.FormatInt(-v, 10)
	}

	return "$" + strconv.FormatInt(v, 10)
}

// renderReport prints the results and the payments as tables.
func renderReport(w io.Writer, r *domain.Report) error {
	pterm.DefaultSection.WithWriter(w).Println(r.Session.DisplayName())

	results := [][]string{{"Player", "In", "Out", "Net"}}
	for _, p := range r.Results {
		results = append(results, []string{p.Name, money(p.TotalIn), money(p.TotalOut), money(p.Net())})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithWriter(w).WithData(results).Render(); err != nil {
		return fmt.Errorf("could not render results: %w", err)
	}

	pterm.Info.WithWriter(w).Printfln("Total pot: %s", money(r.TotalPot))
	if !r.Balanced {
		pterm.Warning.WithWriter(w).Println(r.Session.Imbalance())
	}

	if len(r.Transfers) == 0 {
		pterm.Success.WithWriter(w).Println("Nobody owes anything")

		return nil
	}

	payments := [][]string{{"From", "To", "Amount"}}
	for _, t := range r.Transfers {
		payments = append(payments, []string{t.From, t.To, money(t.Amount)})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithWriter(w).WithData(payments).Render(); err != nil {
		return fmt.Errorf("could not render payments: %w", err)
	}

	return nil
}

// settleCommand constructs the 'settle' subcommand that settles a game
// described in a YAML file without touching the database.
func settleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "settle",
		Short:        "Prints who pays whom for the players in a YAML file",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("file")
			strict, _ := cmd.Flags().GetBool("strict")

			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("could not open players file: %w", err)
			}
			defer f.Close()

			session, err := loadSession(f)
			if err != nil {
				return err
			}
			if strict {
				if err := checkStrict(session); err != nil {
					return err
				}
			}

			return renderReport(cmd.OutOrStdout(), domain.NewReport(session))
		},
	}

	cmd.Flags().StringP("file", "f", "players.yaml", "Players file")
	cmd.Flags().Bool("strict", false, "Refuse to settle unbalanced sessions")

	return cmd
}
