package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"svw.info/kropki/internal/adapters/text"
	"svw.info/kropki/internal/csp"
	"svw.info/kropki/internal/domain"
	"svw.info/kropki/internal/ports"
	"svw.info/kropki/internal/solver"
)

// exit code 2 marks an unsatisfiable puzzle, distinct from usage or I/O
// failures (1) and success (0).
const exitUnsatisfiable = 2

func buildSolver(backend, propagator string, heuristics bool) (ports.Solver, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "sat":
		return solver.NewSATSolver(), nil
	case "", "csp":
		var p domain.Propagator
		switch strings.ToLower(strings.TrimSpace(propagator)) {
		case "", "fc", "forward-checking":
			p = domain.ForwardChecking
		case "gac":
			p = domain.GAC
		default:
			return nil, fmt.Errorf("unknown propagator %q: want fc or gac", propagator)
		}
		return solver.NewCSPSolver(p, heuristics), nil
	default:
		return nil, fmt.Errorf("unknown solver %q: want csp or sat", backend)
	}
}

func newSolveCmd() *cobra.Command {
	var (
		backend    string
		propagator string
		heuristics bool
	)
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve a puzzle read from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			p, err := text.ParsePuzzle(in)
			if err != nil {
				return fmt.Errorf("parsing puzzle: %w", err)
			}
			s, err := buildSolver(backend, propagator, heuristics)
			if err != nil {
				return err
			}
			out, st, err := s.Solve(cmd.Context(), &p.Board, p.Dots)
			log.WithFields(log.Fields{
				"nodes":      st.Nodes,
				"backtracks": st.Backtracks,
				"prunes":     st.Prunes,
				"dur":        st.Duration,
			}).Debug("search finished")
			if errors.Is(err, csp.ErrUnsatisfiable) {
				fmt.Fprintln(cmd.OutOrStdout(), "UNSATISFIABLE")
				os.Exit(exitUnsatisfiable)
			}
			if err != nil {
				return err
			}
			return text.RenderBoard(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&backend, "solver", "csp", "solving backend: csp|sat")
	cmd.Flags().StringVar(&propagator, "propagator", "fc", "csp propagator: fc|gac")
	cmd.Flags().BoolVar(&heuristics, "heuristics", true, "use MRV+LCV ordering instead of fixed order")
	return cmd
}
