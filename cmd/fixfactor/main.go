// Command fixfactor replays a workload of fraction operations at a
// candidate fixed denominator and reports the least multiplier that would
// make every operation in the workload exact. Run representative workloads
// through it before baking a denominator into a rational profile.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"ratgeo/src/rational"
)

// sweepPolicy reads its denominator from a package variable installed once
// at startup, before any Rational is built. This is the run-time analogue
// of defining a profile per denominator: one process, one profile.
type sweepPolicy struct{}

var sweepDenominator int64

func (sweepPolicy) Denominator() int64  { return sweepDenominator }
func (sweepPolicy) ReportInexact() bool { return true }
func (sweepPolicy) Unguarded() bool     { return false }

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var denominator int64
	cmd := &cobra.Command{
		Use:           "fixfactor [workload file]",
		Short:         "find the denominator multiplier that makes a workload exact",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if denominator <= 0 {
				return fmt.Errorf("--denominator must be positive, got %d", denominator)
			}
			sweepDenominator = denominator

			in := os.Stdin
			name := "stdin"
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in, name = f, args[0]
			}

			workload, err := parseWorkload(in, name)
			if err != nil {
				return err
			}

			running := int64(1)
			violations, err := sweep(log, workload, &running)
			if err != nil {
				return err
			}
			if violations > 0 {
				return fmt.Errorf("denominator %d is short by a factor of %d: %d of %d operations inexact, use %d",
					denominator, running, violations, len(workload), denominator*running)
			}
			log.Info().
				Int64("denominator", denominator).
				Int("operations", len(workload)).
				Msg("workload is exact")
			return nil
		},
	}
	cmd.Flags().Int64VarP(&denominator, "denominator", "d", 0, "candidate fixed denominator")
	_ = cmd.MarkFlagRequired("denominator")

	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("sweep failed")
		os.Exit(1)
	}
}

// sweep replays the workload and folds every violation's fix factor into
// running. It returns the violation count, or an error when the workload
// contains an operation no denominator can fix: a fix factor of 0 means the
// divisor itself was zero, and folding it in would zero the accumulator.
func sweep(log zerolog.Logger, workload []instruction, running *int64) (int, error) {
	violations := 0
	for _, ins := range workload {
		err := replay(ins)
		if err == nil {
			continue
		}
		var inexact *rational.InexactError[int64]
		if !errors.As(err, &inexact) {
			return violations, fmt.Errorf("%s:%d: %w", ins.source, ins.sourceLine, err)
		}
		if inexact.MinimumFixFactor() == 0 {
			return violations, fmt.Errorf("%s:%d: %w", ins.source, ins.sourceLine, inexact)
		}
		inexact.AccumulateFixFactor(running)
		violations++
		log.Warn().
			Str("source", ins.source).
			Int("line", ins.sourceLine).
			Str("kind", inexact.Kind.String()).
			Str("op", inexact.Op).
			Int64("fix_factor", inexact.MinimumFixFactor()).
			Int64("running", *running).
			Msg("inexact operation")
	}
	return violations, nil
}

func replay(ins instruction) error {
	switch ins.op {
	case "frac":
		_, err := rational.FromFraction[sweepPolicy](ins.leftNum, ins.leftDen)
		return err
	case "mul", "div":
		l, err := rational.FromFraction[sweepPolicy](ins.leftNum, ins.leftDen)
		if err != nil {
			return err
		}
		r, err := rational.FromFraction[sweepPolicy](ins.rightNum, ins.rightDen)
		if err != nil {
			return err
		}
		if ins.op == "mul" {
			_, err = l.Mul(r)
		} else {
			_, err = l.Div(r)
		}
		return err
	case "divint":
		l, err := rational.FromFraction[sweepPolicy](ins.leftNum, ins.leftDen)
		if err != nil {
			return err
		}
		_, err = l.DivInt(ins.rightNum)
		return err
	case "intdiv":
		r, err := rational.FromFraction[sweepPolicy](ins.rightNum, ins.rightDen)
		if err != nil {
			return err
		}
		_, err = rational.IntDivide(ins.leftNum, r)
		return err
	}
	return fmt.Errorf("unknown operation %q", ins.op)
}
