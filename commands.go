// Copyright © 2020 The numtheory Authors
//
// This file is part of numtheory. The full numtheory copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package main

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/ipfs/go-log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/eulerlab/numtheory/common"
	"github.com/eulerlab/numtheory/common/primes"
)

type app struct {
	out       io.Writer
	logLevel  string
	growth    string
	increment int64
	stats     bool
	engine    *primes.Engine
}

func newRootCommand(out io.Writer) *cobra.Command {
	a := &app{out: out}

	cmd := &cobra.Command{
		Use:               "numtheory",
		Short:             "Prime queries backed by an incremental prime cache",
		Long:              "numtheory answers primality, factorization and prime enumeration queries. All queries of one invocation share a single prime cache.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setUp,
		PersistentPostRun: a.printStats,
	}
	cmd.SetOut(out)

	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&a.growth, "growth", "doubling", "cache growth policy (doubling, tripling, fixed)")
	cmd.PersistentFlags().Int64Var(&a.increment, "increment", 1000, "scan distance per round for the fixed growth policy")
	cmd.PersistentFlags().BoolVar(&a.stats, "stats", false, "print engine work counters after the command")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "isprime [--] N...",
			Short: "Test numbers for primality",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return eachInt(args, func(n int64) error {
					fmt.Fprintf(a.out, "%d %t\n", n, a.engine.IsPrime(n))
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "factor [--] N...",
			Short: "Print the prime factors of numbers, with multiplicity",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return eachInt(args, func(n int64) error {
					f, err := a.engine.Factorize(n)
					if err != nil {
						return err
					}
					fmt.Fprintf(a.out, "%d: %s\n", n, join(f.All()))
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "largest [--] N...",
			Short: "Print the largest prime factor of numbers",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return eachInt(args, func(n int64) error {
					p, err := a.engine.LargestPrimeFactor(n)
					if err != nil {
						return err
					}
					fmt.Fprintf(a.out, "%d: %d\n", n, p)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "nth N...",
			Short: "Print the Nth prime, counting 2 as the first",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return eachInt(args, func(n int64) error {
					if n > int64(maxInt) {
						return errors.Wrapf(primes.ErrInvalidArgument, "index %d too large", n)
					}
					p, err := a.engine.NthPrime(int(n))
					if err != nil {
						return err
					}
					fmt.Fprintf(a.out, "%d: %d\n", n, p)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "primes [--] BOUND",
			Short: "List the primes up to BOUND",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return eachInt(args, func(bound int64) error {
					seq, err := a.engine.PrimesUpTo(bound)
					if err != nil {
						return err
					}
					fmt.Fprintln(a.out, join(seq.List()))
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "sum [--] BOUND",
			Short: "Sum the primes up to BOUND",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return eachInt(args, func(bound int64) error {
					sum, err := a.engine.SumOfPrimesUpTo(bound)
					if err != nil {
						return err
					}
					fmt.Fprintln(a.out, sum)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "count [--] BOUND",
			Short: "Count the primes up to BOUND",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return eachInt(args, func(bound int64) error {
					n, err := a.engine.PrimeCount(bound)
					if err != nil {
						return err
					}
					fmt.Fprintln(a.out, n)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "next [--] N...",
			Short: "Print the smallest prime greater than N",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return eachInt(args, func(n int64) error {
					p, err := a.engine.NextPrime(n)
					if err != nil {
						return err
					}
					fmt.Fprintf(a.out, "%d: %d\n", n, p)
					return nil
				})
			},
		},
	)
	// Numbers after the first one may be negative. A leading negative number
	// has to follow "--".
	for _, sub := range cmd.Commands() {
		sub.Flags().SetInterspersed(false)
	}
	cmd.SetFlagErrorFunc(flagError)
	return cmd
}

const maxInt = int(^uint(0) >> 1)

var digitShorthand = regexp.MustCompile(`unknown shorthand flag: '[0-9]'`)

func flagError(c *cobra.Command, err error) error {
	if digitShorthand.MatchString(err.Error()) {
		return errors.Wrapf(err, "negative numbers go after --, as in `%s -- -7`", c.CommandPath())
	}
	return err
}

func (a *app) setUp(_ *cobra.Command, _ []string) error {
	if err := log.SetLogLevel(common.LoggerName, a.logLevel); err != nil {
		return errors.Wrapf(err, "log level %q", a.logLevel)
	}
	policy, err := a.policy()
	if err != nil {
		return err
	}
	a.engine = primes.New(primes.WithGrowthPolicy(policy))
	return nil
}

func (a *app) policy() (primes.GrowthPolicy, error) {
	switch a.growth {
	case "doubling":
		return primes.Doubling, nil
	case "tripling":
		return primes.Tripling, nil
	case "fixed":
		if a.increment < 2 {
			return nil, errors.Wrapf(primes.ErrInvalidArgument, "increment must be at least 2, got %d", a.increment)
		}
		return primes.FixedIncrement(a.increment), nil
	}
	return nil, errors.Wrapf(primes.ErrInvalidArgument, "unknown growth policy %q", a.growth)
}

func (a *app) printStats(_ *cobra.Command, _ []string) {
	if a.stats && a.engine != nil {
		fmt.Fprintln(a.out, a.engine.Stats())
		common.Logger.Infof("prime cache holds %d primes, validated below %d", a.engine.Len(), a.engine.ValidatedBelow())
	}
}

// eachInt runs fn for every argument, going on past failures, and returns
// all of them together.
func eachInt(args []string, fn func(n int64) error) error {
	var result *multierror.Error
	for _, arg := range args {
		n, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			result = multierror.Append(result, errors.Wrapf(primes.ErrInvalidArgument, "not an int64: %q", arg))
			continue
		}
		if err := fn(n); err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "%s", arg))
		}
	}
	return result.ErrorOrNil()
}

func join(xs []int64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.FormatInt(x, 10)
	}
	return strings.Join(parts, " ")
}
