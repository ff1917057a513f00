package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/utilkit/internal/presentation/tui"
	"github.com/aretw0/utilkit/pkg/domain"
	"github.com/aretw0/utilkit/pkg/numeric"
	"github.com/spf13/cobra"
)

var primeCmd = &cobra.Command{
	Use:   "prime <n>",
	Short: "Check whether n is prime",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseInt(args[0])
		if err != nil {
			return err
		}
		s := tui.NewStyler(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), s.Verdict(numeric.IsPrime(n)))
		return nil
	},
}

var primesCmd = &cobra.Command{
	Use:   "primes <limit>",
	Short: "List every prime up to limit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, err := parseInt(args[0])
		if err != nil {
			return err
		}
		primes, err := numeric.PrimesChecked(limit)
		if err != nil {
			return err
		}
		words := make([]string, len(primes))
		for i, p := range primes {
			words[i] = strconv.Itoa(p)
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(words, " "))
		return nil
	},
}

var factorialCmd = &cobra.Command{
	Use:   "factorial <n>",
	Short: "Compute n! with arbitrary precision",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseInt(args[0])
		if err != nil {
			return err
		}
		f, err := numeric.Factorial(n)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), f.String())
		return nil
	},
}

var distanceCmd = &cobra.Command{
	Use:     "distance <x1> <y1> <x2> <y2>",
	Short:   "Euclidean distance between two points",
	Example: "  utilkit distance 0 0 3 4\n  utilkit distance -- -1 -1 2 3",
	Args:    cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		var coords [4]float64
		for i, arg := range args {
			v, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return fmt.Errorf("%w: %q is not a number", domain.ErrInvalidArgument, arg)
			}
			coords[i] = v
		}
		d := numeric.Distance(
			numeric.Point{X: coords[0], Y: coords[1]},
			numeric.Point{X: coords[2], Y: coords[3]},
		)
		fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(d, 'g', -1, 64))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(primeCmd, primesCmd, factorialCmd, distanceCmd)
}

func parseInt(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", domain.ErrInvalidArgument, arg)
	}
	return n, nil
}
