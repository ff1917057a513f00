package main

import (
	"fmt"

	"github.com/aretw0/utilkit/internal/presentation/tui"
	"github.com/aretw0/utilkit/pkg/hashing"
	"github.com/spf13/cobra"
)

var hashCmd = &cobra.Command{
	Use:   "hash <text>",
	Short: "Print the hex digest of a string",
	Long: `Prints the hex digest of the text. The algorithm defaults to the
hash_algorithm setting (md5 unless configured). Use --list to see every
supported algorithm.`,
	Example: "  utilkit hash --algorithm sha-256 HelloWorld",
	RunE: func(cmd *cobra.Command, args []string) error {
		if list, _ := cmd.Flags().GetBool("list"); list {
			for _, alg := range hashing.Algorithms() {
				fmt.Fprintln(cmd.OutOrStdout(), alg)
			}
			return nil
		}
		if len(args) == 0 {
			return fmt.Errorf("requires the text to hash")
		}

		alg := cfg.Algorithm()
		if name, _ := cmd.Flags().GetString("algorithm"); name != "" {
			var err error
			if alg, err = hashing.ParseAlgorithm(name); err != nil {
				return err
			}
		}

		digest, err := hashing.Sum(joinArgs(args), alg)
		if err != nil {
			return err
		}
		logger.Debug("Digest computed", "algorithm", alg)

		s := tui.NewStyler(cmd.OutOrStdout())
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", digest, s.Faint(alg.String()))
		return nil
	},
}

func init() {
	hashCmd.Flags().StringP("algorithm", "a", "", "Digest algorithm (default from config)")
	hashCmd.Flags().Bool("list", false, "List supported algorithms")
	rootCmd.AddCommand(hashCmd)
}
