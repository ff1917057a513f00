package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/utilkit/internal/presentation/tui"
	"github.com/aretw0/utilkit/pkg/text"
	"github.com/spf13/cobra"
)

var passwordCmd = &cobra.Command{
	Use:   "password",
	Short: "Generate a random password",
	Long: `Generates a password from crypto/rand. The length defaults to the
password_length setting (10 unless configured).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		length := cfg.PasswordLength
		if cmd.Flags().Changed("length") {
			length, _ = cmd.Flags().GetInt("length")
		}
		noLetters, _ := cmd.Flags().GetBool("no-letters")
		noDigits, _ := cmd.Flags().GetBool("no-digits")
		noSymbols, _ := cmd.Flags().GetBool("no-symbols")
		charset, _ := cmd.Flags().GetString("charset")

		opts := []text.PasswordOption{
			text.WithLetters(!noLetters),
			text.WithDigits(!noDigits),
			text.WithSymbols(!noSymbols),
		}
		if charset != "" {
			opts = append(opts, text.WithCharset(charset))
		}

		pw, err := text.RandomPassword(length, opts...)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), pw)
		return nil
	},
}

var caseCmd = &cobra.Command{
	Use:   "case",
	Short: "Convert between camelCase and snake_case",
}

var caseSnakeCmd = &cobra.Command{
	Use:     "snake <text>",
	Short:   "Convert camelCase to snake_case",
	Example: "  utilkit case snake parseHTTPRequest",
	Args:    cobra.MinimumNArgs(1),
	RunE:    printText(text.CamelToSnake),
}

var caseCamelCmd = &cobra.Command{
	Use:     "camel <text>",
	Short:   "Convert snake_case to lowerCamelCase",
	Example: "  utilkit case camel parse_http_request",
	Args:    cobra.MinimumNArgs(1),
	RunE:    printText(text.SnakeToCamel),
}

var reverseCmd = &cobra.Command{
	Use:   "reverse <text>",
	Short: "Reverse a string",
	Args:  cobra.MinimumNArgs(1),
	RunE:  printText(text.Reverse),
}

var vowelsCmd = &cobra.Command{
	Use:   "vowels <text>",
	Short: "Count the vowels of a string",
	Args:  cobra.MinimumNArgs(1),
	RunE: printText(func(s string) string {
		return fmt.Sprint(text.CountVowels(s))
	}),
}

var dedupeCmd = &cobra.Command{
	Use:   "dedupe <text>",
	Short: "Remove repeated characters, keeping the first of each",
	Args:  cobra.MinimumNArgs(1),
	RunE:  printText(text.RemoveDuplicates),
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize <text>",
	Short: "Strip accents and lower-case",
	Args:  cobra.MinimumNArgs(1),
	RunE:  printText(text.Normalize),
}

var palindromeCmd = &cobra.Command{
	Use:   "palindrome <text>",
	Short: "Check whether the text is a palindrome",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := tui.NewStyler(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), s.Verdict(text.IsPalindrome(joinArgs(args))))
		return nil
	},
}

func init() {
	passwordCmd.Flags().Int("length", text.DefaultPasswordLength, "Password length (default from config)")
	passwordCmd.Flags().Bool("no-letters", false, "Exclude ASCII letters")
	passwordCmd.Flags().Bool("no-digits", false, "Exclude digits")
	passwordCmd.Flags().Bool("no-symbols", false, "Exclude punctuation")
	passwordCmd.Flags().String("charset", "", "Explicit alphabet, overrides the exclusions")

	caseCmd.AddCommand(caseSnakeCmd, caseCamelCmd)
	rootCmd.AddCommand(passwordCmd, caseCmd, reverseCmd, vowelsCmd, dedupeCmd, normalizeCmd, palindromeCmd)
}

// joinArgs treats unquoted words as a single text argument.
func joinArgs(args []string) string {
	return strings.Join(args, " ")
}

func printText(fn func(string) string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), fn(joinArgs(args)))
		return nil
	}
}
