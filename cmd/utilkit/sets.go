package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/utilkit/pkg/sets"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Set operations over comma-separated lists",
	Long: `Treats each argument as a comma-separated list of members and prints the
result in first-appearance order.`,
}

func newSetCmd(name, short string, op func(a, b []string) []string) *cobra.Command {
	return &cobra.Command{
		Use:     name + " <a> <b>",
		Short:   short,
		Example: fmt.Sprintf("  utilkit set %s 1,2,3 2,3,4", name),
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := op(splitList(args[0]), splitList(args[1]))
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(result, ","))
			return nil
		},
	}
}

func init() {
	setCmd.AddCommand(
		newSetCmd("intersection", "Members present in both lists", sets.Intersection[string]),
		newSetCmd("union", "Members present in either list", sets.Union[string]),
		newSetCmd("difference", "Members of a that are not in b", sets.Difference[string]),
	)
	rootCmd.AddCommand(setCmd)
}

func splitList(arg string) []string {
	var items []string
	for _, item := range strings.Split(arg, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
