package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iwvelando/finance-calculators/internal/output"
)

func listCmd(a *app) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available calculators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			calculators := a.registry.List(category)
			if len(calculators) == 0 && category != "" {
				return fmt.Errorf("no calculators in category %q (categories: %v)", category, a.registry.Categories())
			}
			if a.jsonOutput() {
				return output.JSON(cmd.OutOrStdout(), calculators)
			}
			return output.Catalog(cmd.OutOrStdout(), calculators)
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "only list calculators in this category")
	return cmd
}

func describeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <calculator>",
		Short: "Show a calculator's inputs and their defaults",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.registry.Lookup(args[0])
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				return output.JSON(cmd.OutOrStdout(), c)
			}
			return output.Schema(cmd.OutOrStdout(), c)
		},
	}
}
