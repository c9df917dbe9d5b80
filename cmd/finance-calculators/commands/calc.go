package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iwvelando/finance-calculators/internal/output"
)

// calc <calculator> [key=value ...]: run one calculator.
func calcCmd(a *app) *cobra.Command {
	var sets []string
	cmd := &cobra.Command{
		Use:   "calc <calculator> [key=value ...]",
		Short: "Run a calculator",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := parseAssignments(append(append([]string(nil), args[1:]...), sets...))
			if err != nil {
				return err
			}

			result, err := a.registry.Compute(args[0], inputs)
			if err != nil {
				return err
			}
			a.logger.Debug("calculation finished",
				zap.String("op", "commands.calc"),
				zap.String("calculator", result.Calculator),
				zap.Int("notes", len(result.Notes)),
			)

			if a.jsonOutput() {
				return output.JSON(cmd.OutOrStdout(), result)
			}
			return output.Pretty(cmd.OutOrStdout(), result, a.conf.Output.CurrencySymbol)
		},
	}
	cmd.Long = "Run a calculator. Inputs are given as key=value pairs, either as arguments " +
		"or with --set; missing inputs take their defaults (see describe)."
	cmd.Example = "  finance-calculators calc annuity --set pot=150000 --set rate=5\n" +
		"  finance-calculators calc take-home-pay salary=45000 studentLoans=plan2 -o json"
	cmd.Flags().StringArrayVarP(&sets, "set", "s", nil, "input as key=value (repeatable)")
	return cmd
}

// parseAssignments turns key=value pairs into raw inputs. Later pairs win.
func parseAssignments(pairs []string) (map[string]string, error) {
	inputs := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid input %q: expected key=value", pair)
		}
		inputs[key] = strings.TrimSpace(value)
	}
	return inputs, nil
}
