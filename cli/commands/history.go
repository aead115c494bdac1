package commands

import (
	"github.com/spf13/cobra"

	"github.com/yourusername/runx/internal/tui"
)

var (
	historyLimit       int
	historyInteractive bool
)

// NewHistoryCommand creates the history command
func NewHistoryCommand(cli *CLI) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show invocation history",
		Long:  `Display past run, exec and ssh invocations and their outcomes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := cli.History.List(historyLimit)
			if err != nil {
				return err
			}

			if historyInteractive {
				return tui.Browse(records)
			}

			cli.Output.ShowHistory(records)
			return nil
		},
	}

	cmd.Flags().IntVar(&historyLimit, "limit", 20, "number of history items to show")
	cmd.Flags().BoolVar(&historyInteractive, "interactive", false, "browse history in a TUI")

	cmd.AddCommand(newHistoryClearCommand(cli))

	return cmd
}

// newHistoryClearCommand creates the history clear command
func newHistoryClearCommand(cli *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear invocation history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.History.Clear(); err != nil {
				return err
			}
			cli.Output.Success("History cleared")
			return nil
		},
	}
}
