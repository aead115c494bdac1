package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/yourusername/runx/core/runner"
)

// NewRunCommand creates the run command
func NewRunCommand(cli *CLI) *cobra.Command {
	var usePTY bool

	cmd := &cobra.Command{
		Use:   "run [command...]",
		Short: "Run a command with live terminal output",
		Long: `Run a command with stdin, stdout and stderr attached to your
terminal. Use --pty for programs that need a real terminal (editors,
pagers, TUIs).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			command := strings.Join(args, " ")

			pty := usePTY || cli.Config.UsePTY
			if verbose && pty {
				cli.Output.Debug("running behind a pseudo-terminal")
			}

			var res runner.Result
			if pty {
				res = cli.Runner.SpawnPTY(command)
			} else {
				res = cli.Runner.SpawnSync(command)
			}

			cli.record("run", command, res)

			if !res.Success {
				cli.Output.Error(res.Message)
				return ErrCommandFailed
			}
			if verbose {
				cli.Output.Success(res.Message)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&usePTY, "pty", false, "run the command behind a pseudo-terminal")

	return cmd
}
