package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

// NewExecCommand creates the exec command
func NewExecCommand(cli *CLI) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec [command...]",
		Short: "Run a command and capture its output",
		Long: `Run a command with stdout and stderr captured. On success the
trimmed stdout is printed; on failure the trimmed stderr. Stderr from a
succeeding command is only shown with --verbose.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			command := strings.Join(args, " ")

			res := cli.Runner.Exec(command)
			cli.record("exec", command, res)
			cli.Output.ShowResult(res)

			if !res.Success {
				return ErrCommandFailed
			}
			return nil
		},
	}

	return cmd
}
