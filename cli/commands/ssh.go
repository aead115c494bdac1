package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yourusername/runx/core/runner"
	"github.com/yourusername/runx/pkg/utils"
)

// NewSSHCommand creates the ssh command
func NewSSHCommand(cli *CLI) *cobra.Command {
	var (
		user      string
		hostAddr  string
		keyPath   string
		remoteDir string
	)

	cmd := &cobra.Command{
		Use:   "ssh [profile] [command...]",
		Short: "Run a command on a remote host",
		Long: `Run a command on a remote host over ssh with key-based auth. The
target comes from a named host profile in the config, or from the
--user/--host/--key flags. The remote side changes into the target
directory (home by default), sources the shell profile and runs the
command.

Values are interpolated into the ssh invocation verbatim; quoting them
is the caller's job.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without explicit flags the first argument names a profile
			if hostAddr == "" {
				if len(args) < 2 {
					return fmt.Errorf("usage: runx ssh <profile> <command...>")
				}
				host, err := cli.Config.GetHost(args[0])
				if err != nil {
					return err
				}
				user = host.User
				hostAddr = host.Addr
				keyPath = host.Key
				if remoteDir == "" {
					remoteDir = host.Dir
				}
				args = args[1:]
			}
			if user == "" || keyPath == "" {
				return fmt.Errorf("remote user and key are required")
			}

			command := strings.Join(args, " ")
			keyPath = utils.ExpandHome(keyPath)

			composed := runner.ComposeSSH(user, hostAddr, keyPath, command, remoteDir)
			if verbose {
				cli.Output.Debug(composed)
			}

			res := cli.Runner.SSH(user, hostAddr, keyPath, command, remoteDir)
			cli.record("ssh", composed, res)

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

	cmd.Flags().StringVarP(&user, "user", "u", "", "remote user")
	cmd.Flags().StringVarP(&hostAddr, "host", "H", "", "remote host address")
	cmd.Flags().StringVarP(&keyPath, "key", "i", "", "private key path")
	cmd.Flags().StringVar(&remoteDir, "remote-dir", "", "remote working directory (default ~)")

	return cmd
}
