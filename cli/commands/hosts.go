package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourusername/runx/core/config"
)

// NewHostsCommand creates the hosts command
func NewHostsCommand(cli *CLI) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hosts",
		Short: "Manage SSH host profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showHosts(cli)
		},
	}

	cmd.AddCommand(
		newHostsListCommand(cli),
		newHostsAddCommand(cli),
		newHostsRemoveCommand(cli),
	)

	return cmd
}

func newHostsListCommand(cli *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured host profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showHosts(cli)
		},
	}
}

func newHostsAddCommand(cli *CLI) *cobra.Command {
	var host config.Host

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add or update a host profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if host.User == "" || host.Addr == "" || host.Key == "" {
				return fmt.Errorf("--user, --addr and --key are required")
			}
			cli.Config.AddHost(args[0], host)
			if err := cli.Config.Save(); err != nil {
				return err
			}
			cli.Output.Success(fmt.Sprintf("Host '%s' saved", args[0]))
			return nil
		},
	}

	cmd.Flags().StringVar(&host.User, "user", "", "remote user")
	cmd.Flags().StringVar(&host.Addr, "addr", "", "remote host address")
	cmd.Flags().StringVar(&host.Key, "key", "", "private key path")
	cmd.Flags().StringVar(&host.Dir, "remote-dir", "", "remote working directory (default ~)")

	return cmd
}

func newHostsRemoveCommand(cli *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "remove [name]",
		Short: "Remove a host profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.Config.RemoveHost(args[0]); err != nil {
				return err
			}
			if err := cli.Config.Save(); err != nil {
				return err
			}
			cli.Output.Success(fmt.Sprintf("Host '%s' removed", args[0]))
			return nil
		},
	}
}

// showHosts displays the configured host profiles
func showHosts(cli *CLI) error {
	names := cli.Config.ListHosts()
	if len(names) == 0 {
		cli.Output.Info("No hosts configured")
		return nil
	}

	for _, name := range names {
		host := cli.Config.Hosts[name]
		dir := host.Dir
		if dir == "" {
			dir = "~"
		}
		fmt.Printf("%-15s %s@%s  dir=%s  key=%s\n", name, host.User, host.Addr, dir, host.Key)
	}
	return nil
}
