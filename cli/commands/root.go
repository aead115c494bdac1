package commands

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yourusername/runx/cli/output"
	"github.com/yourusername/runx/core/config"
	"github.com/yourusername/runx/core/history"
	"github.com/yourusername/runx/core/runner"
	"github.com/yourusername/runx/pkg/utils"
)

// ErrCommandFailed marks an invocation whose result was already shown;
// main maps it to a non-zero exit without printing anything further.
var ErrCommandFailed = errors.New("command failed")

// CLI holds the application state
type CLI struct {
	Config  *config.Config
	Runner  *runner.Runner
	History *history.Store
	Output  *output.Formatter
}

// Global flags
var (
	cfgFile string
	workDir string
	noColor bool
	verbose bool
)

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	cli := &CLI{}

	rootCmd := &cobra.Command{
		Use:   "runx",
		Short: "runx - run local and remote commands",
		Long: `runx runs shell commands locally or over SSH and reports a uniform
success/failure result.

Examples:
  runx run "make build"
  runx run --pty vim notes.md
  runx exec "git rev-parse HEAD"
  runx ssh prod "systemctl restart app"
  runx history --limit 10`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.initConfig(); err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}
			cli.Output = output.NewFormatter(!noColor, verbose)
			cli.initComponents()
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.runx/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&workDir, "dir", "", "working directory for the command")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Add subcommands
	rootCmd.AddCommand(
		NewRunCommand(cli),
		NewExecCommand(cli),
		NewSSHCommand(cli),
		NewHostsCommand(cli),
		NewHistoryCommand(cli),
		NewVersionCommand(),
	)

	return rootCmd
}

// initConfig initializes the configuration
func (cli *CLI) initConfig() error {
	configDir, err := utils.ConfigDir()
	if err != nil {
		return err
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(configDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("RUNX")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			cfg, loadErr := config.Load(filepath.Join(configDir, "config.yaml"))
			if loadErr != nil {
				return loadErr
			}
			cli.Config = cfg
			return nil
		}
		return err
	}

	cfg, err := config.Load(viper.ConfigFileUsed())
	if err != nil {
		return err
	}
	cli.Config = cfg
	return nil
}

// initComponents initializes the runner and history store
func (cli *CLI) initComponents() {
	dir := workDir
	if dir == "" && cli.Config != nil {
		dir = cli.Config.WorkDir
	}

	cli.Runner = runner.New().
		WithDir(dir).
		WithDiagnostic(func(msg string) {
			cli.Output.Debug("stderr: " + msg)
		})

	if configDir, err := utils.ConfigDir(); err == nil {
		cli.History = history.NewStore(filepath.Join(configDir, "history.yaml"))
	}
}

// record appends an invocation to history. Best effort: persistence
// problems never change the invocation's outcome.
func (cli *CLI) record(mode, command string, res runner.Result) {
	if cli.History == nil {
		return
	}
	if _, err := cli.History.Append(mode, command, res); err != nil {
		cli.Output.Debug("history: " + err.Error())
	}
}
