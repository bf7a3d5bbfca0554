package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "eopgame",
		Short: "CLI for the Elevation of Privilege voice skill",
		Long: `eopgame talks to the Elevation of Privilege skill server the way a voice
assistant would, one turn per command.

The session attributes returned by each turn are kept in a local file so that
yes and no answer the question the skill last asked.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: EOPGAME_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.UserID, "user", cfg.UserID, "User ID (env: EOPGAME_USER)")
	rootCmd.PersistentFlags().StringVar(&cfg.SessionFile, "session-file", cfg.SessionFile, "Session attributes file (env: EOPGAME_SESSION_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Print request details to stderr")

	// Add subcommands
	for _, tc := range turnCommands {
		rootCmd.AddCommand(newTurnCmd(tc))
	}
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		NewOutput(cfg.Output, rootCmd.OutOrStdout(), rootCmd.ErrOrStderr()).PrintError(err)
		os.Exit(1)
	}
}

// newOutput builds the formatter for a command from the global flags
func newOutput(cmd *cobra.Command) *Output {
	out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
	out.verbose = cfg.Verbose
	return out
}
