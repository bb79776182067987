package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VISHALVISHAL29/Dashboard/internal/buildinfo"
	"github.com/VISHALVISHAL29/Dashboard/internal/config"
	"github.com/VISHALVISHAL29/Dashboard/internal/logger"
)

// rootOptions holds state shared by all subcommands after PersistentPreRunE.
// The configured logger travels on the command context.
type rootOptions struct {
	configPath string
	logLevel   string

	cfg *config.Config
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "dashboard",
		Short:   "Chemical expenditure reports from spreadsheet ledgers",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", config.FileName, "config file")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (overrides config)")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newItemsCommand(opts))
	rootCmd.AddCommand(newReportCommand(opts))
	rootCmd.AddCommand(newCompareCommand(opts))
	rootCmd.AddCommand(newExportCommand(opts))

	return rootCmd
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadOrDefault(o.configPath)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return err
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.NewFromSettings(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return fmt.Errorf("configuring logger: %w", err)
	}

	o.cfg = cfg
	cmd.SetContext(logger.WithContext(cmd.Context(), log))
	log.Debug().Str("config", o.configPath).Msg("configuration loaded")
	return nil
}
