// Package root contains the root command for the application.
package root

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"fjacquet/camt-import/internal/config"
)

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// Cfg is the loaded application configuration, available to all
	// subcommands after PersistentPreRun.
	Cfg *config.Config

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "camt-import",
		Short: "Import CAMT.053 bank statements into a local ledger database.",
		Long: `camt-import reads CAMT.053 XML statement files, reconciles them against a
local database of accounts, statements and movements, and converts Belgian
national account numbers into IBAN/BIC pairs.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to camt-import!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				return err
			}
			Cfg = cfg
			applyLogConfig(cfg)
			return nil
		},
	}
)

// applyLogConfig lets config.yaml / CAMT_ env vars adjust the logger beyond
// the plain LOG_LEVEL bootstrap.
func applyLogConfig(cfg *config.Config) {
	if level, err := logrus.ParseLevel(strings.ToLower(cfg.Log.Level)); err == nil {
		Log.SetLevel(level)
	}
	if strings.EqualFold(cfg.Log.Format, "json") {
		Log.SetFormatter(&logrus.JSONFormatter{})
	}
}

// Init initializes the root command flags.
func Init() {
	Cmd.PersistentFlags().String("database", "", "Path to the SQLite database (overrides configuration)")
}

// DatabasePath returns the database location, preferring the --database flag
// over the configuration file.
func DatabasePath() string {
	if flag := Cmd.PersistentFlags().Lookup("database"); flag != nil && flag.Changed {
		return flag.Value.String()
	}
	return Cfg.Database.Path
}
