package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"pomodoro/internal/storage"
	"pomodoro/internal/ui/preferences"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const appName = "Pomodoro"

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	config := viper.New()
	config.SetEnvPrefix("POMODORO")
	config.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:   "pomodoro",
		Short: "Work/rest countdown timer",
		Long: `Pomodoro shows a work/rest countdown with a circular progress ring.

Work and rest lengths come from settings.yaml in the user config directory
and can be overridden with flags or POMODORO_WORK / POMODORO_REST.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, configPath, err := resolveSettings(config)
			if err != nil {
				return err
			}
			logger, closeLog, err := newLogger(cmd.ErrOrStderr(), config)
			if err != nil {
				return err
			}
			defer closeLog()
			return runGUI(settings, configPath, logger)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "settings file (default <user config dir>/Pomodoro/settings.yaml)")
	flags.Int("work", 0, "work phase length in seconds (overrides settings)")
	flags.Int("rest", 0, "rest phase length in seconds (overrides settings)")
	flags.Bool("verbose", false, "log every tick")
	flags.String("log-file", "", "write logs to this file")
	for _, name := range []string{"config", "work", "rest", "verbose", "log-file"} {
		_ = config.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.AddCommand(newTUICmd(config), newVersionCmd())
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pomodoro %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
		},
	}
}

// resolveSettings loads the settings file and applies flag/env overrides.
func resolveSettings(config *viper.Viper) (preferences.Settings, string, error) {
	configPath := config.GetString("config")
	if configPath == "" {
		resolved, err := storage.ResolveConfigPath(appName)
		if err != nil {
			return preferences.DefaultSettings(), "", err
		}
		configPath = resolved
	}

	settings, err := storage.LoadSettingsFile(configPath)
	if err != nil {
		return settings, configPath, err
	}
	if work := config.GetInt("work"); work > 0 {
		settings.WorkSeconds = work
	}
	if rest := config.GetInt("rest"); rest > 0 {
		settings.RestSeconds = rest
	}
	return settings, configPath, nil
}

// newLogger builds a text logger on console, or on the log file when set.
func newLogger(console io.Writer, config *viper.Viper) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if config.GetBool("verbose") {
		level = slog.LevelDebug
	}
	handlerOptions := &slog.HandlerOptions{Level: level}

	logPath := config.GetString("log-file")
	if logPath == "" {
		return slog.New(slog.NewTextHandler(console, handlerOptions)), func() {}, nil
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(file, handlerOptions)), func() { _ = file.Close() }, nil
}
