package cli

import (
	"io"

	"pomodoro/internal/core/pomodoro"
	"pomodoro/internal/ui/terminal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newTUICmd(config *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the timer in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, _, err := resolveSettings(config)
			if err != nil {
				return err
			}
			// Console logging would tear the full-screen view; only a log file is used.
			logger, closeLog, err := newLogger(io.Discard, config)
			if err != nil {
				return err
			}
			defer closeLog()

			controller := pomodoro.NewController(settings.TimerConfig(), pomodoro.Options{Logger: logger})
			defer controller.Close()
			events := controller.Subscribe(16)

			program := tea.NewProgram(terminal.New(controller, events), tea.WithAltScreen())
			_, err = program.Run()
			return err
		},
	}
}
