package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jpalmerr/serverboard/internal/poller"
	"github.com/jpalmerr/serverboard/internal/tui"
)

// newWatchCmd runs the terminal dashboard.
func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Show a live board in the terminal",
		Long: `Poll the source and keep a card per server on screen in the terminal.

The terminal owns stdout, so logs are discarded unless --log-file is set.

Keys:
  r       fetch now
  q       quit

Example:
  serverboard watch --url http://127.0.0.1:5000/api/servers
  SERVERBOARD_URL=http://127.0.0.1:5000/api/servers serverboard watch --locale zh`,
		RunE: runWatch,
	}

	addClientFlags(cmd)
	cmd.Flags().String("log-file", "", "append JSON logs to this file")
	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	settings, err := loadClientSettings(cmd)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("watch needs a terminal; use render for one-shot output")
	}

	var logOut io.Writer = io.Discard
	if path, _ := cmd.Flags().GetString("log-file"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer func() { _ = f.Close() }()
		logOut = f
	}
	logger := newLogger(logOut, slog.LevelDebug)

	scheduler := poller.NewScheduler(settings.URL, settings.Interval, settings.Timeout, logger)
	scheduler.Start(cmd.Context())
	defer scheduler.Stop()

	model := tui.NewModel(scheduler,
		tui.WithTitle(settings.Title),
		tui.WithLabels(settings.Labels),
		tui.WithLocation(settings.Location),
		tui.WithLogger(logger),
	)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("terminal dashboard failed: %w", err)
	}
	return nil
}
