package tui

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const commandTimeout = 10 * time.Second

// cmdExecute runs one line of input off the UI loop.
func cmdExecute(exec Executor, input string, log *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()

		res, err := exec.Execute(ctx, input)
		if err != nil {
			log.Debug("tui.command.failed", "input", input, "err", err)
		}
		return commandDoneMsg{input: input, res: res, err: err}
	}
}
