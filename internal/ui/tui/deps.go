package tui

import (
	"context"
	"log/slog"

	"github.com/atyhamos/tp/internal/domain"
	"github.com/atyhamos/tp/internal/usecase/command"
)

// Executor is the part of the application logic the TUI drives.
type Executor interface {
	Execute(ctx context.Context, text string) (command.Result, error)
	FilteredTutees() []domain.Tutee
	StorePath() string
}

// Deps is what the TUI needs from the rest of the program.
type Deps struct {
	Logic         Executor
	WorkspaceRoot string

	Logger *slog.Logger
	Debug  bool
}
