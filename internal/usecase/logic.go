package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/atyhamos/tp/internal/domain"
	"github.com/atyhamos/tp/internal/model"
	"github.com/atyhamos/tp/internal/ports"
	"github.com/atyhamos/tp/internal/usecase/command"
	"github.com/atyhamos/tp/internal/usecase/parser"
)

// MessageSaveFailed prefixes the error returned when a changed roster cannot be written.
const MessageSaveFailed = "Could not save data to file: "

// CommandParser turns one line of input into a command.
type CommandParser interface {
	Parse(input string) (command.Command, error)
}

// Logic runs user input against the model and persists the roster after
// every command that changed it.
type Logic struct {
	model  model.Model
	store  ports.TrackOStore
	parser CommandParser
	log    *slog.Logger
}

// Option configures a Logic.
type Option func(*Logic)

func WithLogger(l *slog.Logger) Option {
	return func(lg *Logic) {
		if l != nil {
			lg.log = l
		}
	}
}

func WithParser(p CommandParser) Option {
	return func(lg *Logic) {
		if p != nil {
			lg.parser = p
		}
	}
}

// NewLogic uses the default parser and a discard logger unless options say otherwise.
func NewLogic(m model.Model, store ports.TrackOStore, opts ...Option) *Logic {
	l := &Logic{
		model:  m,
		store:  store,
		parser: parser.New(),
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Execute parses text, runs the command and saves the roster if it changed.
// When saving fails the command's effect stays in memory and the returned
// error is an I/O error.
func (l *Logic) Execute(ctx context.Context, text string) (command.Result, error) {
	if err := ctx.Err(); err != nil {
		return command.Result{}, err
	}

	cmd, err := l.parser.Parse(text)
	if err != nil {
		l.log.Debug("command.parse.failed", "input", text, "err", err)
		return command.Result{}, err
	}

	before := l.model.TrackO()
	start := time.Now()
	res, err := cmd.Execute(l.model)
	if err != nil {
		l.log.Debug("command.failed", "input", text, "err", err)
		return command.Result{}, err
	}

	after := l.model.TrackO()
	if !before.Equal(after) {
		if err := l.store.SaveTrackO(after); err != nil {
			l.log.Error("storage.save.failed", "path", l.store.Path(), "err", err)
			return res, &domain.DomainError{
				Kind:  domain.KindIO,
				Msg:   MessageSaveFailed + err.Error(),
				Cause: err,
			}
		}
		l.log.Debug("storage.saved", "path", l.store.Path(), "tutees", after.Len())
	}

	l.log.Info("command.executed",
		"input", text,
		"visible", len(l.model.FilteredTutees()),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}

func (l *Logic) FilteredTutees() []domain.Tutee { return l.model.FilteredTutees() }
func (l *Logic) Model() model.Model             { return l.model }
func (l *Logic) StorePath() string              { return l.store.Path() }

// Open loads the roster behind store. Nothing saved yet means the sample
// roster; a file that cannot be read is an error and the caller should stop.
func Open(store ports.TrackOStore, prefs domain.UserPrefs, log *slog.Logger) (*model.Manager, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	r, found, err := store.ReadTrackO()
	if err != nil {
		log.Error("storage.load.failed", "path", store.Path(), "err", err)
		return nil, err
	}
	if !found {
		log.Info("storage.sample_data", "path", store.Path())
		r = SampleTrackO()
	} else {
		log.Info("storage.loaded", "path", store.Path(), "tutees", r.Len())
	}
	return model.NewManager(r, prefs), nil
}
