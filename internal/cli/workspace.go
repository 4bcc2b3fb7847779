package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/atyhamos/tp/internal/domain"
	"github.com/atyhamos/tp/internal/infra/config"
	"github.com/atyhamos/tp/internal/infra/jsonstore"
	"github.com/atyhamos/tp/internal/infra/logger"
	"github.com/atyhamos/tp/internal/infra/workspacefinder"
	"github.com/atyhamos/tp/internal/ports"
	"github.com/atyhamos/tp/internal/usecase"
)

// session is everything one invocation needs: the resolved workspace, its
// prefs, the roster store, and the logic on top of them.
type session struct {
	root  string
	prefs domain.UserPrefs
	debug bool

	store *jsonstore.JSONStore
	logic *usecase.Logic
	log   *slog.Logger

	cleanup func() error
}

func openSession(opts *globalOpts) (*session, error) {
	root, err := resolveWorkspaceRoot(opts.workspace)
	if err != nil {
		return nil, err
	}

	prefs, err := config.NewLoader().LoadPrefs(root)
	if err != nil {
		return nil, err
	}
	debug := opts.debug || prefs.Debug

	cleanup, lerr := logger.Setup(logger.Config{Root: root, Debug: debug})
	log := logger.L()
	if lerr != nil {
		fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", lerr)
	}

	store := jsonstore.NewJSONStore(prefs.DataFile)
	m, err := usecase.Open(store, prefs, logger.For("storage"))
	if err != nil {
		if cleanup != nil {
			_ = cleanup()
		}
		return nil, err
	}

	return &session{
		root:    root,
		prefs:   prefs,
		debug:   debug,
		store:   store,
		logic:   usecase.NewLogic(m, store, usecase.WithLogger(logger.For("logic"))),
		log:     log,
		cleanup: cleanup,
	}, nil
}

func (s *session) Close() {
	if s.cleanup != nil {
		_ = s.cleanup()
	}
}

// resolveWorkspaceRoot prefers the flag, then the nearest tracko.yaml above
// the working directory, then the working directory itself.
func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return resolveFrom(wd), nil
}

func resolveFrom(wd string) string {
	var locator ports.WorkspaceLocator = workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil || root == "" {
		abs, aerr := filepath.Abs(wd)
		if aerr != nil {
			return wd
		}
		return abs
	}
	return root
}
