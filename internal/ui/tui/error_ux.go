package tui

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/atyhamos/tp/internal/domain"
)

const unexpectedMessage = "Unexpected error (see logs)"

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// userMessage maps an error to the single line shown under the command box.
// Domain errors already carry their user-facing text.
func userMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return "Command cancelled"
	}

	switch e := err.(type) {
	case *domain.DomainError:
		return e.Error()
	case *domain.OpError:
		return opMessage(e)
	}

	var de *domain.DomainError
	if errors.As(err, &de) {
		return de.Error()
	}
	var oe *domain.OpError
	if errors.As(err, &oe) {
		return opMessage(oe)
	}
	return unexpectedMessage
}

func opMessage(oe *domain.OpError) string {
	switch oe.Kind {
	case domain.KindNotFound:
		if strings.Contains(oe.Op, "workspacefinder") {
			return "Workspace not found"
		}
		return "Not found"

	case domain.KindInvalidConfig:
		base := "config"
		if strings.TrimSpace(oe.Path) != "" {
			base = filepath.Base(oe.Path)
		}
		if line := extractLine(oe.Error()); line != "" {
			return "Invalid YAML at " + base + " line " + line
		}
		return "Invalid config in " + base

	case domain.KindIO:
		if strings.HasPrefix(oe.Op, "jsonstore.read") {
			var de *domain.DomainError
			if errors.As(oe.Err, &de) {
				return "Data file is invalid: " + de.Error()
			}
			return "Data file could not be read"
		}
		return "Could not access data file"

	case domain.KindInvalidInput:
		return "Invalid input: " + errText(oe.Err)

	default:
		return unexpectedMessage
	}
}

func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
