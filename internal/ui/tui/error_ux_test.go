package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/atyhamos/tp/internal/domain"
)

func TestUserMessage(t *testing.T) {
	saveErr := &domain.DomainError{
		Kind:  domain.KindIO,
		Msg:   "Could not save data to file: disk full",
		Cause: &domain.OpError{Op: "jsonstore.write", Kind: domain.KindIO, Err: errors.New("disk full")},
	}

	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"cancelled", fmt.Errorf("exec: %w", context.Canceled), "Command cancelled"},
		{"domain", &domain.DomainError{Kind: domain.KindParse, Msg: "Unknown command"}, "Unknown command"},
		{"save failure keeps outer message", saveErr, "Could not save data to file: disk full"},
		{"workspace", &domain.OpError{Op: "workspacefinder.find", Kind: domain.KindNotFound}, "Workspace not found"},
		{
			"yaml line",
			&domain.OpError{Op: "config.load", Kind: domain.KindInvalidConfig, Path: "/ws/tracko.yaml",
				Err: errors.New("yaml: line 3: did not find expected key")},
			"Invalid YAML at tracko.yaml line 3",
		},
		{
			"corrupt data",
			&domain.OpError{Op: "jsonstore.read", Kind: domain.KindIO,
				Err: &domain.DomainError{Kind: domain.KindIllegalValue, Msg: "Tutee's Name field is missing!"}},
			"Data file is invalid: Tutee's Name field is missing!",
		},
		{"wrapped domain", fmt.Errorf("ctx: %w", &domain.DomainError{Msg: "boom"}), "boom"},
		{"unknown", errors.New("x"), unexpectedMessage},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := userMessage(c.err); got != c.want {
				t.Fatalf("userMessage = %q, want %q", got, c.want)
			}
		})
	}
}

func TestClampString(t *testing.T) {
	if got := clampString("héllo world", 5); got != "héllo…" {
		t.Fatalf("got %q", got)
	}
	if got := clampString("short", 10); got != "short" {
		t.Fatalf("got %q", got)
	}
	if got := clampString("x", 0); got != "" {
		t.Fatalf("got %q", got)
	}
}
