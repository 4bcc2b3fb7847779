package tui

import "github.com/atyhamos/tp/internal/usecase/command"

type commandDoneMsg struct {
	input string
	res   command.Result
	err   error
}
