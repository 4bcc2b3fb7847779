// Package command holds the operations users run against the model. Each
// command carries already parsed, typed arguments; it re-checks semantic
// rules (indices, duplicates, clashes) and either changes the model or
// returns an error leaving it untouched.
package command

import (
	"fmt"

	"github.com/atyhamos/tp/internal/domain"
	"github.com/atyhamos/tp/internal/model"
)

// Messages shown to the user. The wording is part of the contract.
const (
	MessageInvalidCommandFormat       = "Invalid command format! \n%s"
	MessageUnknownCommand             = "Unknown command"
	MessageInvalidTuteeDisplayedIndex = "The tutee index provided is invalid"
	MessageInvalidLessonIndex         = "The lesson index provided is invalid"
	MessageTuteesListedOverview       = "%d tutees listed!"
	MessageDuplicateTutee             = "This tutee already exists in Track-O"
)

// Command is one user operation.
type Command interface {
	Execute(m model.Model) (Result, error)
	// Equal is false for nil and for commands of another type.
	Equal(other Command) bool
}

// Result is what the UI shows after a successful command.
type Result struct {
	Feedback string
	ShowHelp bool
	Exit     bool
}

func NewResult(feedback string) Result {
	return Result{Feedback: feedback}
}

func fail(msg string) error {
	return &domain.DomainError{Kind: domain.KindCommand, Msg: msg}
}

func failWith(msg string, cause error) error {
	return &domain.DomainError{Kind: domain.KindCommand, Msg: msg, Cause: cause}
}

// tuteeAt resolves a display index against the filtered view, never the full roster.
func tuteeAt(m model.Model, idx domain.Index) (domain.Tutee, error) {
	visible := m.FilteredTutees()
	i := idx.ZeroBased()
	if i < 0 || i >= len(visible) {
		return domain.Tutee{}, fail(MessageInvalidTuteeDisplayedIndex)
	}
	return visible[i], nil
}

func listedOverview(m model.Model) string {
	return fmt.Sprintf(MessageTuteesListedOverview, len(m.FilteredTutees()))
}
