package command

import "github.com/atyhamos/tp/internal/model"

const (
	ExitWord                   = "exit"
	MessageExitAcknowledgement = "Exiting Track-O as requested ..."
)

type ExitCommand struct{}

func (c *ExitCommand) Execute(model.Model) (Result, error) {
	return Result{Feedback: MessageExitAcknowledgement, Exit: true}, nil
}

func (c *ExitCommand) Equal(other Command) bool {
	o, ok := other.(*ExitCommand)
	return ok && o != nil && c != nil
}
