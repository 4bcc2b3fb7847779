package command

import (
	"strings"

	"github.com/atyhamos/tp/internal/model"
)

const (
	HelpWord           = "help"
	MessageShowingHelp = "Opened help window."
)

type HelpCommand struct{}

func (c *HelpCommand) Execute(model.Model) (Result, error) {
	return Result{Feedback: MessageShowingHelp, ShowHelp: true}, nil
}

func (c *HelpCommand) Equal(other Command) bool {
	o, ok := other.(*HelpCommand)
	return ok && o != nil && c != nil
}

// HelpText lists the usage of every command.
func HelpText() string {
	return strings.Join([]string{
		AddUsage,
		EditUsage,
		DeleteUsage,
		FindUsage,
		FilterUsage,
		AddLessonUsage,
		DeleteLessonUsage,
		RemarkUsage,
		ListWord + ": Lists all tutees.",
		ClearWord + ": Removes every tutee.",
		HelpWord + ": Shows this help.",
		ExitWord + ": Exits the program.",
	}, "\n\n")
}
