package command

import (
	"errors"
	"fmt"

	"github.com/atyhamos/tp/internal/domain"
	"github.com/atyhamos/tp/internal/model"
)

const (
	AddWord  = "add"
	AddUsage = AddWord + ": Adds a tutee to Track-O. " +
		"Parameters: n/NAME p/PHONE l/LEVEL a/ADDRESS [r/REMARK] [t/TAG]...\n" +
		"Example: " + AddWord + " n/John Doe p/98765432 l/p4 a/311, Clementi Ave 2, #02-25 t/friends"

	MessageAddSuccess = "New tutee added: %s"
)

// AddCommand adds a tutee to the roster.
type AddCommand struct {
	Tutee domain.Tutee
}

func NewAddCommand(t domain.Tutee) *AddCommand {
	return &AddCommand{Tutee: t}
}

func (c *AddCommand) Execute(m model.Model) (Result, error) {
	if m.HasTutee(c.Tutee) {
		return Result{}, fail(MessageDuplicateTutee)
	}
	if err := m.AddTutee(c.Tutee); err != nil {
		if errors.Is(err, domain.ErrDuplicateTutee) {
			return Result{}, failWith(MessageDuplicateTutee, err)
		}
		return Result{}, err
	}
	return NewResult(fmt.Sprintf(MessageAddSuccess, c.Tutee)), nil
}

func (c *AddCommand) Equal(other Command) bool {
	o, ok := other.(*AddCommand)
	if !ok || o == nil || c == nil {
		return false
	}
	return c == o || c.Tutee.Equal(o.Tutee)
}
