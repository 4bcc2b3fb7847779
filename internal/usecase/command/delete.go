package command

import (
	"fmt"

	"github.com/atyhamos/tp/internal/domain"
	"github.com/atyhamos/tp/internal/model"
)

const (
	DeleteWord  = "delete"
	DeleteUsage = DeleteWord + ": Deletes the tutee identified by the index number used in the displayed tutee list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + DeleteWord + " 1"

	MessageDeleteSuccess = "Deleted Tutee: %s"
)

// DeleteCommand removes the tutee at Index in the displayed list.
type DeleteCommand struct {
	Index domain.Index
}

func NewDeleteCommand(idx domain.Index) *DeleteCommand {
	return &DeleteCommand{Index: idx}
}

func (c *DeleteCommand) Execute(m model.Model) (Result, error) {
	target, err := tuteeAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	if err := m.DeleteTutee(target); err != nil {
		return Result{}, err
	}
	return NewResult(fmt.Sprintf(MessageDeleteSuccess, target)), nil
}

func (c *DeleteCommand) Equal(other Command) bool {
	o, ok := other.(*DeleteCommand)
	if !ok || o == nil || c == nil {
		return false
	}
	return c.Index == o.Index
}
