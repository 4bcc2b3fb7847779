package command

import (
	"fmt"

	"github.com/atyhamos/tp/internal/domain"
	"github.com/atyhamos/tp/internal/model"
)

const (
	RemarkWord  = "remark"
	RemarkUsage = RemarkWord + ": Edits the remark of the tutee identified by the index number used in the displayed tutee list. " +
		"Existing remark will be overwritten; an empty remark removes it.\n" +
		"Parameters: INDEX (must be a positive integer) r/[REMARK]\n" +
		"Example: " + RemarkWord + " 1 r/Likes to swim."

	MessageAddRemarkSuccess    = "Added remark to Tutee: %s"
	MessageDeleteRemarkSuccess = "Removed remark from Tutee: %s"
)

// RemarkCommand sets, or with an empty Remark clears, the remark of the tutee at Index.
type RemarkCommand struct {
	Index  domain.Index
	Remark domain.Remark
}

func NewRemarkCommand(idx domain.Index, r domain.Remark) *RemarkCommand {
	return &RemarkCommand{Index: idx, Remark: r}
}

func (c *RemarkCommand) Execute(m model.Model) (Result, error) {
	target, err := tuteeAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	edited := target.WithRemark(c.Remark)
	if err := m.SetTutee(target, edited); err != nil {
		return Result{}, err
	}
	m.UpdateFilteredTuteeList(model.ShowAll)

	msg := MessageAddRemarkSuccess
	if c.Remark == "" {
		msg = MessageDeleteRemarkSuccess
	}
	return NewResult(fmt.Sprintf(msg, edited)), nil
}

func (c *RemarkCommand) Equal(other Command) bool {
	o, ok := other.(*RemarkCommand)
	if !ok || o == nil || c == nil {
		return false
	}
	return *c == *o
}
