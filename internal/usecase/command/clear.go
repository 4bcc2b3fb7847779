package command

import (
	"github.com/atyhamos/tp/internal/domain"
	"github.com/atyhamos/tp/internal/model"
)

const (
	ClearWord           = "clear"
	MessageClearSuccess = "Track-O has been cleared!"
)

// ClearCommand empties the roster.
type ClearCommand struct{}

func (c *ClearCommand) Execute(m model.Model) (Result, error) {
	m.SetTrackO(domain.NewTrackO())
	return NewResult(MessageClearSuccess), nil
}

func (c *ClearCommand) Equal(other Command) bool {
	o, ok := other.(*ClearCommand)
	return ok && o != nil && c != nil
}
