package command

import "github.com/atyhamos/tp/internal/model"

const (
	ListWord           = "list"
	MessageListSuccess = "Listed all tutees"
)

// ListCommand clears any active filter.
type ListCommand struct{}

func (c *ListCommand) Execute(m model.Model) (Result, error) {
	m.UpdateFilteredTuteeList(model.ShowAll)
	return NewResult(MessageListSuccess), nil
}

func (c *ListCommand) Equal(other Command) bool {
	o, ok := other.(*ListCommand)
	return ok && o != nil && c != nil
}
