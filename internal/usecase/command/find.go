package command

import (
	"github.com/atyhamos/tp/internal/model"
)

const (
	FindWord  = "find"
	FindUsage = FindWord + ": Finds all tutees whose names contain any of " +
		"the specified keywords (case-insensitive) and displays them as a list with index numbers.\n" +
		"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
		"Example: " + FindWord + " alice bob charlie"
)

// FindCommand shows tutees whose name contains any keyword as a whole word.
type FindCommand struct {
	Predicate model.NameContainsKeywords
}

func NewFindCommand(keywords []string) *FindCommand {
	return &FindCommand{Predicate: model.NameContainsKeywords{Keywords: keywords}}
}

func (c *FindCommand) Execute(m model.Model) (Result, error) {
	m.UpdateFilteredTuteeList(c.Predicate.Test)
	return NewResult(listedOverview(m)), nil
}

func (c *FindCommand) Equal(other Command) bool {
	o, ok := other.(*FindCommand)
	if !ok || o == nil || c == nil {
		return false
	}
	return c.Predicate.Equal(o.Predicate)
}
