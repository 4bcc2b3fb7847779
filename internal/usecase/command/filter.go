package command

import (
	"github.com/atyhamos/tp/internal/model"
	"github.com/atyhamos/tp/internal/usecase/filter"
)

const (
	FilterWord  = "filter"
	FilterUsage = FilterWord + ": Shows the tutees matching a boolean expression over " +
		"name, phone, level, address, remark, tags, subjects, days, lessons and weeklyCost.\n" +
		"Parameters: EXPRESSION\n" +
		"Example: " + FilterWord + ` level startsWith "p" && "SUNDAY" in days`
)

// FilterCommand shows only the tutees matching Expression.
type FilterCommand struct {
	Expression *filter.Expression
}

func NewFilterCommand(e *filter.Expression) *FilterCommand {
	return &FilterCommand{Expression: e}
}

func (c *FilterCommand) Execute(m model.Model) (Result, error) {
	m.UpdateFilteredTuteeList(c.Expression.Match)
	return NewResult(listedOverview(m)), nil
}

func (c *FilterCommand) Equal(other Command) bool {
	o, ok := other.(*FilterCommand)
	if !ok || o == nil || c == nil {
		return false
	}
	return c.Expression.Equal(o.Expression)
}
