// Package filter compiles user supplied boolean expressions into tutee
// predicates. Expressions are evaluated by expr-lang against a flat view of
// one tutee, for example
//
//	level startsWith "p" && "friends" in tags
//	weeklyCost > 50 || "SUNDAY" in days
package filter

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/atyhamos/tp/internal/domain"
)

// Expression is a compiled filter. Two expressions with the same source are equal.
type Expression struct {
	source  string
	program *vm.Program
}

// Compile type-checks source against the tutee environment. The result must be boolean.
func Compile(source string) (*Expression, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, &domain.DomainError{Kind: domain.KindParse, Msg: "Filter expression must not be empty"}
	}
	program, err := expr.Compile(source, expr.Env(Env(domain.Tutee{})), expr.AsBool())
	if err != nil {
		return nil, &domain.DomainError{
			Kind:  domain.KindParse,
			Msg:   fmt.Sprintf("Invalid filter expression: %v", err),
			Cause: err,
		}
	}
	return &Expression{source: source, program: program}, nil
}

func (e *Expression) Source() string { return e.source }

// Match reports whether t satisfies the expression. Runtime errors count as no match.
func (e *Expression) Match(t domain.Tutee) bool {
	out, err := expr.Run(e.program, Env(t))
	if err != nil {
		return false
	}
	ok, _ := out.(bool)
	return ok
}

func (e *Expression) Equal(o *Expression) bool {
	if e == nil || o == nil {
		return e == o
	}
	return e.source == o.source
}

// Env is the variable set an expression sees for t.
func Env(t domain.Tutee) map[string]any {
	tags := make([]string, 0, len(t.Tags()))
	for _, tag := range t.Tags() {
		tags = append(tags, tag.String())
	}

	lessons := t.Lessons()
	subjects := make([]string, 0, len(lessons))
	days := make([]string, 0, len(lessons))
	for _, l := range lessons {
		subjects = append(subjects, l.Subject().String())
		days = append(days, domain.DayName(l.Time().Day()))
	}

	return map[string]any{
		"name":       t.Name().String(),
		"phone":      t.Phone().String(),
		"level":      t.Level().String(),
		"address":    t.Address().String(),
		"remark":     t.Remark().String(),
		"tags":       tags,
		"subjects":   subjects,
		"days":       days,
		"lessons":    len(lessons),
		"weeklyCost": t.WeeklyCost(),
	}
}
