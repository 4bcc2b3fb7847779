package model

import (
	"strings"

	"github.com/atyhamos/tp/internal/domain"
)

// NameContainsKeywords matches tutees whose name contains any keyword as a
// whole word, ignoring case.
type NameContainsKeywords struct {
	Keywords []string
}

func (p NameContainsKeywords) Test(t domain.Tutee) bool {
	words := strings.Fields(t.Name().String())
	for _, k := range p.Keywords {
		for _, w := range words {
			if strings.EqualFold(w, k) {
				return true
			}
		}
	}
	return false
}

func (p NameContainsKeywords) Equal(o NameContainsKeywords) bool {
	if len(p.Keywords) != len(o.Keywords) {
		return false
	}
	for i := range p.Keywords {
		if p.Keywords[i] != o.Keywords[i] {
			return false
		}
	}
	return true
}
