package parser

import (
	"sort"
	"strings"
)

// Prefix marks the start of an argument, e.g. "n/".
type Prefix string

const (
	PrefixName       Prefix = "n/"
	PrefixPhone      Prefix = "p/"
	PrefixLevel      Prefix = "l/"
	PrefixAddress    Prefix = "a/"
	PrefixRemark     Prefix = "r/"
	PrefixTag        Prefix = "t/"
	PrefixSubject    Prefix = "s/"
	PrefixDay        Prefix = "d/"
	PrefixStartTime  Prefix = "st/"
	PrefixEndTime    Prefix = "et/"
	PrefixHourlyRate Prefix = "rate/"
)

// ArgumentMultimap holds the text before the first prefix and every value
// seen for each prefix, in input order.
type ArgumentMultimap struct {
	preamble string
	values   map[Prefix][]string
}

func (a ArgumentMultimap) Preamble() string { return a.preamble }

// Value returns the last value given for p.
func (a ArgumentMultimap) Value(p Prefix) (string, bool) {
	vs := a.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

func (a ArgumentMultimap) AllValues(p Prefix) []string {
	return append([]string(nil), a.values[p]...)
}

func (a ArgumentMultimap) Has(p Prefix) bool { return len(a.values[p]) > 0 }

func (a ArgumentMultimap) HasAll(ps ...Prefix) bool {
	for _, p := range ps {
		if !a.Has(p) {
			return false
		}
	}
	return true
}

type prefixPos struct {
	prefix Prefix
	start  int
}

// Tokenize splits args on the given prefixes. A prefix only counts when it
// is preceded by whitespace.
func Tokenize(args string, prefixes ...Prefix) ArgumentMultimap {
	var found []prefixPos
	for _, p := range prefixes {
		for from := 0; from < len(args); {
			i := strings.Index(args[from:], string(p))
			if i < 0 {
				break
			}
			i += from
			if i > 0 && isSpace(args[i-1]) {
				found = append(found, prefixPos{prefix: p, start: i})
			}
			from = i + 1
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].start < found[j].start })

	out := ArgumentMultimap{values: make(map[Prefix][]string)}
	if len(found) == 0 {
		out.preamble = strings.TrimSpace(args)
		return out
	}
	out.preamble = strings.TrimSpace(args[:found[0].start])
	for i, f := range found {
		end := len(args)
		if i+1 < len(found) {
			end = found[i+1].start
		}
		v := strings.TrimSpace(args[f.start+len(f.prefix) : end])
		out.values[f.prefix] = append(out.values[f.prefix], v)
	}
	return out
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
