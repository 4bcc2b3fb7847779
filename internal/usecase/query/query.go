// Package query evaluates JSONPath expressions against the raw data file.
package query

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/atyhamos/tp/internal/domain"
)

// Run evaluates expr against doc. Lessons are stored as embedded JSON
// strings; they are decoded first so paths such as
// $.tutees[*].lessons[*].subject.value reach into them.
func Run(doc []byte, expr string) (any, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, &domain.OpError{Op: "query.run", Kind: domain.KindInvalidInput, Err: fmt.Errorf("empty jsonpath expression")}
	}

	var v any
	if err := json.Unmarshal(doc, &v); err != nil {
		return nil, &domain.OpError{Op: "query.parse", Kind: domain.KindInvalidInput, Err: err}
	}
	expandLessons(v)

	out, err := jsonpath.Get(expr, v)
	if err != nil {
		return nil, &domain.OpError{Op: "query.run", Kind: domain.KindInvalidInput, Err: fmt.Errorf("jsonpath %q: %w", expr, err)}
	}
	return out, nil
}

func expandLessons(v any) {
	root, ok := v.(map[string]any)
	if !ok {
		return
	}
	tutees, _ := root["tutees"].([]any)
	for _, t := range tutees {
		tm, ok := t.(map[string]any)
		if !ok {
			continue
		}
		lessons, _ := tm["lessons"].([]any)
		for i, l := range lessons {
			s, ok := l.(string)
			if !ok {
				continue
			}
			var decoded any
			if err := json.Unmarshal([]byte(s), &decoded); err == nil {
				lessons[i] = decoded
			}
		}
	}
}

// Format renders a query result for the terminal. Single element arrays
// collapse to their element; objects and longer arrays print as JSON.
func Format(v any) (string, error) {
	if arr, ok := v.([]any); ok {
		if len(arr) == 1 {
			return Format(arr[0])
		}
		b, err := json.MarshalIndent(arr, "", "  ")
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	switch t := v.(type) {
	case nil:
		return "null", nil
	case string:
		return t, nil
	case float64, bool, int, int64, uint64:
		return fmt.Sprint(t), nil
	case map[string]any:
		b, err := json.MarshalIndent(t, "", "  ")
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return fmt.Sprint(t), nil
	}
}
