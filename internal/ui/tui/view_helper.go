package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/atyhamos/tp/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func renderTags(tags []domain.Tag) string {
	if len(tags) == 0 {
		return ""
	}
	var b strings.Builder
	for _, t := range tags {
		b.WriteString("[")
		b.WriteString(t.String())
		b.WriteString("]")
	}
	return b.String()
}

// renderTuteeSummary is the second line of a tutee row.
func renderTuteeSummary(t domain.Tutee) string {
	parts := []string{t.Level().String(), t.Phone().String()}
	if tags := renderTags(t.Tags()); tags != "" {
		parts = append(parts, tags)
	}
	if n := len(t.Lessons()); n > 0 {
		parts = append(parts, fmt.Sprintf("%d lesson(s), $%.2f/wk", n, t.WeeklyCost()))
	}
	return strings.Join(parts, " · ")
}

func renderTuteeDetails(t domain.Tutee) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Phone: %s\nLevel: %s\nAddress: %s\n", t.Phone(), t.Level(), t.Address()))
	if r := t.Remark().String(); r != "" {
		b.WriteString("Remark: ")
		b.WriteString(r)
		b.WriteString("\n")
	}
	if tags := renderTags(t.Tags()); tags != "" {
		b.WriteString("Tags: ")
		b.WriteString(tags)
		b.WriteString("\n")
	}

	lessons := t.Lessons()
	if len(lessons) == 0 {
		b.WriteString("\nLessons: (none)\n")
		return b.String()
	}

	b.WriteString("\nLessons:\n")
	for i, l := range lessons {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, l))
	}
	b.WriteString(fmt.Sprintf("Weekly cost: $%.2f\n", t.WeeklyCost()))
	return b.String()
}
