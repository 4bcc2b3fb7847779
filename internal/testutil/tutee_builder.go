// Package testutil builds fixture data for tests. Every function returns fresh
// values, so tests can modify what they get without affecting each other.
package testutil

import (
	"fmt"
	"time"

	"github.com/atyhamos/tp/internal/domain"
)

const (
	DefaultName    = "Amy Bee"
	DefaultPhone   = "85355255"
	DefaultLevel   = "p3"
	DefaultAddress = "123, Jurong West Ave 6, #08-111"
	DefaultRemark  = ""
)

// TuteeBuilder assembles tutees from raw strings. It panics on invalid input,
// since fixtures are expected to be valid.
type TuteeBuilder struct {
	name    string
	phone   string
	level   string
	address string
	remark  string
	tags    []string
	lessons []domain.Lesson
}

func NewTuteeBuilder() *TuteeBuilder {
	return &TuteeBuilder{
		name:    DefaultName,
		phone:   DefaultPhone,
		level:   DefaultLevel,
		address: DefaultAddress,
		remark:  DefaultRemark,
	}
}

// TuteeBuilderFrom starts from the fields of an existing tutee.
func TuteeBuilderFrom(t domain.Tutee) *TuteeBuilder {
	b := &TuteeBuilder{
		name:    t.Name().String(),
		phone:   t.Phone().String(),
		level:   t.Level().String(),
		address: t.Address().String(),
		remark:  t.Remark().String(),
		lessons: t.Lessons(),
	}
	for _, tag := range t.Tags() {
		b.tags = append(b.tags, tag.String())
	}
	return b
}

func (b *TuteeBuilder) WithName(s string) *TuteeBuilder    { b.name = s; return b }
func (b *TuteeBuilder) WithPhone(s string) *TuteeBuilder   { b.phone = s; return b }
func (b *TuteeBuilder) WithLevel(s string) *TuteeBuilder   { b.level = s; return b }
func (b *TuteeBuilder) WithAddress(s string) *TuteeBuilder { b.address = s; return b }
func (b *TuteeBuilder) WithRemark(s string) *TuteeBuilder  { b.remark = s; return b }

// WithTags replaces the tags.
func (b *TuteeBuilder) WithTags(tags ...string) *TuteeBuilder {
	b.tags = append([]string(nil), tags...)
	return b
}

// WithLesson adds a lesson on top of the existing ones.
func (b *TuteeBuilder) WithLesson(l domain.Lesson) *TuteeBuilder {
	b.lessons = append(append([]domain.Lesson(nil), b.lessons...), l)
	return b
}

func (b *TuteeBuilder) Build() domain.Tutee {
	name := must(domain.NewName(b.name))
	phone := must(domain.NewPhone(b.phone))
	level := must(domain.NewLevel(b.level))
	address := must(domain.NewAddress(b.address))
	tags := must(domain.NewTags(b.tags...))
	return domain.NewTutee(name, phone, level, address, domain.Remark(b.remark), tags, b.lessons)
}

// NewLesson builds a lesson from raw strings, panicking on invalid input.
func NewLesson(subject, day, start, end string, rate float64) domain.Lesson {
	s := must(domain.NewSubject(subject))
	d := must(domain.ParseDay(day))
	st := must(domain.ParseTimeOfDay(start))
	et := must(domain.ParseTimeOfDay(end))
	slot := must(domain.NewTime(d, st, et))
	return must(domain.NewLesson(s, slot, rate))
}

// Weekday is a shorthand for ParseDay in tests.
func Weekday(day string) time.Weekday {
	return must(domain.ParseDay(day))
}

// TimeOfDay is a shorthand for ParseTimeOfDay in tests.
func TimeOfDay(s string) domain.TimeOfDay {
	return must(domain.ParseTimeOfDay(s))
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Sprintf("testutil: invalid fixture: %v", err))
	}
	return v
}
