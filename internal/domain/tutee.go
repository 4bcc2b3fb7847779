package domain

import (
	"sort"
	"strings"
)

// Tutee is a student record. It is immutable: every With* method returns a
// modified copy and never touches the receiver.
type Tutee struct {
	name    Name
	phone   Phone
	level   Level
	address Address
	remark  Remark
	tags    []Tag
	lessons []Lesson
}

// NewTutee assembles a tutee from already validated fields. Duplicate tags and
// lessons are dropped.
func NewTutee(name Name, phone Phone, level Level, address Address, remark Remark, tags []Tag, lessons []Lesson) Tutee {
	return Tutee{
		name:    name,
		phone:   phone,
		level:   level,
		address: address,
		remark:  remark,
		tags:    normalizeTags(tags),
		lessons: normalizeLessons(lessons),
	}
}

func (t Tutee) Name() Name       { return t.name }
func (t Tutee) Phone() Phone     { return t.phone }
func (t Tutee) Level() Level     { return t.level }
func (t Tutee) Address() Address { return t.address }
func (t Tutee) Remark() Remark   { return t.remark }

// Tags returns a copy of the tag set in sorted order.
func (t Tutee) Tags() []Tag {
	out := make([]Tag, len(t.tags))
	copy(out, t.tags)
	return out
}

// Lessons returns a copy of the lesson set in weekly order.
func (t Tutee) Lessons() []Lesson {
	out := make([]Lesson, len(t.lessons))
	copy(out, t.lessons)
	return out
}

func (t Tutee) WithName(n Name) Tutee {
	c := t.clone()
	c.name = n
	return c
}

func (t Tutee) WithPhone(p Phone) Tutee {
	c := t.clone()
	c.phone = p
	return c
}

func (t Tutee) WithLevel(l Level) Tutee {
	c := t.clone()
	c.level = l
	return c
}

func (t Tutee) WithAddress(a Address) Tutee {
	c := t.clone()
	c.address = a
	return c
}

func (t Tutee) WithRemark(r Remark) Tutee {
	c := t.clone()
	c.remark = r
	return c
}

func (t Tutee) WithTags(tags []Tag) Tutee {
	c := t.clone()
	c.tags = normalizeTags(tags)
	return c
}

// WithLesson adds one lesson. An equal lesson already present is kept as is.
func (t Tutee) WithLesson(l Lesson) Tutee {
	c := t.clone()
	c.lessons = normalizeLessons(append(c.lessons, l))
	return c
}

func (t Tutee) WithLessons(lessons []Lesson) Tutee {
	c := t.clone()
	c.lessons = normalizeLessons(lessons)
	return c
}

// WithoutLesson drops the lesson at zero-based position i of Lessons().
// Out of range positions return an unchanged copy.
func (t Tutee) WithoutLesson(i int) Tutee {
	c := t.clone()
	if i < 0 || i >= len(c.lessons) {
		return c
	}
	c.lessons = append(c.lessons[:i], c.lessons[i+1:]...)
	return c
}

// HasClash reports whether l repeats or overlaps one of the tutee's lessons.
func (t Tutee) HasClash(l Lesson) bool {
	for _, existing := range t.lessons {
		if existing.Equal(l) || existing.Overlaps(l) {
			return true
		}
	}
	return false
}

// WeeklyCost is what the tutee pays for one week of lessons.
func (t Tutee) WeeklyCost() float64 {
	var sum float64
	for _, l := range t.lessons {
		sum += l.Cost()
	}
	return sum
}

// IsSameTutee is the weak identity check: same name and phone.
func (t Tutee) IsSameTutee(o Tutee) bool {
	return t.name == o.name && t.phone == o.phone
}

// Equal compares every field. Tags and lessons compare as sets.
func (t Tutee) Equal(o Tutee) bool {
	if t.name != o.name || t.phone != o.phone || t.level != o.level ||
		t.address != o.address || t.remark != o.remark {
		return false
	}
	if len(t.tags) != len(o.tags) || len(t.lessons) != len(o.lessons) {
		return false
	}
	for i := range t.tags {
		if t.tags[i] != o.tags[i] {
			return false
		}
	}
	for _, l := range t.lessons {
		if !containsLesson(o.lessons, l) {
			return false
		}
	}
	return true
}

// String renders every field, tags and lessons included, on one line.
func (t Tutee) String() string {
	var b strings.Builder
	b.WriteString(string(t.name))
	b.WriteString("; Phone: ")
	b.WriteString(string(t.phone))
	b.WriteString("; Level: ")
	b.WriteString(string(t.level))
	b.WriteString("; Address: ")
	b.WriteString(string(t.address))
	b.WriteString("; Remark: ")
	b.WriteString(string(t.remark))

	if len(t.tags) > 0 {
		b.WriteString("; Tags: ")
		for _, tag := range t.tags {
			b.WriteString("[")
			b.WriteString(string(tag))
			b.WriteString("]")
		}
	}
	if len(t.lessons) > 0 {
		b.WriteString("; Lessons: ")
		for i, l := range t.lessons {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString("[")
			b.WriteString(l.String())
			b.WriteString("]")
		}
	}
	return b.String()
}

func (t Tutee) clone() Tutee {
	c := t
	c.tags = t.Tags()
	c.lessons = t.Lessons()
	return c
}

func normalizeTags(in []Tag) []Tag {
	out := make([]Tag, 0, len(in))
	seen := make(map[Tag]struct{}, len(in))
	for _, tag := range in {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func normalizeLessons(in []Lesson) []Lesson {
	out := make([]Lesson, 0, len(in))
	for _, l := range in {
		if containsLesson(out, l) {
			continue
		}
		out = append(out, l)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].before(out[j]) })
	return out
}

func containsLesson(in []Lesson, l Lesson) bool {
	for _, existing := range in {
		if existing.Equal(l) {
			return true
		}
	}
	return false
}
