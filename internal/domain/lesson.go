package domain

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
)

const (
	SubjectConstraints    = "Subject should only contain alphanumeric characters and spaces, and it should not be blank"
	TimeOfDayConstraints  = "Time should be in the 24-hour format HH:MM"
	DayConstraints        = "Day should be a day of the week, e.g. Monday or Mon"
	TimeRangeConstraints  = "End time should be after start time"
	HourlyRateConstraints = "Hourly rate should be a non-negative number"
)

var (
	reSubject   = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)
	reTimeOfDay = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)
)

// Subject is what is taught in a lesson.
type Subject string

func IsValidSubject(s string) bool { return reSubject.MatchString(s) }

// NewSubject validates s against SubjectConstraints.
func NewSubject(s string) (Subject, error) {
	if !IsValidSubject(s) {
		return "", constraint(SubjectConstraints)
	}
	return Subject(s), nil
}

func (s Subject) String() string { return string(s) }

// TimeOfDay is a wall-clock time expressed in minutes since midnight.
type TimeOfDay int

// ParseTimeOfDay reads a 24-hour HH:mm value.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	m := reTimeOfDay.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, constraint(TimeOfDayConstraints)
	}
	h := int(m[1][0]-'0')*10 + int(m[1][1]-'0')
	mm := int(m[2][0]-'0')*10 + int(m[2][1]-'0')
	return TimeOfDay(h*60 + mm), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// ParseDay accepts a full English day name or its three-letter form, in any case.
func ParseDay(s string) (time.Weekday, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	if in == "" {
		return 0, constraint(DayConstraints)
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if in == full || in == full[:3] {
			return d, nil
		}
	}
	return 0, constraint(DayConstraints)
}

// DayName is the upper-case day name used in persisted lessons, e.g. SUNDAY.
func DayName(d time.Weekday) string {
	return strings.ToUpper(d.String())
}

// weekOrder places Monday first and Sunday last.
func weekOrder(d time.Weekday) int {
	if d == time.Sunday {
		return 7
	}
	return int(d)
}

// Time is a weekly slot: a day plus a start and end within that day.
type Time struct {
	day   time.Weekday
	start TimeOfDay
	end   TimeOfDay
}

// NewTime builds a weekly slot. The end must be strictly after the start.
func NewTime(day time.Weekday, start, end TimeOfDay) (Time, error) {
	if day < time.Sunday || day > time.Saturday {
		return Time{}, constraint(DayConstraints)
	}
	if start < 0 || end >= 24*60 {
		return Time{}, constraint(TimeOfDayConstraints)
	}
	if end <= start {
		return Time{}, constraint(TimeRangeConstraints)
	}
	return Time{day: day, start: start, end: end}, nil
}

func (t Time) Day() time.Weekday { return t.day }
func (t Time) Start() TimeOfDay  { return t.start }
func (t Time) End() TimeOfDay    { return t.end }

// Duration returns the slot length in hours.
func (t Time) Duration() float64 {
	return float64(t.end-t.start) / 60
}

// Overlaps reports whether both slots fall on the same day and intersect.
// Slots that only touch (one ends when the other starts) do not overlap.
func (t Time) Overlaps(o Time) bool {
	return t.day == o.day && t.start < o.end && o.start < t.end
}

func (t Time) String() string {
	return fmt.Sprintf("%s %s-%s", DayName(t.day), t.start, t.end)
}

func (t Time) before(o Time) bool {
	if t.day != o.day {
		return weekOrder(t.day) < weekOrder(o.day)
	}
	if t.start != o.start {
		return t.start < o.start
	}
	return t.end < o.end
}

// Lesson is a weekly session of one subject at a fixed hourly rate.
type Lesson struct {
	subject    Subject
	time       Time
	hourlyRate float64
}

// NewLesson validates the subject, the slot and the hourly rate. The rate must
// be non-negative and its cost over the slot must be a finite number.
func NewLesson(subject Subject, t Time, hourlyRate float64) (Lesson, error) {
	if !IsValidSubject(string(subject)) {
		return Lesson{}, constraint(SubjectConstraints)
	}
	if t.end <= t.start {
		return Lesson{}, constraint(TimeRangeConstraints)
	}
	if hourlyRate < 0 || math.IsNaN(hourlyRate) || math.IsInf(hourlyRate, 0) {
		return Lesson{}, constraint(HourlyRateConstraints)
	}
	// The cost is persisted, so it must stay finite.
	if math.IsInf(t.Duration()*hourlyRate, 0) {
		return Lesson{}, constraint(HourlyRateConstraints)
	}
	return Lesson{subject: subject, time: t, hourlyRate: hourlyRate}, nil
}

func (l Lesson) Subject() Subject       { return l.subject }
func (l Lesson) Time() Time             { return l.time }
func (l Lesson) HourlyRate() float64    { return l.hourlyRate }
func (l Lesson) Cost() float64          { return l.time.Duration() * l.hourlyRate }
func (l Lesson) Overlaps(o Lesson) bool { return l.time.Overlaps(o.time) }

// Equal compares subject and slot only. Two lessons in the same slot at
// different rates are the same lesson.
func (l Lesson) Equal(o Lesson) bool {
	return l.subject == o.subject && l.time == o.time
}

func (l Lesson) String() string {
	return fmt.Sprintf("%s %s $%.2f/h", l.subject, l.time, l.hourlyRate)
}

func (l Lesson) before(o Lesson) bool {
	if l.time != o.time {
		return l.time.before(o.time)
	}
	return l.subject < o.subject
}
