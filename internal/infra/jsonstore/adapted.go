package jsonstore

import (
	"encoding/json"
	"fmt"

	"github.com/atyhamos/tp/internal/domain"
)

// MissingFieldMessageFormat is reported when a required tutee field is absent.
const MissingFieldMessageFormat = "Tutee's %s field is missing!"

// MessageDuplicateTutee is reported when a file holds the same tutee twice.
const MessageDuplicateTutee = "Tutees list contains duplicate tutee(s)."

type adaptedTrackO struct {
	Tutees []adaptedTutee `json:"tutees"`
}

// adaptedTutee mirrors domain.Tutee on disk. Scalars are pointers so a
// missing field can be told apart from an empty one. Each lesson is a JSON
// document of its own, stored as a string.
type adaptedTutee struct {
	Name    *string      `json:"name"`
	Phone   *string      `json:"phone"`
	Level   *string      `json:"level"`
	Address *string      `json:"address"`
	Remark  *string      `json:"remark"`
	Tags    []adaptedTag `json:"tags"`
	Lessons []string     `json:"lessons"`
}

// adaptedTag is written as a bare string.
type adaptedTag struct {
	name string
}

func (t adaptedTag) MarshalJSON() ([]byte, error) { return json.Marshal(t.name) }

func (t *adaptedTag) UnmarshalJSON(b []byte) error { return json.Unmarshal(b, &t.name) }

type adaptedLesson struct {
	Subject    adaptedSubject    `json:"subject"`
	Time       adaptedLessonTime `json:"time"`
	HourlyRate float64           `json:"hourlyRate"`
	Cost       float64           `json:"cost"`
}

type adaptedSubject struct {
	Value string `json:"value"`
}

type adaptedLessonTime struct {
	DayOfOccurrence string  `json:"dayOfOccurrence"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	Duration        float64 `json:"duration"`
}

func newAdaptedTrackO(r domain.TrackO) (adaptedTrackO, error) {
	out := adaptedTrackO{Tutees: make([]adaptedTutee, 0, r.Len())}
	for _, t := range r.Tutees() {
		at, err := newAdaptedTutee(t)
		if err != nil {
			return adaptedTrackO{}, err
		}
		out.Tutees = append(out.Tutees, at)
	}
	return out, nil
}

func (a adaptedTrackO) toModel() (domain.TrackO, error) {
	r := domain.NewTrackO()
	for _, at := range a.Tutees {
		t, err := at.toModel()
		if err != nil {
			return domain.TrackO{}, err
		}
		if r.HasTutee(t) {
			return domain.TrackO{}, illegal(MessageDuplicateTutee)
		}
		if err := r.AddTutee(t); err != nil {
			return domain.TrackO{}, err
		}
	}
	return r, nil
}

func newAdaptedTutee(t domain.Tutee) (adaptedTutee, error) {
	str := func(s string) *string { return &s }
	out := adaptedTutee{
		Name:    str(t.Name().String()),
		Phone:   str(t.Phone().String()),
		Level:   str(t.Level().String()),
		Address: str(t.Address().String()),
		Remark:  str(t.Remark().String()),
		Tags:    make([]adaptedTag, 0, len(t.Tags())),
		Lessons: make([]string, 0, len(t.Lessons())),
	}
	for _, tag := range t.Tags() {
		out.Tags = append(out.Tags, adaptedTag{name: tag.String()})
	}
	for _, l := range t.Lessons() {
		s, err := encodeLesson(l)
		if err != nil {
			return adaptedTutee{}, err
		}
		out.Lessons = append(out.Lessons, s)
	}
	return out, nil
}

// toModel checks presence of every scalar, then their validity, then tags
// and lessons. Lesson failures are I/O errors.
func (a adaptedTutee) toModel() (domain.Tutee, error) {
	required := []struct {
		field string
		value *string
	}{
		{"Name", a.Name},
		{"Phone", a.Phone},
		{"Level", a.Level},
		{"Address", a.Address},
		{"Remark", a.Remark},
	}
	for _, r := range required {
		if r.value == nil {
			return domain.Tutee{}, illegal(fmt.Sprintf(MissingFieldMessageFormat, r.field))
		}
	}

	name, err := domain.NewName(*a.Name)
	if err != nil {
		return domain.Tutee{}, illegalFrom(err)
	}
	phone, err := domain.NewPhone(*a.Phone)
	if err != nil {
		return domain.Tutee{}, illegalFrom(err)
	}
	level, err := domain.NewLevel(*a.Level)
	if err != nil {
		return domain.Tutee{}, illegalFrom(err)
	}
	address, err := domain.NewAddress(*a.Address)
	if err != nil {
		return domain.Tutee{}, illegalFrom(err)
	}
	remark := domain.Remark(*a.Remark)

	raw := make([]string, 0, len(a.Tags))
	for _, t := range a.Tags {
		raw = append(raw, t.name)
	}
	tags, err := domain.NewTags(raw...)
	if err != nil {
		return domain.Tutee{}, illegalFrom(err)
	}

	lessons := make([]domain.Lesson, 0, len(a.Lessons))
	for _, s := range a.Lessons {
		l, err := decodeLesson(s)
		if err != nil {
			return domain.Tutee{}, err
		}
		lessons = append(lessons, l)
	}

	return domain.NewTutee(name, phone, level, address, remark, tags, lessons), nil
}

func encodeLesson(l domain.Lesson) (string, error) {
	slot := l.Time()
	b, err := json.MarshalIndent(adaptedLesson{
		Subject: adaptedSubject{Value: l.Subject().String()},
		Time: adaptedLessonTime{
			DayOfOccurrence: domain.DayName(slot.Day()),
			StartTime:       slot.Start().String(),
			EndTime:         slot.End().String(),
			Duration:        slot.Duration(),
		},
		HourlyRate: l.HourlyRate(),
		Cost:       l.Cost(),
	}, "", "  ")
	if err != nil {
		return "", &domain.OpError{Op: "jsonstore.lesson.encode", Kind: domain.KindIO, Err: err}
	}
	return string(b), nil
}

// decodeLesson ignores the stored duration and cost; both are derived.
func decodeLesson(s string) (domain.Lesson, error) {
	fail := func(err error) (domain.Lesson, error) {
		return domain.Lesson{}, &domain.OpError{Op: "jsonstore.lesson.decode", Kind: domain.KindIO, Err: err}
	}

	var al adaptedLesson
	if err := json.Unmarshal([]byte(s), &al); err != nil {
		return fail(err)
	}
	day, err := domain.ParseDay(al.Time.DayOfOccurrence)
	if err != nil {
		return fail(err)
	}
	start, err := domain.ParseTimeOfDay(al.Time.StartTime)
	if err != nil {
		return fail(err)
	}
	end, err := domain.ParseTimeOfDay(al.Time.EndTime)
	if err != nil {
		return fail(err)
	}
	slot, err := domain.NewTime(day, start, end)
	if err != nil {
		return fail(err)
	}
	l, err := domain.NewLesson(domain.Subject(al.Subject.Value), slot, al.HourlyRate)
	if err != nil {
		return fail(err)
	}
	return l, nil
}

func illegal(msg string) error {
	return &domain.DomainError{Kind: domain.KindIllegalValue, Msg: msg}
}

func illegalFrom(err error) error {
	return &domain.DomainError{Kind: domain.KindIllegalValue, Msg: err.Error(), Cause: err}
}
