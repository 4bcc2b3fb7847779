package jsonstore

import (
	"fmt"
	"testing"

	"github.com/atyhamos/tp/internal/domain"
	"github.com/atyhamos/tp/internal/testutil"
)

const (
	invalidName    = "R@chel"
	invalidPhone   = "+651234"
	invalidAddress = " "
	invalidLevel   = "w5"
	invalidTag     = "#friend"
	invalidLesson  = "{\r\n  \"subject\" : {\r\n    \"value\" : \"Ec@ns\"\r\n  },\r\n  " +
		"\"time\" : {\r\n    \"dayOfOccurrence\" : \"Moon day\",\r\n    \"startTime\" : \"23:30\",\r\n    " +
		"\"endTime\" : \"25:30\",\r\n    \"duration\" : 2.0\r\n  },\r\n  \"hourlyRate\" : 40.5,\r\n  \"cost\" : " +
		"81.0\r\n}"
)

// validBenson returns the adapted form of Benson; tests then break one field.
func validBenson(t *testing.T) adaptedTutee {
	t.Helper()
	a, err := newAdaptedTutee(testutil.Benson())
	if err != nil {
		t.Fatalf("newAdaptedTutee: %v", err)
	}
	return a
}

func strPtr(s string) *string { return &s }

func TestToModel_ValidTutee(t *testing.T) {
	got, err := validBenson(t).toModel()
	if err != nil {
		t.Fatalf("toModel: %v", err)
	}
	if !got.Equal(testutil.Benson()) {
		t.Fatalf("expected Benson back, got %v", got)
	}
}

func TestToModel_InvalidScalars(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*adaptedTutee)
		want   string
	}{
		{"invalid name", func(a *adaptedTutee) { a.Name = strPtr(invalidName) }, domain.NameConstraints},
		{"null name", func(a *adaptedTutee) { a.Name = nil }, fmt.Sprintf(MissingFieldMessageFormat, "Name")},
		{"invalid phone", func(a *adaptedTutee) { a.Phone = strPtr(invalidPhone) }, domain.PhoneConstraints},
		{"null phone", func(a *adaptedTutee) { a.Phone = nil }, fmt.Sprintf(MissingFieldMessageFormat, "Phone")},
		{"invalid level", func(a *adaptedTutee) { a.Level = strPtr(invalidLevel) }, domain.LevelConstraints},
		{"null level", func(a *adaptedTutee) { a.Level = nil }, fmt.Sprintf(MissingFieldMessageFormat, "Level")},
		{"invalid address", func(a *adaptedTutee) { a.Address = strPtr(invalidAddress) }, domain.AddressConstraints},
		{"null address", func(a *adaptedTutee) { a.Address = nil }, fmt.Sprintf(MissingFieldMessageFormat, "Address")},
		{"null remark", func(a *adaptedTutee) { a.Remark = nil }, fmt.Sprintf(MissingFieldMessageFormat, "Remark")},
		// Presence is checked for every field before any value is validated.
		{"invalid name and null address", func(a *adaptedTutee) {
			a.Name = strPtr(invalidName)
			a.Address = nil
		}, fmt.Sprintf(MissingFieldMessageFormat, "Address")},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := validBenson(t)
			c.mutate(&a)
			_, err := a.toModel()
			if !domain.IsKind(err, domain.KindIllegalValue) {
				t.Fatalf("expected illegal value error, got %v", err)
			}
			if err.Error() != c.want {
				t.Fatalf("expected %q, got %q", c.want, err.Error())
			}
		})
	}
}

func TestToModel_InvalidTags(t *testing.T) {
	a := validBenson(t)
	a.Tags = append(a.Tags, adaptedTag{name: invalidTag})
	_, err := a.toModel()
	if !domain.IsKind(err, domain.KindIllegalValue) {
		t.Fatalf("expected illegal value error, got %v", err)
	}
	if err.Error() != domain.TagConstraints {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestToModel_InvalidLessonIsIOError(t *testing.T) {
	a := validBenson(t)
	a.Lessons = append(a.Lessons, invalidLesson)
	_, err := a.toModel()
	if !domain.IsKind(err, domain.KindIO) {
		t.Fatalf("expected I/O error, got %v", err)
	}
	if domain.IsKind(err, domain.KindIllegalValue) {
		t.Fatalf("lesson errors must not be illegal value errors")
	}
}

func TestDecodeLesson_Errors(t *testing.T) {
	valid := func(day, start, end, subject string, rate float64) string {
		return fmt.Sprintf(`{"subject":{"value":%q},"time":{"dayOfOccurrence":%q,"startTime":%q,"endTime":%q,"duration":1.0},"hourlyRate":%v,"cost":0}`,
			subject, day, start, end, rate)
	}
	bad := map[string]string{
		"not json":       "{",
		"bad day":        valid("Moon day", "10:00", "11:00", "Math", 10),
		"bad start":      valid("MONDAY", "9am", "11:00", "Math", 10),
		"end past 23:59": valid("MONDAY", "23:30", "25:30", "Math", 10),
		"end before":     valid("MONDAY", "11:00", "10:00", "Math", 10),
		"bad subject":    valid("MONDAY", "10:00", "11:00", "Ec@ns", 10),
		"negative rate":  valid("MONDAY", "10:00", "11:00", "Math", -5),
	}
	for name, s := range bad {
		if _, err := decodeLesson(s); !domain.IsKind(err, domain.KindIO) {
			t.Errorf("%s: expected I/O error, got %v", name, err)
		}
	}

	l, err := decodeLesson(valid("monday", "10:00", "11:30", "Math", 20))
	if err != nil {
		t.Fatalf("decodeLesson: %v", err)
	}
	if l.Cost() != 30 {
		t.Fatalf("expected cost derived from slot, got %v", l.Cost())
	}
}

func TestEncodeLesson_Format(t *testing.T) {
	s, err := encodeLesson(testutil.Lesson())
	if err != nil {
		t.Fatalf("encodeLesson: %v", err)
	}
	want := `{
  "subject": {
    "value": "Physics"
  },
  "time": {
    "dayOfOccurrence": "SUNDAY",
    "startTime": "12:30",
    "endTime": "14:30",
    "duration": 2
  },
  "hourlyRate": 40,
  "cost": 80
}`
	if s != want {
		t.Fatalf("unexpected encoding\nwant %s\ngot  %s", want, s)
	}
}
