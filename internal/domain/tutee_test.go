package domain_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/atyhamos/tp/internal/domain"
	"github.com/atyhamos/tp/internal/testutil"
)

func TestTutee_IsSameTutee(t *testing.T) {
	alice := testutil.Alice()

	if !alice.IsSameTutee(alice) {
		t.Fatalf("expected tutee to be the same as itself")
	}

	// same name and phone, everything else different -> same
	edited := testutil.TuteeBuilderFrom(alice).WithAddress("elsewhere").WithLevel("s4").
		WithTags(testutil.ValidTagHusband).Build()
	if !alice.IsSameTutee(edited) {
		t.Fatalf("expected weak identity to ignore non-identity fields")
	}

	// different phone -> not same
	edited = testutil.TuteeBuilderFrom(alice).WithPhone(testutil.ValidPhoneBob).Build()
	if alice.IsSameTutee(edited) {
		t.Fatalf("expected different phone to break identity")
	}

	// name differs in case -> not same
	edited = testutil.TuteeBuilderFrom(alice).WithName(strings.ToLower(alice.Name().String())).Build()
	if alice.IsSameTutee(edited) {
		t.Fatalf("expected name comparison to be case-sensitive")
	}
}

func TestTutee_Equal(t *testing.T) {
	alice := testutil.Alice()
	if !alice.Equal(testutil.TuteeBuilderFrom(alice).Build()) {
		t.Fatalf("expected copy to be equal")
	}
	if alice.Equal(testutil.Bob()) {
		t.Fatalf("expected different tutees to differ")
	}

	cases := map[string]domain.Tutee{
		"level":   testutil.TuteeBuilderFrom(alice).WithLevel("p6").Build(),
		"address": testutil.TuteeBuilderFrom(alice).WithAddress("x").Build(),
		"remark":  testutil.TuteeBuilderFrom(alice).WithRemark("late").Build(),
		"tags":    testutil.TuteeBuilderFrom(alice).WithTags("other").Build(),
		"lessons": testutil.TuteeBuilderFrom(alice).WithLesson(testutil.Lesson()).Build(),
	}
	for field, other := range cases {
		if alice.Equal(other) {
			t.Errorf("expected difference in %s to break equality", field)
		}
	}
}

func TestTutee_WithLessonIsCopyOnWrite(t *testing.T) {
	alice := testutil.Alice()
	edited := alice.WithLesson(testutil.Lesson())

	if len(alice.Lessons()) != 0 {
		t.Fatalf("expected original to be untouched, got %v", alice.Lessons())
	}
	if len(edited.Lessons()) != 1 {
		t.Fatalf("expected one lesson, got %v", edited.Lessons())
	}

	// Adding the same slot again at another rate does not grow the set.
	repriced := testutil.NewLesson("Physics", "sunday", "12:30", "14:30", 55)
	if got := edited.WithLesson(repriced).Lessons(); len(got) != 1 || got[0].HourlyRate() != 40 {
		t.Fatalf("expected existing lesson to be kept, got %v", got)
	}

	lessons := edited.Lessons()
	lessons[0] = repriced
	if edited.Lessons()[0].HourlyRate() != 40 {
		t.Fatalf("expected Lessons() to return a copy")
	}
}

func TestTutee_LessonsInWeeklyOrder(t *testing.T) {
	sun := testutil.NewLesson("Physics", "sunday", "09:00", "10:00", 30)
	monLate := testutil.NewLesson("Math", "monday", "15:00", "16:00", 30)
	monEarly := testutil.NewLesson("English", "monday", "08:00", "09:00", 30)

	got := testutil.Alice().WithLessons([]domain.Lesson{sun, monLate, monEarly}).Lessons()
	want := []string{"English", "Math", "Physics"}
	var subjects []string
	for _, l := range got {
		subjects = append(subjects, l.Subject().String())
	}
	if diff := cmp.Diff(want, subjects); diff != "" {
		t.Fatalf("lesson order mismatch (-want +got):\n%s", diff)
	}
}

func TestTutee_WithoutLesson(t *testing.T) {
	benson := testutil.Benson()
	if got := benson.WithoutLesson(0).Lessons(); len(got) != 0 {
		t.Fatalf("expected lesson removed, got %v", got)
	}
	if got := benson.WithoutLesson(5).Lessons(); len(got) != 1 {
		t.Fatalf("expected out of range removal to be a no-op, got %v", got)
	}
	if len(benson.Lessons()) != 1 {
		t.Fatalf("expected original untouched")
	}
}

func TestTutee_HasClash(t *testing.T) {
	benson := testutil.Benson()

	if !benson.HasClash(testutil.Lesson()) {
		t.Fatalf("expected identical lesson to clash")
	}
	if !benson.HasClash(testutil.NewLesson("Chemistry", "sunday", "13:00", "15:00", 40)) {
		t.Fatalf("expected overlapping lesson to clash")
	}
	if benson.HasClash(testutil.NewLesson("Chemistry", "sunday", "14:30", "15:30", 40)) {
		t.Fatalf("expected back-to-back lesson not to clash")
	}
}

func TestTutee_WeeklyCost(t *testing.T) {
	benson := testutil.Benson().WithLesson(testutil.NewLesson("Math", "monday", "10:00", "11:30", 30))
	if got := benson.WeeklyCost(); got != 125 {
		t.Fatalf("expected 125, got %v", got)
	}
}

func TestTutee_String(t *testing.T) {
	got := testutil.Benson().String()
	want := "Benson Meier; Phone: 98765432; Level: p2; Address: 311, Clementi Ave 2, #02-25; Remark: ; " +
		"Tags: [friends][owesMoney]; Lessons: [Physics SUNDAY 12:30-14:30 $40.00/h]"
	if got != want {
		t.Fatalf("unexpected string\nwant %q\ngot  %q", want, got)
	}
}
