package testutil

import "github.com/atyhamos/tp/internal/domain"

// Field values shared by command and parser tests.
const (
	ValidNameAmy    = "Amy Bee"
	ValidNameBob    = "Bob Choo"
	ValidPhoneAmy   = "11111111"
	ValidPhoneBob   = "22222222"
	ValidLevelAmy   = "p1"
	ValidLevelBob   = "s2"
	ValidAddressAmy = "Block 312, Amy Street 1"
	ValidAddressBob = "Block 123, Bobby Street 3"
	ValidTagHusband = "husband"
	ValidTagFriend  = "friend"

	ValidLessonSubjectBob    = "Physics"
	ValidLessonDayOfWeekBob  = "sunday"
	ValidLessonStartTimeBob  = "12:30"
	ValidLessonEndTimeBob    = "14:30"
	ValidLessonHourlyRateBob = 40.0

	KeywordMatchingMeier = "Meier"
)

var (
	IndexFirstTutee  = domain.IndexFromOneBased(1)
	IndexSecondTutee = domain.IndexFromOneBased(2)
	IndexThirdTutee  = domain.IndexFromOneBased(3)
)

// Lesson is the lesson Benson attends.
func Lesson() domain.Lesson {
	return NewLesson("Physics", "sunday", "12:30", "14:30", 40.0)
}

// LessonBob is built from the ValidLesson*Bob values.
func LessonBob() domain.Lesson {
	return NewLesson(ValidLessonSubjectBob, ValidLessonDayOfWeekBob,
		ValidLessonStartTimeBob, ValidLessonEndTimeBob, ValidLessonHourlyRateBob)
}

func Alice() domain.Tutee {
	return NewTuteeBuilder().WithName("Alice Pauline").
		WithAddress("123, Jurong West Ave 6, #08-111").WithLevel("p1").
		WithPhone("94351253").
		WithTags("friends").Build()
}

func Benson() domain.Tutee {
	return NewTuteeBuilder().WithName("Benson Meier").
		WithAddress("311, Clementi Ave 2, #02-25").
		WithLevel("p2").WithPhone("98765432").
		WithTags("owesMoney", "friends").WithLesson(Lesson()).Build()
}

func Carl() domain.Tutee {
	return NewTuteeBuilder().WithName("Carl Kurz").WithPhone("95352563").
		WithLevel("p3").WithAddress("wall street").Build()
}

func Daniel() domain.Tutee {
	return NewTuteeBuilder().WithName("Daniel Meier").WithPhone("87652533").
		WithLevel("p4").WithAddress("10th street").WithTags("friends").Build()
}

func Elle() domain.Tutee {
	return NewTuteeBuilder().WithName("Elle Meyer").WithPhone("9482224").
		WithLevel("p5").WithAddress("michegan ave").Build()
}

func Fiona() domain.Tutee {
	return NewTuteeBuilder().WithName("Fiona Kunz").WithPhone("9482427").
		WithLevel("p6").WithAddress("little tokyo").Build()
}

func George() domain.Tutee {
	return NewTuteeBuilder().WithName("George Best").WithPhone("9482442").
		WithLevel("p5").WithAddress("4th street").Build()
}

// Hoon and Ida are not in the typical roster.
func Hoon() domain.Tutee {
	return NewTuteeBuilder().WithName("Hoon Meier").WithPhone("8482424").
		WithLevel("p5").WithAddress("little india").Build()
}

func Ida() domain.Tutee {
	return NewTuteeBuilder().WithName("Ida Mueller").WithPhone("8482131").
		WithLevel("p4").WithAddress("chicago ave").Build()
}

func Amy() domain.Tutee {
	return NewTuteeBuilder().WithName(ValidNameAmy).WithPhone(ValidPhoneAmy).
		WithLevel(ValidLevelAmy).WithAddress(ValidAddressAmy).WithTags(ValidTagFriend).Build()
}

func Bob() domain.Tutee {
	return NewTuteeBuilder().WithName(ValidNameBob).WithPhone(ValidPhoneBob).
		WithLevel(ValidLevelBob).WithAddress(ValidAddressBob).
		WithTags(ValidTagHusband, ValidTagFriend).Build()
}

// TypicalTutees returns Alice through George in roster order.
func TypicalTutees() []domain.Tutee {
	return []domain.Tutee{Alice(), Benson(), Carl(), Daniel(), Elle(), Fiona(), George()}
}

// TypicalTrackO returns a roster holding TypicalTutees.
func TypicalTrackO() domain.TrackO {
	r := domain.NewTrackO()
	for _, t := range TypicalTutees() {
		if err := r.AddTutee(t); err != nil {
			panic(err)
		}
	}
	return r
}
