package usecase

import (
	"time"

	"github.com/atyhamos/tp/internal/domain"
)

type sampleLesson struct {
	subject    string
	day        time.Weekday
	start, end string
	rate       float64
}

type sampleTutee struct {
	name, phone, level, address, remark string
	tags                                []string
	lessons                             []sampleLesson
}

var samples = []sampleTutee{
	{
		name: "Alex Yeoh", phone: "87438807", level: "p4", address: "Blk 30 Geylang Street 29, #06-40",
		tags:    []string{"friends"},
		lessons: []sampleLesson{{"Math", time.Monday, "16:00", "18:00", 35}},
	},
	{
		name: "Bernice Yu", phone: "99272758", level: "s2", address: "Blk 30 Lorong 3 Serangoon Gardens, #07-18",
		remark:  "Needs extra practice on algebra",
		tags:    []string{"colleagues", "friends"},
		lessons: []sampleLesson{{"Math", time.Wednesday, "19:00", "20:30", 45}, {"Physics", time.Saturday, "10:00", "12:00", 50}},
	},
	{
		name: "Charlotte Oliveiro", phone: "93210283", level: "p6", address: "Blk 11 Ang Mo Kio Street 74, #11-04",
		tags:    []string{"neighbours"},
		lessons: []sampleLesson{{"Science", time.Tuesday, "15:30", "17:00", 40}},
	},
	{
		name: "David Li", phone: "91031282", level: "s4", address: "Blk 436 Serangoon Gardens Street 26, #16-43",
		tags:    []string{"family"},
		lessons: []sampleLesson{{"Chemistry", time.Sunday, "09:00", "11:00", 60}},
	},
	{
		name: "Irfan Ibrahim", phone: "92492021", level: "p2", address: "Blk 47 Tampines Street 20, #17-35",
		tags: []string{"classmates"},
	},
	{
		name: "Roy Balakrishnan", phone: "92624417", level: "s1", address: "Blk 45 Aljunied Street 85, #11-31",
		remark:  "Prefers online lessons",
		tags:    []string{"colleagues"},
		lessons: []sampleLesson{{"English", time.Thursday, "18:00", "19:00", 30}},
	},
}

// SampleTutees is the roster shown on first launch.
func SampleTutees() []domain.Tutee {
	out := make([]domain.Tutee, 0, len(samples))
	for _, s := range samples {
		tags, err := domain.NewTags(s.tags...)
		if err != nil {
			panic(err)
		}
		lessons := make([]domain.Lesson, 0, len(s.lessons))
		for _, sl := range s.lessons {
			lessons = append(lessons, mustLesson(sl))
		}
		out = append(out, domain.NewTutee(
			domain.Name(s.name), domain.Phone(s.phone), domain.Level(s.level),
			domain.Address(s.address), domain.Remark(s.remark), tags, lessons))
	}
	return out
}

// SampleTrackO is the roster shown on first launch.
func SampleTrackO() domain.TrackO {
	r := domain.NewTrackO()
	if err := r.SetTutees(SampleTutees()); err != nil {
		panic(err)
	}
	return r
}

func mustLesson(sl sampleLesson) domain.Lesson {
	start, err := domain.ParseTimeOfDay(sl.start)
	if err != nil {
		panic(err)
	}
	end, err := domain.ParseTimeOfDay(sl.end)
	if err != nil {
		panic(err)
	}
	slot, err := domain.NewTime(sl.day, start, end)
	if err != nil {
		panic(err)
	}
	l, err := domain.NewLesson(domain.Subject(sl.subject), slot, sl.rate)
	if err != nil {
		panic(err)
	}
	return l
}
