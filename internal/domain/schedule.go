package domain

import "sort"

// ScheduleEntry is one lesson of one tutee in the weekly timetable.
type ScheduleEntry struct {
	Tutee  Name
	Lesson Lesson
}

// WeeklySchedule flattens every tutee's lessons into a Monday-first timetable.
func WeeklySchedule(tutees []Tutee) []ScheduleEntry {
	var out []ScheduleEntry
	for _, t := range tutees {
		for _, l := range t.lessons {
			out = append(out, ScheduleEntry{Tutee: t.name, Lesson: l})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Lesson.time != b.Lesson.time || a.Lesson.subject != b.Lesson.subject {
			return a.Lesson.before(b.Lesson)
		}
		return a.Tutee < b.Tutee
	})
	return out
}

// WeeklyIncome is the sum of every lesson's cost across tutees.
func WeeklyIncome(tutees []Tutee) float64 {
	var sum float64
	for _, t := range tutees {
		sum += t.WeeklyCost()
	}
	return sum
}
