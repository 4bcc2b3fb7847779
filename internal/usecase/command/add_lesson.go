package command

import (
	"errors"
	"fmt"
	"time"

	"github.com/atyhamos/tp/internal/domain"
	"github.com/atyhamos/tp/internal/model"
)

const (
	AddLessonWord  = "add-lesson"
	AddLessonUsage = AddLessonWord + ": Adds a weekly lesson to the tutee identified by the index number used in the displayed tutee list.\n" +
		"Parameters: INDEX (must be a positive integer) s/SUBJECT d/DAY st/START_TIME et/END_TIME rate/HOURLY_RATE\n" +
		"Example: " + AddLessonWord + " 1 s/Physics d/sunday st/12:30 et/14:30 rate/40"

	MessageAddLessonSuccess = "New lesson added to tutee: %s"
	MessageLessonClash      = "This lesson clashes with an existing lesson of the tutee"
)

// AddLessonCommand adds a weekly lesson to the tutee at Index in the
// displayed list. The lesson must not clash with the tutee's existing ones.
type AddLessonCommand struct {
	Index      domain.Index
	Subject    domain.Subject
	Day        time.Weekday
	Start      domain.TimeOfDay
	End        domain.TimeOfDay
	HourlyRate float64
}

func NewAddLessonCommand(idx domain.Index, subject domain.Subject, day time.Weekday, start, end domain.TimeOfDay, rate float64) *AddLessonCommand {
	return &AddLessonCommand{Index: idx, Subject: subject, Day: day, Start: start, End: end, HourlyRate: rate}
}

func (c *AddLessonCommand) Execute(m model.Model) (Result, error) {
	target, err := tuteeAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}

	slot, err := domain.NewTime(c.Day, c.Start, c.End)
	if err != nil {
		return Result{}, failWith(err.Error(), err)
	}
	lesson, err := domain.NewLesson(c.Subject, slot, c.HourlyRate)
	if err != nil {
		return Result{}, failWith(err.Error(), err)
	}
	if target.HasClash(lesson) {
		return Result{}, fail(MessageLessonClash)
	}

	edited := target.WithLesson(lesson)
	if err := m.SetTutee(target, edited); err != nil {
		if errors.Is(err, domain.ErrTuteeNotFound) {
			return Result{}, failWith(MessageInvalidTuteeDisplayedIndex, err)
		}
		return Result{}, err
	}
	m.UpdateFilteredTuteeList(model.ShowAll)
	return NewResult(fmt.Sprintf(MessageAddLessonSuccess, edited)), nil
}

func (c *AddLessonCommand) Equal(other Command) bool {
	o, ok := other.(*AddLessonCommand)
	if !ok || o == nil || c == nil {
		return false
	}
	return *c == *o
}
