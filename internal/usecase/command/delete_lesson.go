package command

import (
	"fmt"

	"github.com/atyhamos/tp/internal/domain"
	"github.com/atyhamos/tp/internal/model"
)

const (
	DeleteLessonWord  = "delete-lesson"
	DeleteLessonUsage = DeleteLessonWord + ": Deletes a lesson of the tutee identified by the index number used in the displayed tutee list. " +
		"Lessons are numbered in weekly order, Monday first.\n" +
		"Parameters: INDEX LESSON_INDEX (both must be positive integers)\n" +
		"Example: " + DeleteLessonWord + " 2 1"

	MessageDeleteLessonSuccess = "Deleted lesson from tutee: %s"
)

// DeleteLessonCommand removes the LessonIndex-th lesson of the tutee at Index.
type DeleteLessonCommand struct {
	Index       domain.Index
	LessonIndex domain.Index
}

func NewDeleteLessonCommand(idx, lessonIdx domain.Index) *DeleteLessonCommand {
	return &DeleteLessonCommand{Index: idx, LessonIndex: lessonIdx}
}

func (c *DeleteLessonCommand) Execute(m model.Model) (Result, error) {
	target, err := tuteeAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	li := c.LessonIndex.ZeroBased()
	if li < 0 || li >= len(target.Lessons()) {
		return Result{}, fail(MessageInvalidLessonIndex)
	}

	edited := target.WithoutLesson(li)
	if err := m.SetTutee(target, edited); err != nil {
		return Result{}, err
	}
	m.UpdateFilteredTuteeList(model.ShowAll)
	return NewResult(fmt.Sprintf(MessageDeleteLessonSuccess, edited)), nil
}

func (c *DeleteLessonCommand) Equal(other Command) bool {
	o, ok := other.(*DeleteLessonCommand)
	if !ok || o == nil || c == nil {
		return false
	}
	return *c == *o
}
