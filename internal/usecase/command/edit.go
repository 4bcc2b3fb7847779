package command

import (
	"errors"
	"fmt"

	"github.com/atyhamos/tp/internal/domain"
	"github.com/atyhamos/tp/internal/model"
)

const (
	EditWord  = "edit"
	EditUsage = EditWord + ": Edits the details of the tutee identified by the index number used in the displayed tutee list. " +
		"Existing values will be overwritten by the input values.\n" +
		"Parameters: INDEX (must be a positive integer) [n/NAME] [p/PHONE] [l/LEVEL] [a/ADDRESS] [r/REMARK] [t/TAG]...\n" +
		"Example: " + EditWord + " 1 p/91234567 l/p5"

	MessageEditSuccess     = "Edited Tutee: %s"
	MessageNotEdited       = "At least one field to edit must be provided."
	MessageEditedDuplicate = "This tutee already exists in Track-O."
)

// EditDescriptor lists the fields to overwrite. Nil means "keep". A non-nil
// Tags pointing at an empty slice clears every tag.
type EditDescriptor struct {
	Name    *domain.Name
	Phone   *domain.Phone
	Level   *domain.Level
	Address *domain.Address
	Remark  *domain.Remark
	Tags    *[]domain.Tag
}

func (d EditDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.Phone != nil || d.Level != nil ||
		d.Address != nil || d.Remark != nil || d.Tags != nil
}

// Apply returns t with the descriptor's fields written over it.
func (d EditDescriptor) Apply(t domain.Tutee) domain.Tutee {
	out := t
	if d.Name != nil {
		out = out.WithName(*d.Name)
	}
	if d.Phone != nil {
		out = out.WithPhone(*d.Phone)
	}
	if d.Level != nil {
		out = out.WithLevel(*d.Level)
	}
	if d.Address != nil {
		out = out.WithAddress(*d.Address)
	}
	if d.Remark != nil {
		out = out.WithRemark(*d.Remark)
	}
	if d.Tags != nil {
		out = out.WithTags(*d.Tags)
	}
	return out
}

func (d EditDescriptor) Equal(o EditDescriptor) bool {
	return eqPtr(d.Name, o.Name) && eqPtr(d.Phone, o.Phone) && eqPtr(d.Level, o.Level) &&
		eqPtr(d.Address, o.Address) && eqPtr(d.Remark, o.Remark) && eqTags(d.Tags, o.Tags)
}

// EditCommand replaces the fields set in Descriptor on the tutee at Index.
type EditCommand struct {
	Index      domain.Index
	Descriptor EditDescriptor
}

func NewEditCommand(idx domain.Index, d EditDescriptor) *EditCommand {
	return &EditCommand{Index: idx, Descriptor: d}
}

func (c *EditCommand) Execute(m model.Model) (Result, error) {
	target, err := tuteeAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	if !c.Descriptor.IsAnyFieldEdited() {
		return Result{}, fail(MessageNotEdited)
	}

	edited := c.Descriptor.Apply(target)
	if !target.IsSameTutee(edited) && m.HasTutee(edited) {
		return Result{}, fail(MessageEditedDuplicate)
	}
	if err := m.SetTutee(target, edited); err != nil {
		if errors.Is(err, domain.ErrDuplicateTutee) {
			return Result{}, failWith(MessageEditedDuplicate, err)
		}
		return Result{}, err
	}
	m.UpdateFilteredTuteeList(model.ShowAll)
	return NewResult(fmt.Sprintf(MessageEditSuccess, edited)), nil
}

func (c *EditCommand) Equal(other Command) bool {
	o, ok := other.(*EditCommand)
	if !ok || o == nil || c == nil {
		return false
	}
	return c.Index == o.Index && c.Descriptor.Equal(o.Descriptor)
}

func eqPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func eqTags(a, b *[]domain.Tag) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(*a) != len(*b) {
		return false
	}
	for i := range *a {
		if (*a)[i] != (*b)[i] {
			return false
		}
	}
	return true
}
