package command_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atyhamos/tp/internal/domain"
	"github.com/atyhamos/tp/internal/testutil"
	"github.com/atyhamos/tp/internal/usecase/command"
)

func ptr[T any](v T) *T { return &v }

func TestEdit_AllFields(t *testing.T) {
	m := newTypicalModel()
	tags := []domain.Tag{testutil.ValidTagHusband}
	d := command.EditDescriptor{
		Name:    ptr(domain.Name(testutil.ValidNameBob)),
		Phone:   ptr(domain.Phone(testutil.ValidPhoneBob)),
		Level:   ptr(domain.Level(testutil.ValidLevelBob)),
		Address: ptr(domain.Address(testutil.ValidAddressBob)),
		Remark:  ptr(domain.Remark("quiet")),
		Tags:    &tags,
	}
	target := testutil.Alice()
	edited := d.Apply(target)

	assertCommandSuccess(t, command.NewEditCommand(testutil.IndexFirstTutee, d), m,
		fmt.Sprintf(command.MessageEditSuccess, edited), expectedWithEdit(t, target, edited))
}

func TestEdit_ClearTags(t *testing.T) {
	m := newTypicalModel()
	d := command.EditDescriptor{Tags: &[]domain.Tag{}}
	target := testutil.Benson()
	edited := d.Apply(target)
	assert.Empty(t, edited.Tags())
	assert.Len(t, edited.Lessons(), 1)

	assertCommandSuccess(t, command.NewEditCommand(testutil.IndexSecondTutee, d), m,
		fmt.Sprintf(command.MessageEditSuccess, edited), expectedWithEdit(t, target, edited))
}

func TestEdit_FilteredListResetsView(t *testing.T) {
	m := newTypicalModel()
	showTuteeAtIndex(t, m, testutil.IndexSecondTutee)
	d := command.EditDescriptor{Address: ptr(domain.Address("1 New Road"))}
	target := testutil.Benson()
	edited := d.Apply(target)

	assertCommandSuccess(t, command.NewEditCommand(testutil.IndexFirstTutee, d), m,
		fmt.Sprintf(command.MessageEditSuccess, edited), expectedWithEdit(t, target, edited))
}

func TestEdit_Failures(t *testing.T) {
	m := newTypicalModel()
	alice := testutil.Alice()

	toAlice := command.EditDescriptor{Name: ptr(alice.Name()), Phone: ptr(alice.Phone())}
	assertCommandFailure(t, command.NewEditCommand(testutil.IndexSecondTutee, toAlice), m, command.MessageEditedDuplicate)

	assertCommandFailure(t, command.NewEditCommand(testutil.IndexFirstTutee, command.EditDescriptor{}), m, command.MessageNotEdited)

	assertCommandFailure(t, command.NewEditCommand(domain.IndexFromOneBased(8), toAlice), m,
		command.MessageInvalidTuteeDisplayedIndex)
}

func TestEdit_Equal(t *testing.T) {
	a := command.NewEditCommand(testutil.IndexFirstTutee, command.EditDescriptor{Phone: ptr(domain.Phone("123"))})
	b := command.NewEditCommand(testutil.IndexFirstTutee, command.EditDescriptor{Phone: ptr(domain.Phone("123"))})
	c := command.NewEditCommand(testutil.IndexSecondTutee, command.EditDescriptor{Phone: ptr(domain.Phone("123"))})
	d := command.NewEditCommand(testutil.IndexFirstTutee, command.EditDescriptor{Tags: &[]domain.Tag{}})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.False(t, a.Equal(nil))
}
