package command_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atyhamos/tp/internal/domain"
	"github.com/atyhamos/tp/internal/model"
	"github.com/atyhamos/tp/internal/testutil"
	"github.com/atyhamos/tp/internal/usecase/command"
)

func newTypicalModel() *model.Manager {
	return model.NewManager(testutil.TypicalTrackO(), domain.DefaultUserPrefs())
}

// assertCommandSuccess runs cmd on actual and checks the feedback and the resulting model.
func assertCommandSuccess(t *testing.T, cmd command.Command, actual *model.Manager, wantMsg string, expected *model.Manager) {
	t.Helper()
	res, err := cmd.Execute(actual)
	require.NoError(t, err)
	assert.Equal(t, wantMsg, res.Feedback)
	assert.True(t, expected.Equal(actual), "model differs from expected\nwant %v\ngot  %v",
		expected.FilteredTutees(), actual.FilteredTutees())
}

// assertCommandFailure runs cmd on actual and checks it fails with wantMsg leaving the model untouched.
func assertCommandFailure(t *testing.T, cmd command.Command, actual *model.Manager, wantMsg string) {
	t.Helper()
	roster := actual.TrackO()
	visible := actual.FilteredTutees()

	_, err := cmd.Execute(actual)
	require.Error(t, err)
	assert.Equal(t, wantMsg, err.Error())
	assert.True(t, domain.IsKind(err, domain.KindCommand), "expected a command error, got %T", err)

	assert.True(t, roster.Equal(actual.TrackO()), "roster changed on failure")
	after := actual.FilteredTutees()
	require.Len(t, after, len(visible))
	for i := range visible {
		assert.True(t, visible[i].Equal(after[i]), "filtered view changed at %d", i)
	}
}

// showTuteeAtIndex narrows m to the single tutee at idx.
func showTuteeAtIndex(t *testing.T, m *model.Manager, idx domain.Index) {
	t.Helper()
	visible := m.FilteredTutees()
	require.Less(t, idx.ZeroBased(), len(visible))
	first := strings.Fields(visible[idx.ZeroBased()].Name().String())[0]
	m.UpdateFilteredTuteeList(model.NameContainsKeywords{Keywords: []string{first}}.Test)
	require.Len(t, m.FilteredTutees(), 1)
}

func expectedWithEdit(t *testing.T, target, edited domain.Tutee) *model.Manager {
	t.Helper()
	expected := newTypicalModel()
	require.NoError(t, expected.SetTutee(target, edited))
	return expected
}
