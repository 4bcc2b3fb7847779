package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atyhamos/tp/internal/domain"
	"github.com/atyhamos/tp/internal/infra/jsonstore"
	"github.com/atyhamos/tp/internal/model"
	"github.com/atyhamos/tp/internal/testutil"
	"github.com/atyhamos/tp/internal/usecase/command"
)

type fakeStore struct {
	r       domain.TrackO
	found   bool
	readErr error
	saveErr error
	saves   int
}

func (s *fakeStore) Path() string { return "fake.json" }

func (s *fakeStore) ReadTrackO() (domain.TrackO, bool, error) {
	return s.r, s.found, s.readErr
}

func (s *fakeStore) SaveTrackO(r domain.TrackO) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.r = domain.CopyTrackO(r)
	return nil
}

func newLogic(store *fakeStore) *Logic {
	return NewLogic(model.NewManager(testutil.TypicalTrackO(), domain.DefaultUserPrefs()), store)
}

func TestExecute_InvalidFormatAndUnknown(t *testing.T) {
	store := &fakeStore{}
	l := newLogic(store)

	_, err := l.Execute(context.Background(), "uicfhmowqewca")
	require.Error(t, err)
	assert.Equal(t, command.MessageUnknownCommand, err.Error())

	_, err = l.Execute(context.Background(), "delete 9")
	require.Error(t, err)
	assert.Equal(t, command.MessageInvalidTuteeDisplayedIndex, err.Error())
	assert.Zero(t, store.saves)
}

func TestExecute_ReadOnlyCommandDoesNotSave(t *testing.T) {
	store := &fakeStore{}
	l := newLogic(store)

	res, err := l.Execute(context.Background(), "list")
	require.NoError(t, err)
	assert.Equal(t, command.MessageListSuccess, res.Feedback)

	_, err = l.Execute(context.Background(), "find Meier")
	require.NoError(t, err)
	assert.Len(t, l.FilteredTutees(), 2)
	assert.Zero(t, store.saves)
}

func TestExecute_MutatingCommandSaves(t *testing.T) {
	store := &fakeStore{}
	l := newLogic(store)

	res, err := l.Execute(context.Background(), "add-lesson 1 s/Math d/mon st/10:00 et/11:00 rate/30")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.Feedback, "New lesson added to tutee: Alice Pauline"))
	assert.Equal(t, 1, store.saves)
	assert.Len(t, store.r.Tutees()[0].Lessons(), 1)
}

func TestExecute_SaveFailure(t *testing.T) {
	store := &fakeStore{saveErr: errors.New("disk full")}
	l := newLogic(store)

	_, err := l.Execute(context.Background(), "delete 1")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindIO))
	assert.Equal(t, MessageSaveFailed+"disk full", err.Error())
	// The in-memory change stays.
	assert.False(t, l.Model().HasTutee(testutil.Alice()))
}

func TestExecute_CancelledContext(t *testing.T) {
	store := &fakeStore{}
	l := newLogic(store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := l.Execute(ctx, "clear")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	assert.Equal(t, len(testutil.TypicalTutees()), l.Model().TrackO().Len())
}

func TestExecute_WithJSONStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "tracko.json")
	store := jsonstore.NewJSONStore(path)
	l := NewLogic(model.NewManager(testutil.TypicalTrackO(), domain.DefaultUserPrefs()), store)

	_, err := l.Execute(context.Background(), "add n/Amy Bee p/11111111 l/p1 a/Block 312, Amy Street 1 t/friend")
	require.NoError(t, err)

	r, found, err := store.ReadTrackO()
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, r.HasTutee(testutil.Amy()))
}

func TestExecute_OverflowingRateKeepsStoreWritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracko.json")
	store := jsonstore.NewJSONStore(path)
	l := NewLogic(model.NewManager(testutil.TypicalTrackO(), domain.DefaultUserPrefs()), store)

	_, err := l.Execute(context.Background(), "add-lesson 1 s/Math d/monday st/10:00 et/12:00 rate/1e308")
	require.Error(t, err)
	assert.Equal(t, domain.HourlyRateConstraints, err.Error())
	assert.Empty(t, l.Model().TrackO().Tutees()[0].Lessons())

	_, err = l.Execute(context.Background(), "delete 3")
	require.NoError(t, err)

	r, found, err := store.ReadTrackO()
	require.NoError(t, err)
	require.True(t, found)
	assert.False(t, r.HasTutee(testutil.Carl()))
}

func TestOpen(t *testing.T) {
	t.Run("missing file loads sample data", func(t *testing.T) {
		m, err := Open(&fakeStore{}, domain.DefaultUserPrefs(), nil)
		require.NoError(t, err)
		assert.Equal(t, 6, m.TrackO().Len())
		assert.Len(t, m.FilteredTutees(), 6)
	})

	t.Run("existing roster", func(t *testing.T) {
		m, err := Open(&fakeStore{r: testutil.TypicalTrackO(), found: true}, domain.DefaultUserPrefs(), nil)
		require.NoError(t, err)
		assert.True(t, m.TrackO().Equal(testutil.TypicalTrackO()))
	})

	t.Run("empty saved roster stays empty", func(t *testing.T) {
		m, err := Open(&fakeStore{r: domain.NewTrackO(), found: true}, domain.DefaultUserPrefs(), nil)
		require.NoError(t, err)
		assert.Zero(t, m.TrackO().Len())
	})

	t.Run("unreadable file aborts", func(t *testing.T) {
		readErr := &domain.OpError{Op: "jsonstore.read", Kind: domain.KindIO, Err: errors.New("bad")}
		_, err := Open(&fakeStore{readErr: readErr}, domain.DefaultUserPrefs(), nil)
		assert.True(t, domain.IsKind(err, domain.KindIO))
	})
}

func TestSampleTutees_AreValidAndDistinct(t *testing.T) {
	r := SampleTrackO()
	assert.Equal(t, 6, r.Len())
	assert.Greater(t, domain.WeeklyIncome(r.Tutees()), 0.0)
}
