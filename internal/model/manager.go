package model

import "github.com/atyhamos/tp/internal/domain"

// Manager is the in-memory Model.
type Manager struct {
	trackO    domain.TrackO
	prefs     domain.UserPrefs
	predicate Predicate
	filtered  []domain.Tutee
}

var _ Model = (*Manager)(nil)

// NewManager takes a copy of r, so later changes to r are not seen.
func NewManager(r domain.TrackO, prefs domain.UserPrefs) *Manager {
	m := &Manager{
		trackO:    domain.CopyTrackO(r),
		prefs:     prefs,
		predicate: ShowAll,
	}
	m.refresh()
	return m
}

func (m *Manager) UserPrefs() domain.UserPrefs     { return m.prefs }
func (m *Manager) SetUserPrefs(p domain.UserPrefs) { m.prefs = p }

func (m *Manager) TrackO() domain.TrackO { return domain.CopyTrackO(m.trackO) }

func (m *Manager) SetTrackO(r domain.TrackO) {
	m.trackO = domain.CopyTrackO(r)
	m.predicate = ShowAll
	m.refresh()
}

func (m *Manager) HasTutee(t domain.Tutee) bool { return m.trackO.HasTutee(t) }

// AddTutee appends t and resets the view to show everyone, so the new tutee is visible.
func (m *Manager) AddTutee(t domain.Tutee) error {
	if err := m.trackO.AddTutee(t); err != nil {
		return err
	}
	m.predicate = ShowAll
	m.refresh()
	return nil
}

func (m *Manager) SetTutee(target, edited domain.Tutee) error {
	if err := m.trackO.SetTutee(target, edited); err != nil {
		return err
	}
	m.refresh()
	return nil
}

func (m *Manager) DeleteTutee(t domain.Tutee) error {
	if err := m.trackO.RemoveTutee(t); err != nil {
		return err
	}
	m.refresh()
	return nil
}

func (m *Manager) FilteredTutees() []domain.Tutee {
	out := make([]domain.Tutee, len(m.filtered))
	copy(out, m.filtered)
	return out
}

// UpdateFilteredTuteeList sets the view predicate. A nil predicate shows all.
func (m *Manager) UpdateFilteredTuteeList(p Predicate) {
	if p == nil {
		p = ShowAll
	}
	m.predicate = p
	m.refresh()
}

// Equal reports whether both managers hold the same roster, prefs and view.
func (m *Manager) Equal(o *Manager) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.prefs != o.prefs || !m.trackO.Equal(o.trackO) {
		return false
	}
	if len(m.filtered) != len(o.filtered) {
		return false
	}
	for i := range m.filtered {
		if !m.filtered[i].Equal(o.filtered[i]) {
			return false
		}
	}
	return true
}

func (m *Manager) refresh() {
	all := m.trackO.Tutees()
	out := make([]domain.Tutee, 0, len(all))
	for _, t := range all {
		if m.predicate(t) {
			out = append(out, t)
		}
	}
	m.filtered = out
}
