// Package model mediates every change to the roster and keeps the filtered
// view that display indices are resolved against.
package model

import "github.com/atyhamos/tp/internal/domain"

// Predicate selects the tutees shown in the filtered view.
type Predicate func(domain.Tutee) bool

// ShowAll matches every tutee.
func ShowAll(domain.Tutee) bool { return true }

// Model is what commands execute against.
type Model interface {
	UserPrefs() domain.UserPrefs
	SetUserPrefs(p domain.UserPrefs)

	// TrackO returns a copy of the roster.
	TrackO() domain.TrackO
	// SetTrackO replaces the whole roster and shows all of it.
	SetTrackO(r domain.TrackO)

	HasTutee(t domain.Tutee) bool
	AddTutee(t domain.Tutee) error
	SetTutee(target, edited domain.Tutee) error
	DeleteTutee(t domain.Tutee) error

	// FilteredTutees returns the visible tutees in roster order.
	FilteredTutees() []domain.Tutee
	UpdateFilteredTuteeList(p Predicate)
}
