package domain

// TrackO is the roster: an ordered list of tutees, unique by IsSameTutee.
// Order is insertion order and is what display indices are resolved against.
// Mutators never write into a backing array another copy may share.
type TrackO struct {
	tutees []Tutee
}

// NewTrackO returns an empty roster.
func NewTrackO() TrackO {
	return TrackO{tutees: []Tutee{}}
}

// CopyTrackO returns an independent copy of src.
func CopyTrackO(src TrackO) TrackO {
	return TrackO{tutees: src.Tutees()}
}

func (r TrackO) Len() int { return len(r.tutees) }

// Tutees returns a copy of the roster in order.
func (r TrackO) Tutees() []Tutee {
	out := make([]Tutee, len(r.tutees))
	copy(out, r.tutees)
	return out
}

func (r TrackO) HasTutee(t Tutee) bool {
	return r.indexOf(t) >= 0
}

// AddTutee appends t, or fails with ErrDuplicateTutee when a tutee with the
// same name and phone is already present.
func (r *TrackO) AddTutee(t Tutee) error {
	if r.HasTutee(t) {
		return &DomainError{Kind: KindDuplicate, Cause: ErrDuplicateTutee}
	}
	r.tutees = append(r.Tutees(), t)
	return nil
}

// SetTutee replaces target with edited at target's position.
func (r *TrackO) SetTutee(target, edited Tutee) error {
	i := r.indexOf(target)
	if i < 0 {
		return &DomainError{Kind: KindNotFound, Cause: ErrTuteeNotFound}
	}
	for j, t := range r.tutees {
		if j != i && t.IsSameTutee(edited) {
			return &DomainError{Kind: KindDuplicate, Cause: ErrDuplicateTutee}
		}
	}
	out := r.Tutees()
	out[i] = edited
	r.tutees = out
	return nil
}

// RemoveTutee removes the tutee with the same name and phone as t.
func (r *TrackO) RemoveTutee(t Tutee) error {
	i := r.indexOf(t)
	if i < 0 {
		return &DomainError{Kind: KindNotFound, Cause: ErrTuteeNotFound}
	}
	r.tutees = append(r.tutees[:i:i], r.tutees[i+1:]...)
	return nil
}

// SetTutees replaces the whole roster. It fails, leaving the roster
// untouched, if the input holds the same tutee twice.
func (r *TrackO) SetTutees(tutees []Tutee) error {
	for i := range tutees {
		for j := i + 1; j < len(tutees); j++ {
			if tutees[i].IsSameTutee(tutees[j]) {
				return &DomainError{Kind: KindDuplicate, Cause: ErrDuplicateTutee}
			}
		}
	}
	out := make([]Tutee, len(tutees))
	copy(out, tutees)
	r.tutees = out
	return nil
}

func (r TrackO) Equal(o TrackO) bool {
	if len(r.tutees) != len(o.tutees) {
		return false
	}
	for i := range r.tutees {
		if !r.tutees[i].Equal(o.tutees[i]) {
			return false
		}
	}
	return true
}

func (r TrackO) indexOf(t Tutee) int {
	for i, existing := range r.tutees {
		if existing.IsSameTutee(t) {
			return i
		}
	}
	return -1
}
