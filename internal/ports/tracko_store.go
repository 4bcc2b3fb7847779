package ports

import "github.com/atyhamos/tp/internal/domain"

// TrackOStore persists the roster as a whole.
type TrackOStore interface {
	Path() string
	// ReadTrackO reports found=false, with no error, when nothing has been saved yet.
	ReadTrackO() (r domain.TrackO, found bool, err error)
	SaveTrackO(r domain.TrackO) error
}
