// Package domain contains the core domain model for Track-O.
//
// The domain is transport- and persistence-agnostic: it does not depend on JSON
// encoding, YAML parsing or the filesystem. Infra/adapters map into/from these types.
//
// Tutee, Lesson and TrackO are values. Edits build a new value and hand it back
// to the roster, which replaces the old entry in place.
package domain
