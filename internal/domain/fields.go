package domain

import (
	"regexp"
	"strings"
)

const (
	NameConstraints    = "Names should only contain alphanumeric characters and spaces, and it should not be blank"
	PhoneConstraints   = "Phone numbers should only contain numbers, and it should be at least 3 digits long"
	AddressConstraints = "Addresses can take any values, and it should not be blank"
	LevelConstraints   = "Level should be one of p1 to p6 (primary) or s1 to s5 (secondary)"
	TagConstraints     = "Tags names should be alphanumeric"
)

var (
	reName    = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)
	rePhone   = regexp.MustCompile(`^\d{3,}$`)
	reAddress = regexp.MustCompile(`^\S`)
	reLevel   = regexp.MustCompile(`^(p[1-6]|s[1-5])$`)
	reTag     = regexp.MustCompile(`^[\p{L}\p{N}]+$`)
)

// Name is a tutee's full name.
type Name string

func IsValidName(s string) bool { return reName.MatchString(s) }

// NewName validates s against NameConstraints.
func NewName(s string) (Name, error) {
	if !IsValidName(s) {
		return "", constraint(NameConstraints)
	}
	return Name(s), nil
}

func (n Name) String() string { return string(n) }

// Phone is a tutee's contact number.
type Phone string

func IsValidPhone(s string) bool { return rePhone.MatchString(s) }

// NewPhone validates s against PhoneConstraints.
func NewPhone(s string) (Phone, error) {
	if !IsValidPhone(s) {
		return "", constraint(PhoneConstraints)
	}
	return Phone(s), nil
}

func (p Phone) String() string { return string(p) }

// Address is where lessons take place.
type Address string

func IsValidAddress(s string) bool { return reAddress.MatchString(s) }

// NewAddress requires a value that does not start with whitespace.
func NewAddress(s string) (Address, error) {
	if !IsValidAddress(s) {
		return "", constraint(AddressConstraints)
	}
	return Address(s), nil
}

func (a Address) String() string { return string(a) }

// Level is the school grade: p1-p6 for primary, s1-s5 for secondary.
// Input is case-insensitive; the stored value is lower case.
type Level string

func IsValidLevel(s string) bool { return reLevel.MatchString(strings.ToLower(s)) }

// NewLevel validates s against LevelConstraints.
func NewLevel(s string) (Level, error) {
	if !IsValidLevel(s) {
		return "", constraint(LevelConstraints)
	}
	return Level(strings.ToLower(s)), nil
}

func (l Level) String() string { return string(l) }

// Remark is free text attached to a tutee. Any value, including empty, is valid.
type Remark string

func (r Remark) String() string { return string(r) }

// Tag is a single alphanumeric label.
type Tag string

func IsValidTag(s string) bool { return reTag.MatchString(s) }

// NewTag accepts a single alphanumeric word.
func NewTag(s string) (Tag, error) {
	if !IsValidTag(s) {
		return "", constraint(TagConstraints)
	}
	return Tag(s), nil
}

func (t Tag) String() string { return string(t) }

// NewTags validates every raw tag and returns them as a set.
func NewTags(raw ...string) ([]Tag, error) {
	out := make([]Tag, 0, len(raw))
	for _, s := range raw {
		t, err := NewTag(s)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return normalizeTags(out), nil
}
