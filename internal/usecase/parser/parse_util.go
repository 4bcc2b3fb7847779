package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/atyhamos/tp/internal/domain"
)

const MessageInvalidIndex = "Index is not a non-zero unsigned integer."

func parseErr(msg string, cause error) error {
	return &domain.DomainError{Kind: domain.KindParse, Msg: msg, Cause: cause}
}

// asParse rewraps a value constraint error as a parse error with the same message.
func asParse(err error) error {
	if err == nil {
		return nil
	}
	return parseErr(err.Error(), err)
}

// ParseIndex reads a one-based index. Leading and trailing whitespace is ignored.
func ParseIndex(s string) (domain.Index, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.ParseUint(s, 10, 31)
	if err != nil || n == 0 {
		return domain.Index{}, parseErr(MessageInvalidIndex, err)
	}
	return domain.IndexFromOneBased(int(n)), nil
}

func ParseName(s string) (domain.Name, error) {
	n, err := domain.NewName(strings.TrimSpace(s))
	return n, asParse(err)
}

func ParsePhone(s string) (domain.Phone, error) {
	p, err := domain.NewPhone(strings.TrimSpace(s))
	return p, asParse(err)
}

func ParseLevel(s string) (domain.Level, error) {
	l, err := domain.NewLevel(strings.TrimSpace(s))
	return l, asParse(err)
}

func ParseAddress(s string) (domain.Address, error) {
	a, err := domain.NewAddress(strings.TrimSpace(s))
	return a, asParse(err)
}

func ParseRemark(s string) domain.Remark {
	return domain.Remark(strings.TrimSpace(s))
}

func ParseTags(raw []string) ([]domain.Tag, error) {
	trimmed := make([]string, 0, len(raw))
	for _, s := range raw {
		trimmed = append(trimmed, strings.TrimSpace(s))
	}
	tags, err := domain.NewTags(trimmed...)
	return tags, asParse(err)
}

func ParseSubject(s string) (domain.Subject, error) {
	sub, err := domain.NewSubject(strings.TrimSpace(s))
	return sub, asParse(err)
}

func ParseTimeOfDay(s string) (domain.TimeOfDay, error) {
	t, err := domain.ParseTimeOfDay(s)
	return t, asParse(err)
}

// ParseHourlyRate accepts a non-negative finite decimal.
func ParseHourlyRate(s string) (float64, error) {
	r, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || r < 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, parseErr(domain.HourlyRateConstraints, err)
	}
	return r, nil
}
