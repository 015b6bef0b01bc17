package resolve

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// maxDurationMinutes keeps start+duration well inside time.Duration range.
const maxDurationMinutes = 100 * 365 * 24 * 60

// ParseDuration parses "<n>m" or "<n>h" with a positive integer n.
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return 0, errors.Wrapf(ErrInvalidDurationFormat, "%q", s)
	}

	digits, unit := s[:len(s)-1], s[len(s)-1]
	var perUnit int64
	switch unit {
	case 'm':
		perUnit = 1
	case 'h':
		perUnit = 60
	default:
		return 0, errors.Wrapf(ErrInvalidDurationFormat, "%q: unknown unit %q", s, unit)
	}

	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, errors.Wrapf(ErrInvalidDurationFormat, "%q", s)
		}
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || n <= 0 {
		return 0, errors.Wrapf(ErrInvalidDurationFormat, "%q: must be a positive integer", s)
	}
	if n > maxDurationMinutes/perUnit {
		return 0, errors.Wrapf(ErrInvalidDurationFormat, "%q: too long", s)
	}

	return time.Duration(n*perUnit) * time.Minute, nil
}
