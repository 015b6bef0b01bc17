package resolve

import "github.com/pkg/errors"

var (
	ErrInvalidDateFormat     = errors.New("invalid date format")
	ErrInvalidDurationFormat = errors.New("invalid duration format")
	ErrMixedEventKind        = errors.New("cannot mix all-day and timed dates")
	ErrEndBeforeStart        = errors.New("end is before start")
)

// Hints shown next to parse errors on the command line.
const (
	DateFormatHint     = "Date must be in the format YYYY-MM-DD, YYYY-MM-DDTHH:MM, or YYYY-MM-DD HH:MM"
	DurationFormatHint = "Duration must be in the format #m or #h, e.g. 30m, 2h"
)
