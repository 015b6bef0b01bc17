package resolve

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Kind tells whole-day points apart from points with a time of day.
type Kind int

const (
	AllDay Kind = iota
	Timed
)

func (k Kind) String() string {
	if k == Timed {
		return "timed"
	}
	return "all-day"
}

const (
	layoutDate      = "2006-01-02"
	layoutDateTimeT = "2006-01-02T15:04"
	layoutDateTimeS = "2006-01-02 15:04"
)

// Point is a calendar date with an optional time of day.
type Point struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Kind   Kind

	// sep is the date/time separator the point was parsed from ('T' or ' ').
	sep byte
}

// ParsePoint parses YYYY-mm-dd, YYYY-mm-ddTHH:MM or YYYY-mm-dd HH:MM.
func ParsePoint(s string) (Point, error) {
	s = strings.TrimSpace(s)

	var layout string
	var p Point
	switch {
	case len(s) == len(layoutDate):
		layout = layoutDate
		p.Kind = AllDay
	case len(s) == len(layoutDateTimeT) && s[10] == 'T':
		layout = layoutDateTimeT
		p.Kind = Timed
		p.sep = 'T'
	case len(s) == len(layoutDateTimeS) && s[10] == ' ':
		layout = layoutDateTimeS
		p.Kind = Timed
		p.sep = ' '
	default:
		return Point{}, errors.Wrapf(ErrInvalidDateFormat, "%q", s)
	}

	// time.Parse rejects month 13, Feb 30, hour 25 and friends.
	t, err := time.Parse(layout, s)
	if err != nil {
		return Point{}, errors.Wrapf(ErrInvalidDateFormat, "%q", s)
	}

	p.Year, p.Month, p.Day = t.Date()
	if p.Kind == Timed {
		p.Hour, p.Minute = t.Hour(), t.Minute()
	}
	return p, nil
}

// IsAllDay reports whether the point has no time of day.
func (p Point) IsAllDay() bool {
	return p.Kind == AllDay
}

// Time returns the point as an instant in loc. All-day points map to midnight.
func (p Point) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(p.Year, p.Month, p.Day, p.Hour, p.Minute, 0, 0, loc)
}

// String formats the point in the shape it was parsed from.
func (p Point) String() string {
	date := fmt.Sprintf("%04d-%02d-%02d", p.Year, int(p.Month), p.Day)
	if p.Kind == AllDay {
		return date
	}
	sep := p.sep
	if sep == 0 {
		sep = 'T'
	}
	return fmt.Sprintf("%s%c%02d:%02d", date, sep, p.Hour, p.Minute)
}
