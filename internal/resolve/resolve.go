package resolve

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// DefaultDuration is used for timed events with neither end nor duration.
const DefaultDuration = 60 * time.Minute

// Range is a resolved event time span. End is exclusive; for all-day
// ranges it is midnight after the last day.
type Range struct {
	Start  time.Time
	End    time.Time
	AllDay bool
}

// Duration returns End - Start.
func (r Range) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// Days returns the number of calendar days an all-day range covers.
func (r Range) Days() int {
	if !r.AllDay {
		return 0
	}
	n := 0
	for d := r.Start; d.Before(r.End); d = d.AddDate(0, 0, 1) {
		n++
	}
	return n
}

func (r Range) String() string {
	if r.AllDay {
		last := r.End.AddDate(0, 0, -1)
		if r.Days() == 1 {
			return fmt.Sprintf("all-day %s", r.Start.Format(layoutDate))
		}
		return fmt.Sprintf("all-day %s .. %s", r.Start.Format(layoutDate), last.Format(layoutDate))
	}
	return fmt.Sprintf("%s .. %s", r.Start.Format(layoutDateTimeS), r.End.Format(layoutDateTimeS))
}

// Resolver turns raw start/end/duration strings into a Range.
type Resolver struct {
	// Location is the zone instants are built in. nil means time.Local.
	Location *time.Location
	// DefaultDuration applies to timed events without end or duration.
	// Zero means DefaultDuration.
	DefaultDuration time.Duration
}

// Resolve uses a zero Resolver: local time, one hour default.
func Resolve(start, end, duration string) (Range, error) {
	return Resolver{}.Resolve(start, end, duration)
}

// Resolve parses start and derives the end. An empty end or duration
// means "not given". An explicit end always wins over a duration, and a
// duration is ignored for all-day events.
func (r Resolver) Resolve(start, end, duration string) (Range, error) {
	loc := r.Location
	if loc == nil {
		loc = time.Local
	}
	def := r.DefaultDuration
	if def <= 0 {
		def = DefaultDuration
	}

	sp, err := ParsePoint(start)
	if err != nil {
		return Range{}, errors.WithMessage(err, "start")
	}

	var ep *Point
	if strings.TrimSpace(end) != "" {
		p, err := ParsePoint(end)
		if err != nil {
			return Range{}, errors.WithMessage(err, "end")
		}
		if p.Kind != sp.Kind {
			return Range{}, errors.Wrapf(ErrMixedEventKind, "start %q is %s but end %q is %s", sp, sp.Kind, p, p.Kind)
		}
		ep = &p
	}

	out := Range{Start: sp.Time(loc), AllDay: sp.IsAllDay()}

	if out.AllDay {
		last := out.Start
		if ep != nil {
			last = ep.Time(loc)
		}
		if last.Before(out.Start) {
			return Range{}, errors.Wrapf(ErrEndBeforeStart, "end %q is before start %q", ep, sp)
		}
		// End must land on midnight even across a DST change, so AddDate, not Add(24h).
		out.End = last.AddDate(0, 0, 1)
		return out, nil
	}

	switch {
	case ep != nil:
		out.End = ep.Time(loc)
		if !out.End.After(out.Start) {
			return Range{}, errors.Wrapf(ErrEndBeforeStart, "end %q is not after start %q", ep, sp)
		}
	case strings.TrimSpace(duration) != "":
		d, err := ParseDuration(duration)
		if err != nil {
			return Range{}, err
		}
		out.End = out.Start.Add(d)
	default:
		out.End = out.Start.Add(def)
	}
	return out, nil
}
