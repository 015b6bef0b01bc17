package publish

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	appLog "caladd/internal/log"
	"caladd/internal/model"
)

// DefaultCalendar is the calendar Calendar.app events go to when config
// does not name one.
const DefaultCalendar = "Home"

// ErrCalendarNotFound is wrapped when the configured calendar does not exist.
var ErrCalendarNotFound = errors.New("calendar not found")

// errNotFoundMarker is raised by the script as its error number.
const errNotFoundMarker = "(1001)"

// ScriptRunner runs an AppleScript with argv and returns its stdout.
type ScriptRunner interface {
	Run(ctx context.Context, lines []string, args ...string) (string, error)
}

// CalendarAppPublisher creates events in macOS Calendar through osascript.
type CalendarAppPublisher struct {
	calendar string
	runner   ScriptRunner
}

// NewCalendarAppPublisher uses the platform runner. On anything but darwin
// every Publish fails with a PublishError.
func NewCalendarAppPublisher(calendar string) *CalendarAppPublisher {
	return NewCalendarAppPublisherWithRunner(calendar, defaultRunner())
}

func NewCalendarAppPublisherWithRunner(calendar string, runner ScriptRunner) *CalendarAppPublisher {
	if calendar == "" {
		calendar = DefaultCalendar
	}
	return &CalendarAppPublisher{calendar: calendar, runner: runner}
}

// calendarAppScript makes one non-recurring event. Dates arrive as
// separate integer fields so no locale-dependent date parsing happens
// inside AppleScript.
var calendarAppScript = []string{
	"on mkDate(y, m, d, hh, mm)",
	"set dt to current date",
	"set day of dt to 1",
	"set year of dt to y",
	"set month of dt to m",
	"set day of dt to d",
	"set time of dt to (hh * hours + mm * minutes)",
	"return dt",
	"end mkDate",
	"on run argv",
	"set calName to item 1 of argv",
	"set evTitle to item 2 of argv",
	"set isAllDay to (item 3 of argv is \"1\")",
	"set startDate to my mkDate((item 4 of argv) as integer, (item 5 of argv) as integer, (item 6 of argv) as integer, (item 7 of argv) as integer, (item 8 of argv) as integer)",
	"set endDate to my mkDate((item 9 of argv) as integer, (item 10 of argv) as integer, (item 11 of argv) as integer, (item 12 of argv) as integer, (item 13 of argv) as integer)",
	"tell application \"Calendar\"",
	"set calNames to name of every calendar",
	"if calNames does not contain calName then",
	"set AppleScript's text item delimiters to linefeed",
	"error (calNames as text) number 1001",
	"end if",
	"tell calendar calName",
	"set ev to make new event with properties {summary:evTitle, start date:startDate, end date:endDate, allday event:isAllDay}",
	"end tell",
	"return uid of ev",
	"end tell",
	"end run",
}

func (p *CalendarAppPublisher) Publish(ctx context.Context, ev model.Event) (string, error) {
	args := append([]string{p.calendar, ev.Title, boolArg(ev.Range.AllDay)}, dateArgs(ev.Range.Start)...)
	args = append(args, dateArgs(ev.Range.End)...)

	appLog.Debug("running osascript", "calendar", p.calendar, "all_day", ev.Range.AllDay)

	out, err := p.runner.Run(ctx, calendarAppScript, args...)
	if err != nil {
		if strings.Contains(err.Error(), errNotFoundMarker) {
			return "", publishErr(BackendCalendarApp, "find calendar",
				fmt.Errorf("%w: %q; available calendars: %s", ErrCalendarNotFound, p.calendar, availableCalendars(err.Error())))
		}
		return "", publishErr(BackendCalendarApp, "save event", err)
	}

	id := strings.TrimSpace(out)
	if id == "" {
		return "", publishErr(BackendCalendarApp, "save event", errors.New("Calendar returned no event id"))
	}
	return id, nil
}

func boolArg(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func dateArgs(t time.Time) []string {
	return []string{
		strconv.Itoa(t.Year()),
		strconv.Itoa(int(t.Month())),
		strconv.Itoa(t.Day()),
		strconv.Itoa(t.Hour()),
		strconv.Itoa(t.Minute()),
	}
}

// availableCalendars pulls the calendar names out of an osascript error
// like "execution error: Home\nWork (1001)".
func availableCalendars(msg string) string {
	if i := strings.Index(msg, "execution error:"); i >= 0 {
		msg = msg[i+len("execution error:"):]
	}
	msg = strings.TrimSpace(strings.Replace(msg, errNotFoundMarker, "", 1))
	names := make([]string, 0)
	for _, n := range strings.Split(msg, "\n") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	if len(names) == 0 {
		return "(none)"
	}
	return strings.Join(names, ", ")
}
