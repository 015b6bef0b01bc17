package ics

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	ical "github.com/arran4/golang-ical"

	"caladd/internal/fsutil"
	appLog "caladd/internal/log"
	"caladd/internal/model"
)

// ProductID is written as PRODID when a new calendar file is created.
const ProductID = "caladd"

// ErrDuplicateUID is returned when the store already holds an event with
// the UID being added.
var ErrDuplicateUID = errors.New("event UID already present")

// Store is a single .ics file used as a personal calendar.
type Store struct {
	path string
}

// NewStore returns a Store backed by path. The file is created on first Add.
func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Events reads back every VEVENT in the file. A missing file has no events.
func (s *Store) Events() ([]ParsedEvent, error) {
	cal, err := s.load()
	if err != nil {
		return nil, err
	}
	return parseEvents(cal), nil
}

// Add appends ev as a VEVENT and rewrites the file atomically.
func (s *Store) Add(ev model.Event) error {
	if ev.UID == "" {
		return errors.New("event UID is empty")
	}

	cal, err := s.load()
	if err != nil {
		return err
	}

	for _, existing := range cal.Events() {
		if existing.Id() == ev.UID {
			return fmt.Errorf("%w: %s", ErrDuplicateUID, ev.UID)
		}
	}

	vev := cal.AddEvent(ev.UID)
	vev.SetDtStampTime(ev.Created)
	vev.SetCreatedTime(ev.Created)
	vev.SetSummary(ev.Title)
	if ev.Range.AllDay {
		vev.SetAllDayStartAt(ev.Range.Start)
		vev.SetAllDayEndAt(ev.Range.End)
	} else {
		vev.SetStartAt(ev.Range.Start)
		vev.SetEndAt(ev.Range.End)
	}

	var buf bytes.Buffer
	if err := cal.SerializeTo(&buf); err != nil {
		return err
	}
	if err := fsutil.WriteFileAtomic(s.path, buf.Bytes(), 0o600); err != nil {
		return err
	}

	appLog.Debug("ics store updated", "path", s.path, "uid", ev.UID, "event_count", len(cal.Events()))
	return nil
}

// load parses the store file, or returns a fresh calendar if it does not
// exist yet or is empty.
func (s *Store) load() (*ical.Calendar, error) {
	if s.path == "" {
		return nil, errors.New("ics store path is empty")
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return newCalendar(), nil
		}
		return nil, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return newCalendar(), nil
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return cal, nil
}

func newCalendar() *ical.Calendar {
	cal := ical.NewCalendarFor(ProductID)
	cal.SetMethod(ical.MethodPublish)
	return cal
}
