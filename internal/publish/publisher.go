package publish

import (
	"context"
	"fmt"

	"caladd/internal/model"
)

// Backend names accepted in config.
const (
	BackendICS         = "ics"
	BackendCalendarApp = "calendar-app"
)

// Publisher writes a single event to a calendar store and returns the ID
// the store knows it by.
type Publisher interface {
	Publish(ctx context.Context, ev model.Event) (string, error)
}

// PublishError is returned by every backend when the store rejects or
// fails to persist an event.
type PublishError struct {
	Backend string
	Op      string
	Err     error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Backend, e.Op, e.Err)
}

func (e *PublishError) Unwrap() error {
	return e.Err
}

// Options selects and configures a backend.
type Options struct {
	Backend  string
	ICSPath  string
	Calendar string
}

// New returns the Publisher named by opts.Backend.
func New(opts Options) (Publisher, error) {
	switch opts.Backend {
	case BackendICS:
		if opts.ICSPath == "" {
			return nil, fmt.Errorf("publish: %s backend needs a file path", BackendICS)
		}
		return NewICSPublisher(opts.ICSPath), nil
	case BackendCalendarApp:
		return NewCalendarAppPublisher(opts.Calendar), nil
	default:
		return nil, fmt.Errorf("publish: unknown backend %q", opts.Backend)
	}
}

func publishErr(backend, op string, err error) error {
	return &PublishError{Backend: backend, Op: op, Err: err}
}
