package publish

import (
	"context"

	"caladd/internal/ics"
	"caladd/internal/model"
)

// ICSPublisher appends events to a local .ics calendar file.
type ICSPublisher struct {
	store *ics.Store
}

func NewICSPublisher(path string) *ICSPublisher {
	return &ICSPublisher{store: ics.NewStore(path)}
}

func (p *ICSPublisher) Publish(ctx context.Context, ev model.Event) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", publishErr(BackendICS, "publish", err)
	}
	if err := p.store.Add(ev); err != nil {
		return "", publishErr(BackendICS, "write "+p.store.Path(), err)
	}
	return ev.UID, nil
}
