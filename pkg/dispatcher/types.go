// Package dispatcher runs one worker per appliance device. Each worker
// drains the command queue for its device, translates envelopes into
// wire bodies, talks to the appliance, and maintains the device's slot
// table and active-message journal.
package dispatcher

import (
	"context"
	"time"

	"github.com/messagenet/bannerd/pkg/models"
	"github.com/messagenet/bannerd/pkg/registry"
	"github.com/messagenet/bannerd/pkg/wtc"
)

// CommandSource is the queue surface a worker consumes and responds on.
// *wtc.Queue implements it.
type CommandSource interface {
	Read(ctx context.Context, f wtc.Filter) (*wtc.Envelope, error)
	Write(ctx context.Context, env wtc.Envelope) error
	WriteEnd(ctx context.Context, base wtc.Envelope) error
}

// Sender is the appliance transport. *appliance.Client implements it.
type Sender interface {
	Post(ctx context.Context, dev *registry.Device, body string) (string, error)
	Ping(ctx context.Context, dev *registry.Device) error
}

// BannerViews assembles device-relative message views.
// *services.BannerService implements it.
type BannerViews interface {
	GetView(ctx context.Context, bannerRecno, deviceRecno int) (*models.BannerView, error)
}

// DeviceRefresher re-reads a device's hardware row into the registry.
// *registry.Registry implements it.
type DeviceRefresher interface {
	Refresh(ctx context.Context, recno int) error
}

// ActiveJournal is the per-device active-message file surface.
// *journal.Journal implements it.
type ActiveJournal interface {
	Append(line string) error
	RemoveByRecno(recno int) error
	Delete() error
	Recnos() ([]string, error)
}

// WorkerHealth is a snapshot of one worker's state.
type WorkerHealth struct {
	ID                string
	DeviceRecno       int
	CommandsProcessed int
	LastActivity      time.Time
}
