package dispatcher

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/messagenet/bannerd/ent/hardware"
	"github.com/messagenet/bannerd/ent/wtccommand"
	"github.com/messagenet/bannerd/pkg/config"
	"github.com/messagenet/bannerd/pkg/journal"
	"github.com/messagenet/bannerd/pkg/models"
	"github.com/messagenet/bannerd/pkg/registry"
	"github.com/messagenet/bannerd/pkg/wtc"
)

type fakeSource struct {
	pending []*wtc.Envelope
	written []wtc.Envelope
}

func (s *fakeSource) Read(_ context.Context, _ wtc.Filter) (*wtc.Envelope, error) {
	if len(s.pending) == 0 {
		return nil, wtc.ErrNoCommands
	}
	env := s.pending[0]
	s.pending = s.pending[1:]
	return env, nil
}

func (s *fakeSource) Write(_ context.Context, env wtc.Envelope) error {
	s.written = append(s.written, env)
	return nil
}

func (s *fakeSource) WriteEnd(_ context.Context, base wtc.Envelope) error {
	base.Flag = wtc.FlagEnd
	s.written = append(s.written, base)
	return nil
}

type fakeSender struct {
	bodies  []string
	pings   int
	postErr error
}

func (f *fakeSender) Post(_ context.Context, _ *registry.Device, body string) (string, error) {
	if f.postErr != nil {
		return "", f.postErr
	}
	f.bodies = append(f.bodies, body)
	return "HTTP/1.1 200 OK", nil
}

func (f *fakeSender) Ping(_ context.Context, _ *registry.Device) error {
	f.pings++
	return nil
}

type fakeViews struct {
	views map[int]*models.BannerView
}

func (f *fakeViews) GetView(_ context.Context, bannerRecno, _ int) (*models.BannerView, error) {
	v, ok := f.views[bannerRecno]
	if !ok {
		return nil, errors.New("no such banner")
	}
	return v, nil
}

type fakeRefresher struct {
	refreshed []int
}

func (f *fakeRefresher) Refresh(_ context.Context, recno int) error {
	f.refreshed = append(f.refreshed, recno)
	return nil
}

func testView(recno int, text string) *models.BannerView {
	return &models.BannerView{
		Recno:      recno,
		RecDtsec:   "1693526400",
		Text:       text,
		WebpageURL: "FALSE",
	}
}

type workerFixture struct {
	worker    *Worker
	dev       *registry.Device
	source    *fakeSource
	sender    *fakeSender
	views     *fakeViews
	refresher *fakeRefresher
	journal   *journal.Journal
}

func newWorkerFixture(t *testing.T) *workerFixture {
	t.Helper()
	dev := &registry.Device{Recno: 363, DeviceID: "EVO-363", Kind: hardware.DeviceKindAppliance, Port: 8080, Password: "pw"}
	source := &fakeSource{}
	sender := &fakeSender{}
	views := &fakeViews{views: map[int]*models.BannerView{
		345: testView(345, "FIRE\rDRILL"),
		350: testView(350, "ALL CLEAR"),
	}}
	refresher := &fakeRefresher{}
	jrnl := journal.NewStore(t.TempDir()).ForDevice(dev.Recno)
	w := NewWorker("test-banner-363", dev, source, sender, views, refresher, jrnl,
		config.DefaultQueueConfig(), time.Minute)
	return &workerFixture{
		worker:    w,
		dev:       dev,
		source:    source,
		sender:    sender,
		views:     views,
		refresher: refresher,
		journal:   jrnl,
	}
}

func TestHandleNewMessage(t *testing.T) {
	f := newWorkerFixture(t)
	ctx := context.Background()

	err := f.worker.handleNewMessage(ctx, &wtc.Envelope{
		Command:       wtccommand.CommandNewMessage,
		StreamRecno:   345,
		HardwareRecno: 363,
		Sequence:      "A",
	})
	require.NoError(t, err)

	// Slot 0 holds the translated text.
	assert.Equal(t, 345, f.dev.Slots.Get(0).Recno)
	assert.Equal(t, "FIREDRILL", f.dev.Slots.Get(0).Text)

	// The device got one new-message body.
	require.Len(t, f.sender.bodies, 1)
	assert.Contains(t, f.sender.bodies[0], `"bannerpurpose":"newscrollingmessage"`)
	assert.Contains(t, f.sender.bodies[0], `"hardware_recno":"363"`)
	assert.Contains(t, f.sender.bodies[0], `"signseqnum":0`)
	assert.Contains(t, f.sender.bodies[0], `"recno_zx":"345"`)

	// The message is journaled.
	lines, err := f.journal.ReadAll()
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"recno_zx":"345"`)
}

func TestHandleNewMessageDeliveryFailureSkipsJournal(t *testing.T) {
	f := newWorkerFixture(t)
	f.sender.postErr = errors.New("connect refused")

	err := f.worker.handleNewMessage(context.Background(), &wtc.Envelope{
		StreamRecno: 345,
		Sequence:    "A",
	})
	require.Error(t, err)

	// The slot is claimed — the launch stands — but nothing is journaled.
	assert.Equal(t, 345, f.dev.Slots.Get(0).Recno)
	lines, readErr := f.journal.ReadAll()
	require.NoError(t, readErr)
	assert.Empty(t, lines)
}

func TestHandleNewMessageNoSequence(t *testing.T) {
	f := newWorkerFixture(t)
	err := f.worker.handleNewMessage(context.Background(), &wtc.Envelope{StreamRecno: 345})
	assert.Error(t, err)
	assert.Empty(t, f.sender.bodies)
}

func TestHandleSeqChangeSuppressedAfterLaunch(t *testing.T) {
	f := newWorkerFixture(t)
	ctx := context.Background()

	require.NoError(t, f.worker.handleNewMessage(ctx, &wtc.Envelope{StreamRecno: 345, Sequence: "A"}))
	require.Len(t, f.sender.bodies, 1)

	// The re-sequence carrying the just-launched message is a no-op.
	require.NoError(t, f.worker.handleSeqChange(ctx, &wtc.Envelope{Sequence: "A"}))
	assert.Len(t, f.sender.bodies, 1)

	// The next one goes through.
	require.NoError(t, f.worker.handleSeqChange(ctx, &wtc.Envelope{Sequence: "A"}))
	require.Len(t, f.sender.bodies, 2)
	assert.Contains(t, f.sender.bodies[1], `"bannerpurpose":"updateseq"`)
}

func TestHandleSeqChangeAppliesSequence(t *testing.T) {
	f := newWorkerFixture(t)
	ctx := context.Background()

	require.NoError(t, f.dev.Slots.Set(0, 345, "a"))
	require.NoError(t, f.dev.Slots.Set(1, 350, "b"))

	// "B" keeps only slot 1.
	require.NoError(t, f.worker.handleSeqChange(ctx, &wtc.Envelope{Sequence: "B"}))

	assert.Equal(t, 0, f.dev.Slots.Get(0).Recno)
	assert.Equal(t, 350, f.dev.Slots.Get(1).Recno)

	require.Len(t, f.sender.bodies, 1)
	assert.Contains(t, f.sender.bodies[0], `"seqstring":"B"`)
	assert.Contains(t, f.sender.bodies[0], `{"signseqnum":1,"recno_zx":"350","msgtext":"b"}`)
	assert.NotContains(t, f.sender.bodies[0], `"recno_zx":"345"`)
}

func TestHandleSeqChangeNonMonotonicSequenceKeepsSlotOrder(t *testing.T) {
	f := newWorkerFixture(t)
	ctx := context.Background()

	require.NoError(t, f.dev.Slots.Set(0, 345, "a"))
	require.NoError(t, f.dev.Slots.Set(2, 360, "c"))

	// "CA" reverses the display order, but the bannermessages array
	// still enumerates populated slots in slot order.
	require.NoError(t, f.worker.handleSeqChange(ctx, &wtc.Envelope{Sequence: "CA"}))

	require.Len(t, f.sender.bodies, 1)
	assert.Contains(t, f.sender.bodies[0], `"seqstring":"CA"`)
	assert.Contains(t, f.sender.bodies[0],
		`"bannermessages":[{"signseqnum":0,"recno_zx":"345","msgtext":"a"},{"signseqnum":2,"recno_zx":"360","msgtext":"c"}]`)
}

func TestHandleSeqChangeRepeatedByteEmitsSlotOnce(t *testing.T) {
	f := newWorkerFixture(t)
	ctx := context.Background()

	require.NoError(t, f.dev.Slots.Set(0, 345, "a"))

	require.NoError(t, f.worker.handleSeqChange(ctx, &wtc.Envelope{Sequence: "AA"}))

	require.Len(t, f.sender.bodies, 1)
	assert.Equal(t, 1, strings.Count(f.sender.bodies[0], `"recno_zx":"345"`))
}

func TestHandleStopMessage(t *testing.T) {
	f := newWorkerFixture(t)
	ctx := context.Background()

	require.NoError(t, f.worker.handleNewMessage(ctx, &wtc.Envelope{StreamRecno: 345, Sequence: "A"}))

	require.NoError(t, f.worker.handleStopMessage(ctx, &wtc.Envelope{StreamRecno: 345}))

	// Stop body sent, slot cleared, journal line removed.
	require.Len(t, f.sender.bodies, 2)
	assert.Contains(t, f.sender.bodies[1], `"bannerpurpose":"stopscrollingmessage"`)
	assert.Contains(t, f.sender.bodies[1], `"recno_zx":"345"`)
	assert.Equal(t, 0, f.dev.Slots.Get(0).Recno)

	lines, err := f.journal.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestHandleStopMessageAbsentIsIdempotent(t *testing.T) {
	f := newWorkerFixture(t)

	// Stopping a message this worker never saw still tells the device.
	require.NoError(t, f.worker.handleStopMessage(context.Background(), &wtc.Envelope{StreamRecno: 999}))
	require.Len(t, f.sender.bodies, 1)
	assert.Contains(t, f.sender.bodies[0], `"recno_zx":"999"`)
}

func TestHandleClearSign(t *testing.T) {
	f := newWorkerFixture(t)
	ctx := context.Background()

	require.NoError(t, f.worker.handleNewMessage(ctx, &wtc.Envelope{StreamRecno: 345, Sequence: "A"}))

	require.NoError(t, f.worker.handleClearSign(ctx, &wtc.Envelope{}))

	assert.Empty(t, f.dev.Slots.Snapshot())
	require.Len(t, f.sender.bodies, 2)
	assert.Contains(t, f.sender.bodies[1], `"bannerpurpose":"clearsign"`)

	lines, err := f.journal.ReadAll()
	require.NoError(t, err)
	assert.Nil(t, lines)
}

func TestHandleClearSignUnreachableDeviceStillClears(t *testing.T) {
	f := newWorkerFixture(t)
	ctx := context.Background()

	require.NoError(t, f.worker.handleNewMessage(ctx, &wtc.Envelope{StreamRecno: 345, Sequence: "A"}))
	f.sender.postErr = errors.New("connect refused")

	err := f.worker.handleClearSign(ctx, &wtc.Envelope{})
	require.Error(t, err)

	// Local state is gone regardless, so the next sync starts empty.
	assert.Empty(t, f.dev.Slots.Snapshot())
	lines, readErr := f.journal.ReadAll()
	require.NoError(t, readErr)
	assert.Nil(t, lines)
}

func TestHandleSignMessages(t *testing.T) {
	f := newWorkerFixture(t)
	ctx := context.Background()

	// One slotted message, one journaled-only message.
	require.NoError(t, f.dev.Slots.Set(0, 345, "a"))
	require.NoError(t, f.journal.Append(`{"signseqnum":0,"dbb_rec_dtsec":"100","recno_zx":"345","msgtext":"a"}`))
	require.NoError(t, f.journal.Append(`{"signseqnum":1,"dbb_rec_dtsec":"101","recno_zx":"350","msgtext":"b"}`))

	require.NoError(t, f.worker.handleSignMessages(ctx, &wtc.Envelope{
		Command:       wtccommand.CommandSignMessages,
		Source:        wtccommand.SourceBrowser,
		Destination:   wtccommand.DestinationBannerBoard,
		PID:           1234,
		HardwareRecno: 363,
	}))

	require.Len(t, f.source.written, 3)

	first := f.source.written[0]
	assert.Equal(t, wtccommand.SourceBannerBoard, first.Source)
	assert.Equal(t, wtccommand.DestinationBrowser, first.Destination)
	assert.Equal(t, 1234, first.PID)
	assert.Equal(t, 345, first.StreamRecno)
	assert.Equal(t, wtc.MessageTypeActive, first.MessageType)

	second := f.source.written[1]
	assert.Equal(t, 350, second.StreamRecno)
	assert.Equal(t, wtc.MessageTypeWaiting, second.MessageType)

	assert.Equal(t, wtc.FlagEnd, f.source.written[2].Flag)
}

func TestHandleSignMessagesEmpty(t *testing.T) {
	f := newWorkerFixture(t)

	require.NoError(t, f.worker.handleSignMessages(context.Background(), &wtc.Envelope{
		Source:        wtccommand.SourceBrowser,
		HardwareRecno: 363,
	}))

	// Only the end sentinel.
	require.Len(t, f.source.written, 1)
	assert.Equal(t, wtc.FlagEnd, f.source.written[0].Flag)
}

func TestHandleHardwareUpdate(t *testing.T) {
	f := newWorkerFixture(t)
	require.NoError(t, f.worker.handleHardwareUpdate(context.Background()))
	assert.Equal(t, []int{363}, f.refresher.refreshed)
}

func TestHandleApplianceSyncReplaysSlots(t *testing.T) {
	f := newWorkerFixture(t)
	ctx := context.Background()

	require.NoError(t, f.dev.Slots.Set(0, 345, "FIREDRILL"))
	require.NoError(t, f.dev.Slots.Set(1, 350, "ALL CLEAR"))

	require.NoError(t, f.worker.handleApplianceSync(ctx))

	assert.Equal(t, []int{363}, f.refresher.refreshed)
	require.Len(t, f.sender.bodies, 2)
	assert.Contains(t, f.sender.bodies[0], `"recno_zx":"345"`)
	assert.Contains(t, f.sender.bodies[1], `"recno_zx":"350"`)
}

func TestPollAndProcessEmptyQueue(t *testing.T) {
	f := newWorkerFixture(t)
	err := f.worker.pollAndProcess(context.Background())
	assert.ErrorIs(t, err, wtc.ErrNoCommands)
}

func TestPollAndProcessConsumesFailingCommand(t *testing.T) {
	f := newWorkerFixture(t)
	// Unresolvable banner: the command is consumed, not retried.
	f.source.pending = []*wtc.Envelope{{
		Command:     wtccommand.CommandNewMessage,
		StreamRecno: 999,
		Sequence:    "A",
	}}

	require.NoError(t, f.worker.pollAndProcess(context.Background()))
	assert.Empty(t, f.source.pending)
	assert.Equal(t, 1, f.worker.Health().CommandsProcessed)
}

func TestWorkerPollInterval(t *testing.T) {
	f := newWorkerFixture(t)
	cfg := f.worker.config

	// Poll interval stays within [base - jitter, base + jitter].
	for i := 0; i < 100; i++ {
		d := f.worker.pollInterval()
		assert.GreaterOrEqual(t, d, cfg.PollInterval-cfg.PollIntervalJitter)
		assert.LessOrEqual(t, d, cfg.PollInterval+cfg.PollIntervalJitter)
	}
}

func TestWorkerStartStop(t *testing.T) {
	f := newWorkerFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f.worker.Start(ctx)
	time.Sleep(50 * time.Millisecond)
	f.worker.Stop()
	// Stop is idempotent.
	f.worker.Stop()
}
