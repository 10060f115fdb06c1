package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"sync"
	"time"

	"github.com/messagenet/bannerd/ent/wtccommand"
	"github.com/messagenet/bannerd/pkg/config"
	"github.com/messagenet/bannerd/pkg/registry"
	"github.com/messagenet/bannerd/pkg/translate"
	"github.com/messagenet/bannerd/pkg/wtc"
)

// Worker drives a single appliance device: it is the only consumer of
// that device's queue envelopes and the only owner of its slot table.
type Worker struct {
	id           string
	dev          *registry.Device
	queue        CommandSource
	sender       Sender
	views        BannerViews
	refresher    DeviceRefresher
	journal      ActiveJournal
	config       *config.QueueConfig
	pingInterval time.Duration
	stopCh       chan struct{}
	stopOnce     sync.Once
	wg           sync.WaitGroup

	// lastNewRecno suppresses the re-sequence that immediately follows a
	// launch: the appliance already ordered itself from the new-message
	// body, so echoing the sequence back would only repeat work.
	lastNewRecno int

	mu                sync.RWMutex
	commandsProcessed int
	lastActivity      time.Time
}

// NewWorker creates a worker for one device. journal must be the
// device's own journal; refresher may be nil (no registry refresh).
func NewWorker(id string, dev *registry.Device, queue CommandSource, sender Sender, views BannerViews, refresher DeviceRefresher, jrnl ActiveJournal, cfg *config.QueueConfig, pingInterval time.Duration) *Worker {
	return &Worker{
		id:           id,
		dev:          dev,
		queue:        queue,
		sender:       sender,
		views:        views,
		refresher:    refresher,
		journal:      jrnl,
		config:       cfg,
		pingInterval: pingInterval,
		stopCh:       make(chan struct{}),
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:                w.id,
		DeviceRecno:       w.dev.Recno,
		CommandsProcessed: w.commandsProcessed,
		LastActivity:      w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "device_recno", w.dev.Recno)
	log.Info("Dispatcher worker started", "device_id", w.dev.DeviceID)

	ping := time.NewTicker(w.pingInterval)
	defer ping.Stop()

	for {
		select {
		case <-w.stopCh:
			log.Info("Dispatcher worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, dispatcher worker shutting down")
			return
		case <-ping.C:
			if err := w.sender.Ping(ctx, w.dev); err != nil {
				log.Debug("Device ping failed", "error", err)
			}
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, wtc.ErrNoCommands) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing command", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollInterval returns the poll delay with jitter applied, so workers
// sharing a queue do not hammer it in lockstep.
func (w *Worker) pollInterval() time.Duration {
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return w.config.PollInterval
	}
	return w.config.PollInterval - jitter + rand.N(2*jitter)
}

// pollAndProcess claims the oldest envelope addressed to this device and
// handles it. The claim consumes the row even when handling fails: a
// command that cannot be carried out is logged and dropped, never
// retried from the queue.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	env, err := w.queue.Read(ctx, wtc.Filter{
		Destination:   wtccommand.DestinationBannerBoard,
		HardwareRecno: w.dev.Recno,
	})
	if err != nil {
		return err
	}

	log := slog.With("worker_id", w.id, "device_recno", w.dev.Recno,
		"command", env.Command)
	log.Debug("Command claimed", "stream_recno", env.StreamRecno,
		"sequence", env.Sequence)

	switch env.Command {
	case wtccommand.CommandNewMessage:
		err = w.handleNewMessage(ctx, env)
	case wtccommand.CommandStopMessage:
		err = w.handleStopMessage(ctx, env)
	case wtccommand.CommandClearSign:
		err = w.handleClearSign(ctx, env)
	case wtccommand.CommandSeqChange:
		err = w.handleSeqChange(ctx, env)
	case wtccommand.CommandSignMessages:
		err = w.handleSignMessages(ctx, env)
	case wtccommand.CommandHardwareUpdate:
		err = w.handleHardwareUpdate(ctx)
	case wtccommand.CommandApplianceSync:
		err = w.handleApplianceSync(ctx)
	default:
		log.Warn("Unhandled command, dropping")
	}
	if err != nil {
		log.Error("Command handling failed", "error", err)
	}

	w.mu.Lock()
	w.commandsProcessed++
	w.lastActivity = time.Now()
	w.mu.Unlock()
	return nil
}

func (w *Worker) translateDevice() translate.Device {
	return translate.Device{
		Recno:    w.dev.Recno,
		DeviceID: w.dev.DeviceID,
		Password: w.dev.Password,
	}
}

// handleNewMessage launches a message: render it, claim its slot, send
// the new-message body, and journal the rendered line on delivery.
func (w *Worker) handleNewMessage(ctx context.Context, env *wtc.Envelope) error {
	if env.Sequence == "" {
		return fmt.Errorf("new message %d carries no sequence position", env.StreamRecno)
	}
	idx := registry.SlotIndex(env.Sequence[0])
	if idx < 0 || idx >= registry.MaxSequence {
		return fmt.Errorf("new message %d sequence byte %q out of range", env.StreamRecno, env.Sequence[0])
	}

	view, err := w.views.GetView(ctx, env.StreamRecno, w.dev.Recno)
	if err != nil {
		return fmt.Errorf("failed to load banner %d: %w", env.StreamRecno, err)
	}

	msgtext := translate.Text(view.Text)
	if err := w.dev.Slots.Set(idx, view.Recno, msgtext); err != nil {
		return err
	}
	w.lastNewRecno = view.Recno

	msg := translate.Message(idx, msgtext, view)
	body := translate.NewMessageBody(w.translateDevice(), translate.PurposeFor(view), msg)

	if _, err := w.sender.Post(ctx, w.dev, body); err != nil {
		return fmt.Errorf("failed to deliver message %d: %w", view.Recno, err)
	}
	if err := w.journal.Append(msg.Render()); err != nil {
		slog.Warn("Failed to journal active message",
			"device_recno", w.dev.Recno, "banner_recno", view.Recno, "error", err)
	}
	return nil
}

// handleStopMessage always sends the stop body — stopping an absent
// message is harmless on the appliance side and keeps the operation
// idempotent — then retires the message locally.
func (w *Worker) handleStopMessage(ctx context.Context, env *wtc.Envelope) error {
	recno := env.StreamRecno
	if recno == 0 {
		return errors.New("stop message carries no banner recno")
	}
	if recno == w.lastNewRecno {
		w.lastNewRecno = 0
	}

	body := translate.StopMessageBody(w.translateDevice(), recno)
	_, postErr := w.sender.Post(ctx, w.dev, body)

	if idx, ok := w.dev.Slots.IndexOf(recno); ok {
		w.dev.Slots.Clear(idx)
	}
	if err := w.journal.RemoveByRecno(recno); err != nil {
		slog.Warn("Failed to remove journaled message",
			"device_recno", w.dev.Recno, "banner_recno", recno, "error", err)
	}
	if postErr != nil {
		return fmt.Errorf("failed to deliver stop for %d: %w", recno, postErr)
	}
	return nil
}

// handleClearSign wipes everything: slot table, journal, and the sign
// itself. Local state clears even when the device is unreachable so the
// next sync starts from empty.
func (w *Worker) handleClearSign(ctx context.Context, _ *wtc.Envelope) error {
	w.dev.Slots.ClearAll()
	w.lastNewRecno = 0

	if err := w.journal.Delete(); err != nil {
		slog.Warn("Failed to delete journal", "device_recno", w.dev.Recno, "error", err)
	}

	body := translate.ClearSignBody(w.translateDevice())
	if _, err := w.sender.Post(ctx, w.dev, body); err != nil {
		return fmt.Errorf("failed to deliver clear: %w", err)
	}
	return nil
}

// handleSeqChange applies an authoritative sequence string and pushes
// the re-ordering to the device. The re-sequence that immediately
// follows a launch of the same message is suppressed: the launch body
// already placed it.
func (w *Worker) handleSeqChange(ctx context.Context, env *wtc.Envelope) error {
	refRecno := env.StreamRecno
	if refRecno == 0 && env.Sequence != "" {
		refRecno = w.dev.Slots.Get(registry.SlotIndex(env.Sequence[0])).Recno
	}
	if refRecno != 0 && refRecno == w.lastNewRecno {
		w.lastNewRecno = 0
		slog.Debug("Suppressing sequence update for just-launched message",
			"device_recno", w.dev.Recno, "banner_recno", refRecno)
		return nil
	}
	w.lastNewRecno = 0

	w.dev.Slots.ApplySequence(env.Sequence)

	// The sequence string orders display positions; the bannermessages
	// array enumerates the surviving slots in slot order.
	var msgs []*translate.Object
	for _, slot := range w.dev.Slots.Snapshot() {
		msgs = append(msgs, translate.CompactMessage(slot.Index, slot.Recno, slot.Text))
	}

	body := translate.UpdateSeqBody(w.translateDevice(), env.Sequence, msgs)
	if _, err := w.sender.Post(ctx, w.dev, body); err != nil {
		return fmt.Errorf("failed to deliver sequence update: %w", err)
	}
	return nil
}

// handleSignMessages answers a show-sign-messages query: one data
// envelope per active message, then the end sentinel. Slotted messages
// report as showing; journaled messages without a slot as waiting.
func (w *Worker) handleSignMessages(ctx context.Context, env *wtc.Envelope) error {
	base := wtc.Envelope{
		Command:       wtccommand.CommandSignMessages,
		Source:        wtccommand.SourceBannerBoard,
		Destination:   wtccommand.Destination(env.Source),
		PID:           env.PID,
		HardwareRecno: w.dev.Recno,
		ReturnNode:    env.ReturnNode,
	}

	seen := make(map[int]bool)
	for _, slot := range w.dev.Slots.Snapshot() {
		seen[slot.Recno] = true
		resp := base
		resp.StreamRecno = slot.Recno
		resp.MessageType = wtc.MessageTypeActive
		if err := w.queue.Write(ctx, resp); err != nil {
			slog.Warn("Failed to write sign-messages response",
				"device_recno", w.dev.Recno, "banner_recno", slot.Recno, "error", err)
		}
	}

	journaled, err := w.journalRecnos()
	if err != nil {
		slog.Warn("Failed to read journal for sign-messages",
			"device_recno", w.dev.Recno, "error", err)
	}
	for _, recno := range journaled {
		if seen[recno] {
			continue
		}
		resp := base
		resp.StreamRecno = recno
		resp.MessageType = wtc.MessageTypeWaiting
		if err := w.queue.Write(ctx, resp); err != nil {
			slog.Warn("Failed to write sign-messages response",
				"device_recno", w.dev.Recno, "banner_recno", recno, "error", err)
		}
	}

	if err := w.queue.WriteEnd(ctx, base); err != nil {
		return fmt.Errorf("failed to terminate sign-messages response: %w", err)
	}
	return nil
}

// journalRecnos lists the recnos currently journaled for this device.
func (w *Worker) journalRecnos() ([]int, error) {
	raw, err := w.journal.Recnos()
	if err != nil {
		return nil, err
	}
	var out []int
	for _, s := range raw {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			out = append(out, n)
		}
	}
	return out, nil
}

// handleHardwareUpdate re-reads the device's hardware row so address
// and credential changes take effect without a restart.
func (w *Worker) handleHardwareUpdate(ctx context.Context) error {
	if w.refresher == nil {
		return nil
	}
	if err := w.refresher.Refresh(ctx, w.dev.Recno); err != nil {
		return fmt.Errorf("failed to refresh hardware record: %w", err)
	}
	return nil
}

// handleApplianceSync refreshes the hardware row and replays every
// slotted message so a rebooted or re-addressed appliance converges on
// the current display state.
func (w *Worker) handleApplianceSync(ctx context.Context) error {
	if err := w.handleHardwareUpdate(ctx); err != nil {
		slog.Warn("Hardware refresh failed during sync",
			"device_recno", w.dev.Recno, "error", err)
	}

	for _, slot := range w.dev.Slots.Snapshot() {
		view, err := w.views.GetView(ctx, slot.Recno, w.dev.Recno)
		if err != nil {
			slog.Warn("Failed to load banner during sync",
				"device_recno", w.dev.Recno, "banner_recno", slot.Recno, "error", err)
			continue
		}
		msg := translate.Message(slot.Index, slot.Text, view)
		body := translate.NewMessageBody(w.translateDevice(), translate.PurposeFor(view), msg)
		if _, err := w.sender.Post(ctx, w.dev, body); err != nil {
			return fmt.Errorf("failed to replay message %d: %w", slot.Recno, err)
		}
	}
	return nil
}
