package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/messagenet/bannerd/ent/wtccommand"
	"github.com/messagenet/bannerd/pkg/services"
	"github.com/messagenet/bannerd/pkg/translate"
	"github.com/messagenet/bannerd/pkg/wtc"
)

// Action prefixes, matched against the decoded form tokens in order.
const (
	actionGetActiveMessages = "evolutionGetActiveMessagesForDevice="
	actionRecnosOnly        = "evolutionGetActiveMessagesForDevice_recnosOnly="
	actionCountsOnly        = "evolutionGetActiveMessagesForDevice_countsOnly="
	actionPushTrigger       = "evolutionGetActiveMessagesForDevice_serverPushTriggerUpdateDeviceStatus="
	actionMessageData       = "evolutionGetMessageDataForRecnoZX="
	actionReportNetwork     = "evolutionReportNetworkInfo="
)

// Fixed response strings. Deployed clients match these byte-for-byte;
// never change them.
const (
	respNoCommand           = "No command found\n"
	respDBInitError         = "Database initialization error"
	respNoCurrency          = "Could not set currency"
	respWTCWriteFailed      = "WTC command failed to write."
	respSyncWritten         = "WTC command written. Active messages should be arriving."
	respNetworkUpdated      = "Hardware record network info updated"
	respNetworkNotChanged   = "Hardware record network info not changed"
	respNetworkUpdateFailed = "Hardware record network info failed to update"
)

func (s *Server) dispatch(ctx context.Context, form *Form) string {
	switch {
	case form.Has(actionGetActiveMessages):
		return s.getActiveMessages(form)
	case form.Has(actionRecnosOnly):
		return s.activeMessageRecnos(ctx, form)
	case form.Has(actionCountsOnly):
		return s.activeMessageCounts(ctx, form)
	case form.Has(actionPushTrigger):
		return s.pushTrigger(ctx, form)
	case form.Has(actionMessageData):
		return s.messageData(ctx, form)
	case form.Has(actionReportNetwork):
		return s.reportNetworkInfo(ctx, form)
	default:
		slog.Info("No command found in query")
		return respNoCommand
	}
}

// getActiveMessages streams the device's journal wrapped as a JSON
// array. A missing or unreadable journal yields an empty array.
func (s *Server) getActiveMessages(form *Form) string {
	recno := form.Int("devicerecno=")
	lines, err := s.journals.ForDevice(recno).ReadAll()
	if err != nil {
		slog.Warn("Failed to read journal", "device_recno", recno, "error", err)
	}
	var b strings.Builder
	b.WriteString(`{"evolution_active_msgs":[`)
	b.WriteString(strings.Join(lines, ","))
	b.WriteString("]}")
	return b.String()
}

// activeMessageRecnos performs the show-sign-messages round-trip and
// reports each active message's recno and classification.
func (s *Server) activeMessageRecnos(ctx context.Context, form *Form) string {
	recno := form.Int("devicerecno=")
	resps, failed := s.signMessagesRoundTrip(ctx, recno)
	if failed {
		return respWTCWriteFailed
	}

	var b strings.Builder
	fmt.Fprintf(&b, `{"hwRecno":"%d","activeMessages":[`, recno)
	for i, env := range resps {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, `{"recno":"%d","type":"%s"}`, env.StreamRecno, messageTypeName(env.MessageType))
	}
	b.WriteString("]}")
	return b.String()
}

// activeMessageCounts performs the same round-trip reporting counts
// only. A count bumps only when the message type changes between
// consecutive responses.
func (s *Server) activeMessageCounts(ctx context.Context, form *Form) string {
	recno := form.Int("devicerecno=")
	resps, failed := s.signMessagesRoundTrip(ctx, recno)
	if failed {
		return respWTCWriteFailed
	}

	var active, waiting, hidden int
	var last int8
	for _, env := range resps {
		if env.MessageType == last {
			continue
		}
		last = env.MessageType
		switch env.MessageType {
		case wtc.MessageTypeActive:
			active++
		case wtc.MessageTypeWaiting:
			waiting++
		case wtc.MessageTypeHidden:
			hidden++
		}
	}
	return fmt.Sprintf(`{"active_messages":%d,"active_messages_waiting":%d,"active_messages_hidden":%d}`,
		active, waiting, hidden)
}

// signMessagesRoundTrip writes the query envelope and drains the
// response stream. failed is true only when the write itself failed; a
// response timeout yields whatever arrived.
func (s *Server) signMessagesRoundTrip(ctx context.Context, recno int) (resps []*wtc.Envelope, failed bool) {
	req := wtc.Envelope{
		Command:       wtccommand.CommandSignMessages,
		Source:        wtccommand.SourceBrowser,
		Destination:   wtccommand.DestinationBannerBoard,
		PID:           os.Getpid(),
		HardwareRecno: recno,
	}
	if err := s.queue.Write(ctx, req); err != nil {
		slog.Error("Failed to write sign-messages query", "device_recno", recno, "error", err)
		return nil, true
	}

	resps, err := s.queue.ReadResponses(ctx, wtc.Filter{
		Command:       wtccommand.CommandSignMessages,
		Source:        wtccommand.SourceBannerBoard,
		Destination:   wtccommand.DestinationBrowser,
		HardwareRecno: recno,
	}, s.config.ResponseTimeout)
	if err != nil {
		slog.Warn("Sign-messages response stream incomplete",
			"device_recno", recno, "responses", len(resps), "error", err)
	}
	return resps, false
}

func messageTypeName(t int8) string {
	switch t {
	case wtc.MessageTypeActive:
		return "active"
	case wtc.MessageTypeWaiting:
		return "waiting"
	case wtc.MessageTypeHidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// pushTrigger asks the device's dispatcher to resynchronize the
// appliance, the same path a hardware-record save takes.
func (s *Server) pushTrigger(ctx context.Context, form *Form) string {
	recno := form.Int("devicerecno=")
	env := wtc.Envelope{
		Command:       wtccommand.CommandApplianceSync,
		Source:        wtccommand.SourceBannerMsg,
		Destination:   wtccommand.DestinationBannerBoard,
		HardwareRecno: recno,
	}
	if err := s.queue.Write(ctx, env); err != nil {
		slog.Error("Failed to write sync command", "device_recno", recno, "error", err)
		return respWTCWriteFailed
	}
	return respSyncWritten
}

// messageData assembles the full per-message JSON for one banner record
// as seen by one device. The sequence number is -1: the record is being
// inspected, not placed.
func (s *Server) messageData(ctx context.Context, form *Form) string {
	msgRecno := form.Int("msgrecno=")
	deviceID, _ := form.Lookup("deviceid=")

	deviceRecno := 0
	if strings.TrimSpace(deviceID) != "" {
		hw, err := s.hardware.GetByDeviceID(ctx, strings.TrimSpace(deviceID))
		switch {
		case err == nil:
			deviceRecno = hw.ID
		case errors.Is(err, services.ErrNotFound):
			// Unknown device still gets the record, with no group names.
		default:
			slog.Error("Failed to look up device", "device_id", deviceID, "error", err)
			return respDBInitError
		}
	}

	view, err := s.views.GetView(ctx, msgRecno, deviceRecno)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return respNoCurrency
		}
		slog.Error("Failed to load banner record", "banner_recno", msgRecno, "error", err)
		return respDBInitError
	}
	return translate.Message(-1, view.Text, view).Render() + "\n"
}

// reportNetworkInfo applies a device's self-reported address and, when
// the record changed, nudges the dispatcher to pick it up.
func (s *Server) reportNetworkInfo(ctx context.Context, form *Form) string {
	recno := form.Int("devicerecno=")
	methodConfig, _ := form.Lookup("ipMethodConfig=")
	methodCurrent, _ := form.Lookup("ipMethodCurrent=")
	address, _ := form.Lookup("ipAddress=")

	changed, err := s.hardware.ReportNetworkInfo(ctx, recno,
		strings.TrimSpace(methodConfig), strings.TrimSpace(methodCurrent), strings.TrimSpace(address))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return respNoCurrency
		}
		if services.IsValidationError(err) {
			slog.Warn("Rejected network self-report", "device_recno", recno, "error", err)
			return respNetworkNotChanged
		}
		slog.Error("Failed to update network info", "device_recno", recno, "error", err)
		return respNetworkUpdateFailed
	}
	if !changed {
		return respNetworkNotChanged
	}

	env := wtc.Envelope{
		Command:       wtccommand.CommandHardwareUpdate,
		Source:        wtccommand.SourceBrowser,
		Destination:   wtccommand.DestinationBannerBoard,
		HardwareRecno: recno,
	}
	if err := s.queue.Write(ctx, env); err != nil {
		slog.Warn("Failed to write hardware-update command", "device_recno", recno, "error", err)
	}
	return respNetworkUpdated
}
