package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/messagenet/bannerd/ent"
	"github.com/messagenet/bannerd/ent/wtccommand"
	"github.com/messagenet/bannerd/pkg/config"
	"github.com/messagenet/bannerd/pkg/journal"
	"github.com/messagenet/bannerd/pkg/models"
	"github.com/messagenet/bannerd/pkg/services"
	"github.com/messagenet/bannerd/pkg/wtc"
)

type fakeQueue struct {
	written   []wtc.Envelope
	writeErr  error
	responses []*wtc.Envelope
	readErr   error
}

func (q *fakeQueue) Write(_ context.Context, env wtc.Envelope) error {
	if q.writeErr != nil {
		return q.writeErr
	}
	q.written = append(q.written, env)
	return nil
}

func (q *fakeQueue) ReadResponses(_ context.Context, _ wtc.Filter, _ time.Duration) ([]*wtc.Envelope, error) {
	return q.responses, q.readErr
}

type fakeHardware struct {
	byDeviceID    map[string]*ent.Hardware
	reportChanged bool
	reportErr     error
	reportedAddr  string
}

func (h *fakeHardware) GetByDeviceID(_ context.Context, deviceID string) (*ent.Hardware, error) {
	if hw, ok := h.byDeviceID[deviceID]; ok {
		return hw, nil
	}
	return nil, services.ErrNotFound
}

func (h *fakeHardware) ReportNetworkInfo(_ context.Context, _ int, _, _, address string) (bool, error) {
	h.reportedAddr = address
	return h.reportChanged, h.reportErr
}

type fakeViews struct {
	view        *models.BannerView
	err         error
	deviceRecno int
}

func (v *fakeViews) GetView(_ context.Context, _, deviceRecno int) (*models.BannerView, error) {
	v.deviceRecno = deviceRecno
	return v.view, v.err
}

func testServer(t *testing.T, queue *fakeQueue, hardware *fakeHardware, views *fakeViews) *Server {
	t.Helper()
	if queue == nil {
		queue = &fakeQueue{}
	}
	if hardware == nil {
		hardware = &fakeHardware{}
	}
	if views == nil {
		views = &fakeViews{}
	}
	cfg := config.DefaultQueueConfig()
	cfg.ResponseTimeout = 250 * time.Millisecond
	return NewServer(queue, hardware, views, journal.NewStore(t.TempDir()), cfg)
}

func dispatchRaw(s *Server, raw string) string {
	return s.dispatch(context.Background(), ParseForm(raw))
}

func TestDispatchUnknownAction(t *testing.T) {
	s := testServer(t, nil, nil, nil)
	assert.Equal(t, "No command found\n", dispatchRaw(s, "foo=1"))
}

func TestGetActiveMessages(t *testing.T) {
	s := testServer(t, nil, nil, nil)
	j := s.journals.ForDevice(363)
	require.NoError(t, j.Append(`{"signseqnum":0,"dbb_rec_dtsec":"100","recno_zx":"345","msgtext":"a"}`))
	require.NoError(t, j.Append(`{"signseqnum":1,"dbb_rec_dtsec":"101","recno_zx":"350","msgtext":"b"}`))

	got := dispatchRaw(s, "evolutionGetActiveMessagesForDevice=1&devicerecno=363")
	want := `{"evolution_active_msgs":[` +
		`{"signseqnum":0,"dbb_rec_dtsec":"100","recno_zx":"345","msgtext":"a"},` +
		`{"signseqnum":1,"dbb_rec_dtsec":"101","recno_zx":"350","msgtext":"b"}]}`
	assert.Equal(t, want, got)
}

func TestGetActiveMessagesEmptyJournal(t *testing.T) {
	s := testServer(t, nil, nil, nil)
	got := dispatchRaw(s, "evolutionGetActiveMessagesForDevice=1&devicerecno=999")
	assert.Equal(t, `{"evolution_active_msgs":[]}`, got)
}

func TestActiveMessageRecnos(t *testing.T) {
	queue := &fakeQueue{responses: []*wtc.Envelope{
		{StreamRecno: 345, MessageType: wtc.MessageTypeActive},
		{StreamRecno: 350, MessageType: wtc.MessageTypeWaiting},
		{StreamRecno: 360, MessageType: wtc.MessageTypeHidden},
		{StreamRecno: 370, MessageType: 9},
	}}
	s := testServer(t, queue, nil, nil)

	got := dispatchRaw(s, "evolutionGetActiveMessagesForDevice_recnosOnly=1&devicerecno=363")
	want := `{"hwRecno":"363","activeMessages":[` +
		`{"recno":"345","type":"active"},` +
		`{"recno":"350","type":"waiting"},` +
		`{"recno":"360","type":"hidden"},` +
		`{"recno":"370","type":"unknown"}]}`
	assert.Equal(t, want, got)

	// The query envelope addressed the device's dispatcher.
	require.Len(t, queue.written, 1)
	assert.Equal(t, wtccommand.CommandSignMessages, queue.written[0].Command)
	assert.Equal(t, wtccommand.DestinationBannerBoard, queue.written[0].Destination)
	assert.Equal(t, 363, queue.written[0].HardwareRecno)
}

func TestActiveMessageRecnosWriteFailure(t *testing.T) {
	queue := &fakeQueue{writeErr: assert.AnError}
	s := testServer(t, queue, nil, nil)
	got := dispatchRaw(s, "evolutionGetActiveMessagesForDevice_recnosOnly=1&devicerecno=363")
	assert.Equal(t, "WTC command failed to write.", got)
}

func TestActiveMessageRecnosTimeoutReturnsPartial(t *testing.T) {
	queue := &fakeQueue{
		responses: []*wtc.Envelope{{StreamRecno: 345, MessageType: wtc.MessageTypeActive}},
		readErr:   wtc.ErrResponseTimeout,
	}
	s := testServer(t, queue, nil, nil)
	got := dispatchRaw(s, "evolutionGetActiveMessagesForDevice_recnosOnly=1&devicerecno=363")
	assert.Equal(t, `{"hwRecno":"363","activeMessages":[{"recno":"345","type":"active"}]}`, got)
}

func TestActiveMessageCounts(t *testing.T) {
	// Counts bump only on type transitions: 1,1,2,3 counts one of each.
	queue := &fakeQueue{responses: []*wtc.Envelope{
		{StreamRecno: 345, MessageType: wtc.MessageTypeActive},
		{StreamRecno: 346, MessageType: wtc.MessageTypeActive},
		{StreamRecno: 350, MessageType: wtc.MessageTypeWaiting},
		{StreamRecno: 360, MessageType: wtc.MessageTypeHidden},
	}}
	s := testServer(t, queue, nil, nil)

	got := dispatchRaw(s, "evolutionGetActiveMessagesForDevice_countsOnly=1&devicerecno=363")
	assert.Equal(t, `{"active_messages":1,"active_messages_waiting":1,"active_messages_hidden":1}`, got)
}

func TestPushTrigger(t *testing.T) {
	queue := &fakeQueue{}
	s := testServer(t, queue, nil, nil)

	got := dispatchRaw(s, "evolutionGetActiveMessagesForDevice_serverPushTriggerUpdateDeviceStatus=1&devicerecno=363")
	assert.Equal(t, "WTC command written. Active messages should be arriving.", got)

	require.Len(t, queue.written, 1)
	assert.Equal(t, wtccommand.CommandApplianceSync, queue.written[0].Command)
	assert.Equal(t, 363, queue.written[0].HardwareRecno)
}

func TestMessageData(t *testing.T) {
	hardware := &fakeHardware{byDeviceID: map[string]*ent.Hardware{
		"EVO-363": {ID: 363},
	}}
	views := &fakeViews{view: &models.BannerView{
		Recno:      345,
		RecDtsec:   "100",
		Text:       "FIRE DRILL",
		WebpageURL: "FALSE",
	}}
	s := testServer(t, nil, hardware, views)

	got := dispatchRaw(s, "evolutionGetMessageDataForRecnoZX=1&msgrecno=345&deviceid=EVO-363")
	assert.True(t, strings.HasPrefix(got, `{"signseqnum":-1,`))
	assert.True(t, strings.HasSuffix(got, "}\n"))
	assert.Contains(t, got, `"recno_zx":"345"`)
	assert.Contains(t, got, `"msgtext":"FIRE DRILL"`)

	// The device id resolved to its recno for group membership.
	assert.Equal(t, 363, views.deviceRecno)
}

func TestMessageDataUnknownDevice(t *testing.T) {
	views := &fakeViews{view: &models.BannerView{Recno: 345}}
	s := testServer(t, nil, nil, views)

	got := dispatchRaw(s, "evolutionGetMessageDataForRecnoZX=1&msgrecno=345&deviceid=NOPE")
	assert.True(t, strings.HasPrefix(got, `{"signseqnum":-1,`))
	assert.Equal(t, 0, views.deviceRecno)
}

func TestMessageDataNotFound(t *testing.T) {
	views := &fakeViews{err: services.ErrNotFound}
	s := testServer(t, nil, nil, views)

	got := dispatchRaw(s, "evolutionGetMessageDataForRecnoZX=1&msgrecno=999&deviceid=EVO-363")
	assert.Equal(t, "Could not set currency", got)
}

func TestReportNetworkInfoUpdated(t *testing.T) {
	queue := &fakeQueue{}
	hardware := &fakeHardware{reportChanged: true}
	s := testServer(t, queue, hardware, nil)

	got := dispatchRaw(s, "evolutionReportNetworkInfo=1&devicerecno=363&ipMethodConfig=DHCP&ipMethodCurrent=DHCP&ipAddress=192.168.1.229")
	assert.Equal(t, "Hardware record network info updated", got)
	assert.Equal(t, "192.168.1.229", hardware.reportedAddr)

	// A hardware-update command follows so the dispatcher re-reads the row.
	require.Len(t, queue.written, 1)
	assert.Equal(t, wtccommand.CommandHardwareUpdate, queue.written[0].Command)
	assert.Equal(t, 363, queue.written[0].HardwareRecno)
}

func TestReportNetworkInfoNotChanged(t *testing.T) {
	queue := &fakeQueue{}
	hardware := &fakeHardware{reportChanged: false}
	s := testServer(t, queue, hardware, nil)

	got := dispatchRaw(s, "evolutionReportNetworkInfo=1&devicerecno=363&ipMethodConfig=Static&ipMethodCurrent=STATIC&ipAddress=192.168.1.229")
	assert.Equal(t, "Hardware record network info not changed", got)
	assert.Empty(t, queue.written)
}

func TestReportNetworkInfoNotFound(t *testing.T) {
	hardware := &fakeHardware{reportErr: services.ErrNotFound}
	s := testServer(t, nil, hardware, nil)

	got := dispatchRaw(s, "evolutionReportNetworkInfo=1&devicerecno=999&ipMethodConfig=DHCP&ipMethodCurrent=DHCP&ipAddress=192.168.1.229")
	assert.Equal(t, "Could not set currency", got)
}

func TestReportNetworkInfoValidationError(t *testing.T) {
	hardware := &fakeHardware{reportErr: services.NewValidationError("ipAddress", "required")}
	s := testServer(t, nil, hardware, nil)

	got := dispatchRaw(s, "evolutionReportNetworkInfo=1&devicerecno=363&ipMethodConfig=DHCP&ipMethodCurrent=DHCP")
	assert.Equal(t, "Hardware record network info not changed", got)
}

func TestReportNetworkInfoUpdateFailure(t *testing.T) {
	hardware := &fakeHardware{reportErr: assert.AnError}
	s := testServer(t, nil, hardware, nil)

	got := dispatchRaw(s, "evolutionReportNetworkInfo=1&devicerecno=363&ipMethodConfig=DHCP&ipMethodCurrent=DHCP&ipAddress=192.168.1.229")
	assert.Equal(t, "Hardware record network info failed to update", got)
}

func TestRouterServesCGIOnAnyPath(t *testing.T) {
	s := testServer(t, nil, nil, nil)
	srv := httptest.NewServer(s.Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/~silentm/bin/smajax.cgi?foo=1")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "No command found\n", string(body))
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestRouterPostBody(t *testing.T) {
	s := testServer(t, nil, nil, nil)
	srv := httptest.NewServer(s.Router())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/", "application/x-www-form-urlencoded",
		strings.NewReader("evolutionGetActiveMessagesForDevice=1&devicerecno=5"))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, `{"evolution_active_msgs":[]}`, string(body))
}

func TestHealthEndpoint(t *testing.T) {
	s := testServer(t, nil, nil, nil)
	srv := httptest.NewServer(s.Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
