package appliance

import (
	"context"
	"net"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/messagenet/bannerd/ent/hardware"
	"github.com/messagenet/bannerd/pkg/config"
	"github.com/messagenet/bannerd/pkg/registry"
)

func fastTransportConfig() *config.TransportConfig {
	return &config.TransportConfig{
		ConnectTimeout: time.Second,
		ConnectRetries: 0,
		RetryDelay:     10 * time.Millisecond,
		ReadTimeout:    200 * time.Millisecond,
		ReadRetries:    0,
		PingInterval:   time.Minute,
	}
}

// fakeAppliance accepts one connection, captures the request, and sends
// the canned reply.
type fakeAppliance struct {
	ln      net.Listener
	reply   string
	mu      sync.Mutex
	request string
}

func newFakeAppliance(t *testing.T, reply string) *fakeAppliance {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	f := &fakeAppliance{ln: ln, reply: reply}
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		buf := make([]byte, 64*1024)
		n, _ := conn.Read(buf)
		f.mu.Lock()
		f.request = string(buf[:n])
		f.mu.Unlock()
		if f.reply != "" {
			_, _ = conn.Write([]byte(f.reply))
		} else {
			time.Sleep(time.Second)
		}
	}()
	return f
}

func (f *fakeAppliance) Request() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.request
}

func (f *fakeAppliance) device(t *testing.T) *registry.Device {
	t.Helper()
	host, portStr, err := net.SplitHostPort(f.ln.Addr().String())
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	dev := &registry.Device{Recno: 363, DeviceID: "EVO-363", Port: port, Password: "pw"}
	dev.SetAddress(host, false)
	return dev
}

type statusRecorder struct {
	mu      sync.Mutex
	changes []hardware.ConnectionStatus
}

func (r *statusRecorder) SetConnectionStatus(_ context.Context, _ int, status hardware.ConnectionStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes = append(r.changes, status)
	return nil
}

func TestPostTransaction(t *testing.T) {
	srv := newFakeAppliance(t, "HTTP/1.1 200 OK\r\n\r\n")
	sink := &statusRecorder{}
	c := NewClient(fastTransportConfig(), sink)
	dev := srv.device(t)

	resp, err := c.Post(context.Background(), dev, `{"password":"pw","bannerpurpose":"clearsign"}`)
	require.NoError(t, err)
	assert.Contains(t, resp, "200 OK")
	assert.Equal(t, hardware.ConnectionStatusActive, dev.Status())
	assert.Equal(t, []hardware.ConnectionStatus{hardware.ConnectionStatusActive}, sink.changes)

	// The request framing is part of the device contract.
	req := srv.Request()
	assert.True(t, strings.HasPrefix(req, "POST / HTTP/1.1\r\n"), "request line: %q", req)
	assert.Contains(t, req, "User-Agent: MessageNet Evolution Banner Socket\r\n")
	assert.Contains(t, req, "Content-Type: application/json\r\n")
	assert.Contains(t, req, "Content-Length: 45\r\n")
	assert.True(t, strings.HasSuffix(req, "\r\n\r\n"+`{"password":"pw","bannerpurpose":"clearsign"}`+"\r\n"))
}

func TestPingTransaction(t *testing.T) {
	srv := newFakeAppliance(t, "HTTP/1.1 200 OK\r\n\r\n")
	c := NewClient(fastTransportConfig(), nil)

	require.NoError(t, c.Ping(context.Background(), srv.device(t)))
	assert.True(t, strings.HasPrefix(srv.Request(), "GET /ping?password=pw HTTP/1.1\r\n"))
}

func TestPostNoAddress(t *testing.T) {
	c := NewClient(fastTransportConfig(), nil)
	dev := &registry.Device{Recno: 363, Port: 8080}
	dev.SetStatus(hardware.ConnectionStatusActive)

	_, err := c.Post(context.Background(), dev, "{}")
	assert.ErrorIs(t, err, ErrNoAddress)
	assert.Equal(t, hardware.ConnectionStatusClosed, dev.Status())
}

func TestPostConnectFailureClearsLearnedAddress(t *testing.T) {
	// Grab a port nobody is listening on.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	c := NewClient(fastTransportConfig(), nil)
	dev := &registry.Device{Recno: 363, Port: port}
	dev.SetAddress("127.0.0.1", true)

	_, err = c.Post(context.Background(), dev, "{}")
	assert.ErrorIs(t, err, ErrConnectFailed)
	assert.Empty(t, dev.Address(), "learned address should be cleared for re-acquisition")
	assert.Equal(t, hardware.ConnectionStatusClosed, dev.Status())
}

func TestPostConfiguredAddressSurvivesConnectFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	c := NewClient(fastTransportConfig(), nil)
	dev := &registry.Device{Recno: 363, Port: port}
	dev.SetAddress("127.0.0.1", false)

	_, err = c.Post(context.Background(), dev, "{}")
	assert.ErrorIs(t, err, ErrConnectFailed)
	assert.Equal(t, "127.0.0.1", dev.Address())
}

func TestPostReadTimeout(t *testing.T) {
	srv := newFakeAppliance(t, "") // accepts, never replies
	c := NewClient(fastTransportConfig(), nil)

	_, err := c.Post(context.Background(), srv.device(t), "{}")
	assert.ErrorIs(t, err, ErrReadTimeout)
}
