// Package appliance implements the socket client for Evolution banner
// appliances. The device speaks a fixed-byte HTTP/1.1 dialect over a
// short-lived TCP connection per transaction — the exact request framing
// is part of the device contract, so the request is written by hand
// rather than through net/http.
package appliance

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"time"

	"github.com/messagenet/bannerd/ent/hardware"
	"github.com/messagenet/bannerd/pkg/config"
	"github.com/messagenet/bannerd/pkg/registry"
)

const userAgent = "MessageNet Evolution Banner Socket"

// StatusSink receives connection-status changes so they can be reflected
// into the hardware table for other processes to observe. May be nil.
type StatusSink interface {
	SetConnectionStatus(ctx context.Context, recno int, status hardware.ConnectionStatus) error
}

// Client sends wire bodies to appliances with bounded retries.
type Client struct {
	cfg  *config.TransportConfig
	sink StatusSink
}

// NewClient creates an appliance client. sink may be nil.
func NewClient(cfg *config.TransportConfig, sink StatusSink) *Client {
	return &Client{cfg: cfg, sink: sink}
}

// Post performs one POST transaction: connect, send the JSON body, read
// the device's reply. The device is marked active on connect and closed
// on any transport failure; a learned address is cleared on final
// connect failure so the next probe re-acquires it.
func (c *Client) Post(ctx context.Context, dev *registry.Device, body string) (string, error) {
	req := "POST / HTTP/1.1\r\n" +
		"User-Agent: " + userAgent + "\r\n" +
		"Content-Type: application/json\r\n" +
		"Content-Length: " + strconv.Itoa(len(body)) + "\r\n" +
		"\r\n" +
		body + "\r\n"
	return c.transact(ctx, dev, req)
}

// Ping performs the liveness probe transaction.
func (c *Client) Ping(ctx context.Context, dev *registry.Device) error {
	req := "GET /ping?password=" + dev.Password + " HTTP/1.1\r\n\r\n"
	_, err := c.transact(ctx, dev, req)
	return err
}

func (c *Client) transact(ctx context.Context, dev *registry.Device, req string) (string, error) {
	log := slog.With("device_recno", dev.Recno, "device_id", dev.DeviceID)

	addr := dev.Address()
	if addr == "" {
		log.Warn("Device has no address, marking closed")
		c.setStatus(ctx, dev, hardware.ConnectionStatusClosed)
		return "", ErrNoAddress
	}

	conn, err := c.connect(ctx, dev, addr)
	if err != nil {
		if dev.ClearLearnedAddress() {
			log.Info("Cleared learned device address after connect failure")
		}
		c.setStatus(ctx, dev, hardware.ConnectionStatusClosed)
		return "", err
	}
	defer conn.Close()

	c.setStatus(ctx, dev, hardware.ConnectionStatusActive)

	n, err := conn.Write([]byte(req))
	if err != nil || n == 0 {
		log.Warn("Device write failed", "error", err, "bytes", n)
		c.setStatus(ctx, dev, hardware.ConnectionStatusClosed)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrWriteFailed, err)
		}
		return "", ErrWriteFailed
	}

	resp, err := c.read(conn)
	if err != nil {
		log.Warn("No response from device", "error", err)
		return "", err
	}
	return resp, nil
}

// connect dials with the configured budget, retrying on the fixed delay.
func (c *Client) connect(ctx context.Context, dev *registry.Device, addr string) (net.Conn, error) {
	target := net.JoinHostPort(addr, strconv.Itoa(dev.Port))
	dialer := net.Dialer{Timeout: c.cfg.ConnectTimeout}

	var lastErr error
	for attempt := 0; attempt <= c.cfg.ConnectRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.cfg.RetryDelay):
			}
			slog.Debug("Retrying device connect",
				"device_recno", dev.Recno, "attempt", attempt, "error", lastErr)
		}
		conn, err := dialer.DialContext(ctx, "tcp", target)
		if err == nil {
			return conn, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("%w: %v: %w", ErrConnectFailed, target, lastErr)
}

// read waits for the device reply with the configured idle budget,
// retrying the read on the fixed delay before giving up.
func (c *Client) read(conn net.Conn) (string, error) {
	buf := make([]byte, 64*1024)
	for attempt := 0; attempt <= c.cfg.ReadRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(c.cfg.RetryDelay)
		}
		_ = conn.SetReadDeadline(time.Now().Add(c.cfg.ReadTimeout))
		n, err := conn.Read(buf)
		if n > 0 {
			return string(buf[:n]), nil
		}
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				continue
			}
			return "", fmt.Errorf("%w: %w", ErrReadTimeout, err)
		}
	}
	return "", ErrReadTimeout
}

func (c *Client) setStatus(ctx context.Context, dev *registry.Device, status hardware.ConnectionStatus) {
	if dev.Status() == status {
		return
	}
	dev.SetStatus(status)
	if c.sink == nil {
		return
	}
	if err := c.sink.SetConnectionStatus(ctx, dev.Recno, status); err != nil {
		slog.Warn("Failed to persist device status",
			"device_recno", dev.Recno, "status", status, "error", err)
	}
}
