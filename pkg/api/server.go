// Package api serves the browser-facing query endpoint. The surface is
// CGI-shaped: a single route whose first form-encoded key selects the
// action, with fixed response strings that deployed clients parse
// byte-for-byte.
package api

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/messagenet/bannerd/ent"
	"github.com/messagenet/bannerd/pkg/config"
	"github.com/messagenet/bannerd/pkg/journal"
	"github.com/messagenet/bannerd/pkg/models"
	"github.com/messagenet/bannerd/pkg/version"
	"github.com/messagenet/bannerd/pkg/wtc"
)

// QueueClient is the queue surface the endpoint uses for round-trips.
// *wtc.Queue implements it.
type QueueClient interface {
	Write(ctx context.Context, env wtc.Envelope) error
	ReadResponses(ctx context.Context, f wtc.Filter, timeout time.Duration) ([]*wtc.Envelope, error)
}

// HardwareDirectory is the hardware-record surface the endpoint uses.
// *services.HardwareService implements it.
type HardwareDirectory interface {
	GetByDeviceID(ctx context.Context, deviceID string) (*ent.Hardware, error)
	ReportNetworkInfo(ctx context.Context, recno int, ipMethodConfig, ipMethodCurrent, address string) (bool, error)
}

// BannerViews assembles device-relative message views.
// *services.BannerService implements it.
type BannerViews interface {
	GetView(ctx context.Context, bannerRecno, deviceRecno int) (*models.BannerView, error)
}

// Server holds the endpoint's collaborators.
type Server struct {
	queue    QueueClient
	hardware HardwareDirectory
	views    BannerViews
	journals *journal.Store
	config   *config.QueueConfig
}

// NewServer creates the query endpoint server.
func NewServer(queue QueueClient, hardware HardwareDirectory, views BannerViews, journals *journal.Store, cfg *config.QueueConfig) *Server {
	return &Server{
		queue:    queue,
		hardware: hardware,
		views:    views,
		journals: journals,
		config:   cfg,
	}
}

// Router builds the gin engine: a health probe plus the CGI-shaped
// catch-all, so the endpoint answers on whatever path the deployed
// clients were configured with.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestID())
	router.GET("/health", s.Health)
	router.NoRoute(s.Handle)
	return router
}

// Health returns the health status.
func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": version.Full(),
	})
}

// Handle answers one CGI-style request: the query string (GET) or the
// request body (POST) is form-decoded and the first key picks the
// action. Every response is 200 with an exact body; errors are carried
// in the body text the way the deployed clients expect.
func (s *Server) Handle(c *gin.Context) {
	raw := c.Request.URL.RawQuery
	if c.Request.Method == http.MethodPost {
		body, err := io.ReadAll(c.Request.Body)
		if err == nil && len(body) > 0 {
			raw = string(body)
		}
	}
	form := ParseForm(raw)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(s.dispatch(c.Request.Context(), form)))
}
