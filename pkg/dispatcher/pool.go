package dispatcher

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/messagenet/bannerd/pkg/config"
	"github.com/messagenet/bannerd/pkg/journal"
	"github.com/messagenet/bannerd/pkg/registry"
)

// Pool manages one dispatcher worker per appliance device.
type Pool struct {
	node     string
	registry *registry.Registry
	queue    CommandSource
	sender   Sender
	views    BannerViews
	journals *journal.Store
	config   *config.QueueConfig
	tcfg     *config.TransportConfig

	mu      sync.Mutex
	workers []*Worker
	started bool
}

// NewPool creates a dispatcher pool over the registry's appliances.
func NewPool(node string, reg *registry.Registry, queue CommandSource, sender Sender, views BannerViews, journals *journal.Store, qcfg *config.QueueConfig, tcfg *config.TransportConfig) *Pool {
	return &Pool{
		node:     node,
		registry: reg,
		queue:    queue,
		sender:   sender,
		views:    views,
		journals: journals,
		config:   qcfg,
		tcfg:     tcfg,
	}
}

// Start spawns one worker per appliance, in registry load order.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *Pool) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		slog.Warn("Dispatcher pool already started, ignoring duplicate Start call", "node", p.node)
		return nil
	}
	p.started = true

	appliances := p.registry.Appliances()
	slog.Info("Starting dispatcher pool", "node", p.node, "device_count", len(appliances))

	for _, dev := range appliances {
		id := fmt.Sprintf("%s-banner-%d", p.node, dev.Recno)
		w := NewWorker(id, dev, p.queue, p.sender, p.views, p.registry,
			p.journals.ForDevice(dev.Recno), p.config, p.tcfg.PingInterval)
		p.workers = append(p.workers, w)
		w.Start(ctx)
	}

	slog.Info("Dispatcher pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish their
// current command (graceful shutdown).
func (p *Pool) Stop() {
	slog.Info("Stopping dispatcher pool gracefully")
	p.mu.Lock()
	workers := p.workers
	p.mu.Unlock()
	for _, w := range workers {
		w.Stop()
	}
	slog.Info("Dispatcher pool stopped gracefully")
}

// Health returns a snapshot of every worker's state.
func (p *Pool) Health() []WorkerHealth {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]WorkerHealth, 0, len(p.workers))
	for _, w := range p.workers {
		out = append(out, w.Health())
	}
	return out
}
