package netmon

import (
	"context"
	"errors"
	"time"

	"github.com/fabline/floorsync/internal/config"
	"github.com/fabline/floorsync/internal/logger"
)

// Source delivers raw reachability samples to the monitor. true means the
// plant API answered, false means it did not.
type Source interface {
	Samples() <-chan bool
}

// HealthChecker is the slice of the plant API the probe needs.
type HealthChecker interface {
	Healthz(ctx context.Context) error
}

// ProbeSource produces reachability samples by polling the plant API
// health endpoint. Sites with platform-level connectivity callbacks can
// swap in their own [Source]; this one only needs HTTP.
type ProbeSource struct {
	api      HealthChecker
	interval time.Duration
	samples  chan bool
	logger   *logger.Logger
}

func NewProbeSource(api HealthChecker, cfg config.Netmon, log *logger.Logger) *ProbeSource {
	interval := cfg.ProbeInterval
	if interval <= 0 {
		interval = 5 * time.Second
	}

	return &ProbeSource{
		api:      api,
		interval: interval,
		samples:  make(chan bool, 1),
		logger:   log,
	}
}

// Samples returns the channel reachability samples arrive on. The channel
// closes when Run returns.
func (p *ProbeSource) Samples() <-chan bool {
	return p.samples
}

// Run probes immediately, then on every interval tick, until ctx is
// cancelled. When the consumer lags, a fresh sample replaces the stale
// one instead of queueing behind it.
func (p *ProbeSource) Run(ctx context.Context) {
	defer close(p.samples)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.probe(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.probe(ctx)
		}
	}
}

func (p *ProbeSource) probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	err := p.api.Healthz(probeCtx)
	if err != nil && !errors.Is(err, context.Canceled) {
		// Debug: оффлайн-устройство генерирует это каждые пять секунд.
		p.logger.Debug().
			Err(err).
			Str("func", "ProbeSource.probe").
			Msg("health probe failed")
	}

	up := err == nil

	select {
	case p.samples <- up:
	default:
		select {
		case <-p.samples:
		default:
		}
		select {
		case p.samples <- up:
		default:
		}
	}
}
