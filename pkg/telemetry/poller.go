package telemetry

import (
	"context"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/sense.go/pkg/l0/reg"
)

// DefaultInterval is the default sampling interval.
const DefaultInterval = time.Second

// Poller reads samples from the frontend at a fixed interval and fans
// them out to sinks. It implements framework.Runnable. A failed read
// is logged and skipped; the link layer itself never retries.
type Poller struct {
	Device   string
	Reader   reg.RegisterReader
	Interval time.Duration
	Sinks    []Sink
}

// AddSinks appends sinks.
func (p *Poller) AddSinks(sinks ...Sink) *Poller {
	p.Sinks = append(p.Sinks, sinks...)
	return p
}

// Run implements Runnable.
func (p *Poller) Run(ctx context.Context) error {
	interval := p.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			v, err := p.Reader.ReadSample()
			if err != nil {
				glog.Warningf("read sample: %v", err)
				continue
			}
			s := Sample{Device: p.Device, Value: v, Time: time.Now()}
			for _, sink := range p.Sinks {
				sink.Push(s)
			}
		}
	}
}
