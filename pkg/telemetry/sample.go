// Package telemetry publishes decoded frontend samples.
package telemetry

import (
	"encoding/json"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/sense.go/pkg/comm/mqtt"
)

// Sample is one decoded conversion result.
type Sample struct {
	Device string    `json:"device"`
	Value  uint32    `json:"value"`
	Time   time.Time `json:"time"`
}

// Sink consumes samples.
type Sink interface {
	Push(Sample)
}

// SinkFunc is the func form of Sink.
type SinkFunc func(Sample)

// Push implements Sink.
func (f SinkFunc) Push(s Sample) {
	f(s)
}

// MQTTSink publishes samples to <device>/sample.
type MQTTSink struct {
	Queue *mqtt.Queue
}

// Push implements Sink.
func (s *MQTTSink) Push(smp Sample) {
	payload, err := json.Marshal(&smp)
	if err != nil {
		glog.Errorf("marshal sample: %v", err)
		return
	}
	s.Queue.Pub(smp.Device+"/sample", payload)
}
