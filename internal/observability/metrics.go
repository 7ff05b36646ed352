// Package observability wires the client library's Metrics interface to
// Prometheus counters, exposed by the CLI demo client on an optional
// HTTP endpoint. The core library (pkg/gt06) never imports this
// package directly; it only depends on the gt06.Metrics interface.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus implements gt06.Metrics with counter vectors labeled by
// protocol number where relevant.
type Prometheus struct {
	framesSent     *prometheus.CounterVec
	framesReceived *prometheus.CounterVec
	ackTimeouts    *prometheus.CounterVec
	reconnects     prometheus.Counter
	powerRestarts  prometheus.Counter
}

// NewPrometheus registers a fresh set of counters on reg and returns a
// Prometheus metrics sink backed by them.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	factory := promauto.With(reg)
	return &Prometheus{
		framesSent: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gt06_frames_sent_total",
			Help: "Frames sent by protocol number.",
		}, []string{"protocol"}),
		framesReceived: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gt06_frames_received_total",
			Help: "Frames received by protocol number.",
		}, []string{"protocol"}),
		ackTimeouts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gt06_ack_timeouts_total",
			Help: "Acknowledgement waits that timed out, by expected protocol number.",
		}, []string{"protocol"}),
		reconnects: factory.NewCounter(prometheus.CounterOpts{
			Name: "gt06_reconnects_total",
			Help: "Connect attempts made after a prior attempt failed.",
		}),
		powerRestarts: factory.NewCounter(prometheus.CounterOpts{
			Name: "gt06_power_restarts_total",
			Help: "Power-restart invocations after exhausting connect retries.",
		}),
	}
}

func hexByte(b byte) string {
	const digits = "0123456789ABCDEF"
	return string([]byte{'0', 'x', digits[b>>4], digits[b&0x0F]})
}

// FrameSent implements gt06.Metrics.
func (p *Prometheus) FrameSent(protocol byte) { p.framesSent.WithLabelValues(hexByte(protocol)).Inc() }

// FrameReceived implements gt06.Metrics.
func (p *Prometheus) FrameReceived(protocol byte) {
	p.framesReceived.WithLabelValues(hexByte(protocol)).Inc()
}

// AckTimeout implements gt06.Metrics.
func (p *Prometheus) AckTimeout(protocol byte) {
	p.ackTimeouts.WithLabelValues(hexByte(protocol)).Inc()
}

// Reconnect implements gt06.Metrics.
func (p *Prometheus) Reconnect() { p.reconnects.Inc() }

// PowerRestart implements gt06.Metrics.
func (p *Prometheus) PowerRestart() { p.powerRestarts.Inc() }
