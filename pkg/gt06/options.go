package gt06

import (
	"fmt"
	"time"
)

// Options configures a Session. Construct via DefaultOptions and the
// With* functions rather than building the struct directly, so future
// fields default sanely.
type Options struct {
	// Timeout bounds how long SendAndWait waits for a matching ack.
	Timeout time.Duration

	// RetryCount is how many additional connect attempts are made after
	// the first failure before the session gives up and arms the
	// power-restart timer.
	RetryCount int

	// HeartbeatPeriod is the life_time interval between automatic
	// heart-beats once logged in.
	HeartbeatPeriod time.Duration

	// PowerRestartDelay is how long the session waits, after all
	// RetryCount+1 connect attempts have failed, before invoking
	// PowerRestarter.
	PowerRestartDelay time.Duration

	// Logger receives structured lifecycle logs. Defaults to an
	// adapter over the standard library's log package.
	Logger Logger

	// Clock supplies time and timers, overridable in tests.
	Clock Clock

	// PowerRestarter is invoked when connect retries are exhausted.
	// Defaults to a no-op (the session itself still logs and counts the
	// restart), since most deployments run this library without direct
	// access to the device's power rail.
	PowerRestarter PowerRestarter

	// Metrics receives session lifecycle counters. Defaults to a no-op.
	Metrics Metrics
}

// Option is a functional option for configuring a Session.
type Option func(*Options)

// DefaultOptions returns the library defaults: a 5s ack timeout, 3
// retries, a 180s heartbeat period, and a 1200s (20 minute)
// power-restart delay, matching the reference firmware.
func DefaultOptions() Options {
	return Options{
		Timeout:           5 * time.Second,
		RetryCount:        3,
		HeartbeatPeriod:   180 * time.Second,
		PowerRestartDelay: 1200 * time.Second,
		Logger:            NewStdLogger(),
		Clock:             RealClock{},
		PowerRestarter:    NoopPowerRestarter{},
		Metrics:           NoopMetrics{},
	}
}

// WithTimeout overrides the default ack wait timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) { o.Timeout = d }
}

// WithRetryCount overrides how many connect retries follow a failed
// first attempt.
func WithRetryCount(n int) Option {
	return func(o *Options) { o.RetryCount = n }
}

// WithHeartbeatPeriod overrides the automatic heart-beat interval.
func WithHeartbeatPeriod(d time.Duration) Option {
	return func(o *Options) { o.HeartbeatPeriod = d }
}

// WithPowerRestartDelay overrides the delay before a power restart is
// attempted following exhausted connect retries.
func WithPowerRestartDelay(d time.Duration) Option {
	return func(o *Options) { o.PowerRestartDelay = d }
}

// WithLogger overrides the default logger.
func WithLogger(l Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithClock overrides the default real-time clock, primarily for tests.
func WithClock(c Clock) Option {
	return func(o *Options) { o.Clock = c }
}

// WithPowerRestarter overrides the default no-op power restarter.
func WithPowerRestarter(p PowerRestarter) Option {
	return func(o *Options) { o.PowerRestarter = p }
}

// WithMetrics overrides the default no-op metrics sink.
func WithMetrics(m Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// Validate reports whether the accumulated options are usable.
func (o *Options) Validate() error {
	if o.Timeout <= 0 {
		return newFieldError("Timeout", "must be positive", o.Timeout)
	}
	if o.RetryCount < 0 {
		return newFieldError("RetryCount", "must not be negative", o.RetryCount)
	}
	if o.HeartbeatPeriod <= 0 {
		return newFieldError("HeartbeatPeriod", "must be positive", o.HeartbeatPeriod)
	}
	if o.PowerRestartDelay <= 0 {
		return newFieldError("PowerRestartDelay", "must be positive", o.PowerRestartDelay)
	}
	if o.Logger == nil || o.Clock == nil || o.PowerRestarter == nil || o.Metrics == nil {
		return newFieldError("Options", "collaborator fields must not be nil; use DefaultOptions as a base", nil)
	}
	return nil
}

// Clone returns a copy of o. Collaborator fields (Logger, Clock, ...)
// are interfaces and are shared, not deep-copied.
func (o *Options) Clone() Options {
	clone := *o
	return clone
}

func resolveOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return Options{}, fmt.Errorf("gt06: invalid options: %w", err)
	}
	return o, nil
}
