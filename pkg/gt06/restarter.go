package gt06

import "context"

// PowerRestarter power-cycles the device. Invoked when Connect
// exhausts its retry budget; a real implementation toggles a GPIO or
// relay, while tests and most library consumers use a recording fake.
type PowerRestarter interface {
	Restart(ctx context.Context) error
}

// NoopPowerRestarter does nothing; the Session logs and counts each
// restart before invoking it. Most deployments embedding this library
// don't have direct access to the device's power rail and instead
// surface the restart request to an external supervisor (e.g. via
// Metrics or Logger) that performs the actual cycle.
type NoopPowerRestarter struct{}

// Restart does nothing and never errors.
func (NoopPowerRestarter) Restart(context.Context) error { return nil }
