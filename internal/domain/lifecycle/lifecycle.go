// Package lifecycle holds shared start/stop budgets for fx hooks.
package lifecycle

import "time"

const (
	// DefaultTimeout bounds every OnStart/OnStop hook (DB ping, server shutdown, publisher close).
	DefaultTimeout = 10 * time.Second

	// ShutdownGrace is how long in-flight worker deliveries get before the server is closed.
	ShutdownGrace = 5 * time.Second
)
