// Package lifecycle holds shared timeouts for component start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds OnStart/OnStop hooks and graceful shutdowns.
const DefaultTimeout = 10 * time.Second
