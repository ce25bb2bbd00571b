// Package lifecycle holds shared startup/shutdown constants.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful-shutdown waits.
const DefaultTimeout = 10 * time.Second
