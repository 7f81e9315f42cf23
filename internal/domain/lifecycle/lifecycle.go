// Package lifecycle holds shared shutdown parameters.
package lifecycle

import "time"

// DefaultTimeout bounds graceful-shutdown work such as draining HTTP servers.
const DefaultTimeout = 30 * time.Second
