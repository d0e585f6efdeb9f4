// Package lifecycle holds shared start and stop limits of long-lived components.
package lifecycle

import "time"

// DefaultTimeout bounds startup checks and graceful shutdown of servers and connections.
const DefaultTimeout = 15 * time.Second
