// Package lifecycle holds values shared by components that start and stop with the process.
package lifecycle

import "time"

// DefaultTimeout bounds startup checks and graceful shutdown.
const DefaultTimeout = 15 * time.Second
