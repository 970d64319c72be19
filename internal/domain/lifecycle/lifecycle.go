// Package lifecycle holds shared timeouts for application start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds fx lifecycle hooks such as server start and shutdown.
const DefaultTimeout = 10 * time.Second
