// Package lifecycle holds process-wide timing constants shared by the fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown hooks.
const DefaultTimeout = 15 * time.Second
