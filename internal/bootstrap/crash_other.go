//go:build !linux && !darwin

package bootstrap

import (
	"context"
	"runtime/debug"
)

// EnableCrashForensics makes fatal errors dump every goroutine.
func EnableCrashForensics() {
	debug.SetTraceback("crash")
}

func logCoreDumpLimits(context.Context) {}
