package logging

import (
	"context"
	"fmt"
	"runtime/debug"
)

// RecoverGoroutine logs a panic in a background goroutine instead of taking
// the process down. Use with defer at the top of the goroutine.
func RecoverGoroutine(ctx context.Context, where string) {
	r := recover()
	if r == nil {
		return
	}
	FromContext(ctx).Error().
		Str("where", where).
		Str("panic", fmt.Sprint(r)).
		Bytes("stack", debug.Stack()).
		Msg("recovered panic in goroutine")
}
