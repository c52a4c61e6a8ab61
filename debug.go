package radial

import (
	"fmt"
	"log"
	"os"
)

// globalDebug gates diagnostics for every layout and controller in the
// process. The engine is single-threaded, so a plain bool is enough.
var globalDebug bool

// SetDebugMode enables or disables debug mode. When enabled, layout and
// controller decisions are logged and suspicious datasets print warnings to
// stderr.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// DebugMode reports whether debug mode is on.
func DebugMode() bool {
	return globalDebug
}

// debugf logs a diagnostic line when debug mode is on.
func debugf(format string, args ...any) {
	if !globalDebug {
		return
	}
	log.Printf("radial: "+format, args...)
}

// debugMinSpanDeg is the narrowest segment that still fits a label.
const debugMinSpanDeg = 2.0

// debugCheckLayout warns on stderr about segments too thin to hit or label.
func debugCheckLayout(l *Layout) {
	if !globalDebug {
		return
	}
	for _, s := range l.segments {
		if s.Span() < debugMinSpanDeg {
			_, _ = fmt.Fprintf(os.Stderr, "[radial] warning: segment %q spans %.3f deg (threshold %.1f)\n",
				s.ID, s.Span(), debugMinSpanDeg)
		}
	}
}

// debugCheckDisposed panics when a disposed wheel keeps receiving input.
// Only called in debug mode; release builds treat the event as a no-op.
func debugCheckDisposed(disposed bool, op string) {
	if disposed && globalDebug {
		panic(fmt.Sprintf("radial debug: %s on disposed wheel", op))
	}
}
