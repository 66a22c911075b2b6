package app

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"strings"
)

// panicError logs a recovered panic with its stack, one line per record, and
// turns it into an error that ends the run.
func panicError(l *slog.Logger, v any) error {
	l.Error("panic", "value", fmt.Sprint(v))
	for _, line := range strings.Split(string(debug.Stack()), "\n") {
		if line == "" {
			continue
		}
		l.Error("panic", "stack", line)
	}
	return fmt.Errorf("panic: %v", v)
}
