// Package timing logs startup checkpoints so slow launches can be traced.
package timing

import (
	"fmt"
	"io"
	"os"
	"time"
)

var (
	enabled   = os.Getenv("TODOLIST_DEBUG_TIMING") == "1"
	out       io.Writer = os.Stderr
	startTime time.Time
	lastTime  time.Time
)

// Start resets the checkpoint clock.
func Start() {
	startTime = time.Now()
	lastTime = startTime
}

// Log logs a timing checkpoint if TODOLIST_DEBUG_TIMING=1.
func Log(label string) {
	if !enabled {
		return
	}
	if startTime.IsZero() {
		Start()
	}
	now := time.Now()
	sinceLast := now.Sub(lastTime)
	sinceStart := now.Sub(startTime)
	fmt.Fprintf(out, "[TIMING] %s: +%dms (total: %dms)\n", label, sinceLast.Milliseconds(), sinceStart.Milliseconds())
	lastTime = now
}
