package util

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// progressInterval is how often a ProgressPrinter emits another dot.
const progressInterval = time.Second

// ProgressPrinter prints a message followed by a slowly growing trail of
// dots, so long-running operations (like waiting on scp) don't look hung.
// Stopping it erases the line: operations that turn out to be no-ops leave
// no output behind.
type ProgressPrinter struct {
	out  io.Writer
	msg  string
	stop chan struct{}
	done chan struct{}
}

// NewProgressPrinter creates a ProgressPrinter that writes to out.
func NewProgressPrinter(out io.Writer, msg string) *ProgressPrinter {
	return &ProgressPrinter{
		out:  out,
		msg:  msg,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
}

// Run prints until Stop is called. Callers usually invoke it in a
// goroutine.
func (pp *ProgressPrinter) Run() {
	defer close(pp.done)

	fmt.Fprint(pp.out, pp.msg)
	written := len(pp.msg)

	ticker := time.NewTicker(progressInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			fmt.Fprint(pp.out, ".")
			written++
		case <-pp.stop:
			fmt.Fprintf(pp.out, "\r%s\r", strings.Repeat(" ", written))
			return
		}
	}
}

// Stop terminates Run, blocking until the progress line has been erased.
func (pp *ProgressPrinter) Stop() {
	close(pp.stop)
	<-pp.done
}
