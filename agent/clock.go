package agent

import (
	"time"

	"golang.org/x/sys/unix"
)

// processTime returns the CPU time this process has consumed so far. The
// timed search mode budgets against this clock rather than wall time.
func processTime() (time.Duration, error) {
	var usage unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &usage); err != nil {
		return 0, err
	}
	return time.Duration(usage.Utime.Nano() + usage.Stime.Nano()), nil
}
