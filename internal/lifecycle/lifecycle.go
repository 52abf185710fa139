// Package lifecycle wraps CLI command execution with timing and a completion log.
// Each wrapper captures the start time, executes fn, and reports the outcome
// and duration to the logger. No goroutines, no global state.
package lifecycle

import (
	"time"

	"github.com/rs/zerolog"
)

// Outcome describes one finished command.
type Outcome struct {
	Name     string
	Success  bool
	Duration time.Duration
}

// Run executes fn and logs its outcome under name. The error from fn is returned unchanged.
func Run(log zerolog.Logger, name string, fn func() error) error {
	_, err := RunWithOutcome(log, name, fn)
	return err
}

// RunWithOutcome is Run that also returns the recorded outcome.
func RunWithOutcome(log zerolog.Logger, name string, fn func() error) (Outcome, error) {
	start := time.Now()
	err := fn()
	outcome := Outcome{Name: name, Success: err == nil, Duration: time.Since(start)}

	event := log.Debug()
	if err != nil {
		event = event.Err(err)
	}
	event.Str("command", name).
		Bool("success", outcome.Success).
		Dur("duration", outcome.Duration).
		Msg("command complete")

	return outcome, err
}
