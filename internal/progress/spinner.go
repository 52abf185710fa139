package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

const spinnerInterval = 100 * time.Millisecond

// Spinner animates a single in-flight step. A disabled Spinner does nothing,
// so callers never need to branch on terminal support.
type Spinner struct {
	w       io.Writer
	symbols ProgressSymbols
	s       *spinner.Spinner
}

// NewSpinner returns a spinner drawing to w. It is disabled when caps reports
// no TTY or when plain is set.
func NewSpinner(w io.Writer, caps TerminalCapabilities, plain bool) *Spinner {
	sp := &Spinner{w: w, symbols: SelectSymbols(caps)}
	if !caps.IsTTY || plain {
		return sp
	}

	opts := []spinner.Option{spinner.WithWriter(w)}
	if caps.SupportsColor {
		opts = append(opts, spinner.WithColor("cyan"))
	}
	sp.s = spinner.New(spinner.CharSets[sp.symbols.SpinnerSet], spinnerInterval, opts...)
	return sp
}

// Enabled reports whether the spinner draws anything.
func (sp *Spinner) Enabled() bool {
	return sp.s != nil
}

// Start begins animating with msg as the suffix.
func (sp *Spinner) Start(msg string) {
	if sp.s == nil {
		return
	}
	sp.s.Suffix = " " + msg
	sp.s.Start()
}

// Stop halts the animation and leaves a final line marked success or failure.
func (sp *Spinner) Stop(msg string, ok bool) {
	if sp.s == nil {
		return
	}
	symbol := sp.symbols.Checkmark
	if !ok {
		symbol = sp.symbols.Failure
	}
	sp.s.FinalMSG = fmt.Sprintf("%s %s\n", symbol, msg)
	sp.s.Stop()
}

// Run wraps fn with Start and Stop.
func (sp *Spinner) Run(msg string, fn func() error) error {
	sp.Start(msg)
	err := fn()
	sp.Stop(msg, err == nil)
	return err
}
