package qc

import (
	crand "crypto/rand"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/davecgh/go-spew/spew"
)

// Reporter receives trial diagnostics from the driver. Trial is called
// before each test-function call when verbose mode is on; Counterexample
// is called with the triggering arguments before a failure propagates.
type Reporter interface {
	Trial(run string, args Args)
	Counterexample(run string, args Args, err error)
}

// dumper renders argument values for humans. Sorted keys and suppressed
// pointer addresses keep two runs of the same seed textually identical.
var dumper = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// logReporter writes trial diagnostics as structured logs.
type logReporter struct {
	log *slog.Logger
}

// NewLogReporter returns a Reporter logging to w.
func NewLogReporter(w io.Writer) Reporter {
	return &logReporter{log: slog.New(slog.NewTextHandler(w, nil))}
}

func (r *logReporter) Trial(run string, args Args) {
	r.log.Info("trial", "run", run, "args", dumper.Sdump(args))
}

func (r *logReporter) Counterexample(run string, args Args, err error) {
	r.log.Error("counterexample", "run", run, "error", err, "args", dumper.Sdump(args))
}

var (
	reporterOnce sync.Once
	reporter     Reporter
)

func defaultReporter() Reporter {
	reporterOnce.Do(func() {
		reporter = NewLogReporter(os.Stderr)
	})
	return reporter
}

const runIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ-_"

// runID returns a short random identifier for one wrapped-function
// invocation, so verbose trial logs and their counterexample can be
// correlated. Independent of the Env's seeded source on purpose: report
// tagging must not advance the trial random stream.
func runID() string {
	var b [12]byte
	if _, err := crand.Read(b[:]); err != nil {
		panic("qc: failed to read random bytes: " + err.Error())
	}
	for i, c := range b {
		b[i] = runIDAlphabet[c&63]
	}
	return string(b[:])
}
