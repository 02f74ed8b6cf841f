package bench

import (
	"fmt"
	"sort"
	"time"

	"github.com/cheggaaa/pb/v3"
	log "github.com/sirupsen/logrus"

	"github.com/sodalite-io/genutil/pkg/rolling"
)

// Func is a benchmark subject. Arguments are closure-captured: wrap the
// call site, shared or per-variant, in a func().
type Func func()

// Options controls a comparison run. The zero value is completed by
// defaults: 200 reps and a 1s pause.
type Options struct {
	// Reps is the number of sequential calls per variant, at least 3.
	Reps int

	// Pause is slept before each variant so one variant's cache and
	// thermal footprint does not bleed into the next one's timings.
	Pause time.Duration

	// Verbose logs a per-variant summary as results come in.
	Verbose bool

	// Progress renders a progress bar across a variant's reps.
	Progress bool
}

const (
	defaultReps  = 200
	defaultPause = time.Second
)

func (o Options) withDefaults() Options {
	if o.Reps == 0 {
		o.Reps = defaultReps
	}
	if o.Pause == 0 {
		o.Pause = defaultPause
	}
	return o
}

// Timer starts a wall-clock timer for a code block and returns the stop
// function, for use as `defer bench.Timer("rebuild")()`.
func Timer(name string) func() {
	start := time.Now()
	return func() {
		log.Infof("%s took %s", name, time.Since(start))
	}
}

// TimeN calls f n times sequentially and returns the elapsed wall-clock
// time of each call.
func TimeN(f Func, n int) []time.Duration {
	ts := make([]time.Duration, n)
	for i := 0; i < n; i++ {
		start := time.Now()
		f()
		ts[i] = time.Since(start)
	}
	return ts
}

// Compare benchmarks every variant under identical conditions: each one
// runs Reps times back to back, with a pause before it to keep variants
// from interfering with one another. Variants run in sorted label order.
//
// The report separates the mean over all calls from the mean excluding
// the first call, since a compiled variant's first call pays one-time
// compilation cost that says nothing about steady-state speed.
func Compare(variants map[string]Func, opts Options) (*Report, error) {
	opts = opts.withDefaults()
	if opts.Reps < 3 {
		return nil, errReps(opts.Reps)
	}
	if len(variants) == 0 {
		return nil, errNoVariants()
	}

	labels := make([]string, 0, len(variants))
	for label := range variants {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	report := &Report{}
	for _, label := range labels {
		time.Sleep(opts.Pause)

		f := variants[label]
		var ts []time.Duration
		if opts.Progress {
			bar := pb.Full.Start(opts.Reps)
			ts = make([]time.Duration, opts.Reps)
			for i := 0; i < opts.Reps; i++ {
				start := time.Now()
				f()
				ts[i] = time.Since(start)
				bar.Increment()
			}
			bar.Finish()
		} else {
			ts = TimeN(f, opts.Reps)
		}

		row := newRow(label, ts)
		if opts.Verbose {
			log.Infof("benchmarked %s - mean %s, mean excluding 1st run %s",
				label, row.Mean, row.MeanExclFirst)
		}
		report.Rows = append(report.Rows, row)
	}

	report.finalize()
	return report, nil
}

func errReps(n int) error {
	return &rolling.PreconditionError{Reason: fmt.Sprintf("reps must be >= 3, got %d", n)}
}

func errNoVariants() error {
	return &rolling.PreconditionError{Reason: "no variants to compare"}
}
