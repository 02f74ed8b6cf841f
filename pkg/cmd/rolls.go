package cmd

import (
	"math/rand"
	"os"
	"runtime/pprof"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sodalite-io/genutil/pkg/bench"
	"github.com/sodalite-io/genutil/pkg/floats"
	"github.com/sodalite-io/genutil/pkg/rolling"
)

var rollsCmd = &cobra.Command{
	Use:   "rolls",
	Short: "validate and benchmark the strategy variants of a few window functions",

	RunE: func(cmd *cobra.Command, args []string) error {
		window, err := cmd.Flags().GetInt("window")
		if err != nil {
			return err
		}
		reps, err := cmd.Flags().GetInt("reps")
		if err != nil {
			return err
		}
		pause, err := cmd.Flags().GetDuration("pause")
		if err != nil {
			return err
		}
		size, err := cmd.Flags().GetInt("size")
		if err != nil {
			return err
		}
		seed, err := cmd.Flags().GetInt64("seed")
		if err != nil {
			return err
		}
		progress, err := cmd.Flags().GetBool("progress")
		if err != nil {
			return err
		}
		cpuProfile, err := cmd.Flags().GetString("cpuprofile")
		if err != nil {
			return err
		}

		if cpuProfile != "" {
			f, err := os.Create(cpuProfile)
			if err != nil {
				return errors.Wrap(err, "can not create the cpu profile file")
			}
			defer f.Close()
			if err := pprof.StartCPUProfile(f); err != nil {
				return errors.Wrap(err, "can not start the cpu profile")
			}
			defer pprof.StopCPUProfile()
		}

		rnd := rand.New(rand.NewSource(seed))
		sample := make(floats.Slice, size)
		level := 100.0
		for i := range sample {
			level += rnd.NormFloat64()
			sample[i] = level
		}

		impls := map[string]bench.RollImpl{
			"sum": {
				Fn:     func(xs []float64) float64 { return floats.Slice(xs).Sum() },
				Kernel: &rolling.SumKernel[float64, float64]{},
			},
			"mean": {
				Fn:     func(xs []float64) float64 { return floats.Slice(xs).Mean() },
				Kernel: &rolling.MeanKernel[float64, float64]{},
			},
			// No O(1) eviction for a windowed max, so no kernel here.
			"max": {
				Fn: func(xs []float64) float64 { return floats.Slice(xs).Max() },
			},
		}

		log.Infof("benchmarking %d variants: window=%d reps=%d size=%d", len(impls), window, reps, size)

		report, _, _, err := bench.CompareRolls(impls, sample, window, bench.Options{
			Reps:     reps,
			Pause:    pause,
			Verbose:  true,
			Progress: progress,
		})
		if err != nil {
			return errors.Wrap(err, "rolls benchmark error")
		}

		report.Render(os.Stdout)
		return nil
	},
}

func init() {
	rollsCmd.Flags().Int("window", 16, "window size")
	rollsCmd.Flags().Int("reps", 200, "repetitions per variant")
	rollsCmd.Flags().Duration("pause", time.Second, "pause before each variant")
	rollsCmd.Flags().Int("size", 100_000, "sample series length")
	rollsCmd.Flags().Int64("seed", 1, "sample random seed")
	rollsCmd.Flags().Bool("progress", false, "render a progress bar per variant")
	rollsCmd.Flags().String("cpuprofile", "", "write a cpu profile to the given file")
	RootCmd.AddCommand(rollsCmd)
}
