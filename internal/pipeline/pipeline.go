// Package pipeline is the driver (component F of the design): for each
// requested hand size it builds the FSM once, validates it, then for each
// requested memory layout it plans an ordering, flattens, writes, and
// validates the resulting file — removing it on failure rather than
// leaving a half-trustworthy artifact behind.
package pipeline

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"pokerphe/internal/flatten"
	"pokerphe/internal/fsm"
	"pokerphe/internal/layout"
	"pokerphe/internal/oracle"
	"pokerphe/internal/present"
	"pokerphe/internal/table"
	"pokerphe/internal/validate"
)

// LayoutJob names one output file and the ordering policy that produces
// it.
type LayoutJob struct {
	Name   string
	Path   string
	Policy layout.Policy
}

// SizeJob is everything needed to build one hand size's FSM and every
// layout derived from it.
type SizeJob struct {
	Size    uint8
	Oracle  oracle.Fn
	Layouts []LayoutJob
}

// ArtifactResult records what happened to one (hand size, layout) output.
type ArtifactResult struct {
	Job      LayoutJob
	States   int
	Bytes    int64
	Duration time.Duration
	Failed   bool
}

// Run executes every SizeJob in order: build → validate FSM → for each
// layout, plan → flatten → write → validate flat table (deleting the file
// on failure). It returns one ArtifactResult per layout attempted across
// every job. A non-nil error is fatal to the whole run: either a hand
// size's FSM itself failed to build or validate, or a layout's table
// could not be written to disk. A flat table that writes fine but fails
// its own validation is not fatal — that's recorded as a Failed result
// and the run moves on to the next layout.
func Run(jobs []SizeJob) ([]ArtifactResult, error) {
	var results []ArtifactResult

	for _, job := range jobs {
		present.Section(fmt.Sprintf("Building FSM for hand size %d", job.Size))

		start := time.Now()
		machine, _, err := fsm.Build(job.Oracle, job.Size)
		if err != nil {
			return results, fmt.Errorf("pipeline: building hand size %d: %w", job.Size, err)
		}
		fmt.Printf("  %s (took %s)\n", present.Good("done"), time.Since(start))
		fmt.Printf("  states: %d\n", len(machine))

		present.Sub("Validating FSM")
		if err := validate.FSM(machine, job.Oracle, job.Size); err != nil {
			return results, fmt.Errorf("pipeline: FSM validation for hand size %d: %w", job.Size, err)
		}
		fmt.Printf("  %s\n", present.Good("done"))

		for _, layoutJob := range job.Layouts {
			result, err := runLayout(machine, job.Size, job.Oracle, layoutJob)
			if err != nil {
				return results, fmt.Errorf("pipeline: writing %s: %w", layoutJob.Name, err)
			}
			results = append(results, result)
		}
	}

	return results, nil
}

// runLayout plans, flattens, and writes one layout's table, then reopens
// and validates it. A failure to flatten or to pass validation is
// recoverable: it's reported as a Failed result so the caller can move on
// to the next layout. A failure to write the file is not recoverable and
// is returned as an error, since there's no well-formed artifact to fall
// back to reporting on.
func runLayout(machine fsm.FSM, size uint8, eval oracle.Fn, job LayoutJob) (ArtifactResult, error) {
	present.Sub(fmt.Sprintf("Laying out %s", job.Name))
	start := time.Now()

	order := job.Policy(machine, size)
	flat, err := flatten.Flatten(machine, order, size)
	if err != nil {
		fmt.Printf("  %s: %v\n", present.Bad("failed to flatten"), err)
		return ArtifactResult{Job: job, Failed: true}, nil
	}

	if err := flatten.Write(job.Path, flat); err != nil {
		fmt.Printf("  %s: %v\n", present.Bad("failed to write"), err)
		return ArtifactResult{}, err
	}

	numBytes := int64(len(flat)) * 4
	fmt.Printf("  wrote %s (%s)\n", job.Path, humanize.Bytes(uint64(numBytes)))

	tbl, err := table.Open(job.Path)
	if err != nil {
		fmt.Printf("  %s: %v\n", present.Bad("failed to reopen for validation"), err)
		removeBestEffort(job.Path)
		return ArtifactResult{Job: job, Failed: true}, nil
	}
	if err := validate.FlatTable(tbl, eval, size); err != nil {
		fmt.Printf("  %s: %v\n", present.Bad("validation failed"), err)
		removeBestEffort(job.Path)
		return ArtifactResult{Job: job, Failed: true}, nil
	}

	fmt.Printf("  %s (took %s)\n", present.Good("validated"), time.Since(start))
	return ArtifactResult{
		Job:      job,
		States:   len(machine),
		Bytes:    numBytes,
		Duration: time.Since(start),
	}, nil
}

// removeBestEffort deletes path, ignoring errors: there's no atomicity
// guarantee between writing a table and validating it, and cleanup isn't
// itself allowed to fail the run.
func removeBestEffort(path string) {
	_ = os.Remove(path)
}
