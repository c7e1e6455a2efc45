package core

import (
	"cpu-scheduler-sim/internal/requests"
	"errors"
	"fmt"
	"math"
	"sort"

	"go.uber.org/multierr"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrEmptyProcessSet = fmt.Errorf("%w: process set is empty", ErrInvalidInput)
)

// ValidationError names the field and process that broke an input rule.
type ValidationError struct {
	Field     string
	ProcessId string
	Reason    string
}

func (e *ValidationError) Error() string {
	if e.ProcessId == "" {
		return fmt.Sprintf("%s: %s %s", ErrInvalidInput, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: pid %q: %s %s", ErrInvalidInput, e.ProcessId, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// ValidateJobs checks the process set before any simulation step and returns
// every violation it finds.
func ValidateJobs(jobs []requests.Job) error {
	if len(jobs) == 0 {
		return ErrEmptyProcessSet
	}

	var err error
	seen := make(map[string]struct{}, len(jobs))
	horizon := timelineHorizon{}
	for i, job := range jobs {
		if job.ProcessId == "" {
			err = multierr.Append(err, &ValidationError{
				Field:  "process_id",
				Reason: fmt.Sprintf("is empty for job #%d", i+1),
			})
		} else if _, ok := seen[job.ProcessId]; ok {
			err = multierr.Append(err, &ValidationError{Field: "process_id", ProcessId: job.ProcessId, Reason: "is duplicated"})
		}
		seen[job.ProcessId] = struct{}{}

		if job.BurstTime <= 0 {
			err = multierr.Append(err, &ValidationError{
				Field:     "burst_time",
				ProcessId: job.ProcessId,
				Reason:    fmt.Sprintf("must be positive, got %d", job.BurstTime),
			})
		}
		if job.ArrivalTime < 0 {
			err = multierr.Append(err, &ValidationError{
				Field:     "arrival_time",
				ProcessId: job.ProcessId,
				Reason:    fmt.Sprintf("must not be negative, got %d", job.ArrivalTime),
			})
		}
		horizon.add(job)
	}
	if horizon.overflows() {
		err = multierr.Append(err, &ValidationError{
			Field:  "timeline",
			Reason: fmt.Sprintf("would end past %d", math.MaxInt),
		})
	}
	return err
}

// timelineHorizon tracks the end of a work-conserving schedule of the jobs
// seen so far, which is the largest slice end any algorithm can emit.
type timelineHorizon struct {
	jobs []requests.Job
}

func (h *timelineHorizon) add(job requests.Job) {
	if job.BurstTime > 0 && job.ArrivalTime >= 0 {
		h.jobs = append(h.jobs, job)
	}
}

func (h *timelineHorizon) overflows() bool {
	sort.SliceStable(h.jobs, func(i, j int) bool { return h.jobs[i].ArrivalTime < h.jobs[j].ArrivalTime })
	end := 0
	for _, job := range h.jobs {
		end = max(end, job.ArrivalTime)
		if job.BurstTime > math.MaxInt-end {
			return true
		}
		end += job.BurstTime
	}
	return false
}
