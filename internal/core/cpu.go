package core

import (
	"fmt"
	"math"
)

type CpuMetric struct {
	TotalTime       int `json:"total_time"`
	UtilizationTime int `json:"utilization_time"`
	IdleTime        int `json:"idle_time"`
}

// Cpu is a single simulated core. It owns the clock and the emitted slices of
// one run.
type Cpu struct {
	clock           int
	utilizationTime int
	slices          []ScheduleSlice
}

func NewCpu() *Cpu {
	return &Cpu{slices: make([]ScheduleSlice, 0)}
}

func (c *Cpu) Clock() int {
	return c.clock
}

// Execute runs the process for the given number of time units starting at the
// current clock, emits one slice and advances the clock.
func (c *Cpu) Execute(process *Process, units int) (ScheduleSlice, error) {
	if process.Completed {
		return ScheduleSlice{}, fmt.Errorf("pid %s: already completed", process.Job.ProcessId)
	}
	if process.Job.ArrivalTime > c.clock {
		return ScheduleSlice{}, fmt.Errorf("pid %s: dispatched at %d before arrival %d", process.Job.ProcessId, c.clock, process.Job.ArrivalTime)
	}
	if units <= 0 || units > process.RemainingBurstTime {
		return ScheduleSlice{}, fmt.Errorf("pid %s: cannot execute %d units with %d remaining", process.Job.ProcessId, units, process.RemainingBurstTime)
	}
	if c.clock > math.MaxInt-units {
		return ScheduleSlice{}, fmt.Errorf("pid %s: %d units at %d overflow the clock", process.Job.ProcessId, units, c.clock)
	}

	slice := ScheduleSlice{
		ProcessId:   process.Job.ProcessId,
		StartTime:   c.clock,
		EndTime:     c.clock + units,
		ArrivalTime: process.Job.ArrivalTime,
		BurstTime:   process.Job.BurstTime,
	}
	process.recordRun(slice.StartTime, slice.EndTime)
	c.slices = append(c.slices, slice)
	c.utilizationTime += units
	c.clock = slice.EndTime
	return slice, nil
}

// IdleUntil moves the clock forward without emitting a slice.
func (c *Cpu) IdleUntil(t int) {
	if t > c.clock {
		c.clock = t
	}
}

func (c *Cpu) Slices() []ScheduleSlice {
	out := make([]ScheduleSlice, len(c.slices))
	copy(out, c.slices)
	return out
}

// Metric measures the run up to the end of the last slice.
func (c *Cpu) Metric() CpuMetric {
	var total int
	if len(c.slices) > 0 {
		total = c.slices[len(c.slices)-1].EndTime
	}
	return CpuMetric{
		TotalTime:       total,
		UtilizationTime: c.utilizationTime,
		IdleTime:        total - c.utilizationTime,
	}
}
