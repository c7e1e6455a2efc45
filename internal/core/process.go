package core

import (
	"cpu-scheduler-sim/internal/requests"
	"sort"
)

// Process is the per-run state of one job. A fresh table is built for every
// run so nothing leaks between runs.
type Process struct {
	Job                requests.Job
	RemainingBurstTime int
	Completed          bool
	Started            bool
	FirstStartTime     int
	CompletionTime     int
	LastEndTime        int
	TotalWaitTime      int
}

// NewProcessTable copies the jobs into run state, stable sorted by arrival time
// so that equal arrivals keep their submission order.
func NewProcessTable(jobs []requests.Job) []*Process {
	table := make([]*Process, 0, len(jobs))
	for _, job := range jobs {
		table = append(table, &Process{
			Job:                job,
			RemainingBurstTime: job.BurstTime,
		})
	}
	sort.SliceStable(table, func(i, j int) bool {
		return table[i].Job.ArrivalTime < table[j].Job.ArrivalTime
	})
	return table
}

func (p *Process) Arrived(now int) bool {
	return p.Job.ArrivalTime <= now
}

// Ready reports whether the process can be picked at time now.
func (p *Process) Ready(now int) bool {
	return p.Arrived(now) && !p.Completed
}

func (p *Process) TurnAroundTime() int {
	return p.CompletionTime - p.Job.ArrivalTime
}

func (p *Process) ResponseTime() int {
	return p.FirstStartTime - p.Job.ArrivalTime
}

// recordRun books a slice [start, end) against the process. Waiting time is
// measured from arrival before the first slice and from the previous slice's
// end afterwards.
func (p *Process) recordRun(start, end int) {
	reference := p.LastEndTime
	if !p.Started {
		p.Started = true
		p.FirstStartTime = start
		reference = p.Job.ArrivalTime
	}
	p.TotalWaitTime += start - reference
	p.LastEndTime = end
	p.RemainingBurstTime -= end - start
	if p.RemainingBurstTime == 0 {
		p.Completed = true
		p.CompletionTime = end
	}
}
