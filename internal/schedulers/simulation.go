package schedulers

import (
	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/requests"
	"fmt"
)

// selectionPolicy decides which process gets the cpu next and for how long.
// The simulate loop is shared by every algorithm, so non-overlap and burst
// coverage hold for all of them.
type selectionPolicy interface {
	// next returns the process to dispatch at now and the units to run it,
	// or nil when nothing is ready.
	next(now int) (*core.Process, int)
	// idleUntil returns the time to resume at when next found nothing.
	idleUntil(now int) int
	// dispatched is called once a slice ends at now.
	dispatched(process *core.Process, now int)
}

func simulate(table []*core.Process, policy selectionPolicy) (*core.Cpu, error) {
	cpu := core.NewCpu()
	remaining := len(table)
	for remaining > 0 {
		process, units := policy.next(cpu.Clock())
		if process == nil {
			resumeAt := policy.idleUntil(cpu.Clock())
			if resumeAt <= cpu.Clock() {
				return nil, fmt.Errorf("simulation stalled at %d with %d processes left", cpu.Clock(), remaining)
			}
			cpu.IdleUntil(resumeAt)
			continue
		}
		if _, err := cpu.Execute(process, units); err != nil {
			return nil, err
		}
		policy.dispatched(process, cpu.Clock())
		if process.Completed {
			remaining--
		}
	}
	return cpu, nil
}

// prepareProcessTable validates the request and derives a fresh run table.
func prepareProcessTable(request *requests.ScheduleRequests) ([]*core.Process, error) {
	if request == nil {
		return nil, core.ErrEmptyProcessSet
	}
	if err := core.ValidateJobs(request.Jobs); err != nil {
		return nil, err
	}
	return core.NewProcessTable(request.Jobs), nil
}

// arrivalOrderPolicy runs each process to completion in arrival order.
type arrivalOrderPolicy struct {
	table    []*core.Process
	position int
}

func (p *arrivalOrderPolicy) next(now int) (*core.Process, int) {
	if p.position >= len(p.table) {
		return nil, 0
	}
	process := p.table[p.position]
	if !process.Arrived(now) {
		return nil, 0
	}
	return process, process.RemainingBurstTime
}

func (p *arrivalOrderPolicy) idleUntil(now int) int {
	if p.position >= len(p.table) {
		return now
	}
	return p.table[p.position].Job.ArrivalTime
}

func (p *arrivalOrderPolicy) dispatched(*core.Process, int) {
	p.position++
}

// preemptivePolicy re-decides every time unit. Among ready processes the one
// for which less holds against all others wins; ties go to the earliest in
// arrival order. Idle time is skipped up to the next arrival.
type preemptivePolicy struct {
	table []*core.Process
	less  func(a, b *core.Process) bool
}

func (p *preemptivePolicy) next(now int) (*core.Process, int) {
	var selected *core.Process
	for _, process := range p.table {
		if !process.Ready(now) {
			continue
		}
		if selected == nil || p.less(process, selected) {
			selected = process
		}
	}
	if selected == nil {
		return nil, 0
	}
	return selected, 1
}

func (p *preemptivePolicy) idleUntil(now int) int {
	for _, process := range p.table {
		if !process.Completed && !process.Arrived(now) {
			return process.Job.ArrivalTime
		}
	}
	return now
}

func (p *preemptivePolicy) dispatched(*core.Process, int) {}

// roundRobinPolicy keeps arrivals in a pending list and a fifo ready queue.
type roundRobinPolicy struct {
	pending     []*core.Process
	readyQueue  []*core.Process
	timeQuantum int
}

func newRoundRobinPolicy(table []*core.Process, timeQuantum int) *roundRobinPolicy {
	pending := make([]*core.Process, len(table))
	copy(pending, table)
	return &roundRobinPolicy{
		pending:     pending,
		readyQueue:  make([]*core.Process, 0, len(table)),
		timeQuantum: timeQuantum,
	}
}

func (p *roundRobinPolicy) admit(now int) {
	for len(p.pending) > 0 && p.pending[0].Arrived(now) {
		p.readyQueue = append(p.readyQueue, p.pending[0])
		p.pending = p.pending[1:]
	}
}

func (p *roundRobinPolicy) next(now int) (*core.Process, int) {
	p.admit(now)
	if len(p.readyQueue) == 0 {
		return nil, 0
	}
	process := p.readyQueue[0]
	p.readyQueue = p.readyQueue[1:]
	return process, min(process.RemainingBurstTime, p.timeQuantum)
}

func (p *roundRobinPolicy) idleUntil(now int) int {
	if len(p.pending) == 0 {
		return now
	}
	return p.pending[0].Job.ArrivalTime
}

// dispatched admits whatever arrived during the slice before the preempted
// process goes back to the tail of the queue.
func (p *roundRobinPolicy) dispatched(process *core.Process, now int) {
	p.admit(now)
	if !process.Completed {
		p.readyQueue = append(p.readyQueue, process)
	}
}
