package generator

import (
	"cpu-scheduler-sim/internal/requests"
	"fmt"
	"math/rand/v2"
)

const (
	minBurstTime = 1
	maxBurstTime = 10
	minMemory    = 1
	maxMemory    = 100
	minPriority  = 1
	maxPriority  = 10
)

// Generator produces random jobs. Each job arrives one unit after the
// previous one and is labelled P1, P2, ...
type Generator struct {
	rng *rand.Rand
}

func New(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Next returns the job that follows existing.
func (g *Generator) Next(existing []requests.Job) requests.Job {
	n := len(existing)
	return requests.Job{
		ProcessId:   fmt.Sprintf("P%d", n+1),
		ArrivalTime: n,
		BurstTime:   g.intBetween(minBurstTime, maxBurstTime),
		Memory:      g.intBetween(minMemory, maxMemory),
		Priority:    g.intBetween(minPriority, maxPriority),
	}
}

func (g *Generator) Generate(count int) []requests.Job {
	jobs := make([]requests.Job, 0, count)
	for i := 0; i < count; i++ {
		jobs = append(jobs, g.Next(jobs))
	}
	return jobs
}

func (g *Generator) intBetween(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}
