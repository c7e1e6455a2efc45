package schedulers

import (
	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/requests"
	"cpu-scheduler-sim/internal/responses"
	"fmt"

	"go.uber.org/zap"
)

// ScheduleMultilevelFeedbackQueue runs arrivals on the first level and demotes
// a process one level each time it uses up its level's quantum. The last level
// is round robin with its own quantum. A running slice is never cut short by a
// higher level arrival; levels are checked when the slice ends.
func ScheduleMultilevelFeedbackQueue(request *requests.ScheduleRequests, levelsTimeQuantum []int, logger *zap.Logger) (responses.ScheduleResponse, error) {
	if err := core.ValidateLevelsTimeQuantum(levelsTimeQuantum); err != nil {
		return responses.ScheduleResponse{}, err
	}
	table, err := prepareProcessTable(request)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	logger.Debug("mlfq algorithm", zap.Ints("levels_time_quantum", levelsTimeQuantum), zap.Int("processes", len(table)))

	cpu, err := simulate(table, newMultilevelFeedbackQueuePolicy(table, levelsTimeQuantum))
	if err != nil {
		return responses.ScheduleResponse{}, fmt.Errorf("mlfq: %w", err)
	}

	proccessDetails := generateProcessDetails(table, accumulatedWaitingTime)
	response := generateResponse(MultilevelFeedbackQueue, 0, cpu.Slices(), proccessDetails, cpu.Metric())
	response.LevelsTimeQuantum = append([]int(nil), levelsTimeQuantum...)
	logger.Info("mlfq schedule completed",
		zap.String("run_id", response.RunId),
		zap.Int("slices", len(response.Slices)),
		zap.Float64("total_time", response.TotalTime))
	return response, nil
}

type multilevelFeedbackQueuePolicy struct {
	pending           []*core.Process
	levels            [][]*core.Process
	levelOf           map[*core.Process]int
	levelsTimeQuantum []int
}

func newMultilevelFeedbackQueuePolicy(table []*core.Process, levelsTimeQuantum []int) *multilevelFeedbackQueuePolicy {
	pending := make([]*core.Process, len(table))
	copy(pending, table)
	return &multilevelFeedbackQueuePolicy{
		pending:           pending,
		levels:            make([][]*core.Process, len(levelsTimeQuantum)),
		levelOf:           make(map[*core.Process]int, len(table)),
		levelsTimeQuantum: levelsTimeQuantum,
	}
}

func (p *multilevelFeedbackQueuePolicy) admit(now int) {
	for len(p.pending) > 0 && p.pending[0].Arrived(now) {
		p.levels[0] = append(p.levels[0], p.pending[0])
		p.levelOf[p.pending[0]] = 0
		p.pending = p.pending[1:]
	}
}

func (p *multilevelFeedbackQueuePolicy) next(now int) (*core.Process, int) {
	p.admit(now)
	for level, queue := range p.levels {
		if len(queue) == 0 {
			continue
		}
		process := queue[0]
		p.levels[level] = queue[1:]
		return process, min(process.RemainingBurstTime, p.levelsTimeQuantum[level])
	}
	return nil, 0
}

func (p *multilevelFeedbackQueuePolicy) idleUntil(now int) int {
	if len(p.pending) == 0 {
		return now
	}
	return p.pending[0].Job.ArrivalTime
}

func (p *multilevelFeedbackQueuePolicy) dispatched(process *core.Process, now int) {
	p.admit(now)
	if process.Completed {
		return
	}
	level := min(p.levelOf[process]+1, len(p.levels)-1)
	p.levelOf[process] = level
	p.levels[level] = append(p.levels[level], process)
}
