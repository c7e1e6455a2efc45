package schedulers

import (
	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/requests"
	"cpu-scheduler-sim/internal/responses"
	"fmt"

	"go.uber.org/zap"
)

// SchedulePriority is preemptive static priority scheduling; a lower value is
// a higher priority.
func SchedulePriority(request *requests.ScheduleRequests, logger *zap.Logger) (responses.ScheduleResponse, error) {
	table, err := prepareProcessTable(request)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	logger.Debug("running priority algorithm", zap.Int("processes", len(table)))

	cpu, err := simulate(table, &preemptivePolicy{table: table, less: higherPriority})
	if err != nil {
		return responses.ScheduleResponse{}, fmt.Errorf("priority: %w", err)
	}

	slices := core.Compact(cpu.Slices())
	proccessDetails := generateProcessDetails(table, turnAroundWaitingTime)
	response := generateResponse(PreemptivePriority, 0, slices, proccessDetails, cpu.Metric())
	logger.Info("priority schedule completed",
		zap.String("run_id", response.RunId),
		zap.Int("slices", len(response.Slices)),
		zap.Float64("total_time", response.TotalTime))
	return response, nil
}

func higherPriority(a, b *core.Process) bool {
	return a.Job.Priority < b.Job.Priority
}
