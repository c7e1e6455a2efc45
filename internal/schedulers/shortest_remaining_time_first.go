package schedulers

import (
	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/requests"
	"cpu-scheduler-sim/internal/responses"
	"fmt"

	"go.uber.org/zap"
)

// ScheduleShortestRemainingTimeFirst steps one time unit at a time and always
// runs the ready process with the least remaining burst.
func ScheduleShortestRemainingTimeFirst(request *requests.ScheduleRequests, logger *zap.Logger) (responses.ScheduleResponse, error) {
	table, err := prepareProcessTable(request)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	logger.Debug("running srtf algorithm", zap.Int("processes", len(table)))

	cpu, err := simulate(table, &preemptivePolicy{table: table, less: shorterRemainingTime})
	if err != nil {
		return responses.ScheduleResponse{}, fmt.Errorf("srtf: %w", err)
	}

	// unit slices are merged so each span covers one uninterrupted run
	slices := core.Compact(cpu.Slices())
	proccessDetails := generateProcessDetails(table, turnAroundWaitingTime)
	response := generateResponse(ShortestRemainingTimeFirst, 0, slices, proccessDetails, cpu.Metric())
	logger.Info("srtf schedule completed",
		zap.String("run_id", response.RunId),
		zap.Int("slices", len(response.Slices)),
		zap.Float64("total_time", response.TotalTime))
	return response, nil
}

func shorterRemainingTime(a, b *core.Process) bool {
	return a.RemainingBurstTime < b.RemainingBurstTime
}
