package schedulers

import (
	"cpu-scheduler-sim/internal/requests"
	"cpu-scheduler-sim/internal/responses"
	"fmt"

	"go.uber.org/zap"
)

// ScheduleFirstComeFirstServe runs every job to completion in arrival order.
// Equal arrival times keep submission order.
func ScheduleFirstComeFirstServe(request *requests.ScheduleRequests, logger *zap.Logger) (responses.ScheduleResponse, error) {
	table, err := prepareProcessTable(request)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	logger.Debug("running fcfs algorithm", zap.Int("processes", len(table)))

	cpu, err := simulate(table, &arrivalOrderPolicy{table: table})
	if err != nil {
		return responses.ScheduleResponse{}, fmt.Errorf("fcfs: %w", err)
	}

	proccessDetails := generateProcessDetails(table, accumulatedWaitingTime)
	response := generateResponse(FirstComeFirstServe, 0, cpu.Slices(), proccessDetails, cpu.Metric())
	logger.Info("fcfs schedule completed",
		zap.String("run_id", response.RunId),
		zap.Int("slices", len(response.Slices)),
		zap.Float64("total_time", response.TotalTime))
	return response, nil
}
