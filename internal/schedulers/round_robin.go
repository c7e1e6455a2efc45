package schedulers

import (
	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/requests"
	"cpu-scheduler-sim/internal/responses"
	"fmt"

	"go.uber.org/zap"
)

// ScheduleRoundRobin gives each ready process at most timeQuantum units per
// turn. Slices are not merged, so none is longer than the quantum.
func ScheduleRoundRobin(request *requests.ScheduleRequests, timeQuantum int, logger *zap.Logger) (responses.ScheduleResponse, error) {
	if err := core.ValidateTimeQuantum(timeQuantum); err != nil {
		return responses.ScheduleResponse{}, err
	}
	table, err := prepareProcessTable(request)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	logger.Debug("running roundRobin algorithm",
		zap.Int("processes", len(table)),
		zap.Int("time_quantum", timeQuantum))

	cpu, err := simulate(table, newRoundRobinPolicy(table, timeQuantum))
	if err != nil {
		return responses.ScheduleResponse{}, fmt.Errorf("round robin: %w", err)
	}

	proccessDetails := generateProcessDetails(table, accumulatedWaitingTime)
	response := generateResponse(RoundRobin, timeQuantum, cpu.Slices(), proccessDetails, cpu.Metric())
	logger.Info("roundRobin schedule completed",
		zap.String("run_id", response.RunId),
		zap.Int("slices", len(response.Slices)),
		zap.Float64("total_time", response.TotalTime))
	return response, nil
}
