package schedulers

import (
	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/responses"
	"cpu-scheduler-sim/internal/util"

	"github.com/google/uuid"
)

// waitingTimeFunc derives a completed process's waiting time.
type waitingTimeFunc func(process *core.Process) float64

// accumulatedWaitingTime sums the gaps before each slice of the process.
func accumulatedWaitingTime(process *core.Process) float64 {
	return float64(process.TotalWaitTime)
}

// turnAroundWaitingTime is turnaround minus burst.
func turnAroundWaitingTime(process *core.Process) float64 {
	return float64(process.TurnAroundTime() - process.Job.BurstTime)
}

func generateProcessDetails(table []*core.Process, waitingTime waitingTimeFunc) []responses.ProcessResponse {
	proccessDetails := make([]responses.ProcessResponse, 0, len(table))
	for _, process := range table {
		proccessDetails = append(proccessDetails, responses.ProcessResponse{
			ProcessId:      process.Job.ProcessId,
			ArrivalTime:    process.Job.ArrivalTime,
			BurstTime:      process.Job.BurstTime,
			Priority:       process.Job.Priority,
			Memory:         process.Job.Memory,
			CompletionTime: process.CompletionTime,
			ResponseTime:   float64(process.ResponseTime()),
			TurnAroundTime: float64(process.TurnAroundTime()),
			WaitingTime:    waitingTime(process),
		})
	}
	return proccessDetails
}

func generateResponse(algorithm Algorithm, timeQuantum int, slices []core.ScheduleSlice, proccessDetails []responses.ProcessResponse, cpuMetric core.CpuMetric) responses.ScheduleResponse {
	averageWaitingTime, averageResponseTime, averageTurnAroundTime, averagesDefined := util.CalculateAverage(proccessDetails)
	throughput, throughputDefined := util.CalculateThroughput(len(proccessDetails), cpuMetric.TotalTime)

	var response = responses.ScheduleResponse{
		RunId:                 uuid.NewString(),
		Algorithm:             string(algorithm),
		TimeQuantum:           timeQuantum,
		TotalTime:             float64(cpuMetric.TotalTime),
		IdleTime:              float64(cpuMetric.IdleTime),
		CpuUtilization:        util.CalculateUtilization(cpuMetric.UtilizationTime, cpuMetric.TotalTime),
		CpuThroughput:         throughput,
		ThroughputUndefined:   !throughputDefined,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		AveragesUndefined:     !averagesDefined,
		Slices:                slices,
		Timeline:              core.BuildTimeline(slices),
		Details:               proccessDetails,
	}
	return response
}
