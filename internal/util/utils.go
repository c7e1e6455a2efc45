package util

import "cpu-scheduler-sim/internal/responses"

// CalculateAverage averages the per-process times. defined is false when there
// is nothing to average, in which case every average is zero.
func CalculateAverage(proccessDetails []responses.ProcessResponse) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64, defined bool) {
	if len(proccessDetails) == 0 {
		return 0, 0, 0, false
	}

	var waitingTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64

	for _, proccess := range proccessDetails {
		waitingTimeSum += proccess.WaitingTime
		responseTimeSum += proccess.ResponseTime
		turnAroundTimeSum += proccess.TurnAroundTime
	}

	proccessCount := float64(len(proccessDetails))

	averageWaitingTime = waitingTimeSum / proccessCount
	averageResponseTime = responseTimeSum / proccessCount
	averageTurnAroundTime = turnAroundTimeSum / proccessCount
	return averageWaitingTime, averageResponseTime, averageTurnAroundTime, true
}

// CalculateThroughput is completed processes per unit of simulated time.
func CalculateThroughput(completedCount, totalTime int) (float64, bool) {
	if completedCount <= 0 || totalTime <= 0 {
		return 0, false
	}
	return float64(completedCount) / float64(totalTime), true
}

func CalculateUtilization(utilizationTime, totalTime int) float64 {
	if totalTime <= 0 {
		return 0
	}
	return float64(utilizationTime) / float64(totalTime)
}
