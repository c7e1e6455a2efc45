package responses

import "cpu-scheduler-sim/internal/core"

type ProcessResponse struct {
	ProcessId      string  `json:"process_id"`
	ArrivalTime    int     `json:"arrival_time"`
	BurstTime      int     `json:"burst_time"`
	Priority       int     `json:"priority"`
	Memory         int     `json:"memory,omitempty"`
	CompletionTime int     `json:"completion_time"`
	ResponseTime   float64 `json:"response_time"`
	TurnAroundTime float64 `json:"turn_around_time"`
	WaitingTime    float64 `json:"waiting_time"`
}

type ScheduleResponse struct {
	RunId                 string               `json:"run_id"`
	Algorithm             string               `json:"algorithm"`
	TimeQuantum           int                  `json:"time_quantum,omitempty"`
	LevelsTimeQuantum     []int                `json:"levels_time_quantum,omitempty"`
	TotalTime             float64              `json:"total_time"`
	IdleTime              float64              `json:"idle_time"`
	AverageWaitingTime    float64              `json:"average_waiting_time"`
	AverageResponseTime   float64              `json:"average_response_time"`
	AverageTurnAroundTime float64              `json:"average_turn_around_time"`
	AveragesUndefined     bool                 `json:"averages_undefined,omitempty"`
	CpuUtilization        float64              `json:"cpu_utilization"`
	CpuThroughput         float64              `json:"cpu_throughput"`
	ThroughputUndefined   bool                 `json:"throughput_undefined,omitempty"`
	Slices                []core.ScheduleSlice `json:"slices"`
	Timeline              []core.TimelineSpan  `json:"timeline"`
	Details               []ProcessResponse    `json:"details"`
}
