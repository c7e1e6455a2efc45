package requests

// Job describes a process submitted for scheduling. Memory is carried for
// display only.
type Job struct {
	ProcessId   string `json:"process_id" yaml:"process_id"`
	ArrivalTime int    `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int    `json:"burst_time" yaml:"burst_time"`
	Priority    int    `json:"priority" yaml:"priority"`
	Memory      int    `json:"memory,omitempty" yaml:"memory,omitempty"`
}

type ScheduleRequests struct {
	Jobs []Job `json:"jobs" yaml:"jobs"`
	// TimeQuantum is only read by round robin. Zero means "use the configured default".
	TimeQuantum int `json:"time_quantum,omitempty" yaml:"time_quantum,omitempty"`
	// LevelsTimeQuantum is only read by the multilevel feedback queue.
	LevelsTimeQuantum []int `json:"levels_time_quantum,omitempty" yaml:"levels_time_quantum,omitempty"`
}
