package core

type ScheduleSlice struct {
	ProcessId   string `json:"process_id"`
	StartTime   int    `json:"start_time"`
	EndTime     int    `json:"end_time"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
}

func (s ScheduleSlice) Duration() int {
	return s.EndTime - s.StartTime
}

// TimelineSpan is a compacted slice or an idle gap, ready for rendering.
type TimelineSpan struct {
	ProcessId string `json:"process_id,omitempty"`
	StartTime int    `json:"start_time"`
	EndTime   int    `json:"end_time"`
	Idle      bool   `json:"idle"`
}

func (s TimelineSpan) Duration() int {
	return s.EndTime - s.StartTime
}

// Compact merges consecutive slices of the same process whose bounds touch.
// Gaps are left as they are. Compact(Compact(s)) == Compact(s).
func Compact(slices []ScheduleSlice) []ScheduleSlice {
	merged := make([]ScheduleSlice, 0, len(slices))
	for _, current := range slices {
		if n := len(merged); n > 0 {
			previous := &merged[n-1]
			if previous.ProcessId == current.ProcessId && previous.EndTime == current.StartTime {
				previous.EndTime = current.EndTime
				continue
			}
		}
		merged = append(merged, current)
	}
	return merged
}

// BuildTimeline compacts the slices and makes the idle gaps between them
// explicit, starting from time zero.
func BuildTimeline(slices []ScheduleSlice) []TimelineSpan {
	compacted := Compact(slices)
	timeline := make([]TimelineSpan, 0, len(compacted))
	previousEndTime := 0
	for _, s := range compacted {
		if s.StartTime > previousEndTime {
			timeline = append(timeline, TimelineSpan{
				StartTime: previousEndTime,
				EndTime:   s.StartTime,
				Idle:      true,
			})
		}
		timeline = append(timeline, TimelineSpan{
			ProcessId: s.ProcessId,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		})
		previousEndTime = s.EndTime
	}
	return timeline
}
