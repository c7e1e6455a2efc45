package schedulers

import (
	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/requests"
	"math"
	"testing"
)

type span struct {
	pid        string
	start, end int
}

func job(pid string, arrival, burst int) requests.Job {
	return requests.Job{ProcessId: pid, ArrivalTime: arrival, BurstTime: burst}
}

func priorityJob(pid string, arrival, burst, priority int) requests.Job {
	return requests.Job{ProcessId: pid, ArrivalTime: arrival, BurstTime: burst, Priority: priority}
}

func assertSpans(t *testing.T, got []core.ScheduleSlice, want []span) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d slices %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i].ProcessId != want[i].pid || got[i].StartTime != want[i].start || got[i].EndTime != want[i].end {
			t.Fatalf("slice %d = %s[%d,%d), want %s[%d,%d)", i,
				got[i].ProcessId, got[i].StartTime, got[i].EndTime,
				want[i].pid, want[i].start, want[i].end)
		}
	}
}

func assertFloat(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}
