package schedulers

import (
	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/requests"
	"errors"
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestRoundRobin(t *testing.T) {
	request := &requests.ScheduleRequests{Jobs: []requests.Job{
		job("P1", 0, 5),
		job("P2", 1, 3),
		job("P3", 2, 1),
		job("P4", 3, 2),
	}}

	response, err := ScheduleRoundRobin(request, 2, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("round robin failed: %v", err)
	}
	assertSpans(t, response.Slices, []span{
		{"P1", 0, 2},
		{"P2", 2, 4},
		{"P3", 4, 5},
		{"P1", 5, 7},
		{"P4", 7, 9},
		{"P2", 9, 10},
		{"P1", 10, 11},
	})
	assertFloat(t, "average waiting time", response.AverageWaitingTime, 4.5)
	assertFloat(t, "average turnaround time", response.AverageTurnAroundTime, 7.25)
	assertFloat(t, "throughput", response.CpuThroughput, 4.0/11.0)
	if response.TimeQuantum != 2 {
		t.Errorf("time quantum = %d, want 2", response.TimeQuantum)
	}
}

func TestRoundRobinArrivalJoinsAheadOfPreempted(t *testing.T) {
	request := &requests.ScheduleRequests{Jobs: []requests.Job{job("P1", 0, 4), job("P2", 2, 2)}}

	response, err := ScheduleRoundRobin(request, 2, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("round robin failed: %v", err)
	}
	assertSpans(t, response.Slices, []span{{"P1", 0, 2}, {"P2", 2, 4}, {"P1", 4, 6}})
}

func TestRoundRobinShortBurstSingleSlice(t *testing.T) {
	response, err := ScheduleRoundRobin(&requests.ScheduleRequests{Jobs: []requests.Job{job("P1", 0, 3)}}, 5, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("round robin failed: %v", err)
	}
	assertSpans(t, response.Slices, []span{{"P1", 0, 3}})
}

func TestRoundRobinKeepsQuantumSlices(t *testing.T) {
	response, err := ScheduleRoundRobin(&requests.ScheduleRequests{Jobs: []requests.Job{job("P1", 0, 5)}}, 2, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("round robin failed: %v", err)
	}
	assertSpans(t, response.Slices, []span{{"P1", 0, 2}, {"P1", 2, 4}, {"P1", 4, 5}})
	if len(response.Timeline) != 1 || response.Timeline[0].Duration() != 5 {
		t.Fatalf("timeline should merge the run into one span, got %v", response.Timeline)
	}
	assertFloat(t, "average waiting time", response.AverageWaitingTime, 0)
}

func TestRoundRobinIdleJump(t *testing.T) {
	request := &requests.ScheduleRequests{Jobs: []requests.Job{job("P1", 0, 1), job("P2", 5, 2)}}

	response, err := ScheduleRoundRobin(request, 2, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("round robin failed: %v", err)
	}
	assertSpans(t, response.Slices, []span{{"P1", 0, 1}, {"P2", 5, 7}})
	assertFloat(t, "throughput", response.CpuThroughput, 2.0/7.0)
	assertFloat(t, "idle time", response.IdleTime, 4)
}

func TestRoundRobinRejectsQuantum(t *testing.T) {
	request := &requests.ScheduleRequests{Jobs: []requests.Job{job("P1", 0, 1)}}
	for _, quantum := range []int{0, -3} {
		_, err := ScheduleRoundRobin(request, quantum, zaptest.NewLogger(t))
		var validationErr *core.ValidationError
		if !errors.As(err, &validationErr) || validationErr.Field != "time_quantum" {
			t.Fatalf("quantum %d: expected time_quantum validation error, got %v", quantum, err)
		}
	}
}
