package schedulers

import (
	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/requests"
	"errors"
	"reflect"
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestFirstComeFirstServe(t *testing.T) {
	request := &requests.ScheduleRequests{Jobs: []requests.Job{job("P1", 0, 4), job("P2", 1, 2)}}

	response, err := ScheduleFirstComeFirstServe(request, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("fcfs failed: %v", err)
	}
	assertSpans(t, response.Slices, []span{{"P1", 0, 4}, {"P2", 4, 6}})
	assertFloat(t, "average waiting time", response.AverageWaitingTime, 1.5)
	assertFloat(t, "average turnaround time", response.AverageTurnAroundTime, 4.5)
	assertFloat(t, "throughput", response.CpuThroughput, 2.0/6.0)
	assertFloat(t, "utilization", response.CpuUtilization, 1)
	if response.Algorithm != string(FirstComeFirstServe) || response.RunId == "" {
		t.Errorf("unexpected header: algorithm %q run id %q", response.Algorithm, response.RunId)
	}
}

func TestFirstComeFirstServeIdleGap(t *testing.T) {
	request := &requests.ScheduleRequests{Jobs: []requests.Job{job("P1", 0, 2), job("P2", 5, 1)}}

	response, err := ScheduleFirstComeFirstServe(request, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("fcfs failed: %v", err)
	}
	assertSpans(t, response.Slices, []span{{"P1", 0, 2}, {"P2", 5, 6}})
	assertFloat(t, "idle time", response.IdleTime, 3)
	assertFloat(t, "total time", response.TotalTime, 6)
	assertFloat(t, "utilization", response.CpuUtilization, 0.5)
	assertFloat(t, "average waiting time", response.AverageWaitingTime, 0)

	want := []core.TimelineSpan{
		{ProcessId: "P1", StartTime: 0, EndTime: 2},
		{StartTime: 2, EndTime: 5, Idle: true},
		{ProcessId: "P2", StartTime: 5, EndTime: 6},
	}
	if !reflect.DeepEqual(response.Timeline, want) {
		t.Fatalf("timeline = %v, want %v", response.Timeline, want)
	}
}

func TestFirstComeFirstServeKeepsSubmissionOrderOnTies(t *testing.T) {
	request := &requests.ScheduleRequests{Jobs: []requests.Job{job("A", 3, 1), job("B", 0, 2), job("C", 0, 1)}}

	response, err := ScheduleFirstComeFirstServe(request, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("fcfs failed: %v", err)
	}
	assertSpans(t, response.Slices, []span{{"B", 0, 2}, {"C", 2, 3}, {"A", 3, 4}})
}

func TestFirstComeFirstServeDoesNotMutateInput(t *testing.T) {
	jobs := []requests.Job{job("A", 3, 1), job("B", 0, 2)}
	original := make([]requests.Job, len(jobs))
	copy(original, jobs)

	if _, err := ScheduleFirstComeFirstServe(&requests.ScheduleRequests{Jobs: jobs}, zaptest.NewLogger(t)); err != nil {
		t.Fatalf("fcfs failed: %v", err)
	}
	if !reflect.DeepEqual(jobs, original) {
		t.Fatalf("jobs were modified: %v, want %v", jobs, original)
	}
}

func TestFirstComeFirstServeRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		request *requests.ScheduleRequests
	}{
		{"nil request", nil},
		{"empty set", &requests.ScheduleRequests{}},
		{"zero burst", &requests.ScheduleRequests{Jobs: []requests.Job{job("P1", 0, 0)}}},
		{"duplicate pid", &requests.ScheduleRequests{Jobs: []requests.Job{job("P1", 0, 1), job("P1", 1, 1)}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ScheduleFirstComeFirstServe(tt.request, zaptest.NewLogger(t))
			if !errors.Is(err, core.ErrInvalidInput) {
				t.Fatalf("expected invalid input error, got %v", err)
			}
		})
	}
}
