package schedulers

import (
	"cpu-scheduler-sim/internal/requests"
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestPriorityPreempts(t *testing.T) {
	request := &requests.ScheduleRequests{Jobs: []requests.Job{
		priorityJob("P1", 0, 4, 3),
		priorityJob("P2", 1, 3, 1),
		priorityJob("P3", 2, 2, 2),
	}}

	response, err := SchedulePriority(request, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("priority failed: %v", err)
	}
	assertSpans(t, response.Slices, []span{{"P1", 0, 1}, {"P2", 1, 4}, {"P3", 4, 6}, {"P1", 6, 9}})
	assertFloat(t, "average waiting time", response.AverageWaitingTime, 7.0/3.0)
	assertFloat(t, "average turnaround time", response.AverageTurnAroundTime, 16.0/3.0)
	assertFloat(t, "throughput", response.CpuThroughput, 3.0/9.0)
}

func TestPriorityTies(t *testing.T) {
	tests := []struct {
		name string
		jobs []requests.Job
		want []span
	}{
		{
			name: "same arrival keeps submission order",
			jobs: []requests.Job{priorityJob("B", 0, 2, 1), priorityJob("A", 0, 2, 1)},
			want: []span{{"B", 0, 2}, {"A", 2, 4}},
		},
		{
			name: "equal priority newcomer does not preempt",
			jobs: []requests.Job{priorityJob("P1", 0, 3, 2), priorityJob("P2", 1, 1, 2)},
			want: []span{{"P1", 0, 3}, {"P2", 3, 4}},
		},
		{
			name: "negative priority wins",
			jobs: []requests.Job{priorityJob("P1", 0, 2, 0), priorityJob("P2", 1, 1, -1)},
			want: []span{{"P1", 0, 1}, {"P2", 1, 2}, {"P1", 2, 3}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response, err := SchedulePriority(&requests.ScheduleRequests{Jobs: tt.jobs}, zaptest.NewLogger(t))
			if err != nil {
				t.Fatalf("priority failed: %v", err)
			}
			assertSpans(t, response.Slices, tt.want)
		})
	}
}
