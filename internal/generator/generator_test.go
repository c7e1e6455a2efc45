package generator

import (
	"cpu-scheduler-sim/internal/core"
	"fmt"
	"reflect"
	"testing"
)

func TestGenerate(t *testing.T) {
	jobs := New(7).Generate(25)
	if len(jobs) != 25 {
		t.Fatalf("got %d jobs, want 25", len(jobs))
	}
	for i, job := range jobs {
		if job.ProcessId != fmt.Sprintf("P%d", i+1) || job.ArrivalTime != i {
			t.Errorf("job %d has id %s arrival %d", i, job.ProcessId, job.ArrivalTime)
		}
		if job.BurstTime < 1 || job.BurstTime > 10 {
			t.Errorf("burst out of range: %+v", job)
		}
		if job.Memory < 1 || job.Memory > 100 {
			t.Errorf("memory out of range: %+v", job)
		}
		if job.Priority < 1 || job.Priority > 10 {
			t.Errorf("priority out of range: %+v", job)
		}
	}
	if err := core.ValidateJobs(jobs); err != nil {
		t.Fatalf("generated jobs should be valid: %v", err)
	}
}

func TestGenerateIsSeeded(t *testing.T) {
	if !reflect.DeepEqual(New(1).Generate(10), New(1).Generate(10)) {
		t.Fatal("same seed should give the same jobs")
	}
}
