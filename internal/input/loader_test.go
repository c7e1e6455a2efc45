package input

import (
	"cpu-scheduler-sim/internal/requests"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

var wantJobs = []requests.Job{
	{ProcessId: "P1", ArrivalTime: 0, BurstTime: 4, Priority: 2, Memory: 30},
	{ProcessId: "P2", ArrivalTime: 1, BurstTime: 2},
}

func TestReadCSV(t *testing.T) {
	data := `pid,arrival,burst,priority,memory
# comment
P1, 0, 4, 2, 30
P2,1,2
`
	jobs, err := ReadCSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if !reflect.DeepEqual(jobs, wantJobs) {
		t.Fatalf("got %+v, want %+v", jobs, wantJobs)
	}
}

func TestReadCSVErrors(t *testing.T) {
	for _, data := range []string{"P1,0\n", "P1,zero,4\n", "P1,0,1,2,3,4\n"} {
		if _, err := ReadCSV(strings.NewReader(data)); err == nil {
			t.Errorf("expected error for %q", data)
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"procs.yaml": `time_quantum: 3
jobs:
  - process_id: P1
    arrival_time: 0
    burst_time: 4
    priority: 2
    memory: 30
  - process_id: P2
    arrival_time: 1
    burst_time: 2
`,
		"procs.json": `{"time_quantum": 3, "jobs": [
  {"process_id": "P1", "arrival_time": 0, "burst_time": 4, "priority": 2, "memory": 30},
  {"process_id": "P2", "arrival_time": 1, "burst_time": 2}]}`,
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		request, err := LoadFile(path)
		if err != nil {
			t.Fatalf("load %s: %v", name, err)
		}
		if request.TimeQuantum != 3 || !reflect.DeepEqual(request.Jobs, wantJobs) {
			t.Errorf("%s: got %+v", name, request)
		}
	}

	path := filepath.Join(dir, "procs.txt")
	if err := os.WriteFile(path, []byte("P1,0,1"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFile(path); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected unsupported format, got %v", err)
	}
}
