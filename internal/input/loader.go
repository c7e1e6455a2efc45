package input

import (
	"cpu-scheduler-sim/internal/requests"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrUnsupportedFormat = errors.New("unsupported process file format")

// LoadFile reads a process set from a .csv, .yaml/.yml or .json file.
func LoadFile(path string) (*requests.ScheduleRequests, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open process file: %w", err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		jobs, err := ReadCSV(f)
		if err != nil {
			return nil, err
		}
		return &requests.ScheduleRequests{Jobs: jobs}, nil
	case ".yaml", ".yml":
		return ReadYAML(f)
	case ".json":
		return ReadJSON(f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// ReadCSV parses rows of pid,arrival,burst[,priority[,memory]]. A header row
// starting with "pid" or "process_id" is skipped, as are lines starting with #.
func ReadCSV(r io.Reader) ([]requests.Job, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	jobs := make([]requests.Job, 0, len(rows))
	for i, row := range rows {
		if i == 0 && len(row) > 0 {
			header := strings.ToLower(strings.TrimSpace(row[0]))
			if header == "pid" || header == "process_id" {
				continue
			}
		}
		if len(row) < 3 || len(row) > 5 {
			return nil, fmt.Errorf("csv line %d: expected 3 to 5 fields, got %d", i+1, len(row))
		}

		job := requests.Job{ProcessId: strings.TrimSpace(row[0])}
		fields := []*int{&job.ArrivalTime, &job.BurstTime, &job.Priority, &job.Memory}
		for j, raw := range row[1:] {
			n, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				return nil, fmt.Errorf("csv line %d field %d: %w", i+1, j+2, err)
			}
			*fields[j] = n
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func ReadYAML(r io.Reader) (*requests.ScheduleRequests, error) {
	var request requests.ScheduleRequests
	if err := yaml.NewDecoder(r).Decode(&request); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return &request, nil
}

func ReadJSON(r io.Reader) (*requests.ScheduleRequests, error) {
	var request requests.ScheduleRequests
	if err := json.NewDecoder(r).Decode(&request); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return &request, nil
}
