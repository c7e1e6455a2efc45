package render

import (
	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/responses"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

const idleLabel = "idle"

var titles = map[string]string{
	"fcfs":     "First-come, first-serve",
	"srtf":     "Shortest-remaining-time-first",
	"priority": "Priority (preemptive)",
	"rr":       "Round-robin",
	"mlfq":     "Multilevel feedback queue",
}

// Schedule writes the title, the gantt chart and the per-process table.
func Schedule(w io.Writer, response responses.ScheduleResponse) {
	outputTitle(w, response)
	outputGantt(w, response.Timeline)
	outputTable(w, response)
}

func outputTitle(w io.Writer, response responses.ScheduleResponse) {
	title, ok := titles[response.Algorithm]
	if !ok {
		title = response.Algorithm
	}
	if response.TimeQuantum > 0 {
		title = fmt.Sprintf("%s (quantum %d)", title, response.TimeQuantum)
	}
	if len(response.LevelsTimeQuantum) > 0 {
		levels := make([]string, len(response.LevelsTimeQuantum))
		for i, q := range response.LevelsTimeQuantum {
			levels[i] = strconv.Itoa(q)
		}
		title = fmt.Sprintf("%s (quanta %s)", title, strings.Join(levels, "/"))
	}
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)+4))
	_, _ = fmt.Fprintln(w, " ", title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)+4))
}

// Gantt renders one cell per span with the tick of every boundary below it.
func Gantt(timeline []core.TimelineSpan) string {
	if len(timeline) == 0 {
		return ""
	}
	var bar, ticks strings.Builder
	bar.WriteString("|")
	for _, span := range timeline {
		label := span.ProcessId
		if span.Idle {
			label = idleLabel
		}
		width := max(len(label)+2, 6)
		left := (width - len(label)) / 2
		bar.WriteString(strings.Repeat(" ", left) + label + strings.Repeat(" ", width-len(label)-left) + "|")

		start := strconv.Itoa(span.StartTime)
		ticks.WriteString(start + strings.Repeat(" ", width+1-len(start)))
	}
	ticks.WriteString(strconv.Itoa(timeline[len(timeline)-1].EndTime))
	return bar.String() + "\n" + strings.TrimRight(ticks.String(), " ") + "\n"
}

func outputGantt(w io.Writer, timeline []core.TimelineSpan) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprintln(w, Gantt(timeline))
}

func outputTable(w io.Writer, response responses.ScheduleResponse) {
	rows := make([][]string, 0, len(response.Details))
	for _, d := range response.Details {
		rows = append(rows, []string{
			d.ProcessId,
			strconv.Itoa(d.Priority),
			strconv.Itoa(d.BurstTime),
			strconv.Itoa(d.ArrivalTime),
			strconv.Itoa(d.Memory),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.TurnAroundTime),
			strconv.Itoa(d.CompletionTime),
		})
	}

	throughput := fmt.Sprintf("Throughput\n%.3f/t", response.CpuThroughput)
	if response.ThroughputUndefined {
		throughput = "Throughput\nundefined"
	}

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Memory", "Wait", "Turnaround", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime),
		throughput})
	table.Render()
}
