package cli

import (
	"cpu-scheduler-sim/internal/input"
	"cpu-scheduler-sim/internal/render"
	"cpu-scheduler-sim/internal/responses"
	"cpu-scheduler-sim/internal/schedulers"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	var algorithmName string
	var quantum int
	var levels []int
	var output string

	cmd := &cobra.Command{
		Use:   "run <process-file>",
		Short: "Schedule a process set and print the result",
		Long: `Schedule the processes of a .csv, .yaml or .json file.

CSV rows are pid,arrival,burst[,priority[,memory]]. Use --algorithm all to
compare every algorithm on the same input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := input.LoadFile(args[0])
			if err != nil {
				return err
			}

			timeQuantum := opts.config.RoundRobinTimeQuantum
			if request.TimeQuantum != 0 {
				timeQuantum = request.TimeQuantum
			}
			if cmd.Flags().Changed("quantum") {
				timeQuantum = quantum
			}
			levelsTimeQuantum := opts.config.MultilevelFeedbackQueueLevelsTimeQuantum
			if len(request.LevelsTimeQuantum) != 0 {
				levelsTimeQuantum = request.LevelsTimeQuantum
			}
			if cmd.Flags().Changed("levels") {
				levelsTimeQuantum = levels
			}
			options := schedulers.Options{TimeQuantum: timeQuantum, LevelsTimeQuantum: levelsTimeQuantum}

			var results []responses.ScheduleResponse
			if strings.EqualFold(algorithmName, "all") {
				all, err := schedulers.ScheduleAll(cmd.Context(), request, options, opts.logger)
				if err != nil {
					return err
				}
				for _, algorithm := range schedulers.Algorithms {
					results = append(results, all[algorithm])
				}
			} else {
				algorithm, err := schedulers.ParseAlgorithm(algorithmName)
				if err != nil {
					return err
				}
				response, err := schedulers.Schedule(algorithm, request, options, opts.logger)
				if err != nil {
					return err
				}
				results = append(results, response)
			}

			return writeResults(cmd.OutOrStdout(), output, results)
		},
	}

	cmd.Flags().StringVarP(&algorithmName, "algorithm", "a", "fcfs", "Algorithm: fcfs, srtf, priority, rr, mlfq or all")
	cmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "Round-robin time quantum (overrides file and config)")
	cmd.Flags().IntSliceVar(&levels, "levels", nil, "Multilevel feedback queue quantum per level, e.g. 2,4,8 (overrides file and config)")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table or json")
	return cmd
}

func writeResults(w io.Writer, output string, results []responses.ScheduleResponse) error {
	switch strings.ToLower(output) {
	case "table":
		for i, response := range results {
			if i > 0 {
				_, _ = fmt.Fprintln(w)
			}
			render.Schedule(w, response)
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if len(results) == 1 {
			return enc.Encode(results[0])
		}
		return enc.Encode(results)
	default:
		return fmt.Errorf("unknown output format %q", output)
	}
}
