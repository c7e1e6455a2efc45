package cli

import (
	"cpu-scheduler-sim/internal/generator"
	"cpu-scheduler-sim/internal/requests"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func newGenerateCmd(opts *rootOptions) *cobra.Command {
	var count int
	var seed uint64
	var format string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random process set",
		Long: `Generate processes P1..Pn arriving one unit apart with random burst (1-10),
memory (1-100) and priority (1-10). The output can be fed to "run".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count <= 0 {
				return fmt.Errorf("count must be positive, got %d", count)
			}
			if !cmd.Flags().Changed("seed") {
				seed = uint64(time.Now().UnixNano())
			}
			opts.logger.Debug("generating processes", zap.Int("count", count), zap.Uint64("seed", seed))

			jobs := generator.New(seed).Generate(count)
			return writeJobs(cmd.OutOrStdout(), format, jobs)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 5, "Number of processes")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed (default: current time)")
	cmd.Flags().StringVarP(&format, "format", "f", "csv", "Output format: csv, yaml or json")
	return cmd
}

func writeJobs(w io.Writer, format string, jobs []requests.Job) error {
	request := requests.ScheduleRequests{Jobs: jobs}
	switch strings.ToLower(format) {
	case "csv":
		writer := csv.NewWriter(w)
		_ = writer.Write([]string{"pid", "arrival", "burst", "priority", "memory"})
		for _, job := range jobs {
			_ = writer.Write([]string{
				job.ProcessId,
				strconv.Itoa(job.ArrivalTime),
				strconv.Itoa(job.BurstTime),
				strconv.Itoa(job.Priority),
				strconv.Itoa(job.Memory),
			})
		}
		writer.Flush()
		return writer.Error()
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(request); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(request)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
