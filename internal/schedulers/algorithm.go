package schedulers

import (
	"context"
	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/requests"
	"cpu-scheduler-sim/internal/responses"
	"fmt"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Algorithm string

const (
	FirstComeFirstServe        Algorithm = "fcfs"
	ShortestRemainingTimeFirst Algorithm = "srtf"
	PreemptivePriority         Algorithm = "priority"
	RoundRobin                 Algorithm = "rr"
	MultilevelFeedbackQueue    Algorithm = "mlfq"
)

// Algorithms lists every supported algorithm in display order.
var Algorithms = []Algorithm{FirstComeFirstServe, ShortestRemainingTimeFirst, PreemptivePriority, RoundRobin, MultilevelFeedbackQueue}

var algorithmAliases = map[string]Algorithm{
	"fcfs":                          FirstComeFirstServe,
	"first-come-first-serve":        FirstComeFirstServe,
	"srtf":                          ShortestRemainingTimeFirst,
	"shortest-remaining-time-first": ShortestRemainingTimeFirst,
	"priority":                      PreemptivePriority,
	"rr":                            RoundRobin,
	"round-robin":                   RoundRobin,
	"roundrobin":                    RoundRobin,
	"mlfq":                          MultilevelFeedbackQueue,
	"multilevel-feedback-queue":     MultilevelFeedbackQueue,
}

// Options carries the per-run quantum settings. TimeQuantum is read by round
// robin and LevelsTimeQuantum by the multilevel feedback queue.
type Options struct {
	TimeQuantum       int
	LevelsTimeQuantum []int
}

func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	if algorithm, ok := algorithmAliases[key]; ok {
		return algorithm, nil
	}
	return "", fmt.Errorf("%w: unknown algorithm %q", core.ErrInvalidInput, name)
}

// Schedule dispatches to the named algorithm.
func Schedule(algorithm Algorithm, request *requests.ScheduleRequests, options Options, logger *zap.Logger) (responses.ScheduleResponse, error) {
	switch algorithm {
	case FirstComeFirstServe:
		return ScheduleFirstComeFirstServe(request, logger)
	case ShortestRemainingTimeFirst:
		return ScheduleShortestRemainingTimeFirst(request, logger)
	case PreemptivePriority:
		return SchedulePriority(request, logger)
	case RoundRobin:
		return ScheduleRoundRobin(request, options.TimeQuantum, logger)
	case MultilevelFeedbackQueue:
		return ScheduleMultilevelFeedbackQueue(request, options.LevelsTimeQuantum, logger)
	default:
		return responses.ScheduleResponse{}, fmt.Errorf("%w: unknown algorithm %q", core.ErrInvalidInput, algorithm)
	}
}

// ScheduleAll runs every algorithm on the same request. Runs share nothing but
// the immutable jobs, so they execute concurrently.
func ScheduleAll(ctx context.Context, request *requests.ScheduleRequests, options Options, logger *zap.Logger) (map[Algorithm]responses.ScheduleResponse, error) {
	if request == nil {
		return nil, core.ErrEmptyProcessSet
	}
	if err := core.ValidateJobs(request.Jobs); err != nil {
		return nil, err
	}
	if err := multierr.Combine(
		core.ValidateTimeQuantum(options.TimeQuantum),
		core.ValidateLevelsTimeQuantum(options.LevelsTimeQuantum),
	); err != nil {
		return nil, err
	}

	results := make([]responses.ScheduleResponse, len(Algorithms))
	g, ctx := errgroup.WithContext(ctx)
	for i, algorithm := range Algorithms {
		i, algorithm := i, algorithm
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			response, err := Schedule(algorithm, request, options, logger.With(zap.String("algorithm", string(algorithm))))
			if err != nil {
				return fmt.Errorf("%s: %w", algorithm, err)
			}
			results[i] = response
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	all := make(map[Algorithm]responses.ScheduleResponse, len(Algorithms))
	for i, algorithm := range Algorithms {
		all[algorithm] = results[i]
	}
	return all, nil
}
