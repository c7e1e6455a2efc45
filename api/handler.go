package api

import (
	"cpu-scheduler-sim/config"
	"cpu-scheduler-sim/internal/cache"
	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/requests"
	"cpu-scheduler-sim/internal/schedulers"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	MultilevelFeedbackQueue(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	cache  *cache.ResultCache
	logger *zap.Logger
}

// NewSchedulerHandlerImpl builds the handler. resultCache may be nil.
func NewSchedulerHandlerImpl(config *config.SchedulerConfig, resultCache *cache.ResultCache, logger *zap.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, cache: resultCache, logger: logger}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestRemainingTimeFirst)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PreemptivePriority)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) MultilevelFeedbackQueue(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.MultilevelFeedbackQueue)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return err
	}
	options := schedulers.Options{
		TimeQuantum:       s.timeQuantum(request),
		LevelsTimeQuantum: s.levelsTimeQuantum(request),
	}
	all, err := schedulers.ScheduleAll(ctx.UserContext(), request, options, s.logger)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(all)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return err
	}

	var options schedulers.Options
	switch algorithm {
	case schedulers.RoundRobin:
		options.TimeQuantum = s.timeQuantum(request)
	case schedulers.MultilevelFeedbackQueue:
		options.LevelsTimeQuantum = s.levelsTimeQuantum(request)
	}

	var key uint64
	if s.cache != nil {
		key = cache.Key(string(algorithm), options.TimeQuantum, options.LevelsTimeQuantum, request.Jobs)
		if response, ok := s.cache.Get(key); ok {
			response.RunId = uuid.NewString()
			return ctx.JSON(response)
		}
	}

	response, err := schedulers.Schedule(algorithm, request, options, s.logger)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if s.cache != nil {
		s.cache.Set(key, response)
	}
	return ctx.JSON(response)
}

// timeQuantum prefers the request's quantum over the configured default.
func (s *SchedulerHandlerImpl) timeQuantum(request *requests.ScheduleRequests) int {
	if request.TimeQuantum != 0 {
		return request.TimeQuantum
	}
	return s.config.RoundRobinTimeQuantum
}

func (s *SchedulerHandlerImpl) levelsTimeQuantum(request *requests.ScheduleRequests) []int {
	if len(request.LevelsTimeQuantum) != 0 {
		return request.LevelsTimeQuantum
	}
	return s.config.MultilevelFeedbackQueueLevelsTimeQuantum
}

func parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequests, error) {
	request := new(requests.ScheduleRequests)
	if err := ctx.BodyParser(request); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid request format")
	}
	return request, nil
}

func (s *SchedulerHandlerImpl) writeError(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, core.ErrInvalidInput) {
		reasons := make([]string, 0)
		for _, e := range multierr.Errors(err) {
			reasons = append(reasons, e.Error())
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid input",
			"reasons": reasons,
		})
	}
	s.logger.Error("schedule failed", zap.String("path", ctx.Path()), zap.Error(err))
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not proccess request"})
}
