package cache

import (
	"cpu-scheduler-sim/internal/requests"
	"cpu-scheduler-sim/internal/responses"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/ristretto"
	"go.uber.org/zap"
)

// ResultCache memoizes schedule responses for identical requests. A hit equals
// a fresh run apart from run_id.
type ResultCache struct {
	cache  *ristretto.Cache
	logger *zap.Logger
}

func NewResultCache(numCounters, maxCost int64, logger *zap.Logger) (*ResultCache, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &ResultCache{cache: cache, logger: logger}, nil
}

// Key digests every job field echoed in a response, in submission order.
func Key(algorithm string, timeQuantum int, levelsTimeQuantum []int, jobs []requests.Job) uint64 {
	digest := xxhash.New()
	_, _ = digest.WriteString(algorithm)
	_, _ = digest.WriteString("|")
	_, _ = digest.WriteString(strconv.Itoa(timeQuantum))
	for _, q := range levelsTimeQuantum {
		_, _ = digest.WriteString(":")
		_, _ = digest.WriteString(strconv.Itoa(q))
	}
	for _, job := range jobs {
		_, _ = digest.WriteString("|")
		_, _ = digest.WriteString(job.ProcessId)
		for _, n := range []int{job.ArrivalTime, job.BurstTime, job.Priority, job.Memory} {
			_, _ = digest.WriteString(",")
			_, _ = digest.WriteString(strconv.Itoa(n))
		}
	}
	return digest.Sum64()
}

func (c *ResultCache) Get(key uint64) (responses.ScheduleResponse, bool) {
	value, ok := c.cache.Get(key)
	if !ok {
		return responses.ScheduleResponse{}, false
	}
	response, ok := value.(responses.ScheduleResponse)
	if ok {
		c.logger.Debug("schedule cache hit", zap.Uint64("key", key))
	}
	return response, ok
}

// Set stores the response with a cost of one per slice.
func (c *ResultCache) Set(key uint64, response responses.ScheduleResponse) {
	cost := int64(len(response.Slices))
	if cost == 0 {
		cost = 1
	}
	if !c.cache.Set(key, response, cost) {
		c.logger.Debug("schedule cache rejected entry", zap.Uint64("key", key))
	}
}

// Wait blocks until buffered writes are applied.
func (c *ResultCache) Wait() {
	c.cache.Wait()
}

func (c *ResultCache) Close() {
	c.cache.Close()
}
