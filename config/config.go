package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	LogLevel              string
	LogFormat             string
	RoundRobinTimeQuantum int
	// MultilevelFeedbackQueueLevelsTimeQuantum holds one quantum per level,
	// highest priority first.
	MultilevelFeedbackQueueLevelsTimeQuantum []int
	Cache                                    CacheConfig
}

type CacheConfig struct {
	Enabled     bool
	NumCounters int64
	MaxCost     int64
}

const envPrefix = "SCHEDSIM"

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 9095)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.multilevel_feedback_queue.levels_time_quantum", []int{2, 4, 8})
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.num_counters", 10000)
	v.SetDefault("cache.max_cost", 1000)
}

// LoadSchedulerConfig reads path when given, otherwise ./config.yaml if it
// exists. SCHEDSIM_* environment variables override both
// (SCHEDSIM_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM=4).
func LoadSchedulerConfig(path string) (*SchedulerConfig, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	config := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		LogLevel:              v.GetString("log.level"),
		LogFormat:             v.GetString("log.format"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		MultilevelFeedbackQueueLevelsTimeQuantum: v.GetIntSlice("scheduler.multilevel_feedback_queue.levels_time_quantum"),
		Cache: CacheConfig{
			Enabled:     v.GetBool("cache.enabled"),
			NumCounters: v.GetInt64("cache.num_counters"),
			MaxCost:     v.GetInt64("cache.max_cost"),
		},
	}
	if config.RoundRobinTimeQuantum <= 0 {
		return nil, fmt.Errorf("scheduler.round_robin.time_quantum must be positive, got %d", config.RoundRobinTimeQuantum)
	}
	if len(config.MultilevelFeedbackQueueLevelsTimeQuantum) == 0 {
		return nil, errors.New("scheduler.multilevel_feedback_queue.levels_time_quantum must name at least one level")
	}
	for i, q := range config.MultilevelFeedbackQueueLevelsTimeQuantum {
		if q <= 0 {
			return nil, fmt.Errorf("scheduler.multilevel_feedback_queue.levels_time_quantum[%d] must be positive, got %d", i, q)
		}
	}
	if config.Port <= 0 || config.Port > 65535 {
		return nil, fmt.Errorf("port out of range: %d", config.Port)
	}
	return config, nil
}

var once sync.Once
var config *SchedulerConfig
var configErr error

// GetSchedulerConfig loads the configuration once from the working directory.
func GetSchedulerConfig() (*SchedulerConfig, error) {
	once.Do(func() {
		config, configErr = LoadSchedulerConfig("")
	})
	return config, configErr
}
