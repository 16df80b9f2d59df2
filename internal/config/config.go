package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Agent    Agent   `yaml:"agent"`
	Session  Session `yaml:"session"`
	Storage  Storage `yaml:"storage"`
	Redis    Redis   `yaml:"redis"`
}

type Agent struct {
	Episodes       int     `yaml:"episodes" env:"AGENT_EPISODES" env-default:"100000"`
	Alpha          float64 `yaml:"alpha" env:"AGENT_ALPHA" env-default:"0.1"`
	Gamma          float64 `yaml:"gamma" env:"AGENT_GAMMA" env-default:"0.9"`
	TrainEpsilon   float64 `yaml:"train-epsilon" env:"AGENT_TRAIN_EPSILON" env-default:"0.2"`
	PlayEpsilon    float64 `yaml:"play-epsilon" env:"AGENT_PLAY_EPSILON" env-default:"0.1"`
	ReportInterval int     `yaml:"report-interval" env:"AGENT_REPORT_INTERVAL" env-default:"10000"`
	Seed           int64   `yaml:"seed" env:"AGENT_SEED" env-default:"0"`
}

type Session struct {
	AgentMark string `yaml:"agent-mark" env:"SESSION_AGENT_MARK" env-default:"O"`
}

type Storage struct {
	Type string `yaml:"type" env:"STORAGE_TYPE" env-default:"memory"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
