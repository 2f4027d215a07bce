package config

import (
	"os"
	"time"
	"unicode/utf8"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/iamasit07/connect-four/internal/domain"
	"github.com/pkg/errors"
)

type Config struct {
	Log     LogConfig     `yaml:"log"`
	Players PlayersConfig `yaml:"players"`
	Kafka   KafkaConfig   `yaml:"kafka"`
}

type LogConfig struct {
	Level       string `yaml:"level" env:"LOG_LEVEL" env-default:"warn"`
	Development bool   `yaml:"development" env:"LOG_DEVELOPMENT" env-default:"false"`
}

type PlayersConfig struct {
	FirstSign  string `yaml:"first_sign" env:"FIRST_PLAYER_SIGN" env-default:"o"`
	SecondSign string `yaml:"second_sign" env:"SECOND_PLAYER_SIGN" env-default:"*"`
}

// KafkaConfig enables match events when at least one broker is set.
type KafkaConfig struct {
	Brokers        []string      `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
	Topic          string        `yaml:"topic" env:"KAFKA_TOPIC" env-default:"connect-four-events"`
	PublishTimeout time.Duration `yaml:"publish_timeout" env:"KAFKA_PUBLISH_TIMEOUT" env-default:"2s"`
}

// LoadConfig reads the YAML file at path when one is given (falling back to
// CONFIG_PATH), otherwise the environment only. Environment values override
// the file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	var cfg Config
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	first, err := parseSign(c.Players.FirstSign)
	if err != nil {
		return errors.WithMessage(err, "first player sign")
	}
	second, err := parseSign(c.Players.SecondSign)
	if err != nil {
		return errors.WithMessage(err, "second player sign")
	}
	if first == second {
		return errors.Wrapf(domain.ErrConfig, "both players use %q", string(first))
	}
	if c.Kafka.Enabled() && c.Kafka.Topic == "" {
		return errors.Wrap(domain.ErrConfig, "kafka topic is empty")
	}
	return nil
}

// Signs returns the validated player signs.
func (c *Config) Signs() (domain.Sign, domain.Sign) {
	first, _ := parseSign(c.Players.FirstSign)
	second, _ := parseSign(c.Players.SecondSign)
	return first, second
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

func parseSign(s string) (domain.Sign, error) {
	if utf8.RuneCountInString(s) != 1 {
		return domain.Empty, errors.Wrapf(domain.ErrConfig, "%q must be a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if domain.Sign(r) == domain.Empty {
		return domain.Empty, errors.Wrap(domain.ErrConfig, "a blank sign would look like an empty cell")
	}
	return domain.Sign(r), nil
}
