package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

type Config struct {
	DataDir string     `mapstructure:"data_dir"`
	API     APIConfig  `mapstructure:"api"`
	Quiz    QuizConfig `mapstructure:"quiz"`
	Log     LogConfig  `mapstructure:"log"`
}

type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type QuizConfig struct {
	Count int `mapstructure:"count"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func Load() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	defaultDataDir := filepath.Join(homeDir, ".hip")

	viper.SetDefault("data_dir", defaultDataDir)
	viper.SetDefault("api.base_url", "http://localhost:5000")
	viper.SetDefault("api.timeout", 30*time.Second)
	viper.SetDefault("quiz.count", 5)
	viper.SetDefault("log.level", "warn")

	// Environment variable overrides
	viper.SetEnvPrefix("HIP")
	viper.AutomaticEnv()
	viper.BindEnv("data_dir", "HIP_DATA_DIR")
	viper.BindEnv("api.base_url", "HIP_API_BASE_URL")
	viper.BindEnv("api.timeout", "HIP_API_TIMEOUT")
	viper.BindEnv("log.level", "HIP_LOG_LEVEL")

	// Config file
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(defaultDataDir)

	// Read config file if exists (ignore error if not found)
	_ = viper.ReadInConfig()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// The API clamps count to 1..20; mirror that here so requests stay
	// within the contract.
	if cfg.Quiz.Count < 1 {
		cfg.Quiz.Count = 1
	} else if cfg.Quiz.Count > 20 {
		cfg.Quiz.Count = 20
	}

	// Ensure data directory exists
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Logger builds the app logger at the configured level.
func (c *Config) Logger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	if lvl, err := log.ParseLevel(c.Log.Level); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}

func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "hip.db")
}
