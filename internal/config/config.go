package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Benchmark holds all configuration for the benchmark runner.
type Benchmark struct {
	// Inputs
	MapDir       string `yaml:"map_dir"`
	ScenarioPath string `yaml:"scenario_path"`

	// Execution
	Workers       int  `yaml:"workers"`
	CheckBaseline bool `yaml:"check_baseline"`

	// Persistence
	SaveResults bool           `yaml:"save_results"`
	Database    DatabaseConfig `yaml:"database"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultBenchmark returns Benchmark config with sensible defaults.
func DefaultBenchmark() Benchmark {
	return Benchmark{
		MapDir:        "maps",
		ScenarioPath:  "scenarios/arena.map.scen",
		Workers:       4,
		CheckBaseline: true,
		SaveResults:   false,
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "gridpath",
			Password: "gridpath",
			DBName:   "gridpath",
			SSLMode:  "disable",
		},
	}
}

// LoadBenchmark loads benchmark config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadBenchmark(path string) (Benchmark, error) {
	cfg := DefaultBenchmark()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	return cfg, nil
}
