package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up in the working directory when no
// --config flag is given. It is optional; defaults and environment variables
// cover the common case.
const DefaultFile = "dbtools.yaml"

// Config holds the toolkit configuration
type Config struct {
	Exercises struct {
		InputCSV  string `yaml:"input_csv"`
		OutputSQL string `yaml:"output_sql"`
	} `yaml:"exercises"`
	Foods struct {
		InputSQL  string `yaml:"input_sql"`
		OutputSQL string `yaml:"output_sql"`
	} `yaml:"foods"`
	Database struct {
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Database string `yaml:"database"`
		SSLMode  string `yaml:"sslmode"`
	} `yaml:"database"`
}

// Load builds the configuration in three layers: built-in defaults, then the
// YAML config file (if present), then DBTOOLS_* environment variables. A file
// named explicitly must exist; the default file is skipped when absent.
func Load(path string) (*Config, error) {
	config := defaults()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// Optional default file, fall through to env
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	config.applyEnv()
	return config, nil
}

func defaults() *Config {
	config := &Config{}
	config.Exercises.InputCSV = "exercises_updated_muscles.csv"
	config.Exercises.OutputSQL = "all_exercises_insert.sql"
	config.Foods.InputSQL = "batch-insert-common-foods.sql"
	config.Foods.OutputSQL = "batch-insert-common-foods-fixed.sql"
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.Username = "postgres"
	config.Database.Database = "fitness"
	config.Database.SSLMode = "disable"
	return config
}

func (c *Config) applyEnv() {
	c.Exercises.InputCSV = getEnvOrDefault("DBTOOLS_EXERCISES_CSV", c.Exercises.InputCSV)
	c.Exercises.OutputSQL = getEnvOrDefault("DBTOOLS_EXERCISES_SQL", c.Exercises.OutputSQL)
	c.Foods.InputSQL = getEnvOrDefault("DBTOOLS_FOODS_INPUT", c.Foods.InputSQL)
	c.Foods.OutputSQL = getEnvOrDefault("DBTOOLS_FOODS_OUTPUT", c.Foods.OutputSQL)
	c.Database.Host = getEnvOrDefault("DBTOOLS_DB_HOST", c.Database.Host)
	c.Database.Port = getEnvOrDefault("DBTOOLS_DB_PORT", c.Database.Port)
	c.Database.Username = getEnvOrDefault("DBTOOLS_DB_USERNAME", c.Database.Username)
	c.Database.Password = getEnvOrDefault("DBTOOLS_DB_PASSWORD", c.Database.Password)
	c.Database.Database = getEnvOrDefault("DBTOOLS_DB_NAME", c.Database.Database)
	c.Database.SSLMode = getEnvOrDefault("DBTOOLS_DB_SSLMODE", c.Database.SSLMode)
}

// ConnString builds a lib/pq connection string from the database settings
func (c *Config) ConnString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.Username,
		c.Database.Password,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
