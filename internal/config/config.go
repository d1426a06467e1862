package config

import (
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"holdem-server/internal/util"
)

// Config provides configuration for the hold'em server
type Config struct {
	loaded bool
	Addr   string `yaml:"addr" envconfig:"addr"`
	Log    Log    `yaml:"log" envconfig:"log"`
	Room   Room   `yaml:"room" envconfig:"room"`
	NATS   NATS   `yaml:"nats" envconfig:"nats"`
}

// Log configures logging
type Log struct {
	Level             string `yaml:"level" envconfig:"level"`
	Format            string `yaml:"format" envconfig:"format"`
	DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
}

// Room configures the room directory
type Room struct {
	MaxAnte       int           `yaml:"maxAnte" envconfig:"max_ante"`
	ListWindow    time.Duration `yaml:"listWindow" envconfig:"list_window"`
	StaleAfter    time.Duration `yaml:"staleAfter" envconfig:"stale_after"`
	PruneInterval time.Duration `yaml:"pruneInterval" envconfig:"prune_interval"`
	BustPolicy    string        `yaml:"bustPolicy" envconfig:"bust_policy"`
}

// NATS configures publishing of room views
// Publishing is off when URL is empty
type NATS struct {
	URL           string `yaml:"url" envconfig:"url"`
	SubjectPrefix string `yaml:"subjectPrefix" envconfig:"subject_prefix"`
}

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	return Config{
		Addr: ":5000",
		Log: Log{
			Level:  "info",
			Format: "text",
		},
		Room: Room{
			MaxAnte:       1000,
			ListWindow:    time.Hour,
			StaleAfter:    6 * time.Hour,
			PruneInterval: 10 * time.Minute,
			BustPolicy:    "sit-out",
		},
		NATS: NATS{
			SubjectPrefix: "holdem.room",
		},
	}
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(""); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// The file is read from path, or HOLDEM_CONFIG_FILE when path is empty. A missing file is not an
// error. Environment variables prefixed with HOLDEM_ override the file.
func Load(path string) error {
	if path == "" {
		path = util.Getenv("HOLDEM_CONFIG_FILE", "config.yaml")
	}

	cfg := DefaultConfig()
	file, err := os.Open(path)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("holdem", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
