package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"twohundred-server/internal/util"
)

// Config provides configuration for the Two Hundred server
type Config struct {
	loaded bool
	Log    struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
	Game struct {
		// DeckVariant is the default deck size (36 or 40) for new tables
		DeckVariant int `yaml:"deckVariant" envconfig:"deck_variant"`
		// ScoreTarget is the default winning score for new tables
		ScoreTarget int `yaml:"scoreTarget" envconfig:"score_target"`
		// TurnTimeoutMillis is the default per-turn deadline; 0 disables timers
		TurnTimeoutMillis int `yaml:"turnTimeoutMillis" envconfig:"turn_timeout_millis"`
	}
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error; defaults and environment variables still apply.
func Load() error {
	config = Config{}
	config.Game.DeckVariant = 40
	config.Game.ScoreTarget = 200
	config.Game.TurnTimeoutMillis = 30000

	configFile := util.Getenv("TH_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("th", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
