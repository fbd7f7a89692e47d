package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all lounge configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Screen layout and pacing
	Display DisplayConfig `yaml:"display"`

	// Bank balance persistence
	Bank BankConfig `yaml:"bank"`

	// History database
	Store StoreConfig `yaml:"store"`

	// Per-game settings
	Blackjack BlackjackConfig `yaml:"blackjack"`
	RPS       RPSConfig       `yaml:"rps"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// DisplayConfig configures rendering.
type DisplayConfig struct {
	Width int    `yaml:"width" env:"LOUNGE_WIDTH"`
	Theme string `yaml:"theme" env:"LOUNGE_THEME"` // auto, light, dark
	Delay string `yaml:"delay" env:"LOUNGE_DELAY"` // pause between animation frames
}

// BankConfig configures where the blackjack bank lives.
type BankConfig struct {
	Backend string `yaml:"backend" env:"LOUNGE_BANK_BACKEND"` // file, sqlite
	Path    string `yaml:"path" env:"LOUNGE_BANK_PATH"`       // flat file path (file backend)
}

// StoreConfig configures the SQLite database.
type StoreConfig struct {
	DatabasePath string `yaml:"database_path" env:"LOUNGE_DB"`
}

// BlackjackConfig holds table rules.
type BlackjackConfig struct {
	DealerStand   int `yaml:"dealer_stand"`
	DefaultBet    int `yaml:"default_bet"`
	StartingCash  int `yaml:"starting_cash" env:"LOUNGE_STARTING_CASH"`
	EmergencyCash int `yaml:"emergency_cash"`
	EmergencyBet  int `yaml:"emergency_bet"`
}

// RPSConfig holds match settings.
type RPSConfig struct {
	TargetScore float64 `yaml:"target_score" env:"LOUNGE_RPS_TARGET"` // 0 = endless rounds
	Opponent    string  `yaml:"opponent" env:"LOUNGE_RPS_OPPONENT"`   // empty = random pick
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "gamelounge",
		Version: "1.0.0",

		Display: DisplayConfig{
			Width: 80,
			Theme: "auto",
			Delay: "250ms",
		},

		Bank: BankConfig{
			Backend: "file",
			Path:    "21_bank.txt",
		},

		Store: StoreConfig{
			DatabasePath: "data/lounge.db",
		},

		Blackjack: BlackjackConfig{
			DealerStand:   17,
			DefaultBet:    10,
			StartingCash:  100,
			EmergencyCash: 10,
			EmergencyBet:  2,
		},

		RPS: RPSConfig{
			TargetScore: 10,
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			File:   "logs/lounge.log",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Missing file keeps the defaults
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides loads an optional .env from the working directory and
// then lets LOUNGE_* variables override the file values.
func (c *Config) applyEnvOverrides() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	return nil
}

// GetDelay returns the animation delay as a duration.
func (c *Config) GetDelay() time.Duration {
	d, err := time.ParseDuration(c.Display.Delay)
	if err != nil {
		return 250 * time.Millisecond
	}
	return d
}

// ValidBackends lists all supported bank backends.
var ValidBackends = []string{"file", "sqlite"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validBackend := false
	for _, b := range ValidBackends {
		if c.Bank.Backend == b {
			validBackend = true
			break
		}
	}
	if !validBackend {
		return fmt.Errorf("invalid bank backend: %s (valid: %v)", c.Bank.Backend, ValidBackends)
	}

	if c.Bank.Backend == "file" && c.Bank.Path == "" {
		return fmt.Errorf("bank path required for file backend")
	}
	if c.Bank.Backend == "sqlite" && c.Store.DatabasePath == "" {
		return fmt.Errorf("database path required for sqlite backend")
	}

	if c.Display.Width < 20 {
		return fmt.Errorf("display width too small: %d", c.Display.Width)
	}

	bj := c.Blackjack
	if bj.DealerStand < 2 || bj.DealerStand > 21 {
		return fmt.Errorf("dealer stand must be between 2 and 21, got %d", bj.DealerStand)
	}
	if bj.StartingCash <= 0 || bj.EmergencyCash <= 0 {
		return fmt.Errorf("starting and emergency cash must be positive")
	}
	if bj.DefaultBet <= 0 || bj.EmergencyBet <= 0 {
		return fmt.Errorf("default and emergency bets must be positive")
	}

	if c.RPS.TargetScore < 0 {
		return fmt.Errorf("rps target score cannot be negative")
	}

	return c.Logging.validate()
}
