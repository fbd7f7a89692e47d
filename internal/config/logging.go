package config

import (
	"fmt"
	"slices"
	"sort"
)

// LogCategories names every logger the lounge writes to. Keys under
// logging.categories must come from this list.
//
//	boot       config resolution, seed, database open
//	menu       launcher picks
//	blackjack  deals, dealer turns, settlement
//	rps        throws and match progress
//	tictactoe  moves and AI timing
//	bank       cash in and cash out
//	store      SQLite reads and writes
var LogCategories = []string{"boot", "menu", "blackjack", "rps", "tictactoe", "bank", "store"}

// LoggingConfig controls the debug log file. The games own the terminal, so
// nothing is logged unless debug_mode is on.
type LoggingConfig struct {
	DebugMode bool   `yaml:"debug_mode" env:"LOUNGE_DEBUG"`
	Level     string `yaml:"level" env:"LOUNGE_LOG_LEVEL"` // debug, info, warn, error
	Format    string `yaml:"format"`                       // text or json
	File      string `yaml:"file" env:"LOUNGE_LOG_FILE"`

	// Categories silences individual games or subsystems, e.g.
	// {store: false} keeps SQLite chatter out of a blackjack session log.
	Categories map[string]bool `yaml:"categories"`
}

// IsCategoryEnabled reports whether category writes to the log. Categories
// left out of the map follow debug_mode.
func (c *LoggingConfig) IsCategoryEnabled(category string) bool {
	if !c.DebugMode {
		return false
	}
	enabled, ok := c.Categories[category]
	return !ok || enabled
}

func (c *LoggingConfig) validate() error {
	switch c.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid log format: %s (valid: text, json)", c.Format)
	}

	var unknown []string
	for name := range c.Categories {
		if !slices.Contains(LogCategories, name) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("unknown log categories %v (valid: %v)", unknown, LogCategories)
	}
	return nil
}
