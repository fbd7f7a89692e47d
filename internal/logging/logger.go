// Package logging provides config-driven categorized logging for the lounge.
// Each category gets its own named zap logger. Output goes to a log file
// because the games own stdout; when debug_mode is false nothing is written.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gamelounge/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot      Category = "boot"      // Startup, config resolution
	CategoryMenu      Category = "menu"      // Launcher selections
	CategoryBlackjack Category = "blackjack" // Deals, dealer turns, settlement
	CategoryRPS       Category = "rps"       // Throws and match progress
	CategoryTicTacToe Category = "tictactoe" // Moves and AI decisions
	CategoryBank      Category = "bank"      // Cash in / cash out
	CategoryStore     Category = "store"     // SQLite operations
)

var (
	mu      sync.RWMutex
	root    = zap.NewNop()
	cfg     config.LoggingConfig
	loggers = make(map[Category]*zap.Logger)
	logFile *os.File
)

// Initialize builds the root logger from config. Relative log paths are
// resolved against workspace. Safe to call more than once; the previous
// file is closed.
func Initialize(lc config.LoggingConfig, workspace string) error {
	if !lc.DebugMode {
		return InitializeWithWriter(lc, nil)
	}

	path := lc.File
	if path == "" {
		path = "lounge.log"
	}
	if !filepath.IsAbs(path) && workspace != "" {
		path = filepath.Join(workspace, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	if err := InitializeWithWriter(lc, zapcore.AddSync(f)); err != nil {
		f.Close()
		return err
	}

	mu.Lock()
	logFile = f
	mu.Unlock()

	Get(CategoryBoot).Info("logging initialized",
		zap.String("file", path),
		zap.String("level", lc.Level))
	return nil
}

// InitializeWithWriter installs a root logger writing to w. A nil writer or
// disabled debug mode installs a no-op logger.
func InitializeWithWriter(lc config.LoggingConfig, w zapcore.WriteSyncer) error {
	next := zap.NewNop()
	if lc.DebugMode && w != nil {
		level := zapcore.InfoLevel
		if lc.Level != "" {
			parsed, err := zapcore.ParseLevel(lc.Level)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", lc.Level, err)
			}
			level = parsed
		}

		var encoder zapcore.Encoder
		if lc.Format == "json" {
			encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		} else {
			encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		}
		next = zap.New(zapcore.NewCore(encoder, w, level))
	}

	CloseAll()

	mu.Lock()
	defer mu.Unlock()
	root = next
	cfg = lc
	loggers = make(map[Category]*zap.Logger)
	return nil
}

// IsCategoryEnabled returns whether a specific category is enabled
func IsCategoryEnabled(category Category) bool {
	mu.RLock()
	defer mu.RUnlock()
	return cfg.IsCategoryEnabled(string(category))
}

// Get returns (or creates) a logger for the given category.
// Returns a no-op logger if debug mode is disabled or category is disabled.
func Get(category Category) *zap.Logger {
	if !IsCategoryEnabled(category) {
		return zap.NewNop()
	}

	mu.RLock()
	if l, ok := loggers[category]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()

	// Double-check after acquiring write lock
	if l, ok := loggers[category]; ok {
		return l
	}
	l := root.Named(string(category))
	loggers[category] = l
	return l
}

// CloseAll flushes the root logger and closes the log file.
func CloseAll() {
	mu.Lock()
	defer mu.Unlock()

	_ = root.Sync()
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	root = zap.NewNop()
	loggers = make(map[Category]*zap.Logger)
}

// Timer tracks how long an operation took
type Timer struct {
	category  Category
	operation string
	start     time.Time
}

// StartTimer starts timing an operation
func StartTimer(category Category, operation string) *Timer {
	return &Timer{
		category:  category,
		operation: operation,
		start:     time.Now(),
	}
}

// Stop logs the elapsed time at debug level and returns it.
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	Get(t.category).Debug("operation finished",
		zap.String("op", t.operation),
		zap.Duration("elapsed", elapsed))
	return elapsed
}
