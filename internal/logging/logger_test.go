package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"

	"gamelounge/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// syncBuffer is a goroutine-safe buffer usable as a zap sink.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) Sync() error { return nil }

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestDisabledByDefault(t *testing.T) {
	buf := &syncBuffer{}
	if err := InitializeWithWriter(config.LoggingConfig{}, buf); err != nil {
		t.Fatalf("InitializeWithWriter: %v", err)
	}
	t.Cleanup(CloseAll)

	Get(CategoryBank).Info("should not appear")
	if buf.String() != "" {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestCategoriesAreNamed(t *testing.T) {
	buf := &syncBuffer{}
	lc := config.LoggingConfig{DebugMode: true, Level: "debug", Format: "json"}
	if err := InitializeWithWriter(lc, buf); err != nil {
		t.Fatalf("InitializeWithWriter: %v", err)
	}
	t.Cleanup(CloseAll)

	Get(CategoryBlackjack).Info("dealt", zap.Int("cards", 4))
	Get(CategoryRPS).Debug("thrown")

	out := buf.String()
	if !strings.Contains(out, `"logger":"blackjack"`) {
		t.Errorf("missing blackjack logger name in %q", out)
	}
	if !strings.Contains(out, `"cards":4`) {
		t.Errorf("missing field in %q", out)
	}
	if !strings.Contains(out, `"logger":"rps"`) {
		t.Errorf("missing rps logger name in %q", out)
	}
}

func TestCategoryFilter(t *testing.T) {
	buf := &syncBuffer{}
	lc := config.LoggingConfig{
		DebugMode:  true,
		Level:      "info",
		Categories: map[string]bool{"store": false},
	}
	if err := InitializeWithWriter(lc, buf); err != nil {
		t.Fatalf("InitializeWithWriter: %v", err)
	}
	t.Cleanup(CloseAll)

	Get(CategoryStore).Info("hidden")
	Get(CategoryMenu).Info("shown")
	Get(CategoryMenu).Debug("below level")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("store category should be filtered")
	}
	if !strings.Contains(out, "shown") {
		t.Error("menu category should log")
	}
	if strings.Contains(out, "below level") {
		t.Error("debug entry should be dropped at info level")
	}
}

func TestCategoriesMatchConfig(t *testing.T) {
	all := []Category{CategoryBoot, CategoryMenu, CategoryBlackjack, CategoryRPS,
		CategoryTicTacToe, CategoryBank, CategoryStore}
	if len(all) != len(config.LogCategories) {
		t.Fatalf("config lists %d categories, logging defines %d", len(config.LogCategories), len(all))
	}
	for _, c := range all {
		if !slices.Contains(config.LogCategories, string(c)) {
			t.Errorf("category %q missing from config.LogCategories", c)
		}
	}
}

func TestInvalidLevel(t *testing.T) {
	lc := config.LoggingConfig{DebugMode: true, Level: "chatty"}
	if err := InitializeWithWriter(lc, zapcore.AddSync(&bytes.Buffer{})); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestInitializeWritesFile(t *testing.T) {
	dir := t.TempDir()
	lc := config.LoggingConfig{DebugMode: true, Level: "debug", File: "logs/test.log"}
	if err := Initialize(lc, dir); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	StartTimer(CategoryTicTacToe, "ai_move").Stop()
	CloseAll()

	data, err := os.ReadFile(filepath.Join(dir, "logs", "test.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "logging initialized") {
		t.Errorf("boot entry missing: %q", data)
	}
	if !strings.Contains(string(data), "ai_move") {
		t.Errorf("timer entry missing: %q", data)
	}
}
