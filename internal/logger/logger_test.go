package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLogLevels(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{level: "error", expected: []string{"ERROR"}, excluded: []string{"WARN", "INFO", "DEBUG"}},
		{level: "warn", expected: []string{"ERROR", "WARN"}, excluded: []string{"INFO", "DEBUG"}},
		{level: "info", expected: []string{"ERROR", "WARN", "INFO"}, excluded: []string{"DEBUG"}},
		{level: "debug", expected: []string{"ERROR", "WARN", "INFO", "DEBUG"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			path := filepath.Join(dir, tt.level+".log")
			cfg := FileConfig{Path: path, MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1}
			if err := InitWithFileConfig(tt.level, cfg, false); err != nil {
				t.Fatalf("init: %v", err)
			}
			Log.Debug("debug message")
			Log.Info("info message")
			Log.Warn("warn message")
			Log.Error("error message")
			Sync()

			content, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read log: %v", err)
			}
			text := string(content)
			for _, exp := range tt.expected {
				if !strings.Contains(text, `"level":"`+exp+`"`) {
					t.Errorf("expected %s in log output", exp)
				}
			}
			for _, exc := range tt.excluded {
				if strings.Contains(text, `"level":"`+exc+`"`) {
					t.Errorf("unexpected %s in log output for level %s", exc, tt.level)
				}
			}
		})
	}
}

func TestFileOutputIsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "island.log")
	l, err := Build("info", DefaultFileConfig(path), false)
	if err != nil {
		t.Fatal(err)
	}
	l.Info("island generated", zap.Int("roads", 42))
	_ = l.Sync()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(content))), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "island generated" || entry["roads"] != float64(42) {
		t.Fatalf("unexpected entry %v", entry)
	}
}

func TestParseLevel(t *testing.T) {
	if lvl, err := ParseLevel(""); err != nil || lvl != zapcore.InfoLevel {
		t.Fatalf("empty level = %v, %v", lvl, err)
	}
	if lvl, err := ParseLevel("DEBUG"); err != nil || lvl != zapcore.DebugLevel {
		t.Fatalf("DEBUG = %v, %v", lvl, err)
	}
	if _, err := ParseLevel("chatty"); err == nil {
		t.Fatal("unknown level should fail")
	}
	if err := Init("chatty", ""); err == nil {
		t.Fatal("Init should surface level errors")
	}
}

func TestBuildWithoutOutputsIsNop(t *testing.T) {
	l, err := Build("info", FileConfig{}, false)
	if err != nil {
		t.Fatal(err)
	}
	if l.Core().Enabled(zapcore.ErrorLevel) {
		t.Fatal("logger without outputs should be disabled")
	}
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/island.log")
	if cfg.Path != "/tmp/island.log" || cfg.MaxSizeMB != 20 || cfg.MaxBackups != 3 || cfg.MaxAgeDays != 7 || !cfg.Compress {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}
