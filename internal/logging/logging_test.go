package logging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/cristianoliveira/primesearch/internal/config"
	"github.com/stretchr/testify/require"
)

func setupTest(t *testing.T) string {
	tmp := t.TempDir()
	// Point state_dir inside tmp
	t.Setenv("XDG_STATE_HOME", tmp)
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	config.Load()
	return tmp
}

func readLastLine(t *testing.T, logDir string) string {
	t.Helper()
	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	data, err := os.ReadFile(filepath.Join(logDir, entries[0].Name()))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	return lines[len(lines)-1]
}

func TestConfigFromGlobal(t *testing.T) {
	setupTest(t)

	t.Setenv("PRIMESEARCH_LOGGING_ENABLED", "true")
	t.Setenv("PRIMESEARCH_LOGGING_LEVEL", "warn")
	t.Setenv("PRIMESEARCH_LOGGING_MAX_FILES", "5")
	config.Load()

	cfg := FromGlobalConfig()
	require.True(t, cfg.Enabled)
	require.Equal(t, "warn", cfg.Level)
	require.Equal(t, 5, cfg.MaxFiles)
	require.Equal(t, filepath.Base(os.Args[0]), cfg.Command)
	require.Equal(t, os.Getpid(), cfg.PID)
}

func TestLogLevelMapping(t *testing.T) {
	setupTest(t)

	t.Setenv("PRIMESEARCH_DEBUG", "true")
	t.Setenv("PRIMESEARCH_LOGGING_LEVEL", "info")
	config.Load()
	require.Equal(t, "debug", FromGlobalConfig().Level)

	// debug wins over quiet
	t.Setenv("PRIMESEARCH_QUIET", "true")
	config.Load()
	require.Equal(t, "debug", FromGlobalConfig().Level)

	t.Setenv("PRIMESEARCH_DEBUG", "")
	config.Load()
	require.Equal(t, "error", FromGlobalConfig().Level)

	t.Setenv("PRIMESEARCH_QUIET", "")
	t.Setenv("PRIMESEARCH_LOGGING_LEVEL", "warn")
	config.Load()
	require.Equal(t, "warn", FromGlobalConfig().Level)
}

func TestLogDir(t *testing.T) {
	tmp := setupTest(t)

	stateDir := config.Get("state_dir", "")
	require.True(t, strings.HasPrefix(stateDir, tmp), "state_dir %s not in temp dir %s", stateDir, tmp)

	logDir, err := LogDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(stateDir, "logs"), logDir)
	info, err := os.Stat(logDir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
	require.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

func TestInitDisabled(t *testing.T) {
	logger, err := Init(Config{Enabled: false})
	require.NoError(t, err)
	require.IsType(t, noopLogger{}, logger)
	logger.Debug("test")
	logger.Info("test")
	logger.Warn("test")
	logger.Error("test")
	require.NoError(t, logger.Shutdown())
}

func TestInitEnabledCreatesFile(t *testing.T) {
	setupTest(t)
	t.Setenv("PRIMESEARCH_LOGGING_ENABLED", "true")
	config.Load()

	cfg := FromGlobalConfig()
	cfg.Command = "testcmd"
	logger, err := Init(cfg)
	require.NoError(t, err)
	defer logger.Shutdown()

	logDir := filepath.Join(config.Get("state_dir", ""), "logs")
	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	fname := entries[0].Name()
	require.True(t, strings.HasPrefix(fname, "primesearch_"))
	require.Contains(t, fname, fmt.Sprintf("_PID%d_", os.Getpid()))
	require.Contains(t, fname, "_testcmd.log")
	info, err := os.Stat(filepath.Join(logDir, fname))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoggingWritesJSON(t *testing.T) {
	setupTest(t)
	t.Setenv("PRIMESEARCH_LOGGING_ENABLED", "true")
	config.Load()

	logger, err := Init(FromGlobalConfig())
	require.NoError(t, err)
	logger.Info("major report", "prime", uint32(15485863), "interval", 1000000)
	require.NoError(t, logger.Shutdown())

	var entry map[string]interface{}
	line := readLastLine(t, filepath.Join(config.Get("state_dir", ""), "logs"))
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	require.Equal(t, "info", entry["level"])
	require.Equal(t, "major report", entry["msg"])
	require.Equal(t, float64(os.Getpid()), entry["pid"])
	require.Equal(t, float64(15485863), entry["prime"])
	require.IsType(t, "", entry["command"])
}

func TestNewWriterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, Config{Level: "warn", Command: "test", PID: 1})

	logger.Info("dropped")
	logger.Warn("kept", "count", 3)

	out := buf.String()
	require.NotContains(t, out, "dropped")
	require.Contains(t, out, `"msg":"kept"`)
	require.Contains(t, out, `"count":3`)
	require.NoError(t, logger.Shutdown())
}

func TestRotationLeavesRoomForNewFile(t *testing.T) {
	setupTest(t)
	t.Setenv("PRIMESEARCH_LOGGING_ENABLED", "true")
	t.Setenv("PRIMESEARCH_LOGGING_MAX_FILES", "2")
	config.Load()

	cfg := FromGlobalConfig()
	logDir, err := LogDir()
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		path := filepath.Join(logDir, fmt.Sprintf("primesearch_20250101_12000%d_PID999_test.log", i))
		f, err := os.Create(path)
		require.NoError(t, err)
		f.Close()
		// i=2 is the oldest
		old := time.Now().Add(-time.Duration(i+1) * time.Hour)
		require.NoError(t, os.Chtimes(path, old, old))
	}

	logger, err := Init(cfg)
	require.NoError(t, err)
	logger.Shutdown()

	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	_, err = os.Stat(filepath.Join(logDir, "primesearch_20250101_120000_PID999_test.log"))
	require.NoError(t, err, "newest old file should survive")
}

func TestRotationIgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"other.log", "primesearch_a.txt", "primesearch_b.log"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0600))
	}
	require.NoError(t, rotate(dir, 1))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	require.ElementsMatch(t, []string{"other.log", "primesearch_a.txt"}, names)
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, Config{Level: "info", Command: "test", PID: 1})

	child := logger.With("session", "abc")
	child.Info("with context")

	require.Contains(t, buf.String(), `"session":"abc"`)
}

func TestGlobalLogger(t *testing.T) {
	setupTest(t)
	t.Setenv("PRIMESEARCH_LOGGING_ENABLED", "true")
	config.Load()

	require.NoError(t, InitGlobal())
	defer ShutdownGlobal()

	GetGlobal().Info("global info")
	require.NotEmpty(t, CurrentLogFile())
}

func TestLevelParsing(t *testing.T) {
	require.Equal(t, clog.DebugLevel, parseLevel("debug"))
	require.Equal(t, clog.InfoLevel, parseLevel("info"))
	require.Equal(t, clog.WarnLevel, parseLevel("warn"))
	require.Equal(t, clog.WarnLevel, parseLevel("warning"))
	require.Equal(t, clog.ErrorLevel, parseLevel("error"))
	require.Equal(t, clog.InfoLevel, parseLevel("unknown"))
}
