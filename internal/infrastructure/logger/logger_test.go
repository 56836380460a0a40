package logger

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
	}{
		{"default config", DefaultConfig()},
		{"production config", ProductionConfig()},
		{"debug console", &Config{Level: "debug", Format: "console", Output: "stdout", TimeFormat: "2006-01-02 15:04:05"}},
		{"json to stderr", &Config{Level: "info", Format: "json", Output: "stderr", TimeFormat: "2006-01-02 15:04:05"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.cfg)
			require.NoError(t, err)
			assert.NotNil(t, log)
		})
	}
}

func TestNewForEnvironment(t *testing.T) {
	// Unknown environments fall back to the development config.
	for _, env := range []string{"development", "production", "staging"} {
		t.Run(env, func(t *testing.T) {
			log, err := NewForEnvironment(env)
			require.NoError(t, err)
			assert.NotNil(t, log)
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"fatal", zapcore.FatalLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.level))
		})
	}
}

func TestCreateWriter(t *testing.T) {
	assert.NotNil(t, createWriter("stdout"))
	assert.NotNil(t, createWriter("STDERR"))

	// A path that is neither stdout nor stderr opens a log file.
	logPath := filepath.Join(t.TempDir(), "server.log")
	assert.NotNil(t, createWriter(logPath))
}

func TestCreateEncoder(t *testing.T) {
	console := &Config{Level: "info", Format: "console", Output: "stdout", TimeFormat: "2006-01-02 15:04:05"}
	assert.NotNil(t, createEncoder(console))

	jsonCfg := &Config{Level: "info", Format: "json", Output: "stdout", TimeFormat: "2006-01-02 15:04:05"}
	assert.NotNil(t, createEncoder(jsonCfg))
}

func TestJSONOutputCarriesFields(t *testing.T) {
	var buf bytes.Buffer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zapcore.EncoderConfig{
			LevelKey:    "level",
			MessageKey:  "msg",
			EncodeLevel: zapcore.LowercaseLevelEncoder,
		}),
		zapcore.AddSync(&buf),
		zapcore.InfoLevel,
	)
	log := zap.New(core)

	log.Info("closing stock recomputed", zap.String("item_code", "MS-2MM"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "closing stock recomputed", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "MS-2MM", entry["item_code"])
}

func TestLevelGate(t *testing.T) {
	var buf bytes.Buffer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zapcore.EncoderConfig{MessageKey: "msg"}),
		zapcore.AddSync(&buf),
		zapcore.InfoLevel,
	)
	log := zap.New(core)

	log.Debug("snapshot cache hit")
	assert.Empty(t, buf.String())

	log.Info("snapshot rebuilt")
	assert.Contains(t, buf.String(), "snapshot rebuilt")
}

func TestWithAndNamed(t *testing.T) {
	log, err := NewForEnvironment("development")
	require.NoError(t, err)

	child := With(log, zap.String("component", "reconcile"))
	assert.NotNil(t, child)
	assert.NotEqual(t, log, child)

	named := Named(log, "hub")
	assert.NotNil(t, named)
	assert.NotEqual(t, log, named)
}

func TestSync(t *testing.T) {
	log, err := NewForEnvironment("development")
	require.NoError(t, err)

	// stdout may reject Sync on some platforms; it must not panic.
	assert.NotPanics(t, func() {
		_ = Sync(log)
	})
}
