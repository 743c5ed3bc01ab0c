package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanspearman/blog-v1/internal/config"
)

func TestNewLoggerService_WithoutLicenseKey(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()

	ls := NewLoggerService(cfg)

	require.NotNil(t, ls)
	assert.Nil(t, ls.GetApplication())
	ls.Shutdown()
}

func TestNewLogger_ProductionWritesJSON(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Environment = "production"

	var buf bytes.Buffer
	log := newLogger(cfg, nil, &buf)
	log.Info().Str("post_id", "1").Msg("post created")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "post created", line["message"])
	assert.Equal(t, "blog-posts", line["service"])
	assert.Equal(t, "production", line["environment"])
	assert.Equal(t, "1", line["post_id"])
}

func TestNewLogger_RespectsLevel(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Environment = "production"
	cfg.Logging.Level = "warn"

	var buf bytes.Buffer
	log := newLogger(cfg, nil, &buf)
	log.Info().Msg("hidden")

	assert.Zero(t, buf.Len())
}

func TestNewLogger_DevelopmentUsesConsole(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()

	var buf bytes.Buffer
	log := newLogger(cfg, nil, &buf)
	log.Info().Msg("hello")

	assert.Contains(t, buf.String(), "hello")
	assert.False(t, json.Valid(buf.Bytes()))
}

func TestWithTraceContext_NilTransaction(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.DefaultObservabilityConfig()
	cfg.Environment = "production"

	log := WithTraceContext(newLogger(cfg, nil, &buf), nil)
	log.Info().Msg("x")

	assert.NotContains(t, buf.String(), "trace.id")
}
