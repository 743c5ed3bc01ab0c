package server

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanspearman/blog-v1/internal/config"
	loggerPkg "github.com/bryanspearman/blog-v1/internal/logger"
)

func TestNew_WithoutRedis(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Observability = config.DefaultObservabilityConfig()
	logger := zerolog.Nop()

	s, err := New(cfg, &logger, loggerPkg.NewLoggerService(cfg.Observability))
	require.NoError(t, err)

	assert.NotNil(t, s.Metrics)
	assert.Nil(t, s.Redis)
	assert.Nil(t, s.Job)
}

func TestStart_RequiresSetup(t *testing.T) {
	cfg := config.DefaultConfig()
	logger := zerolog.Nop()
	s := &Server{Config: cfg, Logger: &logger}

	assert.Error(t, s.Start())
	assert.NoError(t, s.Shutdown(context.Background()))
}
