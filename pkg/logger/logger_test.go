package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/fr4nk3nst1ner/salaryscope/pkg/logger"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		debug       bool
		wantDebug   bool
	}{
		{name: "development", environment: logger.DevelopmentEnvironment},
		{name: "development debug", environment: logger.DevelopmentEnvironment, debug: true, wantDebug: true},
		{name: "production", environment: logger.ProductionEnvironment},
		{name: "production debug", environment: logger.ProductionEnvironment, debug: true, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotPanics(t, func() {
				logger.Setup(tt.environment, tt.debug)
			})
			require.NotNil(t, logger.Get(context.Background()))
			require.Equal(t, tt.wantDebug, logger.IsDebug(context.Background()))
		})
	}
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))
	ctx = logger.WithFields(ctx, zap.String("chart", "salary_distribution"))

	logger.Info(ctx, "chart rendered")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "chart rendered", entries[0].Message)
	require.Equal(t, "salary_distribution", entries[0].ContextMap()["chart"])
}

func TestLoggingFunctions(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	logger.Warn(ctx, "warn message")
	logger.Error(ctx, "error message")

	require.Equal(t, 4, logs.Len())
}
