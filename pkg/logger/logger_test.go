package logger

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	logger := newLogger()

	assert.NotNil(t, logger)
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)

	formatter, ok := logger.Formatter.(*logrus.TextFormatter)
	require.True(t, ok)

	assert.Equal(t, time.RFC3339Nano, formatter.TimestampFormat)
	assert.True(t, formatter.FullTimestamp)
}

func TestWithLogger(t *testing.T) {
	ctx := context.Background()
	customLogger := logrus.NewEntry(logrus.New())

	ctxWithLogger := WithLogger(ctx, customLogger)

	retrieved := GetLogger(ctxWithLogger)
	assert.Equal(t, customLogger.Logger, retrieved.Logger)
}

func TestGetLoggerFallsBackToGlobal(t *testing.T) {
	retrieved := GetLogger(context.Background())
	assert.Equal(t, L.Logger, retrieved.Logger)
}

func TestSetLogLevel(t *testing.T) {
	require.NoError(t, SetLogLevel("debug"))
	assert.Equal(t, logrus.DebugLevel, L.Logger.GetLevel())

	require.NoError(t, SetLogLevel("info"))
	assert.Equal(t, logrus.InfoLevel, L.Logger.GetLevel())

	assert.Error(t, SetLogLevel("not-a-level"))
}

func TestSetLogFormat(t *testing.T) {
	SetLogFormat("json")
	assert.IsType(t, &logrus.JSONFormatter{}, L.Logger.Formatter)

	SetLogFormat("fmt")
	assert.IsType(t, &logrus.TextFormatter{}, L.Logger.Formatter)
}
