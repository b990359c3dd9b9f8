package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		jsonOutput bool
	}{
		{name: "JSON output mode", jsonOutput: true},
		{name: "Console output mode", jsonOutput: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Logger = nil
			JSONOutput = false

			require.NoError(t, Initialize(tt.jsonOutput, VerbosityInfo))
			require.NotNil(t, Logger)
			assert.Equal(t, tt.jsonOutput, JSONOutput)

			Logger.Sync()
			Logger = zap.NewNop().Sugar()
		})
	}
}

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zapcore.Level
	}{
		{-1, zapcore.WarnLevel},
		{VerbosityUser, zapcore.WarnLevel},
		{VerbosityInfo, zapcore.InfoLevel},
		{VerbosityDebug, zapcore.DebugLevel},
		{7, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, VerbosityToLevel(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestLevelName(t *testing.T) {
	assert.Equal(t, "User", LevelName(0))
	assert.Equal(t, "Info (-v)", LevelName(1))
	assert.Equal(t, "Debug (-vv)", LevelName(3))
}

func TestHelpersUseGlobalLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	previous := Logger
	Logger = zap.New(core).Sugar()
	defer func() { Logger = previous }()

	Infow("generated", FieldModel, "Vehicle")
	Warnw("skipped", FieldEnvironment, "production")
	Errorw("failed", FieldError, "boom")
	Debugw("event", FieldFile, "schema.json")

	require.Equal(t, 4, logs.Len())
	entries := logs.All()
	assert.Equal(t, "generated", entries[0].Message)
	assert.Equal(t, "Vehicle", entries[0].ContextMap()[FieldModel])
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
}

func TestComponentLogger_Named(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	previous := Logger
	Logger = zap.New(core).Sugar()
	defer func() { Logger = previous }()

	log := ChildLogger(ComponentLogger("typegen"), FieldRunID, "abc")
	log.Infow("run complete")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "typegen", entry.LoggerName)
	assert.Equal(t, "abc", entry.ContextMap()[FieldRunID])
}
