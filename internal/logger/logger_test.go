package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

// TestNew tests the New function.
func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level zapcore.LevelEnabler
	}{
		{name: "with debug level", level: zapcore.DebugLevel},
		{name: "with error level", level: zapcore.ErrorLevel},
		{name: "with nil level", level: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.NotNil(t, New(tt.level))
		})
	}
}

// TestParseLogLevel tests the ParseLogLevel function.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected zapcore.Level
		valid    bool
	}{
		{input: "debug", expected: zapcore.DebugLevel, valid: true},
		{input: "info", expected: zapcore.InfoLevel, valid: true},
		{input: "warn", expected: zapcore.WarnLevel, valid: true},
		{input: "error", expected: zapcore.ErrorLevel, valid: true},
		{input: "fatal", expected: zapcore.FatalLevel, valid: true},
		{input: "DEBUG", expected: zapcore.DebugLevel, valid: true},
		{input: " Warn ", expected: zapcore.WarnLevel, valid: true},
		{input: "verbose", expected: zapcore.InfoLevel, valid: false},
		{input: "", expected: zapcore.InfoLevel, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			level, valid := ParseLogLevel(tt.input)
			assert.Equal(t, tt.expected, level)
			assert.Equal(t, tt.valid, valid)
		})
	}
}

// TestSetLogger tests the SetLogger function.
func TestSetLogger(t *testing.T) {
	// Not parallel: mutates the process-wide logger.
	originalLogger := Logger()
	defer SetLogger(originalLogger)

	newLogger := New(zapcore.DebugLevel)
	SetLogger(newLogger)

	assert.Same(t, newLogger, Logger())
}

// TestSetLevel tests SetLevel together with IsDebugLevel.
func TestSetLevel(t *testing.T) {
	// Not parallel: mutates the process-wide level.
	originalLevel := Level()
	defer SetLevel(originalLevel)

	SetLevel(zapcore.DebugLevel)
	assert.Equal(t, zapcore.DebugLevel, Level())
	assert.True(t, IsDebugLevel())

	SetLevel(zapcore.ErrorLevel)
	assert.Equal(t, zapcore.ErrorLevel, Level())
	assert.False(t, IsDebugLevel())
}

// TestFromContext tests that a logger attached to a context is preferred over the global one.
func TestFromContext(t *testing.T) {
	t.Parallel()

	scoped := New(zapcore.WarnLevel)

	assert.Same(t, scoped, FromContext(ToContext(context.Background(), scoped)))
	assert.NotNil(t, FromContext(context.Background()))
	assert.NotSame(t, scoped, FromContext(WithKV(context.Background(), "key", "value")))
}

// TestContextLoggingFunctions tests that the context-based helpers do not panic.
func TestContextLoggingFunctions(t *testing.T) {
	t.Parallel()

	ctx := WithKV(context.Background(), "request_id", "abc")

	assert.NotPanics(t, func() {
		Debug(ctx, "test debug message")
		Debugf(ctx, "test debug message: %s", "formatted")
		DebugKV(ctx, "test debug message", "key", "value")
		Info(ctx, "test info message")
		Infof(ctx, "test info message: %s", "formatted")
		InfoKV(ctx, "test info message", "key", "value")
		Warn(ctx, "test warn message")
		Warnf(ctx, "test warn message: %s", "formatted")
		WarnKV(ctx, "test warn message", "key", "value")
		Error(ctx, "test error message")
		Errorf(ctx, "test error message: %s", "formatted")
		ErrorKV(ctx, "test error message", "key", "value")
	})
}
