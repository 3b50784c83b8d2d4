package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"fatal":   zapcore.FatalLevel,
		"bogus":   zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNewZapLogger(t *testing.T) {
	for _, cfg := range []*ZapLoggerConfig{
		{IsDevelopment: true, Encoding: "console", Level: "debug"},
		{Encoding: "json", Level: "info", DisableCaller: true, DisableStacktrace: true},
	} {
		l := NewZapLogger(cfg)
		assert.NotNil(t, l)
		l.Named("test").With(zap.String("k", "v")).Debug("hello")
	}
}

func TestWrap_ForwardsFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := Wrap(zap.New(core)).With(zap.String("draft_id", "d1"))

	l.Warn("locked", zap.Int("row", 2))

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "locked", entries[0].Message)
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
		ctx := entries[0].ContextMap()
		assert.Equal(t, "d1", ctx["draft_id"])
		assert.Equal(t, int64(2), ctx["row"])
	}
}
