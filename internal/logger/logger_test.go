package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// TestCtxFallsBackToGlobal 上下文没有日志记录器时回退到全局实例，事件不丢失
func TestCtxFallsBackToGlobal(t *testing.T) {
	Init(Config{Level: "debug", Format: "json"})
	assert.NotEqual(t, zerolog.Disabled, Ctx(context.Background()).GetLevel())

	var buf bytes.Buffer
	Logger = Logger.Output(&buf)
	Ctx(context.Background()).Info().Msg("match pipeline event")
	assert.Contains(t, buf.String(), "match pipeline event")
}

// TestCtxPrefersContextLogger 上下文中已有日志记录器时优先使用
func TestCtxPrefersContextLogger(t *testing.T) {
	Init(Config{Level: "debug", Format: "json"})

	var buf bytes.Buffer
	scoped := zerolog.New(&buf)
	ctx := scoped.WithContext(context.Background())
	Ctx(ctx).Info().Msg("scoped event")
	assert.Contains(t, buf.String(), "scoped event")
}
