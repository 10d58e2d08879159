package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type failingHandler struct{ slog.Handler }

func (failingHandler) Handle(context.Context, slog.Record) error { return errors.New("sink down") }

func TestMultiHandlerFansOut(t *testing.T) {
	var info, debug bytes.Buffer
	h := NewMultiHandler(
		slog.NewTextHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)
	log := slog.New(h).With("match.id", "m1").WithGroup("bot")

	log.Debug("Bot chose move", "rule", "fork")
	log.Info("Match finished")

	assert.NotContains(t, info.String(), "Bot chose move")
	assert.Contains(t, info.String(), "Match finished")
	assert.Contains(t, debug.String(), "Bot chose move")
	assert.Contains(t, debug.String(), "match.id=m1")
	assert.Contains(t, debug.String(), "bot.rule=fork")
}

func TestMultiHandlerKeepsGoingOnError(t *testing.T) {
	var buf bytes.Buffer
	text := slog.NewTextHandler(&buf, nil)
	h := NewMultiHandler(failingHandler{text}, text)

	err := slog.New(h).Handler().Handle(context.Background(), slog.NewRecord(time.Time{}, slog.LevelInfo, "hello", 0))
	assert.Error(t, err)
	assert.Contains(t, buf.String(), "hello")
}

func TestInit(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	Init(slog.LevelWarn, &buf)
	slog.Info("quiet")
	slog.Warn("loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}
