package logger

import (
	"errors"
	"testing"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithCarriesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := FromCore(core).With(String("component", "reloader"))

	log.Info("catalog reloaded", Int("links", 7))
	log.Warn("mirror failed", Error(errors.New("down")))

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	first := entries[0].ContextMap()
	if first["component"] != "reloader" || first["links"] != int64(7) {
		t.Errorf("fields = %v", first)
	}
	if entries[1].Level != zapcore.WarnLevel {
		t.Errorf("level = %v, want warn", entries[1].Level)
	}
	if entries[1].ContextMap()["error"] != "down" {
		t.Errorf("error field = %v", entries[1].ContextMap()["error"])
	}
}

func TestLevelFiltering(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := FromCore(core)

	log.Debug("hidden")
	log.Debugf("hidden %d", 1)
	log.Infof("shown %d", 2)

	if logs.Len() != 1 || logs.All()[0].Message != "shown 2" {
		t.Errorf("entries = %v", logs.All())
	}
}

func TestNew(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "", "bogus"} {
		if New(level, false) == nil {
			t.Errorf("New(%q) returned nil", level)
		}
	}
	Nop().Info("discarded")
}
