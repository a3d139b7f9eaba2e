package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/collections-admin-api/internal/config"
	"github.com/rs/zerolog"
)

func TestNewWithWriter_JSON(t *testing.T) {
	t.Setenv("ENV", "production")
	var buf bytes.Buffer

	log := NewWithWriter(config.LogConfig{Level: "warn", Format: "json"}, &buf)
	log.Info().Msg("dropped")
	log.Warn().Str("collection_id", "c1").Msg("kept")

	var entry map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("Expected a single JSON line, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "kept" {
		t.Errorf("Expected message 'kept', got %v", entry["message"])
	}
	if entry["service"] != "collections-admin-api" {
		t.Errorf("Expected service field, got %v", entry["service"])
	}
	if entry["collection_id"] != "c1" {
		t.Errorf("Expected collection_id field, got %v", entry["collection_id"])
	}
}

func TestNewWithWriter_LevelFallback(t *testing.T) {
	tests := map[string]zerolog.Level{
		"":      zerolog.InfoLevel,
		"bogus": zerolog.InfoLevel,
		"DEBUG": zerolog.DebugLevel,
		"error": zerolog.ErrorLevel,
		"warn":  zerolog.WarnLevel,
	}

	for input, want := range tests {
		log := NewWithWriter(config.LogConfig{Level: input}, &bytes.Buffer{})
		if got := log.GetLevel(); got != want {
			t.Errorf("Level %q: expected %v, got %v", input, want, got)
		}
	}
}
