package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew_JSONWithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "debug", Format: "json", Output: &buf, Component: "contact"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger.Debug("hello", "field", "nombre")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode: %v (%s)", err, buf.String())
	}
	if entry["component"] != "contact" || entry["msg"] != "hello" || entry["field"] != "nombre" {
		t.Fatalf("unexpected entry: %v", entry)
	}
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "warn", Output: &buf})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger.Info("quiet")
	logger.Error("loud")
	if strings.Contains(buf.String(), "quiet") || !strings.Contains(buf.String(), "loud") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestNew_RejectsUnknownSettings(t *testing.T) {
	if _, err := New(Config{Level: "chatty"}); err == nil {
		t.Fatalf("expected level error")
	}
	if _, err := New(Config{Format: "xml"}); err == nil {
		t.Fatalf("expected format error")
	}
}
