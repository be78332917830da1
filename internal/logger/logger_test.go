package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitJSON(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Output: &buf})
	defer Init(Config{Level: "info", Output: &bytes.Buffer{}})

	if Log.GetLevel() != logrus.DebugLevel {
		t.Fatalf("level = %v, want debug", Log.GetLevel())
	}

	Component("world").Debug("carved room")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["component"] != "world" {
		t.Errorf("component = %v, want world", entry["component"])
	}
	if entry["msg"] != "carved room" {
		t.Errorf("msg = %v, want %q", entry["msg"], "carved room")
	}
}

func TestInitBadLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "loud", Output: &buf})

	if Log.GetLevel() != logrus.InfoLevel {
		t.Fatalf("level = %v, want info", Log.GetLevel())
	}

	Log.Debug("hidden")
	Log.Info("shown")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("debug message written at info level")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("info message missing")
	}
}
