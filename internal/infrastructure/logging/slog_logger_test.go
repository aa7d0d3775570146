package logging

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestSlogLogger_WritesJSONWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLoggerWithWriter("info", &buf).With("request_id", "abc")

	logger.Info("patient created", "patient_id", "p-1")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("saída não é JSON: %v (%s)", err, buf.String())
	}
	if entry["msg"] != "patient created" {
		t.Errorf("esperava msg 'patient created', obteve %v", entry["msg"])
	}
	if entry["request_id"] != "abc" || entry["patient_id"] != "p-1" {
		t.Errorf("campos ausentes: %v", entry)
	}
}

func TestSlogLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLoggerWithWriter("warn", &buf)

	logger.Debug("ignored")
	logger.Info("ignored")
	if buf.Len() != 0 {
		t.Fatalf("mensagens abaixo de warn não deveriam ser escritas: %s", buf.String())
	}

	logger.Warn("kept")
	if buf.Len() == 0 {
		t.Error("mensagem warn deveria ser escrita")
	}
}
