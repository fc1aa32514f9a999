package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestInfoWritesFields(t *testing.T) {
	buf := &bytes.Buffer{}
	Setup("info", buf)

	Info("ledger opened account", Fields{"accountNumber": 100})

	output := buf.String()
	if output == "" {
		t.Fatal("expected log output, got empty string")
	}
	if !strings.Contains(output, "ledger opened account") {
		t.Errorf("expected message in output, got: %s", output)
	}
	if !strings.Contains(output, "accountNumber") || !strings.Contains(output, "100") {
		t.Errorf("expected accountNumber field in output, got: %s", output)
	}
}

func TestInfoBelowLevelIsDropped(t *testing.T) {
	buf := &bytes.Buffer{}
	Setup("error", buf)

	Info("should not appear", nil)

	if buf.Len() != 0 {
		t.Errorf("expected no output at error level, got: %s", buf.String())
	}
}

func TestErrorIncludesCause(t *testing.T) {
	buf := &bytes.Buffer{}
	Setup("error", buf)

	Error("ledger operation failed", errors.New("account not found"), Fields{"accountNumber": 104})

	output := buf.String()
	if !strings.Contains(output, "account not found") {
		t.Errorf("expected cause in output, got: %s", output)
	}
}

func TestSanitizePayloadMasksHolderName(t *testing.T) {
	payload := map[string]any{
		"holderName": "JohnDoe",
		"kind":       "savings",
	}

	sanitized, ok := SanitizePayload(payload).(map[string]any)
	if !ok {
		t.Fatalf("expected map payload, got %T", SanitizePayload(payload))
	}
	if sanitized["holderName"] != "******" {
		t.Errorf("expected masked holder name, got: %v", sanitized["holderName"])
	}
	if sanitized["kind"] != "savings" {
		t.Errorf("expected kind untouched, got: %v", sanitized["kind"])
	}
}

func TestSanitizePayloadUnmarshalable(t *testing.T) {
	if got := SanitizePayload(func() {}); got != "<unavailable>" {
		t.Errorf("expected <unavailable> for unmarshalable payload, got: %v", got)
	}
}
