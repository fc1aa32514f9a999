package logger

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

type Fields map[string]any

// The ledger holds no credentials; the only personal data that crosses a log
// line is the account holder's name, so payload dumps mask it.
var sensitiveKeys = map[string]struct{}{
	"holdername":  {},
	"holder_name": {},
}

// Logs go to stderr so stdout stays a clean command surface for the prompt
// loop. Level defaults to warn until Setup is called.
var root = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.WarnLevel)

// Setup replaces the package logger. Level accepts zerolog level names
// ("debug", "info", "warn", "error", "disabled"); anything unparsable falls
// back to warn. A nil writer keeps stderr.
func Setup(level string, w io.Writer) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}
	if w == nil {
		w = os.Stderr
	}
	root = zerolog.New(w).With().Timestamp().Logger().Level(lvl)
}

func Info(message string, fields Fields) {
	root.Info().Fields(eventFields(fields)).Msg(message)
}

func Error(message string, err error, fields Fields) {
	evt := root.Error()
	if err != nil {
		evt = evt.Err(err)
	}
	evt.Fields(eventFields(fields)).Msg(message)
}

// SanitizePayload renders an arbitrary payload JSON-safe and masks sensitive
// keys at any nesting depth.
func SanitizePayload(payload any) any {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "<unavailable>"
	}

	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return "<unavailable>"
	}

	return sanitizeValue(data)
}

func eventFields(fields Fields) map[string]any {
	if len(fields) == 0 {
		return nil
	}

	if m, ok := SanitizePayload(fields).(map[string]any); ok {
		return m
	}

	return map[string]any{"fields": "<unavailable>"}
}

func sanitizeValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, inner := range typed {
			if isSensitiveKey(key) {
				out[key] = "******"
				continue
			}
			out[key] = sanitizeValue(inner)
		}
		return out
	case []any:
		out := make([]any, 0, len(typed))
		for _, item := range typed {
			out = append(out, sanitizeValue(item))
		}
		return out
	default:
		return value
	}
}

func isSensitiveKey(key string) bool {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(key), "-", ""))
	_, ok := sensitiveKeys[normalized]
	return ok
}
