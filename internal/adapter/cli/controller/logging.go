package controller

import (
	"time"

	"github.com/iDheer/bank-ledger/internal/logger"
)

func logCommand(command string) {
	logger.Info("command received", logger.Fields{
		"command": command,
	})
}

// logOutcome records loop telemetry. completed is false only when the
// handler could not finish reading its arguments; rejected commands still
// count as completed because their outcome was rendered.
func logOutcome(command string, completed bool, start time.Time) {
	logger.Info("command handled", logger.Fields{
		"command":    command,
		"completed":  completed,
		"durationMs": time.Since(start).Milliseconds(),
	})
}
