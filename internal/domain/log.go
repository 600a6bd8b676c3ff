package domain

import "github.com/Vovarama1992/go-utils/logger"

// logSwallowed records a failure the page does not show to the visitor.
func logSwallowed(log *logger.ZapLogger, msg string, err error, fields map[string]any) {
	log.Log(logger.LogEntry{
		Level:   "warn",
		Message: msg,
		Fields:  fields,
		Error:   err,
	})
}
