// Package logger builds slog loggers and provides attribute helpers for
// consistent structured logging.
//
// Create a logger for the environment the process runs in:
//
//	log := logger.New(logger.WithProduction("sendemail"))
//	log.Info("email sent",
//		logger.Component("handler"),
//		logger.RequestID(reqID),
//		logger.StatusCode(200),
//	)
//
// Attribute helpers return an empty slog.Attr for nil or blank input,
// so logger.Error(err) is safe to pass whether or not err is nil.
//
// Tests can capture output with WithOutput:
//
//	var buf bytes.Buffer
//	log := logger.New(logger.WithJSONFormatter(), logger.WithOutput(&buf))
package logger
