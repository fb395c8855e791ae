package port

// Fields - structured context attached to a log entry.
type Fields map[string]interface{}

// LoggerPort abstracts the logging backend so the core never depends on a
// concrete handler (stdout, fluent bit, or both).
type LoggerPort interface {
	Debug(msg string, fields Fields)
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	Error(msg string, err error, fields Fields)
	WithFields(fields Fields) LoggerPort
}
