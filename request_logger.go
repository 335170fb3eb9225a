package client

// RequestLogger receives the log lines of every [Client.Post]: preparation,
// each form parameter (secrets masked) and the raw response status at debug
// level, success at info level, and status or transport failures at error
// level. Supply an implementation via [WithRequestLogger].
//
// The resty transport logs its own warnings through the same value, such as
// Basic credentials sent over plain HTTP, so a RequestLogger must also
// satisfy resty's Logger.
type RequestLogger interface {
	Errorf(format string, v ...any)
	Warnf(format string, v ...any)
	Infof(format string, v ...any)
	Debugf(format string, v ...any)
}

// NoopLogger is a [RequestLogger] that silently discards all log messages.
// It is the default logger used when no logger is provided to [New].
type NoopLogger struct{}

func (l *NoopLogger) Errorf(_ string, _ ...any) {}
func (l *NoopLogger) Warnf(_ string, _ ...any)  {}
func (l *NoopLogger) Infof(_ string, _ ...any)  {}
func (l *NoopLogger) Debugf(_ string, _ ...any) {}
