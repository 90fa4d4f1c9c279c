// Package log is a small leveled logging facade. Packages log through it
// unconditionally, output only happens once main installs a backend with
// SetLogger.
package log

// Levels mirror zapcore.Level numbering so they cast directly. Only the
// levels LevelFromString accepts are exposed.
type Level int8

const (
	LevelDebug Level = iota - 1
	LevelInfo
	LevelWarn
	LevelError
)

type Logger interface {
	Log(level Level, args ...any)
	Logf(level Level, format string, args ...any)
	Logw(level Level, msg string, kvs ...any)
}

var log Logger = &nopLogger{}

func Debug(args ...any)                 { log.Log(LevelDebug, args...) }
func Debugf(format string, args ...any) { log.Logf(LevelDebug, format, args...) }
func Debugw(msg string, kvs ...any)     { log.Logw(LevelDebug, msg, kvs...) }
func Info(args ...any)                  { log.Log(LevelInfo, args...) }
func Infof(format string, args ...any)  { log.Logf(LevelInfo, format, args...) }
func Infow(msg string, kvs ...any)      { log.Logw(LevelInfo, msg, kvs...) }
func Warn(args ...any)                  { log.Log(LevelWarn, args...) }
func Warnf(format string, args ...any)  { log.Logf(LevelWarn, format, args...) }
func Warnw(msg string, kvs ...any)      { log.Logw(LevelWarn, msg, kvs...) }
func Error(args ...any)                 { log.Log(LevelError, args...) }
func Errorf(format string, args ...any) { log.Logf(LevelError, format, args...) }
func Errorw(msg string, kvs ...any)     { log.Logw(LevelError, msg, kvs...) }

type nopLogger struct{}

func (*nopLogger) Log(level Level, args ...any)                 {}
func (*nopLogger) Logf(level Level, format string, args ...any) {}
func (*nopLogger) Logw(level Level, msg string, kvs ...any)     {}

// SetLogger installs the backend. Call it before anything that logs runs,
// the package does no locking.
func SetLogger(l Logger) {
	log = l
}
