package logsvc

import (
	"log"
	"os"

	"github.com/iecliberdade/ebdconectada/core"
)

// StdLogger writes to a standard log.Logger. It is the default backend for
// local development and tests.
type StdLogger struct {
	std *log.Logger
}

var _ core.Logger = (*StdLogger)(nil)

func NewStdLogger(std *log.Logger) *StdLogger {
	if std == nil {
		std = log.New(os.Stderr, "", log.LstdFlags)
	}
	return &StdLogger{std: std}
}

func (l StdLogger) print(level, msg string, args []interface{}) {
	l.std.Println(level + ": " + msg)
	for _, arg := range args {
		l.std.Printf("%+v\n", arg)
	}
}

func (l StdLogger) Debug(msg string, args ...interface{}) {
	if core.Conf.GetBool("debug") {
		l.print("DEBUG", msg, args)
	}
}

func (l StdLogger) Info(msg string, args ...interface{}) {
	l.print("INFO", msg, args)
}

func (l StdLogger) Warn(msg string, args ...interface{}) {
	l.print("WARN", msg, args)
}

func (l StdLogger) Error(msg string, args ...interface{}) {
	l.print("ERROR", msg, args)
}

func (l StdLogger) Fatal(msg string, args ...interface{}) {
	l.print("FATAL", msg, args)
	l.std.Fatal(msg)
}
