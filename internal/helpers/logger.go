package helpers

import (
	"io"
	"log"
)

// Logger prefixes every line with a component name. Debug lines are dropped
// unless debug output was enabled.
type Logger struct {
	prefix string
	out    *log.Logger
	debug  bool
}

func NewLogger(prefix string, w io.Writer, debug bool) *Logger {
	return &Logger{
		prefix: "[" + prefix + "]",
		out:    log.New(w, "", log.LstdFlags),
		debug:  debug,
	}
}

func (l *Logger) Info(msg string, args ...interface{}) {
	l.out.Printf("%s INFO: %s %v", l.prefix, msg, args)
}

func (l *Logger) Warn(msg string, args ...interface{}) {
	l.out.Printf("%s WARN: %s %v", l.prefix, msg, args)
}

func (l *Logger) Error(msg string, err error, args ...interface{}) {
	l.out.Printf("%s ERROR: %s - %v %v", l.prefix, msg, err, args)
}

func (l *Logger) Debug(msg string, args ...interface{}) {
	if !l.debug {
		return
	}
	l.out.Printf("%s DEBUG: %s %v", l.prefix, msg, args)
}
