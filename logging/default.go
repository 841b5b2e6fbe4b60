package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"sync"

	"golang.org/x/exp/maps"
)

// DefaultLogger writes through the standard log package.
// Debug/Info go to stdout, Warn/Error to stderr.
type DefaultLogger struct {
	mu           *sync.Mutex
	stdoutLogger *log.Logger
	stderrLogger *log.Logger
	level        Level
	fields       Fields
}

func NewDefaultLogger() *DefaultLogger {
	return NewWriterLogger(os.Stdout, os.Stderr)
}

// NewWriterLogger is NewDefaultLogger with explicit destinations.
func NewWriterLogger(stdout, stderr io.Writer) *DefaultLogger {
	return &DefaultLogger{
		mu:           &sync.Mutex{},
		stdoutLogger: log.New(stdout, "", log.LstdFlags),
		stderrLogger: log.New(stderr, "", log.LstdFlags),
		level:        InfoLevel,
		fields:       make(Fields),
	}
}

func (d *DefaultLogger) formatMessage(level Level, err error, msg string, fields ...Fields) string {
	allFields := maps.Clone(d.fields)
	if allFields == nil {
		allFields = make(Fields)
	}
	for _, f := range fields {
		maps.Copy(allFields, f)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", level.String(), msg)

	if err != nil {
		fmt.Fprintf(&b, ": %v", err)
	}

	// sorted so lines are stable
	keys := maps.Keys(allFields)
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, allFields[k])
	}

	return b.String()
}

func (d *DefaultLogger) log(level Level, err error, msg string, fields ...Fields) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if level < d.level {
		return
	}

	formattedMsg := d.formatMessage(level, err, msg, fields...)

	switch level {
	case DebugLevel, InfoLevel:
		d.stdoutLogger.Println(formattedMsg)
	default:
		d.stderrLogger.Println(formattedMsg)
	}
}

func (d *DefaultLogger) Debug(msg string, fields ...Fields) {
	d.log(DebugLevel, nil, msg, fields...)
}

func (d *DefaultLogger) Info(msg string, fields ...Fields) {
	d.log(InfoLevel, nil, msg, fields...)
}

func (d *DefaultLogger) Warn(msg string, fields ...Fields) {
	d.log(WarnLevel, nil, msg, fields...)
}

func (d *DefaultLogger) Error(err error, msg string, fields ...Fields) {
	d.log(ErrorLevel, err, msg, fields...)
}

func (d *DefaultLogger) WithFields(fields Fields) Logger {
	d.mu.Lock()
	defer d.mu.Unlock()

	newFields := maps.Clone(d.fields)
	if newFields == nil {
		newFields = make(Fields)
	}
	maps.Copy(newFields, fields)

	return &DefaultLogger{
		mu:           d.mu,
		stdoutLogger: d.stdoutLogger,
		stderrLogger: d.stderrLogger,
		level:        d.level,
		fields:       newFields,
	}
}

func (d *DefaultLogger) SetLevel(level Level) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.level = level
}
