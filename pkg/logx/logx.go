package logx

import (
	"fmt"
	"log"
	"os"
	"sync/atomic"
)

// Level controls which messages are emitted
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var currentLevel atomic.Int32

var std = log.New(os.Stderr, "", log.LstdFlags)

// SetLevel sets the minimum level that will be logged
func SetLevel(l Level) {
	currentLevel.Store(int32(l))
}

func enabled(l Level) bool {
	return int32(l) >= currentLevel.Load()
}

func output(prefix, msg string) {
	std.Output(3, prefix+" "+msg)
}

func Debug(msg string) {
	if enabled(LevelDebug) {
		output("DEBUG", msg)
	}
}

func Debugf(format string, args ...any) {
	if enabled(LevelDebug) {
		output("DEBUG", fmt.Sprintf(format, args...))
	}
}

func Info(msg string) {
	if enabled(LevelInfo) {
		output("INFO", msg)
	}
}

func Infof(format string, args ...any) {
	if enabled(LevelInfo) {
		output("INFO", fmt.Sprintf(format, args...))
	}
}

func Warn(msg string) {
	if enabled(LevelWarn) {
		output("WARN", msg)
	}
}

func Warnf(format string, args ...any) {
	if enabled(LevelWarn) {
		output("WARN", fmt.Sprintf(format, args...))
	}
}

func Error(msg string) {
	if enabled(LevelError) {
		output("ERROR", msg)
	}
}

func Errorf(format string, args ...any) {
	if enabled(LevelError) {
		output("ERROR", fmt.Sprintf(format, args...))
	}
}

// Fatalf logs and exits the process
func Fatalf(format string, args ...any) {
	output("FATAL", fmt.Sprintf(format, args...))
	os.Exit(1)
}
