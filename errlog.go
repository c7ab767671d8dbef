package main

import (
	"os"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// diag is the shared diagnostic logger. Diagnostics go to stderr as JSON
// so they never mix with the counts on stdout. A nil diag means structured
// logging is unavailable and messages downgrade to plain text.
var diag = newDiagLogger()

var emergency = color.New(color.FgRed, color.Bold)

func newDiagLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.MessageKey = "message"
	cfg.EncoderConfig.LevelKey = "severity"
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncoderConfig.TimeKey = "dateTime"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	lg, err := cfg.Build(zap.WithCaller(false))
	if err != nil {
		emergency.Fprintf(os.Stderr, "FATAL - building diagnostic logger: %v\n", err)
		return nil
	}
	return lg
}

// logError emits one ERROR diagnostic for a contained failure: the
// operation that failed, the file (or stream) it was working on, and the
// underlying cause. Callers carry on afterwards.
func logError(op, subject string, err error, fields ...zap.Field) {
	if diag == nil {
		emergency.Fprintf(os.Stderr, "ERROR - operation: %s, subject: %s, %v\n", op, subject, err)
		return
	}
	fields = append([]zap.Field{
		zap.String("operation", op),
		zap.String("subject", subject),
		zap.Error(err),
	}, fields...)
	diag.Error("counting failed", fields...)
}

// logFatal reports a structural failure and terminates the process.
func logFatal(op, subject string, err error) {
	if diag == nil {
		emergency.Fprintf(os.Stderr, "FATAL - operation: %s, subject: %s, %v\n", op, subject, err)
		os.Exit(1)
	}
	diag.Fatal("invariant violated",
		zap.String("operation", op),
		zap.String("subject", subject),
		zap.Error(err),
	)
}
