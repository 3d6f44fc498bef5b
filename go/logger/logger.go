// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	Debug(msg string, fields ...zap.Field)
	Title(msg string)
	Sync() error
}

type ZapLogger struct {
	*zap.Logger
	writer  io.Writer
	noColor bool
}

// Options configures the logger
type Options struct {
	Verbose bool
	Writer  io.Writer
	NoColor bool
}

// NewLogger creates a logger writing to stderr
func NewLogger(verbose bool) Logger {
	return NewLoggerWithOptions(Options{Verbose: verbose, Writer: os.Stderr})
}

// NewLoggerWithOptions creates a logger with full configuration options
func NewLoggerWithOptions(opts Options) Logger {
	if opts.Writer == nil {
		opts.Writer = os.Stderr
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    levelEncoder(opts.NoColor),
		EncodeTime:     timeEncoder(opts.NoColor),
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	level := zapcore.InfoLevel
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(opts.Writer),
		level,
	)

	return &ZapLogger{
		Logger:  zap.New(core),
		writer:  opts.Writer,
		noColor: opts.NoColor,
	}
}

func (l *ZapLogger) Title(msg string) {
	fmt.Fprintln(l.writer)
	if l.noColor {
		fmt.Fprintln(l.writer, msg)
	} else {
		color.New(color.FgCyan, color.Bold).Fprintln(l.writer, msg)
	}
	fmt.Fprintln(l.writer)
}

func levelEncoder(noColor bool) zapcore.LevelEncoder {
	if noColor {
		return zapcore.CapitalLevelEncoder
	}
	return func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		var levelColor *color.Color
		switch l {
		case zapcore.DebugLevel:
			levelColor = color.New(color.FgWhite)
		case zapcore.InfoLevel:
			levelColor = color.New(color.FgBlue)
		case zapcore.WarnLevel:
			levelColor = color.New(color.FgYellow)
		default:
			levelColor = color.New(color.FgRed)
		}
		enc.AppendString(levelColor.Sprint(l.CapitalString()))
	}
}

func timeEncoder(noColor bool) zapcore.TimeEncoder {
	return func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		stamp := fmt.Sprintf("[%s]", t.Format("15:04:05"))
		if !noColor {
			stamp = color.New(color.FgWhite).Sprint(stamp)
		}
		enc.AppendString(stamp)
	}
}

type ctxKey string

const loggerKey ctxKey = "logger"

// WithLogger adds a logger to the context
func WithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext retrieves the logger from the context, falling back to a
// non-verbose stderr logger.
func FromContext(ctx context.Context) Logger {
	if logger, ok := ctx.Value(loggerKey).(Logger); ok {
		return logger
	}
	return NewLogger(false)
}
