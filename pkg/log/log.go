// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/restyle/pkg/status"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 35 // Base width for filename
	statusWidth = 15 // Width for status text
	diffIndent  = 8  // spaces to indent diff lines
)

// 🎯 Logger writes user facing lines to the console and mirrors them to zerolog
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

func symbolFor(s status.FileStatus) (rune, color.Attribute) {
	switch s {
	case status.StatusUpdated:
		return '✓', color.FgGreen
	case status.StatusWouldUpdate:
		return '⟳', color.FgBlue
	case status.StatusUnchanged:
		return '○', color.FgCyan
	case status.StatusNotFound:
		return '✗', color.FgYellow
	case status.StatusError:
		return '✗', color.FgRed
	default:
		return '-', color.FgYellow
	}
}

func detailFor(o status.Outcome) string {
	switch o.Status {
	case status.StatusUpdated, status.StatusWouldUpdate:
		if o.Replacements == 1 {
			return "1 replacement"
		}
		return fmt.Sprintf("%d replacements", o.Replacements)
	case status.StatusError:
		if o.Err != nil {
			return o.Err.Error()
		}
	}
	return ""
}

// 📝 formatOutcome formats a file outcome for display
func (l *Logger) formatOutcome(o status.Outcome) string {
	symbol, symbolColor := symbolFor(o.Status)

	line := fmt.Sprintf("%s%s %s %s %s",
		strings.Repeat(" ", fileIndent),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, o.Path),
		color.New(symbolColor).Sprint(fmt.Sprintf("%-*s", statusWidth, o.Status.String())),
		detailFor(o))
	return strings.TrimRight(line, " ")
}

// 📝 LogFileOutcome logs the outcome of one file
func (l *Logger) LogFileOutcome(ctx context.Context, o status.Outcome) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, l.formatOutcome(o))

	var event *zerolog.Event
	switch o.Status {
	case status.StatusError:
		event = l.zlog.Error().Err(o.Err)
	case status.StatusNotFound:
		event = l.zlog.Warn()
	default:
		event = l.zlog.Info()
	}
	event.
		Str("file", o.Path).
		Str("status", o.Status.String()).
		Int("replacements", o.Replacements).
		Msg("file processed")
}

// 📝 Diff prints a line diff under the last file line
func (l *Logger) Diff(path, diff string) {
	if diff == "" {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	indent := strings.Repeat(" ", diffIndent)
	for _, line := range strings.Split(strings.TrimRight(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+"):
			line = color.GreenString("%s", line)
		case strings.HasPrefix(line, "-"):
			line = color.RedString("%s", line)
		default:
			line = color.New(color.Faint).Sprint(line)
		}
		fmt.Fprintf(l.console, "%s%s\n", indent, line)
	}
	l.zlog.Debug().Str("file", path).Str("diff", diff).Msg("dry run diff")
}

// 📝 Summary logs the closing line of a run
func (l *Logger) Summary(s status.Summary) {
	l.LogNewline()
	if s.Skipped() > 0 {
		l.Warning(s.String())
		return
	}
	l.Success(s.String())
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	restyleText := color.New(color.Bold, color.FgCyan).Sprint("restyle")
	fmt.Fprintf(l.console, "\n%s %s\n\n", restyleText, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}
