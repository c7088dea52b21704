/*
Copyright © 2025 Benny Powers <web@bennypowers.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

// Package logging is the ambient structured-logging collaborator every
// cmd/ subcommand shares: a single global, pterm-backed Logger with a
// debug/quiet toggle for CLI output. An earlier LSP transport mode
// (window/logMessage) is not carried here -- this tool has no language
// server surface, only the CLI and MCP transports; see DESIGN.md.
package logging

import (
	"fmt"
	"os"
	"sync"

	"github.com/pterm/pterm"
)

// init configures pterm styles to use foreground colors only (no
// backgrounds).
func init() {
	pterm.Info = *pterm.Info.WithPrefix(pterm.Prefix{
		Text:  "INFO",
		Style: pterm.NewStyle(pterm.FgBlue),
	}).WithMessageStyle(&pterm.ThemeDefault.DefaultText)

	pterm.Success = *pterm.Success.WithPrefix(pterm.Prefix{
		Text:  "SUCCESS",
		Style: pterm.NewStyle(pterm.FgGreen),
	}).WithMessageStyle(&pterm.ThemeDefault.DefaultText)

	pterm.Warning = *pterm.Warning.WithPrefix(pterm.Prefix{
		Text:  "WARNING",
		Style: pterm.NewStyle(pterm.FgYellow),
	}).WithMessageStyle(&pterm.ThemeDefault.DefaultText)

	pterm.Error = *pterm.Error.WithPrefix(pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.FgRed),
	}).WithMessageStyle(&pterm.ThemeDefault.DefaultText)

	pterm.Debug = *pterm.Debug.WithPrefix(pterm.Prefix{
		Text:  "DEBUG",
		Style: pterm.NewStyle(pterm.FgCyan),
	}).WithMessageStyle(&pterm.ThemeDefault.DefaultText)
}

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarning
	LogLevelError
)

func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarning:
		return "WARNING"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is the process-wide pterm-backed logger every subcommand writes
// through, so --verbose and --quiet behave uniformly across resolve,
// workspace, serve-mcp, and query.
type Logger struct {
	mu           sync.RWMutex
	debugEnabled bool
	quietEnabled bool
}

var globalLogger = &Logger{}

// GetLogger returns the global logger instance.
func GetLogger() *Logger {
	return globalLogger
}

// SetDebugEnabled controls whether debug messages are shown.
func (l *Logger) SetDebugEnabled(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debugEnabled = enabled
}

// IsDebugEnabled returns whether debug logging is enabled.
func (l *Logger) IsDebugEnabled() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.debugEnabled
}

// SetQuietEnabled controls whether quiet mode is active (suppresses INFO
// and DEBUG).
func (l *Logger) SetQuietEnabled(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.quietEnabled = enabled
}

// IsQuietEnabled returns whether quiet mode is active.
func (l *Logger) IsQuietEnabled() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.quietEnabled
}

func (l *Logger) Debug(format string, args ...any) { l.log(LogLevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...any)  { l.log(LogLevelInfo, format, args...) }
func (l *Logger) Warning(format string, args ...any) {
	l.log(LogLevelWarning, format, args...)
}
func (l *Logger) Error(format string, args ...any) { l.log(LogLevelError, format, args...) }

// Critical logs an error that should not be missed even in quiet mode.
func (l *Logger) Critical(format string, args ...any) {
	pterm.Error.Println(fmt.Sprintf(format, args...))
}

// Success logs a success message; skipped in quiet mode, same as Info.
func (l *Logger) Success(format string, args ...any) {
	l.mu.RLock()
	quiet := l.quietEnabled
	l.mu.RUnlock()
	if quiet {
		return
	}
	pterm.Success.Printf(format+"\n", args...)
}

func (l *Logger) log(level LogLevel, format string, args ...any) {
	l.mu.RLock()
	debugEnabled := l.debugEnabled
	quietEnabled := l.quietEnabled
	l.mu.RUnlock()

	if level == LogLevelDebug && !debugEnabled {
		return
	}
	if quietEnabled && (level == LogLevelInfo || level == LogLevelDebug) {
		return
	}

	message := fmt.Sprintf(format, args...)
	switch level {
	case LogLevelDebug:
		pterm.Debug.Println(message)
	case LogLevelInfo:
		pterm.Info.Println(message)
	case LogLevelWarning:
		pterm.Warning.Println(message)
	case LogLevelError:
		pterm.Error.Println(message)
	default:
		fmt.Fprintln(os.Stderr, message)
	}
}

// Convenience functions delegating to the global logger.
func Debug(format string, args ...any)    { globalLogger.Debug(format, args...) }
func Info(format string, args ...any)     { globalLogger.Info(format, args...) }
func Warning(format string, args ...any)  { globalLogger.Warning(format, args...) }
func Error(format string, args ...any)    { globalLogger.Error(format, args...) }
func Critical(format string, args ...any) { globalLogger.Critical(format, args...) }
func Success(format string, args ...any)  { globalLogger.Success(format, args...) }

func SetDebugEnabled(enabled bool) { globalLogger.SetDebugEnabled(enabled) }
func IsDebugEnabled() bool         { return globalLogger.IsDebugEnabled() }
func SetQuietEnabled(enabled bool) { globalLogger.SetQuietEnabled(enabled) }
func IsQuietEnabled() bool         { return globalLogger.IsQuietEnabled() }
