// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"log/slog"

	"github.com/muesli/termenv"
)

// UseColor is whether to use color in log messages. It is on by default.
var UseColor = true

// colorProfile is the termenv color profile, set by [InitColor].
var colorProfile = termenv.Ascii

// InitColor sets up the terminal environment for color output,
// detecting the color profile of standard output. Output stays
// uncolored until it is called.
func InitColor() {
	_, err := termenv.EnableVirtualTerminalProcessing(termenv.DefaultOutput())
	if err != nil {
		slog.Warn("error enabling virtual terminal processing for colored output on Windows", "err", err)
	}
	colorProfile = termenv.ColorProfile()
}

// ApplyColor applies the given hex or ANSI color to the given string,
// if [UseColor] is on and the terminal supports color.
func ApplyColor(clr string, str string) string {
	if !UseColor || colorProfile == termenv.Ascii {
		return str
	}
	return termenv.String(str).Foreground(colorProfile.Color(clr)).String()
}

// LevelColor applies the color associated with the given level to the
// given string.
func LevelColor(level slog.Level, str string) string {
	switch {
	case level >= slog.LevelError:
		return ErrorColor(str)
	case level >= slog.LevelWarn:
		return WarnColor(str)
	case level >= slog.LevelInfo:
		return InfoColor(str)
	default:
		return DebugColor(str)
	}
}

// DebugColor applies the color associated with the debug level to the given string.
func DebugColor(str string) string { return ApplyColor("#9e9e9e", str) }

// InfoColor applies the color associated with the info level to the given string.
func InfoColor(str string) string { return ApplyColor("#00bcd4", str) }

// WarnColor applies the color associated with the warn level to the given string.
func WarnColor(str string) string { return ApplyColor("#ffc107", str) }

// ErrorColor applies the color associated with the error level to the given string.
func ErrorColor(str string) string { return ApplyColor("#f44336", str) }

// SuccessColor applies the color associated with success to the given string.
func SuccessColor(str string) string { return ApplyColor("#4caf50", str) }

// TitleColor applies the color associated with titles to the given string.
func TitleColor(str string) string { return ApplyColor("#3f51b5", str) }
