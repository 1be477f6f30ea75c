// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
)

// SetDefault sets [UserLevel] to the given level and installs a
// [slog.TextHandler] writing to w at that level as the default logger.
// Level names are coloured with [LevelColor].
func SetDefault(w io.Writer, level slog.Level) {
	UserLevel = level
	slog.SetDefault(slog.New(NewHandler(w, level)))
}

// NewHandler returns a [slog.TextHandler] writing to w that shows
// messages at or above the given level, without timestamps.
func NewHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{}
			case slog.LevelKey:
				lv, ok := a.Value.Any().(slog.Level)
				if ok {
					a.Value = slog.StringValue(LevelColor(lv, lv.String()))
				}
			}
			return a
		},
	})
}
