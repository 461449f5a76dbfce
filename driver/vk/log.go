// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package vk

import (
	"context"
	"log/slog"
)

// nopHandler is a slog.Handler that discards all records.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var nopLogger = slog.New(nopHandler{})

// logger returns lg, or a silent logger if lg is nil.
func logger(lg *slog.Logger) *slog.Logger {
	if lg == nil {
		return nopLogger
	}
	return lg
}
