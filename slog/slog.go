// Package slog provides logging decorators for the ocfl service interfaces.
// Each decorator logs one record per call with the operation's key
// attributes, its duration and its error.
package slog

import (
	"context"
	"log/slog"

	"github.com/ocfl/ocfl"
)

// level returns the record level for a call's outcome. Missing documents
// and cache misses are expected and stay at info.
func level(err error) slog.Level {
	if err == nil || ocfl.ErrorCode(err) == ocfl.ENOTFOUND {
		return slog.LevelInfo
	}
	return slog.LevelWarn
}

func logCall(ctx context.Context, logger *slog.Logger, msg string, err error, args ...any) {
	logger.Log(ctx, level(err), msg, append(args, "err", err)...)
}
