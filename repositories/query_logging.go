package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/checkmarble/marble-todos/utils"
)

var queryHelpers = []string{
	"repositories.logQuery",
	"repositories.SqlTo",
	"repositories.ExecBuilder",
}

func isQueryHelper(function string) bool {
	for _, helper := range queryHelpers {
		if strings.Contains(function, helper) {
			return true
		}
	}
	return false
}

// callSite returns the first frame of the stack that is not one of the generic query helpers,
// which is the repository method that issued the statement.
func callSite(skip int) runtime.Frame {
	pcs := make([]uintptr, 16)
	n := runtime.Callers(skip+1, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !isQueryHelper(frame.Function) {
			return frame
		}
		if !more {
			return frame
		}
	}
}

func shortFunctionName(function string) string {
	if idx := strings.LastIndex(function, "/"); idx >= 0 {
		function = function[idx+1:]
	}
	return function
}

// logQuery writes the statement, its parameters and the repository method that issued it
func logQuery(ctx context.Context, sql string, args []any) {
	logger := utils.LoggerFromContext(ctx)
	if !logger.Enabled(ctx, slog.LevelInfo) {
		return
	}

	frame := callSite(2)
	record := slog.NewRecord(time.Now(), slog.LevelInfo, "sql statement", frame.PC)
	record.AddAttrs(
		slog.String("caller", fmt.Sprintf("%s:%d in %s",
			filepath.Base(frame.File), frame.Line, shortFunctionName(frame.Function))),
		slog.String("statement", sql),
		slog.String("params", fmt.Sprintf("%v", args)),
	)
	_ = logger.Handler().Handle(ctx, record)
}
