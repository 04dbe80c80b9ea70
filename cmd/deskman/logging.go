package main

import (
	"context"
	"time"

	"github.com/deskman/deskman/internal/logging"
)

// maxLoggedErrLen truncates error text in span end lines; the full error
// is still printed by main.
const maxLoggedErrLen = 32

// withCmdRunLogger brackets a CLI operation with span log lines:
// "CMD:<op>/S" on entry, then "CMD:<op>/EOK" or "CMD:<op>/EFAIL" from
// the returned cleanup. The resource being operated on is attached as a
// logger attribute so it appears on every line in between. All three
// lines are INFO; a failed command is an outcome, not a logger error.
func withCmdRunLogger(ctx context.Context, operation, resourceID string) (context.Context, func(err error)) {
	startAt := time.Now()

	logger := logging.FromContext(ctx).With("resourceId", resourceID)
	ctx = logging.WithLogger(ctx, logger)

	logger.Info(ctx, "CMD:"+operation+"/S")

	cleanup := func(err error) {
		elapsed := time.Since(startAt).Seconds()
		if err == nil {
			logger.Info(ctx, "CMD:"+operation+"/EOK", "elapsed", elapsed)
			return
		}
		msg := err.Error()
		if len(msg) > maxLoggedErrLen {
			msg = msg[:maxLoggedErrLen] + "..."
		}
		logger.Info(ctx, "CMD:"+operation+"/EFAIL", "err", msg, "elapsed", elapsed)
	}

	return ctx, cleanup
}
