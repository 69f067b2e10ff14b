package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kompox/groceryops/internal/logging"
)

// ExitCodeError carries a process exit code other than 1, e.g. 2 for a
// declined confirmation.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e ExitCodeError) Error() string {
	return fmt.Sprintf("exit code %d: %v", e.Code, e.Err)
}

func (e ExitCodeError) Unwrap() error { return e.Err }

// withCmdRunLogger implements the Span pattern for CLI command logging.
// It emits a start log line and returns a context with logger attributes attached,
// plus a cleanup function to emit the success or failure log line.
//
// Usage:
//
//	ctx, cleanup := withCmdRunLogger(ctx, "stack.up", resourceID)
//	defer func() { cleanup(err) }()
//
// Log message format:
// - Start:   CMD:<operation>/S (with resourceId in logger attributes)
// - Success: CMD:<operation>/EOK (with err, elapsed in logger attributes)
// - Failure: CMD:<operation>/EFAIL (with err, elapsed in logger attributes)
//
// A declined confirmation (ExitCodeError) is logged as EOK with its code.
// All logs use INFO level. The runId is inherited from the context logger
// set in PersistentPreRunE.
func withCmdRunLogger(ctx context.Context, operation, resourceID string) (context.Context, func(err error)) {
	startAt := time.Now()

	logger := logging.FromContext(ctx).With("resourceId", resourceID)
	ctx = logging.WithLogger(ctx, logger)

	logger.Info(ctx, "CMD:"+operation+"/S")

	cleanup := func(err error) {
		elapsed := time.Since(startAt).Seconds()

		var exitCodeErr ExitCodeError
		if errors.As(err, &exitCodeErr) {
			logger.Info(ctx, "CMD:"+operation+"/EOK", "err", "", "exitCode", exitCodeErr.Code, "elapsed", elapsed)
			return
		}
		if err == nil {
			logger.Info(ctx, "CMD:"+operation+"/EOK", "err", "", "elapsed", elapsed)
			return
		}
		logger.Info(ctx, "CMD:"+operation+"/EFAIL", "err", logging.Truncate(err.Error(), 32), "elapsed", elapsed)
	}

	return ctx, cleanup
}
