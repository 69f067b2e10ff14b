package pulumiauto

import (
	"context"
	"time"

	"github.com/kompox/groceryops/domain/model"
	"github.com/kompox/groceryops/internal/logging"
)

// withMethodLogger emits ENGINE:<method>:START and returns a cleanup that
// emits ENGINE:<method>:END:OK or ENGINE:<method>:END:FAILED.
//
// Usage:
//
//	ctx, cleanup := withMethodLogger(ctx, "Up", ref)
//	defer func() { cleanup(err) }()
func withMethodLogger(ctx context.Context, method string, ref *model.StackRef) (context.Context, func(err error)) {
	startAt := time.Now()

	logger := logging.FromContext(ctx).With("engine", "pulumi."+method)
	if ref != nil {
		logger = logger.With("project", ref.Project, "stack", ref.Stack)
	}
	ctx = logging.WithLogger(ctx, logger)

	logger.Info(ctx, "ENGINE:"+method+":START")

	cleanup := func(err error) {
		elapsed := time.Since(startAt).Seconds()
		if err == nil {
			logger.Info(ctx, "ENGINE:"+method+":END:OK", "err", "", "elapsed", elapsed)
			return
		}
		logger.Warn(ctx, "ENGINE:"+method+":END:FAILED", "err", logging.Truncate(err.Error(), 32), "elapsed", elapsed)
	}

	return ctx, cleanup
}
