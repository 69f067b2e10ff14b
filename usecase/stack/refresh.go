package stack

import (
	"context"
	"io"

	"github.com/kompox/groceryops/config/stackcfg"
	"github.com/kompox/groceryops/domain/model"
)

// RefreshInput represents a command to refresh the stack's state.
type RefreshInput struct {
	Config   *stackcfg.Root `json:"-"`
	Progress io.Writer      `json:"-"`
}

// Refresh reconciles the recorded stack state with the provider.
func (u *UseCase) Refresh(ctx context.Context, in *RefreshInput) (*RunOutput, error) {
	if in == nil {
		in = &RefreshInput{}
	}
	return u.execute(ctx, model.OpRefresh, in.Config, func(ctx context.Context, ref *model.StackRef, cfg *model.StackConfig) (*model.StackResult, error) {
		return u.StackPort.Refresh(ctx, ref, cfg, stackOptions(in.Progress, false)...)
	})
}
