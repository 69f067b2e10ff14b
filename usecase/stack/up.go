package stack

import (
	"context"
	"io"

	"github.com/kompox/groceryops/config/stackcfg"
	"github.com/kompox/groceryops/domain/model"
)

// UpInput represents a command to create or update the stack.
type UpInput struct {
	Config   *stackcfg.Root `json:"-"`
	Progress io.Writer      `json:"-"`
	Refresh  bool           `json:"refresh"`
}

// Up creates or updates the stack's resources and returns its live URL.
func (u *UseCase) Up(ctx context.Context, in *UpInput) (*RunOutput, error) {
	if in == nil {
		in = &UpInput{}
	}
	return u.execute(ctx, model.OpUp, in.Config, func(ctx context.Context, ref *model.StackRef, cfg *model.StackConfig) (*model.StackResult, error) {
		return u.StackPort.Up(ctx, ref, cfg, stackOptions(in.Progress, in.Refresh)...)
	})
}
