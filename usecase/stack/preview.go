package stack

import (
	"context"
	"io"

	"github.com/kompox/groceryops/config/stackcfg"
	"github.com/kompox/groceryops/domain/model"
)

// PreviewInput represents a command to preview stack changes.
type PreviewInput struct {
	Config   *stackcfg.Root `json:"-"`
	Progress io.Writer      `json:"-"`
	Refresh  bool           `json:"refresh"`
}

// Preview computes the changes an update would make without applying them.
func (u *UseCase) Preview(ctx context.Context, in *PreviewInput) (*RunOutput, error) {
	if in == nil {
		in = &PreviewInput{}
	}
	return u.execute(ctx, model.OpPreview, in.Config, func(ctx context.Context, ref *model.StackRef, cfg *model.StackConfig) (*model.StackResult, error) {
		return u.StackPort.Preview(ctx, ref, cfg, stackOptions(in.Progress, in.Refresh)...)
	})
}

func stackOptions(progress io.Writer, refresh bool) []model.StackOption {
	var opts []model.StackOption
	if progress != nil {
		opts = append(opts, model.WithProgress(progress))
	}
	if refresh {
		opts = append(opts, model.WithRefresh())
	}
	return opts
}
