package stack

import (
	"context"
	"fmt"
	"io"

	"github.com/kompox/groceryops/config/stackcfg"
	"github.com/kompox/groceryops/domain/model"
)

// DestroyInput represents a command to delete all stack resources.
type DestroyInput struct {
	Config   *stackcfg.Root `json:"-"`
	Progress io.Writer      `json:"-"`
	// Confirmed must be set; destroying the stack deletes the database.
	Confirmed bool `json:"confirmed"`
}

// Destroy deletes every resource of the stack.
func (u *UseCase) Destroy(ctx context.Context, in *DestroyInput) (*RunOutput, error) {
	if in == nil || !in.Confirmed {
		return nil, fmt.Errorf("%w: destroy deletes the database and the app", model.ErrConfirmationNeeded)
	}
	return u.execute(ctx, model.OpDestroy, in.Config, func(ctx context.Context, ref *model.StackRef, cfg *model.StackConfig) (*model.StackResult, error) {
		return u.StackPort.Destroy(ctx, ref, cfg, stackOptions(in.Progress, false)...)
	})
}
