package stack

import (
	"context"
	"fmt"

	"github.com/kompox/groceryops/config/stackcfg"
	"github.com/kompox/groceryops/domain/model"
)

// OutputsInput selects the stack whose outputs are read.
type OutputsInput struct {
	Config *stackcfg.Root `json:"-"`
}

// OutputsOutput holds the outputs of the last update.
type OutputsOutput struct {
	Stack   *model.StackRef `json:"stack"`
	Outputs map[string]any  `json:"outputs"`
	LiveURL string          `json:"live_url,omitempty"`
}

// Outputs returns the current stack outputs.
func (u *UseCase) Outputs(ctx context.Context, in *OutputsInput) (*OutputsOutput, error) {
	if in == nil || in.Config == nil {
		return nil, fmt.Errorf("%w: missing configuration", stackcfg.ErrConfigInvalid)
	}
	ref := in.Config.StackRef()
	if ref.Stack == "" {
		return nil, fmt.Errorf("%w: stack name is required", model.ErrStackInvalid)
	}
	outputs, err := u.StackPort.Outputs(ctx, ref)
	if err != nil {
		return nil, err
	}
	return &OutputsOutput{Stack: ref, Outputs: outputs, LiveURL: liveURL(outputs)}, nil
}
