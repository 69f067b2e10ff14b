package stack

import (
	"context"
	"fmt"
	"time"

	"github.com/kompox/groceryops/config/stackcfg"
	"github.com/kompox/groceryops/domain/model"
	"github.com/kompox/groceryops/internal/logging"
)

// RunOutput reports a finished engine run.
type RunOutput struct {
	RunID   string              `json:"run_id,omitempty"`
	Stack   *model.StackRef     `json:"stack"`
	Summary model.ChangeSummary `json:"summary"`
	Outputs map[string]any      `json:"outputs,omitempty"`
	LiveURL string              `json:"live_url,omitempty"`
}

type engineCall func(ctx context.Context, ref *model.StackRef, cfg *model.StackConfig) (*model.StackResult, error)

// execute checks the configuration and the deployment's protection, then
// runs call while recording the run.
func (u *UseCase) execute(ctx context.Context, op model.StackOperation, root *stackcfg.Root, call engineCall) (*RunOutput, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: missing configuration", stackcfg.ErrConfigInvalid)
	}
	if u.StackPort == nil {
		return nil, fmt.Errorf("%w: no engine configured", model.ErrStackInvalid)
	}
	if err := root.Validate(); err != nil {
		return nil, err
	}
	if err := root.Deployment().CheckProtection(op); err != nil {
		return nil, err
	}

	ref := root.StackRef()
	run := &model.Run{
		Operation: op,
		Project:   ref.Project,
		Stack:     ref.Stack,
		Result:    model.RunRunning,
		StartedAt: time.Now(),
	}
	if err := u.recordStart(ctx, run); err != nil {
		return nil, err
	}

	res, err := call(ctx, ref, root.StackConfig())
	run.FinishedAt = time.Now()
	out := &RunOutput{RunID: run.ID, Stack: ref}
	if err != nil {
		run.Result = model.RunFailed
		run.Error = err.Error()
		u.recordFinish(ctx, run)
		return nil, fmt.Errorf("%s %s/%s: %w", op, ref.Project, ref.Stack, err)
	}

	out.Summary = res.Summary
	out.Outputs = res.Outputs
	out.LiveURL = liveURL(res.Outputs)
	run.Result = model.RunSucceeded
	run.Summary = res.Summary
	run.LiveURL = out.LiveURL
	u.recordFinish(ctx, run)
	return out, nil
}

func (u *UseCase) recordStart(ctx context.Context, run *model.Run) error {
	if u.Repos == nil || u.Repos.Run == nil {
		return nil
	}
	if err := u.Repos.Run.Create(ctx, run); err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// recordFinish stores the final state of run. A failure here only loses
// history, so it is logged instead of returned.
func (u *UseCase) recordFinish(ctx context.Context, run *model.Run) {
	if u.Repos == nil || u.Repos.Run == nil {
		return
	}
	if err := u.Repos.Run.Update(ctx, run); err != nil {
		logging.FromContext(ctx).Warn(ctx, "failed to record run result", "runId", run.ID, "err", err)
	}
}

func liveURL(outputs map[string]any) string {
	if s, ok := outputs[model.ExportLiveURL].(string); ok {
		return s
	}
	return ""
}
