package pulumiauto

import (
	"context"

	"github.com/pulumi/pulumi/sdk/v3/go/auto"
	"github.com/pulumi/pulumi/sdk/v3/go/auto/optdestroy"
	"github.com/pulumi/pulumi/sdk/v3/go/auto/optpreview"
	"github.com/pulumi/pulumi/sdk/v3/go/auto/optrefresh"
	"github.com/pulumi/pulumi/sdk/v3/go/auto/optup"

	"github.com/kompox/groceryops/domain/model"
)

// Preview computes the changes an update would make.
func (e *Engine) Preview(ctx context.Context, ref *model.StackRef, cfg *model.StackConfig, opts ...model.StackOption) (res *model.StackResult, err error) {
	ctx, cleanup := withMethodLogger(ctx, "Preview", ref)
	defer func() { cleanup(err) }()

	s, err := e.upsert(ctx, ref, cfg)
	if err != nil {
		return nil, err
	}
	o := collectOptions(opts)
	var po []optpreview.Option
	if o.Progress != nil {
		po = append(po, optpreview.ProgressStreams(o.Progress))
	}
	if o.Refresh {
		po = append(po, optpreview.Refresh())
	}
	pr, err := s.Preview(ctx, po...)
	if err != nil {
		return nil, err
	}
	summary := model.ChangeSummary{}
	for op, n := range pr.ChangeSummary {
		summary[string(op)] = n
	}
	return &model.StackResult{Summary: summary}, nil
}

// Up creates or updates the stack's resources.
func (e *Engine) Up(ctx context.Context, ref *model.StackRef, cfg *model.StackConfig, opts ...model.StackOption) (res *model.StackResult, err error) {
	ctx, cleanup := withMethodLogger(ctx, "Up", ref)
	defer func() { cleanup(err) }()

	s, err := e.upsert(ctx, ref, cfg)
	if err != nil {
		return nil, err
	}
	o := collectOptions(opts)
	var uo []optup.Option
	if o.Progress != nil {
		uo = append(uo, optup.ProgressStreams(o.Progress))
	}
	if o.Refresh {
		uo = append(uo, optup.Refresh())
	}
	ur, err := s.Up(ctx, uo...)
	if err != nil {
		return nil, err
	}
	return &model.StackResult{Summary: summaryOf(ur.Summary), Outputs: plainOutputs(ur.Outputs)}, nil
}

// Refresh reconciles the stack's state with the provider.
func (e *Engine) Refresh(ctx context.Context, ref *model.StackRef, cfg *model.StackConfig, opts ...model.StackOption) (res *model.StackResult, err error) {
	ctx, cleanup := withMethodLogger(ctx, "Refresh", ref)
	defer func() { cleanup(err) }()

	s, err := e.upsert(ctx, ref, cfg)
	if err != nil {
		return nil, err
	}
	o := collectOptions(opts)
	var ro []optrefresh.Option
	if o.Progress != nil {
		ro = append(ro, optrefresh.ProgressStreams(o.Progress))
	}
	rr, err := s.Refresh(ctx, ro...)
	if err != nil {
		return nil, err
	}
	return &model.StackResult{Summary: summaryOf(rr.Summary)}, nil
}

// Destroy deletes all of the stack's resources. The stack itself is kept
// along with its history. A stack that was never created yields
// model.ErrStackNotFound.
func (e *Engine) Destroy(ctx context.Context, ref *model.StackRef, cfg *model.StackConfig, opts ...model.StackOption) (res *model.StackResult, err error) {
	ctx, cleanup := withMethodLogger(ctx, "Destroy", ref)
	defer func() { cleanup(err) }()

	s, err := e.selectExisting(ctx, ref)
	if err != nil {
		return nil, err
	}
	if err := e.prepare(ctx, s, cfg); err != nil {
		return nil, err
	}
	o := collectOptions(opts)
	var do []optdestroy.Option
	if o.Progress != nil {
		do = append(do, optdestroy.ProgressStreams(o.Progress))
	}
	if o.Refresh {
		do = append(do, optdestroy.Refresh())
	}
	dr, err := s.Destroy(ctx, do...)
	if err != nil {
		return nil, err
	}
	return &model.StackResult{Summary: summaryOf(dr.Summary)}, nil
}

// Outputs returns the outputs of the last update. Secret values are
// masked.
func (e *Engine) Outputs(ctx context.Context, ref *model.StackRef) (out map[string]any, err error) {
	ctx, cleanup := withMethodLogger(ctx, "Outputs", ref)
	defer func() { cleanup(err) }()

	s, err := e.selectExisting(ctx, ref)
	if err != nil {
		return nil, err
	}
	om, err := s.Outputs(ctx)
	if err != nil {
		return nil, err
	}
	return plainOutputs(om), nil
}

func summaryOf(u auto.UpdateSummary) model.ChangeSummary {
	summary := model.ChangeSummary{}
	if u.ResourceChanges != nil {
		for op, n := range *u.ResourceChanges {
			summary[op] = n
		}
	}
	return summary
}

const secretMask = "[secret]"

func plainOutputs(om auto.OutputMap) map[string]any {
	out := make(map[string]any, len(om))
	for k, v := range om {
		if v.Secret {
			out[k] = secretMask
			continue
		}
		out[k] = v.Value
	}
	return out
}
