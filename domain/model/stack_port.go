package model

import (
	"context"
	"io"
)

// StackRef identifies a stack of the provisioning engine.
type StackRef struct {
	Project string
	Stack   string
	WorkDir string // empty means the engine's default
}

// StackConfig holds stack configuration keyed without project namespace.
// Keys listed in Secrets are stored encrypted by the engine.
type StackConfig struct {
	Values  map[string]string
	Secrets map[string]string
}

// ChangeSummary counts resource operations by kind (create, update, ...).
type ChangeSummary map[string]int

// StackResult is the outcome of an engine operation.
type StackResult struct {
	Summary ChangeSummary  `json:"summary,omitempty"`
	Outputs map[string]any `json:"outputs,omitempty"`
}

// StackOptions are per-call options of StackPort operations.
type StackOptions struct {
	Progress io.Writer // engine event stream, nil to discard
	Refresh  bool      // refresh state before the operation
}

type StackOption func(*StackOptions)

func WithProgress(w io.Writer) StackOption {
	return func(o *StackOptions) { o.Progress = w }
}

func WithRefresh() StackOption {
	return func(o *StackOptions) { o.Refresh = true }
}

// StackPort is the domain port to the provisioning engine.
type StackPort interface {
	Preview(ctx context.Context, ref *StackRef, cfg *StackConfig, opts ...StackOption) (*StackResult, error)
	Up(ctx context.Context, ref *StackRef, cfg *StackConfig, opts ...StackOption) (*StackResult, error)
	Refresh(ctx context.Context, ref *StackRef, cfg *StackConfig, opts ...StackOption) (*StackResult, error)
	Destroy(ctx context.Context, ref *StackRef, cfg *StackConfig, opts ...StackOption) (*StackResult, error)
	Outputs(ctx context.Context, ref *StackRef) (map[string]any, error)
}
