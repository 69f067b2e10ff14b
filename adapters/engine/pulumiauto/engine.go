// Package pulumiauto implements model.StackPort with the Pulumi Automation
// API. The program runs inline, in the same process as the caller.
package pulumiauto

import (
	"context"
	"fmt"

	"github.com/pulumi/pulumi/sdk/v3/go/auto"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/kompox/groceryops/domain/model"
)

// Plugin is a resource provider plugin the program needs.
type Plugin struct {
	Name    string
	Version string
}

// DigitalOceanPlugin matches the provider SDK the program is built with.
var DigitalOceanPlugin = Plugin{Name: "digitalocean", Version: "v4.35.0"}

// Engine drives stacks of one inline program.
type Engine struct {
	program pulumi.RunFunc
	plugins []Plugin
	envVars map[string]string
}

// Option configures an Engine.
type Option func(*Engine)

// WithPlugins replaces the plugins installed before each operation.
func WithPlugins(plugins ...Plugin) Option {
	return func(e *Engine) { e.plugins = plugins }
}

// WithEnvVars sets environment variables of the Pulumi workspace, e.g.
// PULUMI_BACKEND_URL or PULUMI_CONFIG_PASSPHRASE.
func WithEnvVars(env map[string]string) Option {
	return func(e *Engine) { e.envVars = env }
}

// New returns an Engine running program.
func New(program pulumi.RunFunc, opts ...Option) *Engine {
	e := &Engine{program: program, plugins: []Plugin{DigitalOceanPlugin}}
	for _, o := range opts {
		o(e)
	}
	return e
}

var _ model.StackPort = (*Engine)(nil)

func (e *Engine) workspaceOptions(ref *model.StackRef) []auto.LocalWorkspaceOption {
	var opts []auto.LocalWorkspaceOption
	if ref.WorkDir != "" {
		opts = append(opts, auto.WorkDir(ref.WorkDir))
	}
	if len(e.envVars) > 0 {
		opts = append(opts, auto.EnvVars(e.envVars))
	}
	return opts
}

// upsert creates or selects the stack, installs plugins and writes cfg.
func (e *Engine) upsert(ctx context.Context, ref *model.StackRef, cfg *model.StackConfig) (auto.Stack, error) {
	if err := validateRef(ref); err != nil {
		return auto.Stack{}, err
	}
	s, err := auto.UpsertStackInlineSource(ctx, ref.Stack, ref.Project, e.program, e.workspaceOptions(ref)...)
	if err != nil {
		return auto.Stack{}, fmt.Errorf("failed to create or select stack %s/%s: %w", ref.Project, ref.Stack, err)
	}
	if err := e.prepare(ctx, s, cfg); err != nil {
		return auto.Stack{}, err
	}
	return s, nil
}

// prepare installs plugins and writes cfg into the selected stack.
func (e *Engine) prepare(ctx context.Context, s auto.Stack, cfg *model.StackConfig) error {
	for _, p := range e.plugins {
		if err := s.Workspace().InstallPlugin(ctx, p.Name, p.Version); err != nil {
			return fmt.Errorf("failed to install plugin %s %s: %w", p.Name, p.Version, err)
		}
	}
	if cm := configMap(cfg); len(cm) > 0 {
		if err := s.SetAllConfig(ctx, cm); err != nil {
			return fmt.Errorf("failed to set config of stack %s: %w", s.Name(), err)
		}
	}
	return nil
}

// selectExisting selects a stack without creating it.
func (e *Engine) selectExisting(ctx context.Context, ref *model.StackRef) (auto.Stack, error) {
	if err := validateRef(ref); err != nil {
		return auto.Stack{}, err
	}
	s, err := auto.SelectStackInlineSource(ctx, ref.Stack, ref.Project, e.program, e.workspaceOptions(ref)...)
	if err != nil {
		if auto.IsSelectStack404Error(err) {
			return auto.Stack{}, fmt.Errorf("%w: %s/%s", model.ErrStackNotFound, ref.Project, ref.Stack)
		}
		return auto.Stack{}, fmt.Errorf("failed to select stack %s/%s: %w", ref.Project, ref.Stack, err)
	}
	return s, nil
}

func validateRef(ref *model.StackRef) error {
	if ref == nil || ref.Project == "" || ref.Stack == "" {
		return fmt.Errorf("%w: project and stack are required", model.ErrStackInvalid)
	}
	return nil
}

// configMap converts cfg into the Automation API form. Keys without a
// namespace land in the project namespace.
func configMap(cfg *model.StackConfig) auto.ConfigMap {
	if cfg == nil {
		return nil
	}
	cm := make(auto.ConfigMap, len(cfg.Values)+len(cfg.Secrets))
	for k, v := range cfg.Values {
		cm[k] = auto.ConfigValue{Value: v}
	}
	for k, v := range cfg.Secrets {
		cm[k] = auto.ConfigValue{Value: v, Secret: true}
	}
	return cm
}

func collectOptions(opts []model.StackOption) model.StackOptions {
	var o model.StackOptions
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
