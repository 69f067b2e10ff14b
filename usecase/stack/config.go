package stack

import (
	"context"
	"fmt"

	"github.com/kompox/groceryops/config/stackcfg"
	"github.com/kompox/groceryops/domain/model"
)

// ConfigInput selects the configuration file to check.
type ConfigInput struct {
	Path string `json:"path"`
}

// ConfigOutput summarizes a valid configuration.
type ConfigOutput struct {
	Root       *stackcfg.Root    `json:"-"`
	Stack      *model.StackRef   `json:"stack"`
	Protection model.Protection  `json:"protection"`
	Values     map[string]string `json:"values"`
}

// Config loads and validates a configuration file.
func (u *UseCase) Config(ctx context.Context, in *ConfigInput) (*ConfigOutput, error) {
	path := stackcfg.DefaultConfigPath
	if in != nil && in.Path != "" {
		path = in.Path
	}
	root, err := stackcfg.Load(path)
	if err != nil {
		return nil, err
	}
	if err := root.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	d := root.Deployment()
	return &ConfigOutput{
		Root:       root,
		Stack:      root.StackRef(),
		Protection: d.Protection,
		Values:     root.StackConfig().Values,
	}, nil
}
