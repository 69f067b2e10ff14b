package main

import (
	"github.com/spf13/cobra"

	"github.com/kompox/groceryops/adapters/engine/pulumiauto"
	"github.com/kompox/groceryops/infra"
	"github.com/kompox/groceryops/usecase/stack"
)

// buildStackUseCase creates the stack use case with the run history
// repository and the inline Pulumi engine.
func buildStackUseCase(cmd *cobra.Command) (*stack.UseCase, error) {
	repos, err := buildRepositories(cmd)
	if err != nil {
		return nil, err
	}
	var opts []pulumiauto.Option
	if f := findFlag(cmd, "backend-url"); f != nil && f.Value.String() != "" {
		opts = append(opts, pulumiauto.WithEnvVars(map[string]string{"PULUMI_BACKEND_URL": f.Value.String()}))
	}
	return &stack.UseCase{
		Repos:     &stack.Repos{Run: repos.Run},
		StackPort: pulumiauto.New(infra.Program(), opts...),
	}, nil
}
