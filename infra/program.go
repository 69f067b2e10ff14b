package infra

import (
	"fmt"

	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/kompox/groceryops/config/stackcfg"
)

// Program returns the Pulumi program of the stack. The stack
// configuration is read in full before the first resource is declared, so
// a missing repo or branch aborts with stackcfg.ErrConfigMissing and an
// empty graph.
func Program() pulumi.RunFunc {
	return func(ctx *pulumi.Context) error {
		d, err := stackcfg.Deployment(stackcfg.PulumiLookup(ctx))
		if err != nil {
			return fmt.Errorf("stack %s: %w", ctx.Stack(), err)
		}
		d.Project = ctx.Project()

		res, err := Build(ctx, d)
		if err != nil {
			return err
		}
		_ = ctx.Log.Debug(fmt.Sprintf("declared %d nodes: %v", len(res.Order), res.Order), nil)
		return nil
	}
}
