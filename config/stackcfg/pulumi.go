package stackcfg

import (
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi/config"
)

// PulumiLookup reads keys from the project namespace of the running
// stack's configuration.
func PulumiLookup(ctx *pulumi.Context) Lookup {
	cfg := config.New(ctx, "")
	return func(key string) (string, bool) {
		v := cfg.Get(key)
		return v, v != ""
	}
}
