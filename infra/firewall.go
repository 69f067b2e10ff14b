package infra

import (
	"github.com/pulumi/pulumi-digitalocean/sdk/v4/go/digitalocean"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/kompox/groceryops/domain/model"
)

// FirewallHandle exposes the deferred outputs of a declared firewall.
type FirewallHandle struct {
	Resource *digitalocean.DatabaseFirewall
	ID       pulumi.StringOutput
}

// DeclareFirewall declares the trusted sources of a cluster. Rule values
// reference other nodes, so the firewall is realised after them.
func DeclareFirewall(ctx *pulumi.Context, spec model.FirewallSpec, outs *Outputs, opts ...pulumi.ResourceOption) (*FirewallHandle, error) {
	clusterID, err := outs.String(spec.Cluster)
	if err != nil {
		return nil, err
	}

	var rules digitalocean.DatabaseFirewallRuleArray
	for _, r := range spec.Rules {
		value, err := outs.String(r.Value)
		if err != nil {
			return nil, err
		}
		rules = append(rules, &digitalocean.DatabaseFirewallRuleArgs{
			Type:  pulumi.String(r.Type),
			Value: value,
		})
	}

	fw, err := digitalocean.NewDatabaseFirewall(ctx, spec.Node, &digitalocean.DatabaseFirewallArgs{
		ClusterId: clusterID,
		Rules:     rules,
	}, opts...)
	if err != nil {
		return nil, err
	}

	h := &FirewallHandle{Resource: fw, ID: fw.ID().ToStringOutput()}
	outs.declare(spec.Node, h.Resource)
	outs.set(spec.Node, model.AttrID, h.ID)
	return h, nil
}
