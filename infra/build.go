// Package infra declares the grocery list stack on DigitalOcean. Nodes of
// a model.Deployment become Pulumi resources; references between nodes
// become Pulumi outputs so the engine can order their realisation.
package infra

import (
	"fmt"

	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/kompox/groceryops/domain/model"
	"github.com/kompox/groceryops/infra/declgraph"
)

// Resources are the handles of a built deployment.
type Resources struct {
	Cluster  *ClusterHandle
	Database *DatabaseHandle
	App      *AppHandle
	Firewall *FirewallHandle
	// Order is the order in which the nodes were declared.
	Order []string
}

// Build validates d and declares its nodes in dependency order, then
// exports its outputs. Nothing is declared if validation fails.
func Build(ctx *pulumi.Context, d *model.Deployment) (*Resources, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	g, err := declgraph.New(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrDeploymentInvalid, err)
	}
	order, err := g.Order()
	if err != nil {
		return nil, err
	}

	var stateful []pulumi.ResourceOption
	if d.Protection.ProtectsResources() {
		stateful = append(stateful, pulumi.Protect(true))
	}

	exports := make(map[string]model.ExportSpec, len(d.Exports))
	for _, e := range d.Exports {
		exports[model.ExportNodeName(e.Name)] = e
	}

	outs := NewOutputs()
	res := &Resources{Order: order}
	for _, name := range order {
		node, err := g.Node(name)
		if err != nil {
			return nil, err
		}
		switch node.Kind {
		case model.KindCluster:
			res.Cluster, err = DeclareCluster(ctx, d.Cluster, outs, stateful...)
		case model.KindDatabase:
			res.Database, err = DeclareDatabase(ctx, d.Database, outs, stateful...)
		case model.KindApp:
			res.App, err = DeclareApp(ctx, d.App, outs)
		case model.KindFirewall:
			res.Firewall, err = DeclareFirewall(ctx, d.Firewall, outs)
		case model.KindExport:
			err = Export(ctx, exports[name], outs)
		default:
			err = fmt.Errorf("node %q: unsupported kind %q", name, node.Kind)
		}
		if err != nil {
			return nil, fmt.Errorf("declaring %s: %w", name, err)
		}
	}
	return res, nil
}

// Export publishes the output e references as a stack output.
func Export(ctx *pulumi.Context, e model.ExportSpec, outs *Outputs) error {
	v, err := outs.String(e.Value)
	if err != nil {
		return err
	}
	ctx.Export(e.Name, v)
	return nil
}
