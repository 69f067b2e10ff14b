package infra

import (
	"github.com/pulumi/pulumi-digitalocean/sdk/v4/go/digitalocean"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/kompox/groceryops/domain/model"
)

// ClusterHandle exposes the deferred outputs of a declared cluster.
type ClusterHandle struct {
	Resource *digitalocean.DatabaseCluster
	ID       pulumi.StringOutput
	Name     pulumi.StringOutput
	Engine   pulumi.StringOutput
}

// DeclareCluster declares the managed database cluster. All of its inputs
// are literals.
func DeclareCluster(ctx *pulumi.Context, spec model.ClusterSpec, outs *Outputs, opts ...pulumi.ResourceOption) (*ClusterHandle, error) {
	cluster, err := digitalocean.NewDatabaseCluster(ctx, spec.Node, &digitalocean.DatabaseClusterArgs{
		Engine:    pulumi.String(spec.Engine),
		Version:   pulumi.String(spec.Version),
		Region:    pulumi.String(spec.Region),
		Size:      pulumi.String(spec.Size),
		NodeCount: pulumi.Int(spec.NodeCount),
	}, opts...)
	if err != nil {
		return nil, err
	}

	h := &ClusterHandle{
		Resource: cluster,
		ID:       cluster.ID().ToStringOutput(),
		Name:     cluster.Name,
		Engine:   cluster.Engine,
	}
	outs.declare(spec.Node, h.Resource)
	outs.set(spec.Node, model.AttrID, h.ID)
	outs.set(spec.Node, model.AttrName, h.Name)
	outs.set(spec.Node, model.AttrEngine, h.Engine)
	return h, nil
}
