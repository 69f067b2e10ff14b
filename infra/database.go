package infra

import (
	"github.com/pulumi/pulumi-digitalocean/sdk/v4/go/digitalocean"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/kompox/groceryops/domain/model"
)

// DatabaseHandle exposes the deferred outputs of a declared database.
type DatabaseHandle struct {
	Resource *digitalocean.DatabaseDb
	ID       pulumi.StringOutput
	Name     pulumi.StringOutput
	// URL is the connection string binding. App Platform fills it in when
	// the database is attached to an app under the same component name.
	URL model.Bindable
}

// DeclareDatabase declares a database in the cluster spec.Cluster refers
// to.
func DeclareDatabase(ctx *pulumi.Context, spec model.DatabaseSpec, outs *Outputs, opts ...pulumi.ResourceOption) (*DatabaseHandle, error) {
	clusterID, err := outs.String(spec.Cluster)
	if err != nil {
		return nil, err
	}

	db, err := digitalocean.NewDatabaseDb(ctx, spec.Node, &digitalocean.DatabaseDbArgs{
		Name:      pulumi.String(spec.Name),
		ClusterId: clusterID,
	}, opts...)
	if err != nil {
		return nil, err
	}

	h := &DatabaseHandle{
		Resource: db,
		ID:       db.ID().ToStringOutput(),
		Name:     db.Name,
		URL:      spec.URL(),
	}
	outs.declare(spec.Node, h.Resource)
	outs.set(spec.Node, model.AttrID, h.ID)
	outs.set(spec.Node, model.AttrName, h.Name)
	return h, nil
}
