package stackcfg

import (
	"github.com/kompox/groceryops/domain/model"
)

// Params converts the file into deployment parameters, filling defaults
// for everything left out.
func (r *Root) Params() model.DeploymentParams {
	p := model.DefaultParams(r.Source.Repo, r.Source.Branch)
	if r.Source.DeployOnPush != nil {
		p.DeployOnPush = *r.Source.DeployOnPush
	}
	if r.Region != "" {
		p.Region = r.Region
	}
	if r.Cluster.Version != "" {
		p.EngineVersion = r.Cluster.Version
	}
	if r.Cluster.Size != "" {
		p.ClusterSize = r.Cluster.Size
	}
	if r.Cluster.NodeCount != 0 {
		p.ClusterNodeCount = r.Cluster.NodeCount
	}
	if r.Service.InstanceSize != "" {
		p.InstanceSize = r.Service.InstanceSize
	}
	if r.Service.InstanceCount != 0 {
		p.InstanceCount = r.Service.InstanceCount
	}
	if r.Protection != "" {
		p.Protection = model.Protection(r.Protection)
	}
	return p
}

// Deployment declares the deployment described by the file.
func (r *Root) Deployment() *model.Deployment {
	d := model.NewDeployment(r.Params())
	if r.Project != "" {
		d.Project = r.Project
	}
	return d
}

// StackRef returns the engine stack the file targets.
func (r *Root) StackRef() *model.StackRef {
	project := r.Project
	if project == "" {
		project = model.DefaultProject
	}
	return &model.StackRef{Project: project, Stack: r.Stack, WorkDir: r.WorkDir}
}

// StackConfig returns the stack configuration the program reads back
// through Params.
func (r *Root) StackConfig() *model.StackConfig {
	return &model.StackConfig{Values: Values(r.Params())}
}
