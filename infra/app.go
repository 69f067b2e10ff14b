package infra

import (
	"strings"

	"github.com/pulumi/pulumi-digitalocean/sdk/v4/go/digitalocean"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/kompox/groceryops/domain/model"
)

// AppHandle exposes the deferred outputs of a declared app.
type AppHandle struct {
	Resource       *digitalocean.App
	ID             pulumi.StringOutput
	LiveURL        pulumi.StringOutput
	DefaultIngress pulumi.StringOutput
}

// DeclareApp declares the App Platform app. The database components read
// the cluster's name and engine; service env bindings are passed through
// as placeholders for App Platform. The app depends on the nodes listed in
// spec.After.
func DeclareApp(ctx *pulumi.Context, spec model.AppSpec, outs *Outputs, opts ...pulumi.ResourceOption) (*AppHandle, error) {
	databases, err := appDatabases(spec.Databases, outs)
	if err != nil {
		return nil, err
	}
	after, err := outs.Resources(spec.After)
	if err != nil {
		return nil, err
	}
	if len(after) > 0 {
		opts = append(opts, pulumi.DependsOn(after))
	}

	app, err := digitalocean.NewApp(ctx, spec.Node, &digitalocean.AppArgs{
		Spec: &digitalocean.AppSpecArgs{
			Name:        pulumi.String(spec.Name),
			Region:      pulumi.String(spec.Region),
			StaticSites: staticSites(spec.StaticSites),
			Services:    services(spec.Services),
			Databases:   databases,
		},
	}, opts...)
	if err != nil {
		return nil, err
	}

	h := &AppHandle{
		Resource:       app,
		ID:             app.ID().ToStringOutput(),
		LiveURL:        app.LiveUrl,
		DefaultIngress: app.DefaultIngress,
	}
	outs.declare(spec.Node, h.Resource)
	outs.set(spec.Node, model.AttrID, h.ID)
	outs.set(spec.Node, model.AttrLiveURL, h.LiveURL)
	return h, nil
}

func staticSites(specs []model.StaticSiteSpec) digitalocean.AppSpecStaticSiteArray {
	var out digitalocean.AppSpecStaticSiteArray
	for _, s := range specs {
		out = append(out, &digitalocean.AppSpecStaticSiteArgs{
			Name: pulumi.String(s.Name),
			Github: &digitalocean.AppSpecStaticSiteGithubArgs{
				Repo:         pulumi.String(s.GitHub.Repo),
				Branch:       pulumi.String(s.GitHub.Branch),
				DeployOnPush: pulumi.Bool(s.GitHub.DeployOnPush),
			},
			SourceDir:    pulumi.String(s.SourceDir),
			BuildCommand: pulumi.String(s.BuildCommand),
			OutputDir:    pulumi.String(s.OutputDir),
		})
	}
	return out
}

func services(specs []model.ServiceSpec) digitalocean.AppSpecServiceArray {
	var out digitalocean.AppSpecServiceArray
	for _, s := range specs {
		var routes digitalocean.AppSpecServiceRouteArray
		for _, r := range s.Routes {
			routes = append(routes, &digitalocean.AppSpecServiceRouteArgs{
				Path:               pulumi.String(r.Path),
				PreservePathPrefix: pulumi.Bool(r.PreservePathPrefix),
			})
		}

		var envs digitalocean.AppSpecServiceEnvArray
		for _, e := range s.Envs {
			env := &digitalocean.AppSpecServiceEnvArgs{
				Key:   pulumi.String(e.Key),
				Value: pulumi.String(e.Render()),
			}
			if e.Scope != "" {
				env.Scope = pulumi.String(e.Scope)
			}
			envs = append(envs, env)
		}

		out = append(out, &digitalocean.AppSpecServiceArgs{
			Name: pulumi.String(s.Name),
			Github: &digitalocean.AppSpecServiceGithubArgs{
				Repo:         pulumi.String(s.GitHub.Repo),
				Branch:       pulumi.String(s.GitHub.Branch),
				DeployOnPush: pulumi.Bool(s.GitHub.DeployOnPush),
			},
			SourceDir:        pulumi.String(s.SourceDir),
			BuildCommand:     pulumi.String(s.BuildCommand),
			RunCommand:       pulumi.String(s.RunCommand),
			HttpPort:         pulumi.Int(s.HTTPPort),
			Routes:           routes,
			InstanceSizeSlug: pulumi.String(s.InstanceSizeSlug),
			InstanceCount:    pulumi.Int(s.InstanceCount),
			Envs:             envs,
		})
	}
	return out
}

func appDatabases(specs []model.AppDatabaseSpec, outs *Outputs) (digitalocean.AppSpecDatabaseArray, error) {
	var out digitalocean.AppSpecDatabaseArray
	for _, s := range specs {
		clusterName, err := outs.String(s.ClusterName)
		if err != nil {
			return nil, err
		}
		engine, err := outs.String(s.Engine)
		if err != nil {
			return nil, err
		}
		out = append(out, &digitalocean.AppSpecDatabaseArgs{
			Name:        pulumi.String(s.Name),
			Production:  pulumi.Bool(s.Production),
			ClusterName: clusterName,
			Engine:      AppPlatformEngine(engine),
		})
	}
	return out, nil
}

// AppPlatformEngine converts a cluster engine into the upper-case form App
// Platform expects in database components ("mongodb" -> "MONGODB"). The
// cluster resource itself keeps the lower-case form.
func AppPlatformEngine(engine pulumi.StringOutput) pulumi.StringOutput {
	return engine.ApplyT(func(e string) string {
		return strings.ToUpper(e)
	}).(pulumi.StringOutput)
}
