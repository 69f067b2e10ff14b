package infra

import (
	"strings"
	"sync"
	"testing"

	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kompox/groceryops/domain/model"
)

const (
	typeCluster  = "digitalocean:index/databaseCluster:DatabaseCluster"
	typeDatabase = "digitalocean:index/databaseDb:DatabaseDb"
	typeApp      = "digitalocean:index/app:App"
	typeFirewall = "digitalocean:index/databaseFirewall:DatabaseFirewall"
)

func defaultDeployment() *model.Deployment {
	return model.NewDeployment(model.DefaultParams("org/grocery-list", "main"))
}

func TestBuild(t *testing.T) {
	m := &mocks{}
	var liveURL string

	err := pulumi.RunWithMocks(testProject, "dev", m, func(ctx *pulumi.Context) error {
		res, err := Build(ctx, defaultDeployment())
		require.NoError(t, err)
		assert.Equal(t, []string{"cluster", "db", "app", "trusted-source", "export:liveUrl"}, res.Order)

		var wg sync.WaitGroup
		wg.Add(1)
		res.App.LiveURL.ApplyT(func(u string) error {
			liveURL = u
			wg.Done()
			return nil
		})
		wg.Wait()
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, "https://grocery-list-abc12.ondigitalocean.app", liveURL)

	declared := m.declared()
	require.Len(t, declared, 4)
	var types, names []string
	for _, r := range declared {
		types = append(types, r.Type)
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{typeCluster, typeDatabase, typeApp, typeFirewall}, types)
	assert.Equal(t, []string{"cluster", "db", "app", "trusted-source"}, names)

	cluster, _ := m.byName("cluster")
	assert.Equal(t, "mongodb", str(cluster.Inputs, "engine"))
	assert.Equal(t, "5", str(cluster.Inputs, "version"))
	assert.Equal(t, "sfo3", str(cluster.Inputs, "region"))
	assert.Equal(t, "db-s-1vcpu-1gb", str(cluster.Inputs, "size"))
	assert.Equal(t, float64(1), cluster.Inputs["nodeCount"].NumberValue())
	assert.False(t, cluster.Protect)
}

func TestBuild_DatabaseReferencesClusterID(t *testing.T) {
	m := &mocks{}

	err := pulumi.RunWithMocks(testProject, "dev", m, func(ctx *pulumi.Context) error {
		_, err := Build(ctx, defaultDeployment())
		return err
	})
	require.NoError(t, err)

	cluster, ok := m.byName("cluster")
	require.True(t, ok)
	db, ok := m.byName("db")
	require.True(t, ok)
	assert.Equal(t, "grocery-list", str(db.Inputs, "name"))
	assert.Equal(t, cluster.ID, str(db.Inputs, "clusterId"))
}

func TestBuild_AppSpec(t *testing.T) {
	m := &mocks{}

	err := pulumi.RunWithMocks(testProject, "dev", m, func(ctx *pulumi.Context) error {
		_, err := Build(ctx, defaultDeployment())
		return err
	})
	require.NoError(t, err)

	app, ok := m.byName("app")
	require.True(t, ok)
	spec := object(app.Inputs, "spec")
	assert.Equal(t, "grocery-list", str(spec, "name"))
	assert.Equal(t, "sfo3", str(spec, "region"))

	require.Len(t, spec["staticSites"].ArrayValue(), 1)
	site := elem(spec, "staticSites", 0)
	assert.Equal(t, "frontend", str(site, "name"))
	assert.Equal(t, "/frontend", str(site, "sourceDir"))
	assert.Equal(t, "npm install && npm run build", str(site, "buildCommand"))
	assert.Equal(t, "/dist", str(site, "outputDir"))
	github := object(site, "github")
	assert.Equal(t, "org/grocery-list", str(github, "repo"))
	assert.Equal(t, "main", str(github, "branch"))
	assert.True(t, github["deployOnPush"].BoolValue())

	require.Len(t, spec["services"].ArrayValue(), 1)
	svc := elem(spec, "services", 0)
	assert.Equal(t, "backend", str(svc, "name"))
	assert.Equal(t, "npm start", str(svc, "runCommand"))
	assert.Equal(t, float64(8000), svc["httpPort"].NumberValue())
	assert.Equal(t, "basic-xxs", str(svc, "instanceSizeSlug"))
	assert.Equal(t, float64(1), svc["instanceCount"].NumberValue())
	require.Len(t, svc["routes"].ArrayValue(), 1)
	route := elem(svc, "routes", 0)
	assert.Equal(t, "/api", str(route, "path"))
	assert.True(t, route["preservePathPrefix"].BoolValue())

	require.Len(t, spec["databases"].ArrayValue(), 1)
	db := elem(spec, "databases", 0)
	assert.Equal(t, "db", str(db, "name"))
	assert.True(t, db["production"].BoolValue())
	assert.Equal(t, "grocery-cluster", str(db, "clusterName"))
	assert.Equal(t, "MONGODB", str(db, "engine"))
}

func TestBuild_AppDatabaseComponentKeys(t *testing.T) {
	m := &mocks{}

	err := pulumi.RunWithMocks(testProject, "dev", m, func(ctx *pulumi.Context) error {
		_, err := Build(ctx, defaultDeployment())
		return err
	})
	require.NoError(t, err)

	app, ok := m.byName("app")
	require.True(t, ok)
	db := elem(object(app.Inputs, "spec"), "databases", 0)
	var keys []string
	for k := range db {
		keys = append(keys, string(k))
	}
	assert.ElementsMatch(t, []string{"name", "production", "clusterName", "engine"}, keys)
}

func TestBuild_AppDependsOnDatabase(t *testing.T) {
	m := &mocks{}

	err := pulumi.RunWithMocks(testProject, "dev", m, func(ctx *pulumi.Context) error {
		_, err := Build(ctx, defaultDeployment())
		return err
	})
	require.NoError(t, err)

	app, ok := m.byName("app")
	require.True(t, ok)
	var afterDB bool
	for _, urn := range app.DependsOn {
		if strings.HasSuffix(urn, "::db") {
			afterDB = true
		}
	}
	assert.True(t, afterDB, "app dependencies: %v", app.DependsOn)
}

func TestBuild_HandlesExposeOutputs(t *testing.T) {
	m := &mocks{}
	var ingress string

	err := pulumi.RunWithMocks(testProject, "dev", m, func(ctx *pulumi.Context) error {
		res, err := Build(ctx, defaultDeployment())
		require.NoError(t, err)
		assert.Equal(t, "${db.DATABASE_URL}", res.Database.URL.String())

		var wg sync.WaitGroup
		wg.Add(1)
		res.App.DefaultIngress.ApplyT(func(u string) error {
			ingress = u
			wg.Done()
			return nil
		})
		wg.Wait()
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, "https://grocery-list-abc12.ondigitalocean.app", ingress)
}

func TestBuild_DatabaseURLStaysDeferred(t *testing.T) {
	m := &mocks{}

	err := pulumi.RunWithMocks(testProject, "dev", m, func(ctx *pulumi.Context) error {
		_, err := Build(ctx, defaultDeployment())
		return err
	})
	require.NoError(t, err)

	app, _ := m.byName("app")
	env := elem(elem(object(app.Inputs, "spec"), "services", 0), "envs", 0)
	assert.Equal(t, "DATABASE_URL", str(env, "key"))
	assert.Equal(t, "RUN_AND_BUILD_TIME", str(env, "scope"))
	assert.Equal(t, "${db.DATABASE_URL}", str(env, "value"))
	assert.NotContains(t, str(env, "value"), "mongodb+srv://")
}

func TestBuild_EngineAlwaysUpperCased(t *testing.T) {
	for _, engine := range []string{"mongodb", "MongoDB", "MONGODB"} {
		t.Run(engine, func(t *testing.T) {
			m := &mocks{}
			d := defaultDeployment()
			d.Cluster.Engine = engine

			err := pulumi.RunWithMocks(testProject, "dev", m, func(ctx *pulumi.Context) error {
				_, err := Build(ctx, d)
				return err
			})
			require.NoError(t, err)

			cluster, _ := m.byName("cluster")
			assert.Equal(t, engine, str(cluster.Inputs, "engine"), "cluster keeps the declared casing")
			app, _ := m.byName("app")
			db := elem(object(app.Inputs, "spec"), "databases", 0)
			assert.Equal(t, "MONGODB", str(db, "engine"))
		})
	}
}

func TestBuild_FirewallAdmitsApp(t *testing.T) {
	m := &mocks{}

	err := pulumi.RunWithMocks(testProject, "dev", m, func(ctx *pulumi.Context) error {
		_, err := Build(ctx, defaultDeployment())
		return err
	})
	require.NoError(t, err)

	cluster, _ := m.byName("cluster")
	app, _ := m.byName("app")
	fw, ok := m.byName("trusted-source")
	require.True(t, ok)
	assert.Equal(t, cluster.ID, str(fw.Inputs, "clusterId"))
	require.Len(t, fw.Inputs["rules"].ArrayValue(), 1)
	rule := elem(fw.Inputs, "rules", 0)
	assert.Equal(t, "app", str(rule, "type"))
	assert.Equal(t, app.ID, str(rule, "value"))
}

func TestBuild_Protection(t *testing.T) {
	m := &mocks{}
	p := model.DefaultParams("org/grocery-list", "main")
	p.Protection = model.ProtectionCannotDelete

	err := pulumi.RunWithMocks(testProject, "prod", m, func(ctx *pulumi.Context) error {
		_, err := Build(ctx, model.NewDeployment(p))
		return err
	})
	require.NoError(t, err)

	for _, r := range m.declared() {
		switch r.Name {
		case "cluster", "db":
			assert.True(t, r.Protect, "%s should be protected", r.Name)
		default:
			assert.False(t, r.Protect, "%s should not be protected", r.Name)
		}
	}
}

func TestBuild_InvalidGraphDeclaresNothing(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *model.Deployment)
		wantErr string
	}{
		{
			name:    "unknown node",
			mutate:  func(d *model.Deployment) { d.Firewall.Rules[0].Value = model.RefTo("cache", model.AttrID) },
			wantErr: "reference to unknown node",
		},
		{
			name:    "unknown output",
			mutate:  func(d *model.Deployment) { d.Database.Cluster = model.RefTo(model.NodeCluster, model.AttrLiveURL) },
			wantErr: "reference to unknown output",
		},
		{
			name:    "invalid literal",
			mutate:  func(d *model.Deployment) { d.App.Services[0].HTTPPort = 0 },
			wantErr: "http port",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mocks{}
			d := defaultDeployment()
			tt.mutate(d)

			err := pulumi.RunWithMocks(testProject, "dev", m, func(ctx *pulumi.Context) error {
				_, err := Build(ctx, d)
				return err
			})

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Empty(t, m.declared())
		})
	}
}
