package model

// Defaults of the grocery list deployment.
const (
	DefaultProject          = "grocery-list"
	DefaultRegion           = "sfo3"
	DefaultEngine           = "mongodb"
	DefaultEngineVersion    = "5"
	DefaultClusterSize      = "db-s-1vcpu-1gb"
	DefaultClusterNodeCount = 1
	DefaultInstanceSize     = "basic-xxs"
	DefaultInstanceCount    = 1
	DefaultDatabaseName     = "grocery-list"
	DefaultAppName          = "grocery-list"
	ExportLiveURL           = "liveUrl"
)

// DeploymentParams are the tunable inputs of the deployment. Repo and
// Branch have no default.
type DeploymentParams struct {
	Repo             string
	Branch           string
	DeployOnPush     bool
	Region           string
	EngineVersion    string
	ClusterSize      string
	ClusterNodeCount int
	InstanceSize     string
	InstanceCount    int
	Protection       Protection
}

// DefaultParams returns the parameters of the stock deployment for the
// given source.
func DefaultParams(repo, branch string) DeploymentParams {
	return DeploymentParams{
		Repo:             repo,
		Branch:           branch,
		DeployOnPush:     true,
		Region:           DefaultRegion,
		EngineVersion:    DefaultEngineVersion,
		ClusterSize:      DefaultClusterSize,
		ClusterNodeCount: DefaultClusterNodeCount,
		InstanceSize:     DefaultInstanceSize,
		InstanceCount:    DefaultInstanceCount,
		Protection:       ProtectionNone,
	}
}

// NewDeployment declares the grocery list stack: a MongoDB cluster and
// database, an App Platform app with a React front end and an Express
// back end, and a firewall that only admits the app.
func NewDeployment(p DeploymentParams) *Deployment {
	src := GitHubSource{Repo: p.Repo, Branch: p.Branch, DeployOnPush: p.DeployOnPush}

	cluster := ClusterSpec{
		Node:      NodeCluster,
		Engine:    DefaultEngine,
		Version:   p.EngineVersion,
		Region:    p.Region,
		Size:      p.ClusterSize,
		NodeCount: p.ClusterNodeCount,
	}

	db := DatabaseSpec{
		Node:    NodeDatabase,
		Name:    DefaultDatabaseName,
		Cluster: RefTo(NodeCluster, AttrID),
	}
	dbURL := db.URL()

	app := AppSpec{
		Node:   NodeApp,
		Name:   DefaultAppName,
		Region: p.Region,
		StaticSites: []StaticSiteSpec{
			{
				Name:         "frontend",
				GitHub:       src,
				SourceDir:    "/frontend",
				BuildCommand: "npm install && npm run build",
				OutputDir:    "/dist",
			},
		},
		Services: []ServiceSpec{
			{
				Name:             "backend",
				GitHub:           src,
				SourceDir:        "/backend",
				BuildCommand:     "npm install && npm run build",
				RunCommand:       "npm start",
				HTTPPort:         8000,
				Routes:           []RouteSpec{{Path: "/api", PreservePathPrefix: true}},
				InstanceSizeSlug: p.InstanceSize,
				InstanceCount:    p.InstanceCount,
				Envs: []EnvVar{
					{Key: "DATABASE_URL", Scope: EnvScopeRunAndBuildTime, Binding: &dbURL},
				},
			},
		},
		// MongoDB clusters can only be attached in production mode.
		Databases: []AppDatabaseSpec{
			{
				Name:        db.Node,
				Production:  true,
				ClusterName: RefTo(NodeCluster, AttrName),
				Engine:      RefTo(NodeCluster, AttrEngine),
			},
		},
		// The service binds DATABASE_URL of the db component, so the
		// database exists before the app starts.
		After: []string{NodeDatabase},
	}

	fw := FirewallSpec{
		Node:    NodeFirewall,
		Cluster: RefTo(NodeCluster, AttrID),
		Rules: []FirewallRuleSpec{
			{Type: FirewallRuleApp, Value: RefTo(NodeApp, AttrID)},
		},
	}

	return &Deployment{
		Project:    DefaultProject,
		Protection: p.Protection,
		Cluster:    cluster,
		Database:   db,
		App:        app,
		Firewall:   fw,
		Exports:    []ExportSpec{{Name: ExportLiveURL, Value: RefTo(NodeApp, AttrLiveURL)}},
	}
}
