package model

// Node names of the declared resources. They double as the Pulumi logical
// names, so changing one replaces the live resource.
const (
	NodeCluster  = "cluster"
	NodeDatabase = "db"
	NodeApp      = "app"
	NodeFirewall = "trusted-source"
)

// Output attributes a node exposes to its dependents.
const (
	AttrID      = "id"
	AttrName    = "name"
	AttrEngine  = "engine"
	AttrLiveURL = "live_url"
)

// Ref points at an output attribute of another declared node. The value is
// known only after the engine has realised that node, so a Ref is never
// rendered into a literal at build time.
type Ref struct {
	Node string
	Attr string
}

// RefTo returns a reference to attr of node.
func RefTo(node, attr string) Ref { return Ref{Node: node, Attr: attr} }

// IsZero reports whether r references nothing.
func (r Ref) IsZero() bool { return r.Node == "" && r.Attr == "" }

func (r Ref) String() string { return r.Node + "." + r.Attr }

// Bindable is an App Platform bindable variable such as ${db.DATABASE_URL}.
// App Platform substitutes it when the component is deployed.
type Bindable struct {
	Component string
	Var       string
}

func (b Bindable) String() string { return "${" + b.Component + "." + b.Var + "}" }

// Deployment is the full declaration graph of one stack.
type Deployment struct {
	Project    string
	Protection Protection
	Cluster    ClusterSpec
	Database   DatabaseSpec
	App        AppSpec
	Firewall   FirewallSpec
	Exports    []ExportSpec
}

// ClusterSpec declares a managed database cluster.
type ClusterSpec struct {
	Node      string
	Engine    string // provider casing, e.g. "mongodb"
	Version   string
	Region    string
	Size      string
	NodeCount int
}

// DatabaseSpec declares a database inside a cluster.
type DatabaseSpec struct {
	Node    string
	Name    string
	Cluster Ref // cluster.id
}

// URL returns the connection string binding App Platform exposes for the
// database once it is attached to the app under the same component name.
func (d DatabaseSpec) URL() Bindable {
	return Bindable{Component: d.Node, Var: "DATABASE_URL"}
}

// AppSpec declares an App Platform application.
type AppSpec struct {
	Node        string
	Name        string
	Region      string
	StaticSites []StaticSiteSpec
	Services    []ServiceSpec
	Databases   []AppDatabaseSpec
	// After names nodes realised before the app although it reads none
	// of their outputs.
	After []string
}

// GitHubSource selects the repository and branch a component builds from.
type GitHubSource struct {
	Repo         string
	Branch       string
	DeployOnPush bool
}

// StaticSiteSpec is a static component served from build output.
type StaticSiteSpec struct {
	Name         string
	GitHub       GitHubSource
	SourceDir    string
	BuildCommand string
	OutputDir    string
}

// ServiceSpec is a long-running HTTP component.
type ServiceSpec struct {
	Name             string
	GitHub           GitHubSource
	SourceDir        string
	BuildCommand     string
	RunCommand       string
	HTTPPort         int
	Routes           []RouteSpec
	InstanceSizeSlug string
	InstanceCount    int
	Envs             []EnvVar
}

// RouteSpec maps an HTTP path prefix to a component.
type RouteSpec struct {
	Path               string
	PreservePathPrefix bool
}

// Env var scopes accepted by App Platform.
const (
	EnvScopeRunTime         = "RUN_TIME"
	EnvScopeBuildTime       = "BUILD_TIME"
	EnvScopeRunAndBuildTime = "RUN_AND_BUILD_TIME"
)

// EnvVar is a component environment variable. Exactly one of Value and
// Binding is set.
type EnvVar struct {
	Key     string
	Scope   string
	Value   string
	Binding *Bindable
}

// Render returns the string handed to App Platform. Bindings stay
// placeholders.
func (e EnvVar) Render() string {
	if e.Binding != nil {
		return e.Binding.String()
	}
	return e.Value
}

// AppDatabaseSpec attaches a managed cluster to the app as a component.
// Name is the prefix of the bindable variables the cluster exposes.
type AppDatabaseSpec struct {
	Name        string
	Production  bool
	ClusterName Ref // cluster.name
	Engine      Ref // cluster.engine, upper-cased for App Platform
}

// FirewallSpec restricts access to a cluster.
type FirewallSpec struct {
	Node    string
	Cluster Ref // cluster.id
	Rules   []FirewallRuleSpec
}

// Firewall rule types.
const (
	FirewallRuleApp     = "app"
	FirewallRuleDroplet = "droplet"
	FirewallRuleIPAddr  = "ip_addr"
	FirewallRuleK8s     = "k8s"
	FirewallRuleTag     = "tag"
)

// FirewallRuleSpec allows one source. Value references an output of
// another node.
type FirewallRuleSpec struct {
	Type  string
	Value Ref
}

// ExportSpec publishes a node output as a stack output.
type ExportSpec struct {
	Name  string
	Value Ref
}
