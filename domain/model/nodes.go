package model

// Kinds of declared nodes.
const (
	KindCluster  = "DatabaseCluster"
	KindDatabase = "DatabaseDb"
	KindApp      = "App"
	KindFirewall = "DatabaseFirewall"
	KindExport   = "Export"
)

// NodeDecl is a declared node and the references it consumes. After
// lists nodes that must be realised first without being read.
type NodeDecl struct {
	Name  string
	Kind  string
	Refs  []Ref
	After []string
}

// ExportNodeName returns the graph node name of an export.
func ExportNodeName(name string) string { return "export:" + name }

// Nodes lists the declared nodes in declaration order together with
// every reference each one reads.
func (d *Deployment) Nodes() []NodeDecl {
	nodes := []NodeDecl{
		{Name: d.Cluster.Node, Kind: KindCluster},
		{Name: d.Database.Node, Kind: KindDatabase, Refs: []Ref{d.Database.Cluster}},
		{Name: d.App.Node, Kind: KindApp, Refs: d.App.refs(), After: d.App.After},
		{Name: d.Firewall.Node, Kind: KindFirewall, Refs: d.Firewall.refs()},
	}
	for _, e := range d.Exports {
		nodes = append(nodes, NodeDecl{Name: ExportNodeName(e.Name), Kind: KindExport, Refs: []Ref{e.Value}})
	}
	return nodes
}

func (a AppSpec) refs() []Ref {
	var refs []Ref
	for _, db := range a.Databases {
		for _, r := range []Ref{db.ClusterName, db.Engine} {
			if !r.IsZero() {
				refs = append(refs, r)
			}
		}
	}
	return refs
}

func (f FirewallSpec) refs() []Ref {
	refs := []Ref{f.Cluster}
	for _, r := range f.Rules {
		refs = append(refs, r.Value)
	}
	return refs
}
