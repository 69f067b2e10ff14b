// Package declgraph builds the dependency graph of a deployment's declared
// nodes. Each reference a node reads from another node's outputs forms a
// directed edge from the producer to the consumer, as does an explicit
// ordering constraint, so a topological order of the graph is an order in
// which the nodes can be realised. No cycle is allowed: a cycle would leave
// the engine without a creation order.
package declgraph

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"

	"github.com/kompox/groceryops/domain/model"
)

var (
	ErrDuplicateNode = errors.New("duplicate node")
	ErrUnknownNode   = errors.New("reference to unknown node")
	ErrUnknownOutput = errors.New("reference to unknown output")
	ErrCycle         = errors.New("reference creates a cycle")
)

// outputs lists the attributes each node kind exposes to dependents.
var outputs = map[string][]string{
	model.KindCluster:  {model.AttrID, model.AttrName, model.AttrEngine},
	model.KindDatabase: {model.AttrID, model.AttrName},
	model.KindApp:      {model.AttrID, model.AttrLiveURL},
	model.KindFirewall: {model.AttrID},
}

// Graph is the validated declaration graph of a deployment.
type Graph struct {
	g     graph.Graph[string, model.NodeDecl]
	index map[string]int // declaration position, tie-breaker for ordering
}

// New builds and validates the declaration graph of d.
func New(d *model.Deployment) (*Graph, error) {
	return FromNodes(d.Nodes())
}

// FromNodes builds and validates a declaration graph from nodes.
func FromNodes(nodes []model.NodeDecl) (*Graph, error) {
	g := graph.New(func(n model.NodeDecl) string {
		return n.Name
	}, graph.Directed(), graph.Acyclic(), graph.PreventCycles())

	index := make(map[string]int, len(nodes))
	for i, n := range nodes {
		if err := g.AddVertex(n, graph.VertexAttribute("kind", n.Kind)); err != nil {
			if errors.Is(err, graph.ErrVertexAlreadyExists) {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, n.Name)
			}
			return nil, fmt.Errorf("failed adding node %q: %w", n.Name, err)
		}
		index[n.Name] = i
	}

	for _, n := range nodes {
		// Several attributes of one producer collapse into a single edge.
		attrs := map[string][]string{}
		var producers []string
		for _, ref := range n.Refs {
			producer, err := g.Vertex(ref.Node)
			if err != nil {
				return nil, fmt.Errorf("%w: %q reads %s", ErrUnknownNode, n.Name, ref)
			}
			if !exposes(producer.Kind, ref.Attr) {
				return nil, fmt.Errorf("%w: %q reads %s, %s exposes %s", ErrUnknownOutput, n.Name, ref, producer.Kind, strings.Join(outputs[producer.Kind], ", "))
			}
			if _, ok := attrs[ref.Node]; !ok {
				producers = append(producers, ref.Node)
			}
			attrs[ref.Node] = appendUnique(attrs[ref.Node], ref.Attr)
		}
		// An ordering constraint without a read is an edge labelled "after".
		for _, a := range n.After {
			if _, err := g.Vertex(a); err != nil {
				return nil, fmt.Errorf("%w: %q comes after %q", ErrUnknownNode, n.Name, a)
			}
			if _, ok := attrs[a]; !ok {
				producers = append(producers, a)
				attrs[a] = []string{"after"}
			}
		}
		for _, p := range producers {
			label := strings.Join(attrs[p], ",")
			if err := g.AddEdge(p, n.Name, graph.EdgeAttribute("label", label)); err != nil {
				if errors.Is(err, graph.ErrEdgeCreatesCycle) {
					return nil, fmt.Errorf("%w: %q reads %q", ErrCycle, n.Name, p)
				}
				return nil, fmt.Errorf("failed adding edge from %q to %q: %w", p, n.Name, err)
			}
		}
	}

	return &Graph{g: g, index: index}, nil
}

func exposes(kind, attr string) bool {
	for _, a := range outputs[kind] {
		if a == attr {
			return true
		}
	}
	return false
}

func appendUnique(s []string, v string) []string {
	for _, x := range s {
		if x == v {
			return s
		}
	}
	return append(s, v)
}

// Order returns the node names in realisation order. Nodes with no
// ordering constraint between them keep their declaration order.
func (g *Graph) Order() ([]string, error) {
	return graph.StableTopologicalSort(g.g, func(a, b string) bool {
		return g.index[a] < g.index[b]
	})
}

// Dependencies returns the nodes name directly reads from or comes after,
// sorted.
func (g *Graph) Dependencies(name string) ([]string, error) {
	preds, err := g.g.PredecessorMap()
	if err != nil {
		return nil, err
	}
	in, ok := preds[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}
	deps := make([]string, 0, len(in))
	for p := range in {
		deps = append(deps, p)
	}
	sort.Strings(deps)
	return deps, nil
}

// Node returns the declaration of the named node.
func (g *Graph) Node(name string) (model.NodeDecl, error) {
	n, err := g.g.Vertex(name)
	if err != nil {
		return model.NodeDecl{}, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}
	return n, nil
}

// Len returns the number of declared nodes.
func (g *Graph) Len() int { return len(g.index) }

// DOT writes the graph in Graphviz DOT format.
func (g *Graph) DOT(w io.Writer) error {
	return draw.DOT(g.g, w, draw.GraphAttribute("rankdir", "LR"))
}
