package stack

import (
	"bytes"
	"context"
	"fmt"

	"github.com/kompox/groceryops/config/stackcfg"
	"github.com/kompox/groceryops/infra/declgraph"
)

// GraphInput selects the configuration whose declarations are graphed.
type GraphInput struct {
	Config *stackcfg.Root `json:"-"`
	// DOT requests a Graphviz rendering in the output.
	DOT bool `json:"dot"`
}

// GraphNode is one declared node in declaration order.
type GraphNode struct {
	Name      string   `json:"name"`
	Kind      string   `json:"kind"`
	DependsOn []string `json:"depends_on"`
}

// GraphOutput is the declaration graph of a deployment.
type GraphOutput struct {
	Nodes []GraphNode `json:"nodes"`
	DOT   string      `json:"dot,omitempty"`
}

// Graph returns the nodes of the deployment in the order they are declared.
func (u *UseCase) Graph(ctx context.Context, in *GraphInput) (*GraphOutput, error) {
	if in == nil || in.Config == nil {
		return nil, fmt.Errorf("%w: missing configuration", stackcfg.ErrConfigInvalid)
	}
	g, err := declgraph.New(in.Config.Deployment())
	if err != nil {
		return nil, err
	}
	order, err := g.Order()
	if err != nil {
		return nil, err
	}
	out := &GraphOutput{Nodes: make([]GraphNode, 0, len(order))}
	for _, name := range order {
		n, err := g.Node(name)
		if err != nil {
			return nil, err
		}
		deps, err := g.Dependencies(name)
		if err != nil {
			return nil, err
		}
		out.Nodes = append(out.Nodes, GraphNode{Name: name, Kind: n.Kind, DependsOn: deps})
	}
	if in.DOT {
		var buf bytes.Buffer
		if err := g.DOT(&buf); err != nil {
			return nil, fmt.Errorf("rendering graph: %w", err)
		}
		out.DOT = buf.String()
	}
	return out, nil
}
