package infra

import (
	"errors"
	"fmt"

	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/kompox/groceryops/domain/model"
)

// ErrUnresolvedRef is returned when a node reads an output of a node that
// has not been declared yet.
var ErrUnresolvedRef = errors.New("unresolved reference")

// Outputs holds the deferred outputs of the nodes declared so far, keyed by
// the reference dependents use to read them.
type Outputs struct {
	m   map[model.Ref]pulumi.StringOutput
	res map[string]pulumi.Resource
}

// NewOutputs returns an empty output table.
func NewOutputs() *Outputs {
	return &Outputs{
		m:   map[model.Ref]pulumi.StringOutput{},
		res: map[string]pulumi.Resource{},
	}
}

func (o *Outputs) set(node, attr string, v pulumi.StringOutput) {
	o.m[model.RefTo(node, attr)] = v
}

func (o *Outputs) declare(node string, r pulumi.Resource) {
	o.res[node] = r
}

// String returns the output ref points at.
func (o *Outputs) String(ref model.Ref) (pulumi.StringOutput, error) {
	v, ok := o.m[ref]
	if !ok {
		return pulumi.StringOutput{}, fmt.Errorf("%w: %s", ErrUnresolvedRef, ref)
	}
	return v, nil
}

// Resources returns the declared resources of the named nodes.
func (o *Outputs) Resources(nodes []string) ([]pulumi.Resource, error) {
	var out []pulumi.Resource
	for _, n := range nodes {
		r, ok := o.res[n]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnresolvedRef, n)
		}
		out = append(out, r)
	}
	return out, nil
}
