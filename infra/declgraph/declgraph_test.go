package declgraph_test

import (
	"bytes"
	"testing"

	"github.com/kompox/groceryops/domain/model"
	"github.com/kompox/groceryops/infra/declgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		d := model.NewDeployment(model.DefaultParams("org/grocery-list", "main"))

		g, err := declgraph.New(d)
		require.NoError(t, err)

		assert.Equal(t, 5, g.Len())
		order, err := g.Order()
		require.NoError(t, err)
		assert.Equal(t, []string{"cluster", "db", "app", "trusted-source", "export:liveUrl"}, order)
	})

	t.Run("Dependencies", func(t *testing.T) {
		d := model.NewDeployment(model.DefaultParams("org/grocery-list", "main"))
		g, err := declgraph.New(d)
		require.NoError(t, err)

		deps, err := g.Dependencies("db")
		require.NoError(t, err)
		assert.Equal(t, []string{"cluster"}, deps)

		deps, err = g.Dependencies("app")
		require.NoError(t, err)
		assert.Equal(t, []string{"cluster", "db"}, deps)

		deps, err = g.Dependencies("trusted-source")
		require.NoError(t, err)
		assert.Equal(t, []string{"app", "cluster"}, deps)

		deps, err = g.Dependencies("cluster")
		require.NoError(t, err)
		assert.Empty(t, deps)

		_, err = g.Dependencies("nope")
		assert.ErrorIs(t, err, declgraph.ErrUnknownNode)
	})

	t.Run("FailGivenUnknownNode", func(t *testing.T) {
		_, err := declgraph.FromNodes([]model.NodeDecl{
			{Name: "db", Kind: model.KindDatabase, Refs: []model.Ref{model.RefTo("cluster", model.AttrID)}},
		})

		assert.ErrorIs(t, err, declgraph.ErrUnknownNode)
	})

	t.Run("FailGivenUnknownOutput", func(t *testing.T) {
		_, err := declgraph.FromNodes([]model.NodeDecl{
			{Name: "cluster", Kind: model.KindCluster},
			{Name: "db", Kind: model.KindDatabase, Refs: []model.Ref{model.RefTo("cluster", model.AttrLiveURL)}},
		})

		assert.ErrorIs(t, err, declgraph.ErrUnknownOutput)
		assert.ErrorContains(t, err, "id, name, engine")
	})

	t.Run("FailGivenUnknownAfterNode", func(t *testing.T) {
		_, err := declgraph.FromNodes([]model.NodeDecl{
			{Name: "app", Kind: model.KindApp, After: []string{"db"}},
		})

		assert.ErrorIs(t, err, declgraph.ErrUnknownNode)
	})

	t.Run("FailGivenDuplicateNode", func(t *testing.T) {
		_, err := declgraph.FromNodes([]model.NodeDecl{
			{Name: "cluster", Kind: model.KindCluster},
			{Name: "cluster", Kind: model.KindCluster},
		})

		assert.ErrorIs(t, err, declgraph.ErrDuplicateNode)
	})

	t.Run("FailGivenCycle", func(t *testing.T) {
		_, err := declgraph.FromNodes([]model.NodeDecl{
			{Name: "db", Kind: model.KindDatabase, Refs: []model.Ref{model.RefTo("app", model.AttrID)}},
			{Name: "app", Kind: model.KindApp, Refs: []model.Ref{model.RefTo("db", model.AttrName)}},
		})

		assert.ErrorIs(t, err, declgraph.ErrCycle)
	})
}

func TestOrder_KeepsDeclarationOrderForIndependentNodes(t *testing.T) {
	g, err := declgraph.FromNodes([]model.NodeDecl{
		{Name: "b", Kind: model.KindCluster},
		{Name: "a", Kind: model.KindCluster},
		{Name: "c", Kind: model.KindDatabase, Refs: []model.Ref{model.RefTo("a", model.AttrID)}},
	})
	require.NoError(t, err)

	order, err := g.Order()

	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, order)
}

func TestOrder_AfterConstraint(t *testing.T) {
	g, err := declgraph.FromNodes([]model.NodeDecl{
		{Name: "app", Kind: model.KindApp, After: []string{"db"}},
		{Name: "db", Kind: model.KindDatabase},
	})
	require.NoError(t, err)

	order, err := g.Order()
	require.NoError(t, err)
	assert.Equal(t, []string{"db", "app"}, order)

	deps, err := g.Dependencies("app")
	require.NoError(t, err)
	assert.Equal(t, []string{"db"}, deps)
}

func TestOrder_AfterConstraintCycle(t *testing.T) {
	_, err := declgraph.FromNodes([]model.NodeDecl{
		{Name: "db", Kind: model.KindDatabase, After: []string{"app"}},
		{Name: "app", Kind: model.KindApp, After: []string{"db"}},
	})

	assert.ErrorIs(t, err, declgraph.ErrCycle)
}

func TestDOT(t *testing.T) {
	d := model.NewDeployment(model.DefaultParams("org/grocery-list", "main"))
	g, err := declgraph.New(d)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = g.DOT(&buf)

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, `"cluster" -> "app"`)
	assert.Contains(t, out, "name,engine")
	assert.Contains(t, out, `"db" -> "app"`)
	assert.Contains(t, out, "after")
	assert.Contains(t, out, `"app" -> "trusted-source"`)
}
