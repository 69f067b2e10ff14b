package pulumiauto

import (
	"bytes"
	"context"
	"os/exec"
	"testing"

	"github.com/pulumi/pulumi/sdk/v3/go/auto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kompox/groceryops/domain/model"
	"github.com/kompox/groceryops/infra"
)

func TestConfigMap(t *testing.T) {
	assert.Nil(t, configMap(nil))

	cm := configMap(&model.StackConfig{
		Values:  map[string]string{"repo": "octo/grocery", "branch": "main"},
		Secrets: map[string]string{"digitalocean:token": "dop_v1_x"},
	})
	require.Len(t, cm, 3)
	assert.Equal(t, auto.ConfigValue{Value: "octo/grocery"}, cm["repo"])
	assert.Equal(t, auto.ConfigValue{Value: "main"}, cm["branch"])
	assert.Equal(t, auto.ConfigValue{Value: "dop_v1_x", Secret: true}, cm["digitalocean:token"])
}

func TestPlainOutputsMasksSecrets(t *testing.T) {
	out := plainOutputs(auto.OutputMap{
		"liveUrl": {Value: "https://grocery-list-abc12.ondigitalocean.app"},
		"dbUri":   {Value: "mongodb+srv://u:p@host", Secret: true},
	})
	assert.Equal(t, map[string]any{
		"liveUrl": "https://grocery-list-abc12.ondigitalocean.app",
		"dbUri":   secretMask,
	}, out)
}

func TestSummaryOf(t *testing.T) {
	assert.Empty(t, summaryOf(auto.UpdateSummary{}))

	changes := map[string]int{"create": 4, "same": 1}
	assert.Equal(t, model.ChangeSummary{"create": 4, "same": 1}, summaryOf(auto.UpdateSummary{ResourceChanges: &changes}))
}

func TestCollectOptions(t *testing.T) {
	var buf bytes.Buffer
	o := collectOptions([]model.StackOption{model.WithProgress(&buf), model.WithRefresh()})
	assert.Same(t, &buf, o.Progress)
	assert.True(t, o.Refresh)
}

func TestInvalidRefFailsBeforeWorkspace(t *testing.T) {
	e := New(infra.Program())
	ctx := context.Background()

	_, err := e.Up(ctx, &model.StackRef{Project: "grocery-list"}, nil)
	assert.ErrorIs(t, err, model.ErrStackInvalid)

	_, err = e.Outputs(ctx, nil)
	assert.ErrorIs(t, err, model.ErrStackInvalid)

	_, err = e.Destroy(ctx, &model.StackRef{Stack: "dev"}, nil)
	assert.ErrorIs(t, err, model.ErrStackInvalid)
}

func TestDestroyMissingStack(t *testing.T) {
	if _, err := exec.LookPath("pulumi"); err != nil {
		t.Skip("pulumi CLI not installed")
	}
	e := New(infra.Program(), WithPlugins(), WithEnvVars(map[string]string{
		"PULUMI_BACKEND_URL":       "file://" + t.TempDir(),
		"PULUMI_CONFIG_PASSPHRASE": "test",
	}))
	ref := &model.StackRef{Project: "grocery-list", Stack: "never-created", WorkDir: t.TempDir()}

	_, err := e.Destroy(context.Background(), ref, &model.StackConfig{Values: map[string]string{"repo": "octo/grocery"}})

	assert.ErrorIs(t, err, model.ErrStackNotFound)
}

func TestNewOptions(t *testing.T) {
	e := New(infra.Program())
	assert.Equal(t, []Plugin{DigitalOceanPlugin}, e.plugins)

	e = New(infra.Program(), WithPlugins(), WithEnvVars(map[string]string{"PULUMI_CONFIG_PASSPHRASE": "x"}))
	assert.Empty(t, e.plugins)
	assert.Len(t, e.workspaceOptions(&model.StackRef{Project: "p", Stack: "s", WorkDir: "/tmp/p"}), 2)
}
