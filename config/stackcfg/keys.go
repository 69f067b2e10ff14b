package stackcfg

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kompox/groceryops/domain/model"
)

var (
	ErrConfigMissing = errors.New("missing required configuration")
	ErrConfigInvalid = errors.New("invalid configuration")
)

// Stack configuration keys, relative to the project namespace.
const (
	KeyRepo             = "repo"
	KeyBranch           = "branch"
	KeyDeployOnPush     = "deployOnPush"
	KeyRegion           = "region"
	KeyEngineVersion    = "engineVersion"
	KeyClusterSize      = "clusterSize"
	KeyClusterNodeCount = "clusterNodeCount"
	KeyInstanceSize     = "instanceSize"
	KeyInstanceCount    = "instanceCount"
	KeyProtection       = "protection"
)

// RequiredKeys must be set before the graph can be built.
var RequiredKeys = []string{KeyRepo, KeyBranch}

// Lookup returns the value of a configuration key and whether it is set.
type Lookup func(key string) (string, bool)

// MapLookup looks keys up in m. Empty values count as unset.
func MapLookup(m map[string]string) Lookup {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok && v != ""
	}
}

// Params reads the deployment parameters through lookup. All required keys
// are checked before anything else so that a missing key is reported on
// its own, as a configuration error.
func Params(lookup Lookup) (model.DeploymentParams, error) {
	var missing []string
	for _, k := range RequiredKeys {
		if v, ok := lookup(k); !ok || strings.TrimSpace(v) == "" {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return model.DeploymentParams{}, fmt.Errorf("%w: %s", ErrConfigMissing, strings.Join(missing, ", "))
	}

	repo, _ := lookup(KeyRepo)
	branch, _ := lookup(KeyBranch)
	p := model.DefaultParams(strings.TrimSpace(repo), strings.TrimSpace(branch))

	var errs []error
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}
	num := func(key string, dst *int) {
		if v, ok := lookup(key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %q is not an integer", key, v))
				return
			}
			*dst = n
		}
	}

	if v, ok := lookup(KeyDeployOnPush); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %q is not a boolean", KeyDeployOnPush, v))
		}
		p.DeployOnPush = b
	}
	str(KeyRegion, &p.Region)
	str(KeyEngineVersion, &p.EngineVersion)
	str(KeyClusterSize, &p.ClusterSize)
	num(KeyClusterNodeCount, &p.ClusterNodeCount)
	str(KeyInstanceSize, &p.InstanceSize)
	num(KeyInstanceCount, &p.InstanceCount)
	if v, ok := lookup(KeyProtection); ok {
		p.Protection = model.Protection(v)
		if !p.Protection.Valid() {
			errs = append(errs, fmt.Errorf("%s: unknown level %q", KeyProtection, v))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return model.DeploymentParams{}, fmt.Errorf("%w: %w", ErrConfigInvalid, err)
	}
	return p, nil
}

// Deployment reads the parameters through lookup and declares the
// deployment.
func Deployment(lookup Lookup) (*model.Deployment, error) {
	p, err := Params(lookup)
	if err != nil {
		return nil, err
	}
	return model.NewDeployment(p), nil
}

// Values renders p as stack configuration values, the inverse of Params.
func Values(p model.DeploymentParams) map[string]string {
	protection := p.Protection
	if protection == "" {
		protection = model.ProtectionNone
	}
	return map[string]string{
		KeyRepo:             p.Repo,
		KeyBranch:           p.Branch,
		KeyDeployOnPush:     strconv.FormatBool(p.DeployOnPush),
		KeyRegion:           p.Region,
		KeyEngineVersion:    p.EngineVersion,
		KeyClusterSize:      p.ClusterSize,
		KeyClusterNodeCount: strconv.Itoa(p.ClusterNodeCount),
		KeyInstanceSize:     p.InstanceSize,
		KeyInstanceCount:    strconv.Itoa(p.InstanceCount),
		KeyProtection:       string(protection),
	}
}
