package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kompox/groceryops/internal/naming"
)

// Validate checks the literal parts of the declaration. References are
// checked by the declaration graph.
func (d *Deployment) Validate() error {
	var errs []error
	if !d.Protection.Valid() {
		errs = append(errs, fmt.Errorf("protection: unknown level %q", d.Protection))
	}
	if err := d.Cluster.validate(); err != nil {
		errs = append(errs, fmt.Errorf("cluster: %w", err))
	}
	if err := naming.ValidateDatabaseName(d.Database.Name); err != nil {
		errs = append(errs, fmt.Errorf("database: %w", err))
	}
	if err := d.App.validate(); err != nil {
		errs = append(errs, fmt.Errorf("app: %w", err))
	}
	if err := d.Firewall.validate(); err != nil {
		errs = append(errs, fmt.Errorf("firewall: %w", err))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrDeploymentInvalid, err)
	}
	return nil
}

func (c ClusterSpec) validate() error {
	var errs []error
	if c.Engine == "" {
		errs = append(errs, errors.New("engine must not be empty"))
	}
	if c.Version == "" {
		errs = append(errs, errors.New("version must not be empty"))
	}
	if err := naming.ValidateRegion(c.Region); err != nil {
		errs = append(errs, err)
	}
	if err := naming.ValidateSlug("size", c.Size); err != nil {
		errs = append(errs, err)
	}
	if c.NodeCount < 1 || c.NodeCount > 3 {
		errs = append(errs, fmt.Errorf("node count %d out of range 1..3", c.NodeCount))
	}
	return errors.Join(errs...)
}

func (a AppSpec) validate() error {
	var errs []error
	if err := naming.ValidateAppName(a.Name); err != nil {
		errs = append(errs, err)
	}
	if err := naming.ValidateRegion(a.Region); err != nil {
		errs = append(errs, err)
	}

	seen := map[string]struct{}{}
	component := func(kind string, i int, name string) {
		if err := naming.ValidateComponentName(name); err != nil {
			errs = append(errs, fmt.Errorf("%s[%d].name: %w", kind, i, err))
			return
		}
		if _, dup := seen[name]; dup {
			errs = append(errs, fmt.Errorf("%s[%d].name: duplicate component name %q", kind, i, name))
		}
		seen[name] = struct{}{}
	}

	databases := map[string]struct{}{}
	for i, db := range a.Databases {
		component("databases", i, db.Name)
		databases[db.Name] = struct{}{}
		if db.ClusterName.IsZero() || db.Engine.IsZero() {
			errs = append(errs, fmt.Errorf("databases[%d]: cluster name and engine must reference the cluster", i))
		}
	}
	for i, s := range a.StaticSites {
		component("staticSites", i, s.Name)
		if err := s.GitHub.validate(); err != nil {
			errs = append(errs, fmt.Errorf("staticSites[%d].github: %w", i, err))
		}
	}
	for i, s := range a.Services {
		component("services", i, s.Name)
		if err := s.validate(databases); err != nil {
			errs = append(errs, fmt.Errorf("services[%d]: %w", i, err))
		}
	}
	if len(a.StaticSites)+len(a.Services) == 0 {
		errs = append(errs, errors.New("at least one static site or service is required"))
	}
	return errors.Join(errs...)
}

func (s ServiceSpec) validate(databases map[string]struct{}) error {
	var errs []error
	if err := s.GitHub.validate(); err != nil {
		errs = append(errs, fmt.Errorf("github: %w", err))
	}
	if s.HTTPPort < 1 || s.HTTPPort > 65535 {
		errs = append(errs, fmt.Errorf("http port %d out of range", s.HTTPPort))
	}
	for i, r := range s.Routes {
		if !strings.HasPrefix(r.Path, "/") {
			errs = append(errs, fmt.Errorf("routes[%d].path %q must start with /", i, r.Path))
		}
	}
	if err := naming.ValidateSlug("instance size", s.InstanceSizeSlug); err != nil {
		errs = append(errs, err)
	}
	if s.InstanceCount < 1 {
		errs = append(errs, fmt.Errorf("instance count %d must be positive", s.InstanceCount))
	}
	keys := map[string]struct{}{}
	for i, e := range s.Envs {
		if e.Key == "" {
			errs = append(errs, fmt.Errorf("envs[%d].key must not be empty", i))
		}
		if _, dup := keys[e.Key]; dup {
			errs = append(errs, fmt.Errorf("envs[%d].key: duplicate %q", i, e.Key))
		}
		keys[e.Key] = struct{}{}
		switch e.Scope {
		case "", EnvScopeRunTime, EnvScopeBuildTime, EnvScopeRunAndBuildTime:
		default:
			errs = append(errs, fmt.Errorf("envs[%d].scope: unknown scope %q", i, e.Scope))
		}
		if e.Binding != nil {
			if e.Value != "" {
				errs = append(errs, fmt.Errorf("envs[%d]: value and binding are exclusive", i))
			}
			if _, ok := databases[e.Binding.Component]; !ok {
				errs = append(errs, fmt.Errorf("envs[%d]: binding %s names no database component", i, e.Binding))
			}
		}
	}
	return errors.Join(errs...)
}

func (g GitHubSource) validate() error {
	if err := naming.ValidateRepo(g.Repo); err != nil {
		return err
	}
	if strings.TrimSpace(g.Branch) == "" {
		return errors.New("branch must not be empty")
	}
	return nil
}

func (f FirewallSpec) validate() error {
	if len(f.Rules) == 0 {
		return errors.New("at least one rule is required")
	}
	var errs []error
	for i, r := range f.Rules {
		switch r.Type {
		case FirewallRuleApp, FirewallRuleDroplet, FirewallRuleIPAddr, FirewallRuleK8s, FirewallRuleTag:
		default:
			errs = append(errs, fmt.Errorf("rules[%d].type: unknown type %q", i, r.Type))
		}
	}
	return errors.Join(errs...)
}
