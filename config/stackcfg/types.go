// Package stackcfg defines the configuration of the grocery list stack:
// the Pulumi stack configuration keys read by the program and the
// groceryops.yml schema used by the CLI to populate them.
package stackcfg

// DefaultConfigPath is the CLI configuration file looked up by default.
const DefaultConfigPath = "groceryops.yml"

// Root is the root structure of groceryops.yml.
type Root struct {
	Version    string  `yaml:"version"`
	Project    string  `yaml:"project"`
	Stack      string  `yaml:"stack"`
	WorkDir    string  `yaml:"workDir,omitempty"`    // Pulumi workspace directory
	Protection string  `yaml:"protection,omitempty"` // none | cannotDelete | readOnly
	Source     Source  `yaml:"source"`
	Region     string  `yaml:"region,omitempty"`
	Cluster    Cluster `yaml:"cluster,omitempty"`
	Service    Service `yaml:"service,omitempty"`
	Logging    Logging `yaml:"logging,omitempty"`
}

// Source selects the GitHub repository the app components build from.
type Source struct {
	Repo         string `yaml:"repo"`   // owner/name
	Branch       string `yaml:"branch"` // e.g. main
	DeployOnPush *bool  `yaml:"deployOnPush,omitempty"`
}

// Cluster overrides the managed database cluster sizing.
type Cluster struct {
	Version   string `yaml:"version,omitempty"`
	Size      string `yaml:"size,omitempty"`
	NodeCount int    `yaml:"nodeCount,omitempty"`
}

// Service overrides the backend service sizing.
type Service struct {
	InstanceSize  string `yaml:"instanceSize,omitempty"`
	InstanceCount int    `yaml:"instanceCount,omitempty"`
}

// Logging configures CLI log output.
type Logging struct {
	Format        string `yaml:"format,omitempty"`        // human (default), text, json
	Level         string `yaml:"level,omitempty"`         // DEBUG, INFO (default), WARN, ERROR
	Output        string `yaml:"output,omitempty"`        // "-" for stderr (default), path, or "none"
	Dir           string `yaml:"dir,omitempty"`           // base of relative output paths
	RetentionDays int    `yaml:"retentionDays,omitempty"` // days to keep old log files
}
