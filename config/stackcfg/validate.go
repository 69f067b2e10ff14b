package stackcfg

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kompox/groceryops/internal/naming"
)

const supportedVersion = "v1"

// Validate performs semantic validation on the configuration tree,
// including the deployment it declares.
func (r *Root) Validate() error {
	var errs []error
	if r.Version != "" && r.Version != supportedVersion {
		errs = append(errs, fmt.Errorf("version: unsupported %q, want %q", r.Version, supportedVersion))
	}
	if r.Project != "" {
		if err := naming.ValidateStackName(r.Project); err != nil {
			errs = append(errs, fmt.Errorf("project: %w", err))
		}
	}
	if err := naming.ValidateStackName(r.Stack); err != nil {
		errs = append(errs, fmt.Errorf("stack: %w", err))
	}
	if strings.TrimSpace(r.Source.Repo) == "" {
		errs = append(errs, fmt.Errorf("source.repo: %w", ErrConfigMissing))
	}
	if strings.TrimSpace(r.Source.Branch) == "" {
		errs = append(errs, fmt.Errorf("source.branch: %w", ErrConfigMissing))
	}
	if err := r.Logging.validate(); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}
	if len(errs) == 0 {
		if err := r.Deployment().Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrConfigInvalid, err)
	}
	return nil
}

func (l Logging) validate() error {
	switch l.Format {
	case "", "human", "text", "json":
	default:
		return fmt.Errorf("unsupported format %q", l.Format)
	}
	switch strings.ToUpper(l.Level) {
	case "", "DEBUG", "INFO", "WARN", "ERROR":
	default:
		return fmt.Errorf("unsupported level %q", l.Level)
	}
	if l.RetentionDays < 0 {
		return fmt.Errorf("retentionDays must not be negative")
	}
	return nil
}
