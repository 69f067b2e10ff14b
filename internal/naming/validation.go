// Package naming validates the names of declared resources against the
// provider's naming rules.
package naming

import (
	"fmt"
	"regexp"
	"strings"

	utilvalidation "k8s.io/apimachinery/pkg/util/validation"
)

const (
	appNameMinLength       = 2
	appNameMaxLength       = 32
	componentNameMaxLength = 32
	databaseNameMaxLength  = 63
	stackNameMaxLength     = 100
)

var (
	regionPattern    = regexp.MustCompile(`^[a-z]{3}[0-9]$`)
	slugPattern      = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	repoPartPattern  = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)
	stackNamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)
)

func validateDNS1123Label(name string, minimum, maximum int, labelKind string) error {
	if name == "" {
		return fmt.Errorf("%s name must not be empty", labelKind)
	}
	if len(name) < minimum {
		return fmt.Errorf("%s name must be at least %d characters", labelKind, minimum)
	}
	if len(name) > maximum {
		return fmt.Errorf("%s name exceeds %d characters", labelKind, maximum)
	}
	if errs := utilvalidation.IsDNS1123Label(name); len(errs) > 0 {
		return fmt.Errorf("invalid %s name: %s", labelKind, strings.Join(errs, ", "))
	}
	if name[0] < 'a' || name[0] > 'z' {
		return fmt.Errorf("invalid %s name: must start with a lowercase letter", labelKind)
	}
	return nil
}

// ValidateAppName checks an App Platform app name.
func ValidateAppName(name string) error {
	return validateDNS1123Label(name, appNameMinLength, appNameMaxLength, "app")
}

// ValidateComponentName checks the name of a static site, service or
// database component of an app.
func ValidateComponentName(name string) error {
	return validateDNS1123Label(name, appNameMinLength, componentNameMaxLength, "component")
}

// ValidateDatabaseName checks the name of a database inside a cluster.
func ValidateDatabaseName(name string) error {
	return validateDNS1123Label(name, 1, databaseNameMaxLength, "database")
}

// ValidateRegion checks a region slug such as "sfo3".
func ValidateRegion(region string) error {
	if !regionPattern.MatchString(region) {
		return fmt.Errorf("invalid region %q", region)
	}
	return nil
}

// ValidateSlug checks a size slug such as "db-s-1vcpu-1gb" or "basic-xxs".
func ValidateSlug(kind, slug string) error {
	if !slugPattern.MatchString(slug) {
		return fmt.Errorf("invalid %s slug %q", kind, slug)
	}
	return nil
}

// ValidateRepo checks a GitHub repository in owner/name form.
func ValidateRepo(repo string) error {
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || !repoPartPattern.MatchString(owner) || !repoPartPattern.MatchString(name) {
		return fmt.Errorf("invalid repo %q, want owner/name", repo)
	}
	return nil
}

// ValidateStackName checks a Pulumi stack name.
func ValidateStackName(name string) error {
	if name == "" {
		return fmt.Errorf("stack name must not be empty")
	}
	if len(name) > stackNameMaxLength {
		return fmt.Errorf("stack name exceeds %d characters", stackNameMaxLength)
	}
	if !stackNamePattern.MatchString(name) {
		return fmt.Errorf("invalid stack name %q", name)
	}
	return nil
}
