package model

import "fmt"

// Protection guards a deployment against destructive stack operations.
type Protection string

const (
	ProtectionNone         Protection = "none"
	ProtectionCannotDelete Protection = "cannotDelete"
	ProtectionReadOnly     Protection = "readOnly"
)

// StackOperation names an engine operation.
type StackOperation string

const (
	OpPreview StackOperation = "preview"
	OpUp      StackOperation = "up"
	OpRefresh StackOperation = "refresh"
	OpDestroy StackOperation = "destroy"
)

// Valid reports whether p is a known protection level. Empty means none.
func (p Protection) Valid() bool {
	switch p {
	case "", ProtectionNone, ProtectionCannotDelete, ProtectionReadOnly:
		return true
	}
	return false
}

// ProtectsResources reports whether stateful resources get the engine's
// protect flag.
func (p Protection) ProtectsResources() bool {
	return p == ProtectionCannotDelete || p == ProtectionReadOnly
}

// CheckProtection returns an error if op is blocked by the deployment's
// protection level. Preview and refresh never change resources and are
// always allowed. Resources of a protected stack keep the engine's protect
// flag until an up with protection set to none clears it, so the error
// says so.
func (d *Deployment) CheckProtection(op StackOperation) error {
	level := d.Protection
	if level == "" || level == ProtectionNone {
		return nil
	}
	switch op {
	case OpPreview, OpRefresh:
		return nil
	case OpUp:
		if level != ProtectionReadOnly {
			return nil
		}
	}
	return fmt.Errorf("%w: protection is %q, cannot perform %s (set to 'none' and run stack up to unlock)", ErrDeploymentProtected, level, op)
}
