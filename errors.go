package radial

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks against the typed errors below.
var (
	ErrDataIntegrity = errors.New("radial: data integrity")
	ErrConfiguration = errors.New("radial: configuration")
)

// DataIntegrityError reports a dataset the layout engine refuses to lay out:
// an orphaned parent reference, a duplicate id, or an unusable weight.
type DataIntegrityError struct {
	CategoryID string // offending category (empty if dataset-level)
	ParentID   string // unresolved parent, when relevant
	Reason     string
}

func (e *DataIntegrityError) Error() string {
	switch {
	case e.CategoryID == "":
		return fmt.Sprintf("radial: invalid dataset: %s", e.Reason)
	case e.ParentID != "":
		return fmt.Sprintf("radial: category %q (parent %q): %s", e.CategoryID, e.ParentID, e.Reason)
	default:
		return fmt.Sprintf("radial: category %q: %s", e.CategoryID, e.Reason)
	}
}

// Is lets errors.Is(err, ErrDataIntegrity) match.
func (e *DataIntegrityError) Is(target error) bool {
	return target == ErrDataIntegrity
}

// ConfigurationError reports invalid controller options. It is returned
// from constructors and never from event handlers.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("radial: invalid %s: %s", e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrConfiguration) match.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func dataError(id, parent, format string, args ...any) error {
	return &DataIntegrityError{CategoryID: id, ParentID: parent, Reason: fmt.Sprintf(format, args...)}
}

func configError(field, format string, args ...any) error {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
