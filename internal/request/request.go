// Package request defines the inbound feature-selection model. It is the
// only untrusted input surface: unknown feature ids and empty selections are
// valid, non-fatal inputs, while a malformed top-level request aborts the
// run before any generation starts.
package request

import (
	"fmt"
	"strings"
)

// Framework identifiers accepted in a feature selection.
const (
	FrameworkReact = "react"
	FrameworkVue   = "vue"
)

// FeatureSelection is the declarative description of the desired project.
type FeatureSelection struct {
	ProjectName      string
	BusinessName     string
	Framework        string
	Industry         string
	SelectedFeatures []string
	BusinessData     map[string]string
}

// ConfigurationError marks a malformed top-level request. It is the only
// error class that aborts the pipeline; everything downstream degrades
// gracefully instead.
type ConfigurationError struct {
	Field  string
	Reason string
}

// Error implements the error interface for ConfigurationError.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid request: field %q: %s", e.Field, e.Reason)
}

// Validate checks the structural validity of the selection. Unknown feature
// ids and unknown industries are deliberately not checked here; those are
// handled downstream as non-fatal conditions.
func (s *FeatureSelection) Validate() error {
	if strings.TrimSpace(s.ProjectName) == "" {
		return &ConfigurationError{Field: "name", Reason: "project name must not be empty"}
	}
	if strings.ContainsAny(s.ProjectName, "/\\ ") {
		return &ConfigurationError{Field: "name", Reason: "project name must be a single path segment without spaces"}
	}
	switch s.Framework {
	case FrameworkReact, FrameworkVue:
		// valid
	default:
		return &ConfigurationError{Field: "framework", Reason: fmt.Sprintf("unsupported framework %q: must be %q or %q", s.Framework, FrameworkReact, FrameworkVue)}
	}
	if strings.TrimSpace(s.BusinessName) == "" {
		return &ConfigurationError{Field: "business", Reason: "business name must not be empty"}
	}
	return nil
}
