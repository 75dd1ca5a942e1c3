package schema

import "fmt"

// SchemaError reports a required column missing from the observation dataset.
// It is fatal: the pipeline cannot run without its group, date and measure
// columns.
type SchemaError struct {
	Column string // Missing column name
	Path   string // Source file, when known
}

func (e *SchemaError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("missing required column %q in %s", e.Column, e.Path)
	}
	return fmt.Sprintf("missing required column %q", e.Column)
}

// InterventionDataError reports a required column missing from a supplied
// intervention dataset. Fatal when interventions were requested; a run with
// no intervention dataset at all proceeds with null lockdown fields instead.
type InterventionDataError struct {
	Column string // Missing column name
	Path   string // Source file, when known
}

func (e *InterventionDataError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("intervention data missing required column %q in %s", e.Column, e.Path)
	}
	return fmt.Sprintf("intervention data missing required column %q", e.Column)
}
