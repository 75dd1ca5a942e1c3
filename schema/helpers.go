package schema

// Ptr returns a pointer to v. Handy for building optional fields from
// literals.
func Ptr[T any](v T) *T {
	return &v
}

// clonePtr returns a pointer to a copy of *p, or nil.
func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// Clone returns a copy of the row whose pointer fields do not alias the
// original, so synthetic rows can be adjusted independently.
func (r ChartRow) Clone() ChartRow {
	r.LockdownX = clonePtr(r.LockdownX)
	r.LockdownType = clonePtr(r.LockdownType)
	r.Intercept = clonePtr(r.Intercept)
	r.LockdownY = clonePtr(r.LockdownY)
	r.LockdownSlope = clonePtr(r.LockdownSlope)
	return r
}
