// Package check runs preflight checks against a local profile repository:
// the files the startup services expect under the repository directory.
package check

// Result holds the outcome of a single check.
type Result struct {
	Name    string
	Skipped bool
	Errors  []ValidationError
}

// OK reports whether the check ran without errors.
func (r Result) OK() bool {
	return !r.Skipped && len(r.Errors) == 0
}

// Run executes every registered check against t. The error is a *CheckError
// when any check reported problems.
func Run(t Target) ([]Result, error) {
	var results []Result
	var failed []string
	count := 0

	for _, c := range All() {
		meta := c.Metadata()
		if !c.Enabled(t) {
			results = append(results, Result{Name: meta.DisplayName, Skipped: true})
			continue
		}

		errs := c.Validate(t)
		results = append(results, Result{Name: meta.DisplayName, Errors: errs})
		if len(errs) > 0 {
			failed = append(failed, meta.Name)
			count += len(errs)
		}
	}

	if count > 0 {
		return results, &CheckError{Failed: failed, Count: count}
	}
	return results, nil
}
