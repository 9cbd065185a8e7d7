package scheduler

// RunSummary reports the outcome of one batch pass. A row-level fault is
// recorded in Errors and the pass continues; it never aborts the scan.
type RunSummary struct {
	Processed int
	Skipped   int
	Errors    []error
}

func errorStrings(errs []error) []string {
	if len(errs) == 0 {
		return nil
	}
	out := make([]string, 0, len(errs))
	for _, err := range errs {
		out = append(out, err.Error())
	}
	return out
}
