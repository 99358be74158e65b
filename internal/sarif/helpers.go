package sarif

// MergeLogs merges multiple SARIF logs into a single log.
// Runs are concatenated in argument order; the version and schema of the
// first non-nil log are kept.
func MergeLogs(logs ...*Log) *Log {
	merged := &Log{Version: "2.1.0", Runs: make([]Run, 0)}

	first := true
	for _, log := range logs {
		if log == nil {
			continue
		}
		if first {
			if log.Version != "" {
				merged.Version = log.Version
			}
			merged.Schema = log.Schema
			first = false
		}
		merged.Runs = append(merged.Runs, log.Runs...)
	}

	return merged
}

// FileURIs returns the artifact URIs of all physical locations of the result.
func (r *Result) FileURIs() []string {
	var uris []string
	for _, loc := range r.Locations {
		if uri := loc.PhysicalLocation.URI(); uri != "" {
			uris = append(uris, uri)
		}
	}
	return uris
}

// FilterResults returns a copy of the log that keeps only the results for
// which keep accepts at least one artifact URI. Results without any artifact
// URI are always kept. The input log is not modified.
func FilterResults(log *Log, keep func(uri string) bool) *Log {
	if log == nil {
		return nil
	}

	filtered := &Log{
		Version: log.Version,
		Schema:  log.Schema,
		Runs:    make([]Run, 0, len(log.Runs)),
	}

	for _, run := range log.Runs {
		results := make([]Result, 0, len(run.Results))
		for _, result := range run.Results {
			uris := result.FileURIs()
			if len(uris) == 0 {
				results = append(results, result)
				continue
			}
			for _, uri := range uris {
				if keep(uri) {
					results = append(results, result)
					break
				}
			}
		}
		run.Results = results
		filtered.Runs = append(filtered.Runs, run)
	}

	return filtered
}

// ResultCount returns the total number of results across all runs.
func (l *Log) ResultCount() int {
	if l == nil {
		return 0
	}
	n := 0
	for _, run := range l.Runs {
		n += len(run.Results)
	}
	return n
}
