package view

import "github.com/fulgas/sarif-to-md/internal/sarif"

// SeverityCount is the number of findings at one level.
type SeverityCount struct {
	Level Level
	Count int
}

// RunView is everything the report shows for one tool run.
type RunView struct {
	ToolName       string
	ToolVersion    *string
	TotalResults   int
	SeverityCounts []SeverityCount
	Results        []ResultView
}

// CountSeverities builds the severity histogram of results in report
// order. Levels without findings are left out.
func CountSeverities(results []ResultView) []SeverityCount {
	counts := make(map[Level]int, 4)
	for _, r := range results {
		counts[r.Level]++
	}

	var out []SeverityCount
	for _, level := range Levels() {
		if n := counts[level]; n > 0 {
			out = append(out, SeverityCount{Level: level, Count: n})
		}
	}
	return out
}

// BuildRunView assembles the view of a single run.
func BuildRunView(run sarif.Run) RunView {
	index := BuildRuleIndex(run.Tool.Driver.Rules)
	results := MapResults(run.Results, index)

	return RunView{
		ToolName:       run.Tool.Driver.Name,
		ToolVersion:    toolVersion(run.Tool.Driver.Version),
		TotalResults:   len(results),
		SeverityCounts: CountSeverities(results),
		Results:        results,
	}
}

// BuildRunViews assembles one view per run, in input order.
func BuildRunViews(log *sarif.Log) []RunView {
	if log == nil {
		return nil
	}
	views := make([]RunView, 0, len(log.Runs))
	for _, run := range log.Runs {
		views = append(views, BuildRunView(run))
	}
	return views
}

// toolVersion treats an empty version string as absent.
func toolVersion(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	return v
}
