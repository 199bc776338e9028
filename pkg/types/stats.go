package types

// Stats holds the derived counts the dashboard and analytics pages display.
// Always recomputed from the current case list, never cached.
type Stats struct {
	Total           int
	ByStatus        map[CaseStatus]int
	ByType          map[CaseType]int
	ByPriority      map[CasePriority]int
	UniqueReporters int

	// ResolutionRate is round(100*(resolved+closed)/total), 0 when empty.
	ResolutionRate int
}

// Status, Type and Priority take plain strings so templates can call them
// with literal bucket names.
func (s Stats) Status(status string) int { return s.ByStatus[CaseStatus(status)] }
func (s Stats) Type(t string) int        { return s.ByType[CaseType(t)] }
func (s Stats) Priority(p string) int    { return s.ByPriority[CasePriority(p)] }

// CasesPerReporter rounds to the nearest whole case.
func (s Stats) CasesPerReporter() int {
	if s.UniqueReporters == 0 {
		return 0
	}
	return (s.Total + s.UniqueReporters/2) / s.UniqueReporters
}
