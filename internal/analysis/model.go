// Package analysis defines the typed model of one analyzer run and
// the parser that populates it from the analyzer's XML document.
package analysis

// ClassStat is one per-class entry from the analyzer's summary
// section. Bugs is kept as the raw string; interpretation (and
// tolerance of non-numeric values) belongs to the report builder.
type ClassStat struct {
	Class string
	Bugs  string
}

// Defect is one reported finding. PrimaryClass is empty when the
// analyzer flagged no class as the defect's owner; such defects are
// dropped from every class report. StartLine is empty when the
// finding carries no source line.
type Defect struct {
	Type         string
	Category     string
	Message      string
	Priority     string
	PrimaryClass string
	StartLine    string
}

// Result is the typed view of one analyzer run: the per-class
// summary, the flat defect list, and the run's diagnostics. All
// slices preserve document order.
type Result struct {
	Version        string
	ClassStats     []ClassStat
	Defects        []Defect
	Errors         []string
	MissingClasses []string
}
