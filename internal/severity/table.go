package severity

// Table resolves the document-level threshold and effort codes to
// their display names. The mappings are supplied by the caller at
// construction time; the table itself computes nothing.
type Table struct {
	thresholds map[string]string
	efforts    map[string]string
}

// NewTable builds a Table from the given threshold and effort
// mappings. Nil maps are treated as empty.
func NewTable(thresholds, efforts map[string]string) Table {
	t := Table{
		thresholds: make(map[string]string, len(thresholds)),
		efforts:    make(map[string]string, len(efforts)),
	}
	for k, v := range thresholds {
		t.thresholds[k] = v
	}
	for k, v := range efforts {
		t.efforts[k] = v
	}
	return t
}

// ThresholdName returns the display name for a threshold code.
// Unknown codes report ok=false; callers omit the name rather than
// fail the run.
func (t Table) ThresholdName(code string) (string, bool) {
	name, ok := t.thresholds[code]
	return name, ok
}

// EffortName returns the display name for an effort code. Unknown
// codes report ok=false.
func (t Table) EffortName(code string) (string, bool) {
	name, ok := t.efforts[code]
	return name, ok
}

// DefaultThresholds is the threshold table the CLI supplies: the
// analyzer encodes its minimum-severity setting as "1".."5".
func DefaultThresholds() map[string]string {
	return map[string]string{
		"1": string(High),
		"2": string(Normal),
		"3": string(Low),
		"4": string(Exp),
		"5": string(Ignore),
	}
}

// DefaultEfforts is the effort table the CLI supplies.
func DefaultEfforts() map[string]string {
	return map[string]string{
		"min":     "Min",
		"default": "Default",
		"max":     "Max",
	}
}

// DefaultTable combines DefaultThresholds and DefaultEfforts.
func DefaultTable() Table {
	return NewTable(DefaultThresholds(), DefaultEfforts())
}
