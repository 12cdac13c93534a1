// Package severity maps the analyzer's numeric priority and
// configuration codes to their display names.
package severity

// Name is a human-readable severity level.
type Name string

// Display names for the five recognized priority codes.
const (
	High   Name = "High"
	Normal Name = "Normal"
	Low    Name = "Low"
	Exp    Name = "Exp"
	Ignore Name = "Ignore"

	// Invalid is returned for any unrecognized priority code. It is
	// the signal itself; no error accompanies it.
	Invalid Name = "Invalid Priority"
)

var priorityNames = map[string]Name{
	"1": High,
	"2": Normal,
	"3": Low,
	"4": Exp,
	"5": Ignore,
}

// NameForPriority returns the display name for a defect priority
// code. Unrecognized codes map to Invalid rather than an error.
func NameForPriority(code string) Name {
	name, ok := priorityNames[code]
	if !ok {
		return Invalid
	}
	return name
}
