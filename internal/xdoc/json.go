package xdoc

import (
	"encoding/json"
	"io"
)

// JSONReport is the top-level JSON output structure.
type JSONReport struct {
	SchemaVersion string  `json:"schema_version"`
	Report        *Report `json:"report"`
}

// WriteJSON writes the report as formatted JSON to the writer.
func WriteJSON(w io.Writer, rep *Report, schemaVersion string) error {
	if rep.Files == nil {
		copied := *rep
		copied.Files = []FileReport{}
		rep = &copied
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(JSONReport{
		SchemaVersion: schemaVersion,
		Report:        rep,
	})
}
