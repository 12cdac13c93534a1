package xdoc

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/unbound-force/defectdoc/internal/analysis"
	"github.com/unbound-force/defectdoc/internal/severity"
)

// SinkError reports that the output sink could not be written to or
// closed. It is the only fatal failure the builder produces; no
// input document shape causes one.
type SinkError struct {
	Op  string // "write" or "close"
	Err error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("xdoc sink %s: %v", e.Op, e.Err)
}

func (e *SinkError) Unwrap() error { return e.Err }

// Generate builds the xdoc report for one analyzer run and
// serializes it to sink as XML. The sink is closed on every exit
// path, including mid-stream write failures. Malformed input fields
// degrade per field and never fail the run; the only error returned
// is a *SinkError (or an unknown-encoding error raised before any
// byte is written).
func Generate(res *analysis.Result, cfg Config, toolVersion string, sink io.WriteCloser) (err error) {
	defer func() {
		if cerr := sink.Close(); cerr != nil && err == nil {
			err = &SinkError{Op: "close", Err: cerr}
		}
	}()

	rep := Build(res, cfg, toolVersion)
	return writeXML(sink, rep, cfg.OutputEncoding)
}

// Build derives the report tree from the typed analyzer result.
// It is a pure function of its inputs: running it twice on the same
// input yields an identical tree.
func Build(res *analysis.Result, cfg Config, toolVersion string) *Report {
	rep := &Report{Version: toolVersion}

	if name, ok := cfg.Names.ThresholdName(cfg.Threshold); ok {
		rep.Threshold = name
	}
	if name, ok := cfg.Names.EffortName(cfg.Effort); ok {
		rep.Effort = name
	}

	// One pass over the defect list builds the primary-class index;
	// per-class order within each bucket is document order. Defects
	// with no primary class are dropped here.
	byClass := make(map[string][]analysis.Defect)
	for _, d := range res.Defects {
		if d.PrimaryClass == "" {
			continue
		}
		byClass[d.PrimaryClass] = append(byClass[d.PrimaryClass], d)
	}

	// Class selection: first positive bug count wins; non-numeric
	// counts are skipped, never fatal.
	seen := make(map[string]bool)
	for _, cs := range res.ClassStats {
		if seen[cs.Class] || !hasBugs(cs.Bugs) {
			continue
		}
		seen[cs.Class] = true

		file := FileReport{ClassName: cs.Class}
		for _, d := range byClass[cs.Class] {
			file.Bugs = append(file.Bugs, BugEntry{
				Type:       d.Type,
				Priority:   string(severity.NameForPriority(d.Priority)),
				Category:   d.Category,
				Message:    d.Message,
				LineNumber: lineNumber(d.StartLine),
			})
		}
		rep.Files = append(rep.Files, file)
	}

	rep.Diagnostics = Diagnostics{
		AnalysisErrors: append([]string(nil), res.Errors...),
		MissingClasses: append([]string(nil), res.MissingClasses...),
	}

	// No roots configured at all means no Project block; an empty
	// wrapper is never emitted.
	if len(cfg.SourceRoots)+len(cfg.TestSourceRoots) > 0 {
		dirs := make([]string, 0, len(cfg.SourceRoots)+len(cfg.TestSourceRoots))
		dirs = append(dirs, cfg.SourceRoots...)
		dirs = append(dirs, cfg.TestSourceRoots...)
		rep.Project = &Project{SrcDirs: dirs}
	}

	return rep
}

// hasBugs reports whether a raw bug count parses to a positive
// integer.
func hasBugs(raw string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	return err == nil && n > 0
}

// lineNumber parses a start line, mapping absent or non-numeric
// values to the -1 sentinel.
func lineNumber(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return -1
	}
	return n
}
