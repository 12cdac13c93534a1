// Package xdoc builds and serializes the xdoc report document from
// one analyzer run: per-class defect blocks, a diagnostics block,
// and a project block, in a fixed deterministic order.
package xdoc

import (
	"encoding/xml"

	"github.com/unbound-force/defectdoc/internal/severity"
)

// Report is the xdoc document tree. The same tree backs the XML,
// JSON, and text output formats.
type Report struct {
	XMLName xml.Name `xml:"BugCollection" json:"-"`

	// Version is the analyzer version the input document reported.
	Version string `xml:"version,attr" json:"version"`

	// Threshold and Effort carry display names; either is omitted
	// when its configured code is unknown to the name table.
	Threshold string `xml:"threshold,attr,omitempty" json:"threshold,omitempty"`
	Effort    string `xml:"effort,attr,omitempty" json:"effort,omitempty"`

	// Files holds one block per class with at least one reported
	// bug, in the order classes first reach a positive bug count.
	Files []FileReport `xml:"file" json:"files"`

	// Diagnostics aggregates the run's analysis errors and missing
	// classes. The block is always present, possibly empty.
	Diagnostics Diagnostics `xml:"Error" json:"diagnostics"`

	// Project lists the configured source roots. Nil (omitted) when
	// no roots are configured at all.
	Project *Project `xml:"Project,omitempty" json:"project,omitempty"`
}

// FileReport groups the defects owned by one class.
type FileReport struct {
	ClassName string     `xml:"classname,attr" json:"classname"`
	Bugs      []BugEntry `xml:"BugInstance" json:"bugs"`
}

// BugEntry is one projected defect. Priority carries the display
// name, not the numeric code. LineNumber is -1 when the source
// record had no parseable start line.
type BugEntry struct {
	Type       string `xml:"type,attr" json:"type"`
	Priority   string `xml:"priority,attr" json:"priority"`
	Category   string `xml:"category,attr" json:"category"`
	Message    string `xml:"message,attr" json:"message"`
	LineNumber int    `xml:"lineNumber,attr" json:"line_number"`
}

// Diagnostics aggregates analysis-error messages and missing-class
// names, both in input order.
type Diagnostics struct {
	AnalysisErrors []string `xml:"AnalysisError" json:"analysis_errors,omitempty"`
	MissingClasses []string `xml:"MissingClass" json:"missing_classes,omitempty"`
}

// Project lists the configured source roots, compile roots first,
// then test roots.
type Project struct {
	SrcDirs []string `xml:"SrcDir" json:"src_dirs"`
}

// Config is the per-run report configuration. It is built once by
// the caller and never mutated by the builder.
type Config struct {
	// Threshold is the analyzer's minimum-severity code ("1".."5").
	Threshold string

	// Effort is the analyzer's effort code.
	Effort string

	// OutputEncoding is the IANA name of the character encoding for
	// the serialized document. Empty means UTF-8.
	OutputEncoding string

	// SourceRoots and TestSourceRoots are the configured source
	// directories, in order.
	SourceRoots     []string
	TestSourceRoots []string

	// Names resolves the threshold and effort codes to display
	// names.
	Names severity.Table
}
