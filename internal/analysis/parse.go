package analysis

import (
	"encoding/xml"
	"fmt"
	"io"

	"golang.org/x/text/encoding/ianaindex"
)

// Wire types for the analyzer's BugCollection document. These stay
// private; callers only see the typed model.

type bugCollection struct {
	XMLName xml.Name   `xml:"BugCollection"`
	Version string     `xml:"version,attr"`
	Bugs    []bugWire  `xml:"BugInstance"`
	Summary summary    `xml:"FindBugsSummary"`
	Errors  errorsWire `xml:"Errors"`
}

type summary struct {
	ClassStats []classStatWire `xml:"ClassStats"`
}

type classStatWire struct {
	Class string `xml:"class,attr"`
	Bugs  string `xml:"bugs,attr"`
}

type bugWire struct {
	Type        string      `xml:"type,attr"`
	Category    string      `xml:"category,attr"`
	Priority    string      `xml:"priority,attr"`
	LongMessage string      `xml:"LongMessage"`
	Classes     []classRef  `xml:"Class"`
	SourceLine  *sourceLine `xml:"SourceLine"`
}

type classRef struct {
	Name    string `xml:"classname,attr"`
	Primary bool   `xml:"primary,attr"`
}

type sourceLine struct {
	Start string `xml:"start,attr"`
}

type errorsWire struct {
	Errors         []analysisError `xml:"Error"`
	MissingClasses []string        `xml:"MissingClass"`
}

type analysisError struct {
	Message string `xml:"ErrorMessage"`
}

// Parse decodes an analyzer result document into the typed model.
// Field extraction is best-effort: absent attributes come through as
// empty strings and numeric fields are not validated here. Only a
// document that cannot be decoded at all produces an error.
func Parse(r io.Reader) (*Result, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader

	var doc bugCollection
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode analysis document: %w", err)
	}

	res := &Result{Version: doc.Version}

	for _, cs := range doc.Summary.ClassStats {
		res.ClassStats = append(res.ClassStats, ClassStat{
			Class: cs.Class,
			Bugs:  cs.Bugs,
		})
	}

	for _, b := range doc.Bugs {
		d := Defect{
			Type:         b.Type,
			Category:     b.Category,
			Message:      b.LongMessage,
			Priority:     b.Priority,
			PrimaryClass: primaryClass(b.Classes),
		}
		if b.SourceLine != nil {
			d.StartLine = b.SourceLine.Start
		}
		res.Defects = append(res.Defects, d)
	}

	for _, e := range doc.Errors.Errors {
		res.Errors = append(res.Errors, e.Message)
	}
	res.MissingClasses = append(res.MissingClasses, doc.Errors.MissingClasses...)

	return res, nil
}

// primaryClass returns the name of the class flagged primary, or ""
// when no reference carries the flag.
func primaryClass(refs []classRef) string {
	for _, ref := range refs {
		if ref.Primary {
			return ref.Name
		}
	}
	return ""
}

// charsetReader lets the decoder accept documents in any encoding
// the IANA index knows (the analyzer is free to emit e.g.
// ISO-8859-1).
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil {
		return nil, fmt.Errorf("unsupported document charset %q: %w", charset, err)
	}
	if enc == nil {
		// IANA knows the name but has no decoder; pass bytes through.
		return input, nil
	}
	return enc.NewDecoder().Reader(input), nil
}
