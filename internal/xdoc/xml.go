package xdoc

import (
	"encoding/xml"
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// writeXML serializes the report to w as one well-formed document.
// The declaration names the configured encoding and the byte stream
// is transformed to it; an unknown encoding name fails before any
// byte reaches w.
func writeXML(w io.Writer, rep *Report, encodingName string) error {
	enc, declared, err := resolveEncoding(encodingName)
	if err != nil {
		return err
	}

	out := w
	var flush func() error
	if enc != nil {
		tw := transform.NewWriter(w, enc.NewEncoder())
		out = tw
		flush = tw.Close
	}

	if _, err := fmt.Fprintf(out, "<?xml version=\"1.0\" encoding=\"%s\"?>\n", declared); err != nil {
		return &SinkError{Op: "write", Err: err}
	}

	xe := xml.NewEncoder(out)
	xe.Indent("", "  ")
	if err := xe.Encode(rep); err != nil {
		return &SinkError{Op: "write", Err: err}
	}
	if _, err := io.WriteString(out, "\n"); err != nil {
		return &SinkError{Op: "write", Err: err}
	}

	if flush != nil {
		if err := flush(); err != nil {
			return &SinkError{Op: "write", Err: err}
		}
	}
	return nil
}

// resolveEncoding maps a configured encoding name to an encoder and
// the name to declare. Empty means UTF-8 (no transformation). A name
// the IANA index knows but cannot encode passes bytes through
// unchanged while still declaring the configured name.
func resolveEncoding(name string) (encoding.Encoding, string, error) {
	if name == "" {
		return nil, "UTF-8", nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, "", fmt.Errorf("unknown output encoding %q: %w", name, err)
	}
	return enc, name, nil
}
