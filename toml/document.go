package toml

import "github.com/dzjyyds666/gotoml/pkg"

// Document is the result of a successful or failed parse. A failed
// parse carries a nil Root and a non-nil ErrorContext; callers should
// check Err() before calling Root().
type Document struct {
	root *Table
	err  *ParseError
}

// ParseString parses TOML source text and returns the resulting
// Document. On failure Document.Err() is non-nil and Root() returns nil.
func ParseString(src []byte) (*Document, error) {
	root, pe := parseStringToTable(src)
	if pe != nil {
		return &Document{err: pe}, pe
	}
	return &Document{root: root}, nil
}

// ParseFile reads path via the pkg file-reading collaborator and parses
// its contents as TOML.
func ParseFile(path string) (*Document, error) {
	data, err := pkg.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseString(data)
}

// NewDocumentFromTable wraps an already-built table (e.g. a lookup
// result re-rooted for rendering) as a Document, bypassing parsing.
func NewDocumentFromTable(t *Table) *Document {
	return &Document{root: t}
}

// Root returns the document's root table, or nil if parsing failed.
func (d *Document) Root() *Table { return d.root }

// Err returns the parse error, or nil on success.
func (d *Document) Err() error {
	if d.err == nil {
		return nil
	}
	return d.err
}

// ErrorContext returns the position/kind of the parse failure, or nil
// on success.
func (d *Document) ErrorContext() *ErrorContext {
	if d.err == nil {
		return nil
	}
	return &ErrorContext{Kind: d.err.Kind, ByteIndex: d.err.ByteIndex, Line: d.err.Line}
}

// ToJSON renders the document as plain JSON: scalars drop their TOML
// type tag entirely, dates/times/datetimes render as RFC 3339-shaped
// strings.
func (d *Document) ToJSON() ([]byte, error) {
	if d.root == nil {
		return nil, d.Err()
	}
	return encodeJSON(d.root, false)
}

// ToJSONTyped renders the document in the toml-lang conformance suite's
// typed JSON shape: every scalar becomes {"type": "...", "value": "..."}.
func (d *Document) ToJSONTyped() ([]byte, error) {
	if d.root == nil {
		return nil, d.Err()
	}
	return encodeJSON(d.root, true)
}

// ToTOML re-serializes the document back to TOML source text.
func (d *Document) ToTOML() ([]byte, error) {
	if d.root == nil {
		return nil, d.Err()
	}
	return encodeTOML(d.root)
}
