package toml

import (
	"bytes"
	"fmt"
	"strings"
)

// encodeTOML re-serializes t (normally a document's root table) back to
// TOML source text, in the style of LixenWraith-tinytoml's marshal.go:
// a bytes.Buffer accumulated with fmt.Fprintf, one line per key or
// header, rather than building an intermediate AST.
//
// Scalar assignments are written before nested headers regardless of
// in-memory insertion order: writeBody walks a table's keys once for
// its flat keys and again for its header-like children.
func encodeTOML(t *Table) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeBody(&buf, t, nil); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeTableContents prints t's own "[path]" header line (unless t is
// only an implicit path scaffold, in which case the line is suppressed
// but its descendants are still visited at the same path) and then its
// body.
func writeTableContents(buf *bytes.Buffer, t *Table, path []string) error {
	if t.origin == OriginExplicit {
		buf.WriteByte('\n')
		fmt.Fprintf(buf, "[%s]\n", joinPath(path))
	}
	return writeBody(buf, t, path)
}

// writeBody writes t's flat (scalar/dotted/inline) keys, then recurses
// into each header-like child in display order.
func writeBody(buf *bytes.Buffer, t *Table, path []string) error {
	if err := writeFlatKeys(buf, t, nil); err != nil {
		return err
	}

	for _, k := range t.keys {
		child, _ := t.rawGet(k)
		if !isHeaderLike(child) {
			continue
		}
		childPath := append(append([]string{}, path...), k)

		switch v := child.(type) {
		case *Table:
			if err := writeTableContents(buf, v, childPath); err != nil {
				return err
			}
		case *Array:
			for _, e := range v.Elems {
				elem, ok := e.(*Table)
				if !ok {
					return fmt.Errorf("toml: array-of-tables element is not a table")
				}
				buf.WriteByte('\n')
				fmt.Fprintf(buf, "[[%s]]\n", joinPath(childPath))
				if err := writeBody(buf, elem, childPath); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// writeFlatKeys writes every key in t that is not header-like, as
// "key = value" lines. Dotted child tables are flattened into
// "prefix.key = value" using prefix, recursively.
func writeFlatKeys(buf *bytes.Buffer, t *Table, prefix []string) error {
	for _, k := range t.keys {
		child, _ := t.rawGet(k)
		if isHeaderLike(child) {
			continue
		}
		fullKey := append(append([]string{}, prefix...), k)

		switch v := child.(type) {
		case *Value:
			fmt.Fprintf(buf, "%s = %s\n", joinPath(fullKey), formatTOMLValue(v))
		case *Array:
			fmt.Fprintf(buf, "%s = %s\n", joinPath(fullKey), formatTOMLArray(v))
		case *Table:
			if v.kind == TableInline {
				fmt.Fprintf(buf, "%s = %s\n", joinPath(fullKey), formatTOMLInlineTable(v))
			} else {
				if err := writeFlatKeys(buf, v, fullKey); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func formatTOMLNode(n Node) string {
	switch v := n.(type) {
	case *Value:
		return formatTOMLValue(v)
	case *Array:
		return formatTOMLArray(v)
	case *Table:
		return formatTOMLInlineTable(v)
	default:
		return ""
	}
}

func formatTOMLValue(v *Value) string {
	if v.Kind() == KindString {
		s, _ := v.String()
		return escapeTOMLString(s)
	}
	return jsonValueText(v)
}

func formatTOMLArray(a *Array) string {
	parts := make([]string, len(a.Elems))
	for i, e := range a.Elems {
		parts[i] = formatTOMLNode(e)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatTOMLInlineTable(t *Table) string {
	parts := make([]string, 0, len(t.keys))
	for _, k := range t.keys {
		child, _ := t.rawGet(k)
		parts = append(parts, fmt.Sprintf("%s = %s", joinPath([]string{k}), formatTOMLNode(child)))
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

// joinPath renders a dotted key path. Each segment is already in
// canonical form (see key.go's canonicalizeKey): either all bare-key
// bytes, or the original quoted key spelling including its literal
// quote bytes — so a quoted segment is emitted verbatim rather than
// re-escaped and wrapped in a second layer of quotes.
func joinPath(path []string) string {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = joinPathSegment(p)
	}
	return strings.Join(parts, ".")
}

func joinPathSegment(s string) string {
	if isAllBareKeyBytes(s) {
		return s
	}
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s
	}
	return escapeTOMLString(s)
}

// escapeTOMLString renders s as a double-quoted TOML basic string.
func escapeTOMLString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
