package toml

import (
	"bytes"
	"fmt"
	"math"
)

// encodeJSON renders root as JSON, walking keys in each table's display
// order rather than through encoding/json (which would sort map keys
// and lose the put_ordered discipline). When typed is true every scalar
// becomes {"type": "...", "value": "..."} per the toml-lang conformance
// suite's schema; otherwise scalars render as native JSON values, with
// dates/times/datetimes falling back to RFC 3339-shaped strings.
func encodeJSON(root *Table, typed bool) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSONNode(&buf, root, typed); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSONNode(buf *bytes.Buffer, n Node, typed bool) error {
	switch v := n.(type) {
	case *Table:
		return writeJSONTable(buf, v, typed)
	case *Array:
		return writeJSONArray(buf, v, typed)
	case *Value:
		return writeJSONValue(buf, v, typed)
	default:
		return fmt.Errorf("toml: unknown node type in JSON encode")
	}
}

func writeJSONTable(buf *bytes.Buffer, t *Table, typed bool) error {
	buf.WriteByte('{')
	for i, k := range t.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeJSONString(buf, logicalKeyText(k))
		buf.WriteByte(':')
		child, _ := t.rawGet(k)
		if err := writeJSONNode(buf, child, typed); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeJSONArray(buf *bytes.Buffer, a *Array, typed bool) error {
	buf.WriteByte('[')
	for i, e := range a.Elems {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONNode(buf, e, typed); err != nil {
			return err
		}
	}
	buf.WriteByte(']')
	return nil
}

func writeJSONValue(buf *bytes.Buffer, v *Value, typed bool) error {
	if typed {
		buf.WriteString(`{"type":`)
		writeJSONString(buf, jsonTypeTag(v))
		buf.WriteString(`,"value":`)
		writeJSONString(buf, jsonValueText(v))
		buf.WriteByte('}')
		return nil
	}

	switch v.Kind() {
	case KindInteger:
		buf.WriteString(jsonValueText(v))
	case KindFloat:
		f, _ := v.Float()
		if math.IsInf(f, 0) || math.IsNaN(f) {
			// inf/nan have no JSON representation; fall back to their
			// TOML spelling as a string, same as the typed encoder does.
			writeJSONString(buf, jsonValueText(v))
		} else {
			buf.WriteString(jsonValueText(v))
		}
	case KindBool:
		buf.WriteString(jsonValueText(v))
	default:
		writeJSONString(buf, jsonValueText(v))
	}
	return nil
}

// writeJSONString writes s as a JSON string literal, escaping the
// characters JSON requires.
func writeJSONString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(buf, `\u%04x`, r)
			} else {
				buf.WriteRune(r)
			}
		}
	}
	buf.WriteByte('"')
}
