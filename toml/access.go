package toml

import "fmt"

// GetPath descends t through path, returning the Node found at the end
// and whether every step resolved. A path segment that indexes into an
// Array is not supported here; callers that need array elements should
// type-assert the returned Node themselves.
func (t *Table) GetPath(path ...string) (Node, bool) {
	cur := t
	for i, part := range path {
		n, ok := cur.Get(part)
		if !ok {
			return nil, false
		}
		if i == len(path)-1 {
			return n, true
		}
		next, isTable := n.(*Table)
		if !isTable {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// ToUntyped recursively converts a Node into plain Go values: string,
// int64, float64, bool, Date, Time, DateTime, []any, or map[string]any.
// It is read-side convenience sugar, not a schema or decoding layer —
// callers wanting typed struct population should walk the tree directly.
func ToUntyped(n Node) any {
	switch v := n.(type) {
	case *Value:
		switch v.Kind() {
		case KindString:
			s, _ := v.String()
			return s
		case KindInteger:
			i, _ := v.Integer()
			return i
		case KindFloat:
			f, _ := v.Float()
			return f
		case KindBool:
			b, _ := v.Bool()
			return b
		case KindDate:
			d, _ := v.DateVal()
			return d
		case KindTime:
			tm, _ := v.TimeVal()
			return tm
		case KindDateTime:
			dt, _ := v.DateTimeVal()
			return dt
		}
		return nil
	case *Array:
		out := make([]any, len(v.Elems))
		for i, e := range v.Elems {
			out[i] = ToUntyped(e)
		}
		return out
	case *Table:
		out := make(map[string]any, len(v.keys))
		for _, k := range v.keys {
			child, _ := v.rawGet(k)
			out[logicalKeyText(k)] = ToUntyped(child)
		}
		return out
	default:
		return nil
	}
}

// MustString looks up key in t and panics if it is absent or not a string.
func (t *Table) MustString(key string) string {
	n, ok := t.Get(key)
	if !ok {
		panic(fmt.Sprintf("toml: key not found: %s", key))
	}
	v, ok := n.(*Value)
	if !ok {
		panic(fmt.Sprintf("toml: key is not a scalar: %s", key))
	}
	s, ok := v.String()
	if !ok {
		panic(fmt.Sprintf("toml: key is not a string: %s", key))
	}
	return s
}

// MustInt64 looks up key in t and panics if it is absent or not an integer.
func (t *Table) MustInt64(key string) int64 {
	n, ok := t.Get(key)
	if !ok {
		panic(fmt.Sprintf("toml: key not found: %s", key))
	}
	v, ok := n.(*Value)
	if !ok {
		panic(fmt.Sprintf("toml: key is not a scalar: %s", key))
	}
	i, ok := v.Integer()
	if !ok {
		panic(fmt.Sprintf("toml: key is not an integer: %s", key))
	}
	return i
}

// MustFloat64 looks up key in t and panics if it is absent or not a float.
func (t *Table) MustFloat64(key string) float64 {
	n, ok := t.Get(key)
	if !ok {
		panic(fmt.Sprintf("toml: key not found: %s", key))
	}
	v, ok := n.(*Value)
	if !ok {
		panic(fmt.Sprintf("toml: key is not a scalar: %s", key))
	}
	f, ok := v.Float()
	if !ok {
		panic(fmt.Sprintf("toml: key is not a float: %s", key))
	}
	return f
}

// MustBool looks up key in t and panics if it is absent or not a bool.
func (t *Table) MustBool(key string) bool {
	n, ok := t.Get(key)
	if !ok {
		panic(fmt.Sprintf("toml: key not found: %s", key))
	}
	v, ok := n.(*Value)
	if !ok {
		panic(fmt.Sprintf("toml: key is not a scalar: %s", key))
	}
	b, ok := v.Bool()
	if !ok {
		panic(fmt.Sprintf("toml: key is not a bool: %s", key))
	}
	return b
}
