package toml

// TableKind distinguishes the five contexts a Table can have been
// created in; it decides which headers and dotted keys are legal
// against it later.
type TableKind uint8

const (
	TableRoot TableKind = iota
	TableHeader
	TableArrayElement
	TableInline
	TableDotted
)

func (k TableKind) String() string {
	switch k {
	case TableRoot:
		return "root"
	case TableHeader:
		return "header"
	case TableArrayElement:
		return "array-element"
	case TableInline:
		return "inline"
	case TableDotted:
		return "dotted"
	default:
		return "unknown"
	}
}

// Origin distinguishes a table named directly (Explicit) from one
// brought into existence only as an intermediate path step (Implicit).
type Origin uint8

const (
	OriginImplicit Origin = iota
	OriginExplicit
)

// Table is an ordered mapping from canonical-string keys to Nodes, plus
// the kind/origin flags that the parser's nesting rules (I1-I5) are
// enforced against.
//
// Ordering is insertion order for iteration, with the single exception
// that putOrdered threads header/array-of-tables children to the tail
// regardless of when they were created, matching the TOML convention
// that tables follow their sibling scalar assignments in source.
type Table struct {
	kind   TableKind
	origin Origin
	sealed bool

	keys   []string
	values map[string]Node
}

// NewTable constructs an empty table of the given kind and origin.
func NewTable(kind TableKind, origin Origin) *Table {
	return &Table{
		kind:   kind,
		origin: origin,
		values: make(map[string]Node),
	}
}

func (t *Table) Kind() ValueKind { return KindTable }
func (t *Table) TableKind() TableKind { return t.kind }
func (t *Table) Origin() Origin { return t.origin }
func (t *Table) Sealed() bool { return t.sealed }

// Keys returns the table's keys in insertion (display) order. The
// returned slice must not be mutated by the caller.
func (t *Table) Keys() []string { return t.keys }

// Len reports the number of entries in the table.
func (t *Table) Len() int { return len(t.keys) }

// Get canonicalizes key and looks it up in this table only (no descent).
func (t *Table) Get(key string) (Node, bool) {
	ck, err := canonicalizeKey(key)
	if err != nil {
		return nil, false
	}
	n, ok := t.values[ck]
	return n, ok
}

// rawGet looks up an already-canonicalized key without re-canonicalizing.
func (t *Table) rawGet(canonKey string) (Node, bool) {
	n, ok := t.values[canonKey]
	return n, ok
}

// putOrdered inserts key=value using the ordering discipline: header-kind
// tables and arrays-of-tables are appended at the tail; everything else
// is inserted immediately before the first header/array-of-tables
// sibling (or appended if there is none).
func (t *Table) putOrdered(key string, n Node) {
	if _, exists := t.values[key]; exists {
		t.values[key] = n
		return
	}

	if isHeaderLike(n) {
		t.keys = append(t.keys, key)
		t.values[key] = n
		return
	}

	idx := len(t.keys)
	for i, k := range t.keys {
		if isHeaderLike(t.values[k]) {
			idx = i
			break
		}
	}
	t.keys = append(t.keys, "")
	copy(t.keys[idx+1:], t.keys[idx:])
	t.keys[idx] = key
	t.values[key] = n
}

func isHeaderLike(n Node) bool {
	switch v := n.(type) {
	case *Table:
		return v.kind == TableHeader || v.kind == TableArrayElement
	case *Array:
		return v.IsArrayOfTables()
	default:
		return false
	}
}

// seal marks an inline table immutable, enforcing I2.
func (t *Table) seal() { t.sealed = true }

// CreateTable walks path part by part from t, creating intermediate
// Dotted/Header tables as needed, and returns the terminal table marked
// with the caller-supplied kind/origin. It enforces I1, I3, I4.
func (t *Table) CreateTable(path []string, terminalKind TableKind, terminalOrigin Origin) (*Table, error) {
	if len(path) == 0 {
		return nil, &ParseError{Kind: ErrInvalidTableHeader, Message: "empty table path"}
	}

	cur := t
	for i, rawPart := range path {
		part, err := canonicalizeKey(rawPart)
		if err != nil {
			return nil, &ParseError{Kind: ErrInvalidKey, Message: "invalid key: " + rawPart}
		}
		last := i == len(path)-1

		existing, ok := cur.rawGet(part)
		if !ok {
			var child *Table
			if last {
				child = NewTable(terminalKind, terminalOrigin)
			} else {
				intermediateKind := TableDotted
				if terminalKind == TableHeader || terminalKind == TableArrayElement {
					intermediateKind = TableHeader
				}
				child = NewTable(intermediateKind, OriginImplicit)
			}
			cur.putOrdered(part, child)
			cur = child
			continue
		}

		childTable, isTable := existing.(*Table)
		if !isTable {
			return nil, &ParseError{Kind: ErrInvalidTableNesting, Message: "key is not a table: " + part}
		}
		if childTable.sealed {
			return nil, &ParseError{Kind: ErrImmutableInlineTable, Message: "cannot extend inline table: " + part}
		}

		if last {
			if childTable.origin == OriginExplicit {
				if !(childTable.kind == TableDotted && terminalKind == TableDotted) {
					return nil, &ParseError{Kind: ErrTableRedefinition, Message: "table redefined: " + part}
				}
			}
			childTable.kind = terminalKind
			childTable.origin = terminalOrigin
			cur = childTable
			continue
		}

		cur = childTable
	}

	return cur, nil
}

// GetOrCreateArray descends path[:len-1] as tables (traversing into the
// last element of any array-of-tables encountered along the way), then
// at the leaf requires an existing array of ArrayElement tables or
// creates a fresh empty one.
func (t *Table) GetOrCreateArray(path []string) (*Array, error) {
	if len(path) == 0 {
		return nil, &ParseError{Kind: ErrInvalidTableArrayHeader, Message: "empty array-of-tables path"}
	}

	cur := t
	for _, rawPart := range path[:len(path)-1] {
		part, err := canonicalizeKey(rawPart)
		if err != nil {
			return nil, &ParseError{Kind: ErrInvalidKey, Message: "invalid key: " + rawPart}
		}
		existing, ok := cur.rawGet(part)
		if !ok {
			child := NewTable(TableHeader, OriginImplicit)
			cur.putOrdered(part, child)
			cur = child
			continue
		}
		switch v := existing.(type) {
		case *Table:
			if v.sealed {
				return nil, &ParseError{Kind: ErrImmutableInlineTable, Message: "cannot extend inline table: " + part}
			}
			cur = v
		case *Array:
			if !v.IsArrayOfTables() || len(v.Elems) == 0 {
				return nil, &ParseError{Kind: ErrExpectedTable, Message: "expected table, found array: " + part}
			}
			cur = v.Elems[len(v.Elems)-1].(*Table)
		default:
			return nil, &ParseError{Kind: ErrExpectedTable, Message: "expected table: " + part}
		}
	}

	last, err := canonicalizeKey(path[len(path)-1])
	if err != nil {
		return nil, &ParseError{Kind: ErrInvalidKey, Message: "invalid key: " + path[len(path)-1]}
	}

	existing, ok := cur.rawGet(last)
	if !ok {
		arr := newArray()
		// An empty array is not yet recognizable as an array of tables,
		// so putOrdered would not keep it at the tail; append it directly.
		cur.keys = append(cur.keys, last)
		cur.values[last] = arr
		return arr, nil
	}
	arr, isArray := existing.(*Array)
	if !isArray {
		return nil, &ParseError{Kind: ErrExpectedArrayOfTables, Message: "key is not an array: " + last}
	}
	if !arr.IsArrayOfTables() {
		return nil, &ParseError{Kind: ErrExpectedArrayOfTables, Message: "array is not an array of tables: " + last}
	}
	return arr, nil
}

// GetLastArray walks path as a continuation of an already-open
// array-of-tables header, descending into the most recent element of
// the array at each array-valued step, and returns the innermost array
// found at the terminal step.
func (t *Table) GetLastArray(path []string) (*Array, bool) {
	cur := t
	for i, rawPart := range path {
		part, err := canonicalizeKey(rawPart)
		if err != nil {
			return nil, false
		}
		existing, ok := cur.rawGet(part)
		if !ok {
			return nil, false
		}
		last := i == len(path)-1
		switch v := existing.(type) {
		case *Array:
			if !v.IsArrayOfTables() || len(v.Elems) == 0 {
				return nil, false
			}
			if last {
				return v, true
			}
			cur = v.Elems[len(v.Elems)-1].(*Table)
		case *Table:
			if last {
				return nil, false
			}
			cur = v
		default:
			return nil, false
		}
	}
	return nil, false
}

// AddKeyValue materializes parts[:len-1] as Dotted tables (origin
// Implicit, except the terminal table becomes Explicit once the value
// is placed) and installs value at the final slot, which must not
// already exist.
func (t *Table) AddKeyValue(parts []string, value Node) error {
	if len(parts) == 0 {
		return &ParseError{Kind: ErrInvalidKeyValuePair, Message: "empty key"}
	}
	if t.sealed {
		return &ParseError{Kind: ErrImmutableInlineTable, Message: "cannot add to sealed table"}
	}

	cur := t
	for _, rawPart := range parts[:len(parts)-1] {
		part, err := canonicalizeKey(rawPart)
		if err != nil {
			return &ParseError{Kind: ErrInvalidKey, Message: "invalid key: " + rawPart}
		}
		existing, ok := cur.rawGet(part)
		if !ok {
			child := NewTable(TableDotted, OriginImplicit)
			cur.putOrdered(part, child)
			cur = child
			continue
		}
		childTable, isTable := existing.(*Table)
		if !isTable {
			return &ParseError{Kind: ErrDuplicateKeyValuePair, Message: "key already has a value: " + part}
		}
		if childTable.sealed {
			return &ParseError{Kind: ErrImmutableInlineTable, Message: "cannot extend inline table: " + part}
		}
		if childTable.kind != TableDotted && childTable.origin == OriginExplicit {
			return &ParseError{Kind: ErrTableRedefinition, Message: "cannot add dotted key into closed table: " + part}
		}
		cur = childTable
	}

	last, err := canonicalizeKey(parts[len(parts)-1])
	if err != nil {
		return &ParseError{Kind: ErrInvalidKey, Message: "invalid key: " + parts[len(parts)-1]}
	}
	if existing, ok := cur.rawGet(last); ok {
		if _, isTable := existing.(*Table); isTable {
			return &ParseError{Kind: ErrKeyValueRedefinition, Message: "key already defined as table: " + last}
		}
		return &ParseError{Kind: ErrDuplicateKeyValuePair, Message: "duplicate key: " + last}
	}

	cur.putOrdered(last, value)
	if cur != t || len(parts) > 1 {
		cur.origin = OriginExplicit
	}
	return nil
}
