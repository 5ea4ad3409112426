package toml

import "testing"

func newRoot() *Table { return NewTable(TableRoot, OriginExplicit) }

func TestAddKeyValueDottedOnlyLastSegmentBecomesExplicit(t *testing.T) {
	root := newRoot()
	if err := root.AddKeyValue([]string{"a", "b", "c"}, newIntegerValue(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := root.AddKeyValue([]string{"a", "b", "d"}, newIntegerValue(2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	aNode, _ := root.Get("a")
	aTbl := aNode.(*Table)
	if aTbl.Origin() != OriginImplicit {
		t.Errorf("expected 'a' to remain implicit, got %v", aTbl.Origin())
	}

	bNode, _ := aTbl.Get("b")
	bTbl := bNode.(*Table)
	if bTbl.Origin() != OriginExplicit {
		t.Errorf("expected 'b' to become explicit, got %v", bTbl.Origin())
	}
}

func TestCreateTableHeaderThenNestedHeaderIsLegal(t *testing.T) {
	root := newRoot()
	if _, err := root.CreateTable([]string{"a", "b"}, TableHeader, OriginExplicit); err != nil {
		t.Fatalf("unexpected error on [a.b]: %v", err)
	}
	if _, err := root.CreateTable([]string{"a"}, TableHeader, OriginExplicit); err != nil {
		t.Fatalf("[a] after [a.b] should be legal, got: %v", err)
	}

	aNode, _ := root.Get("a")
	aTbl := aNode.(*Table)
	if aTbl.Origin() != OriginExplicit {
		t.Errorf("expected 'a' to become explicit after its own header, got %v", aTbl.Origin())
	}
}

func TestCreateTableRedefinitionIsError(t *testing.T) {
	root := newRoot()
	if _, err := root.CreateTable([]string{"a"}, TableHeader, OriginExplicit); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := root.CreateTable([]string{"a"}, TableHeader, OriginExplicit)
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != ErrTableRedefinition {
		t.Fatalf("expected ErrTableRedefinition, got %v", err)
	}
}

func TestInlineTableIsImmutableToDottedExtension(t *testing.T) {
	root := newRoot()
	inline := NewTable(TableInline, OriginExplicit)
	if err := inline.AddKeyValue([]string{"x"}, newIntegerValue(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	inline.seal()
	if err := root.AddKeyValue([]string{"t"}, inline); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := root.AddKeyValue([]string{"t", "y"}, newIntegerValue(2))
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != ErrImmutableInlineTable {
		t.Fatalf("expected ErrImmutableInlineTable, got %v", err)
	}
}

func TestAddKeyValueDuplicateKeyIsError(t *testing.T) {
	root := newRoot()
	if err := root.AddKeyValue([]string{"x"}, newIntegerValue(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := root.AddKeyValue([]string{"x"}, newIntegerValue(2))
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != ErrDuplicateKeyValuePair {
		t.Fatalf("expected ErrDuplicateKeyValuePair, got %v", err)
	}
}

func TestGetOrCreateArrayAndAppend(t *testing.T) {
	root := newRoot()
	arr, err := root.GetOrCreateArray([]string{"products"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	elem1 := NewTable(TableArrayElement, OriginExplicit)
	elem1.AddKeyValue([]string{"name"}, newStringValue("Hammer"))
	arr.Elems = append(arr.Elems, elem1)

	arr2, err := root.GetOrCreateArray([]string{"products"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if arr2 != arr {
		t.Fatal("expected GetOrCreateArray to return the same array on a second call")
	}
	if len(arr2.Elems) != 1 {
		t.Fatalf("expected 1 element, got %d", len(arr2.Elems))
	}
}

func TestPutOrderedKeepsHeaderChildrenAtTail(t *testing.T) {
	root := newRoot()
	child := NewTable(TableHeader, OriginExplicit)
	root.putOrdered("z_header", child)
	root.putOrdered("a_scalar", newIntegerValue(1))

	keys := root.Keys()
	if len(keys) != 2 || keys[0] != "a_scalar" || keys[1] != "z_header" {
		t.Errorf("expected scalar before header regardless of insertion order, got %v", keys)
	}
}
