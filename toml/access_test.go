package toml

import "testing"

func TestGetPathDescendsNestedTables(t *testing.T) {
	doc, err := ParseString([]byte("[a.b]\nc = 1\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n, ok := doc.Root().GetPath("a", "b", "c")
	if !ok {
		t.Fatal("expected a.b.c to resolve")
	}
	v, ok := n.(*Value)
	if !ok {
		t.Fatalf("expected scalar value, got %T", n)
	}
	i, _ := v.Integer()
	if i != 1 {
		t.Errorf("got %d", i)
	}
}

func TestGetPathMissingSegmentFails(t *testing.T) {
	doc, err := ParseString([]byte("[a]\nb = 1\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := doc.Root().GetPath("a", "missing"); ok {
		t.Error("expected lookup of a missing key to fail")
	}
}

func TestToUntypedConvertsNestedStructure(t *testing.T) {
	doc, err := ParseString([]byte("name = \"Tom\"\nports = [1, 2, 3]\n[owner]\nid = 7\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := ToUntyped(doc.Root())
	m, ok := out.(map[string]any)
	if !ok {
		t.Fatalf("expected map[string]any, got %T", out)
	}
	if m["name"] != "Tom" {
		t.Errorf("name = %v", m["name"])
	}
	ports, ok := m["ports"].([]any)
	if !ok || len(ports) != 3 {
		t.Fatalf("ports = %v", m["ports"])
	}
	owner, ok := m["owner"].(map[string]any)
	if !ok {
		t.Fatalf("owner = %v", m["owner"])
	}
	if owner["id"] != int64(7) {
		t.Errorf("owner.id = %v", owner["id"])
	}
}

func TestMustStringPanicsOnWrongType(t *testing.T) {
	doc, err := ParseString([]byte("x = 1\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic when MustString is called on an integer key")
		}
	}()
	doc.Root().MustString("x")
}
