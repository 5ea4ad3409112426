package toml

import (
	"reflect"
	"testing"
)

func TestCanonicalizeKeyBare(t *testing.T) {
	got, err := canonicalizeKey("  bare_key-1  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "bare_key-1" {
		t.Errorf("got %q", got)
	}
}

func TestCanonicalizeKeyQuotedCollapsesToBeBare(t *testing.T) {
	got, err := canonicalizeKey(`"plain"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "plain" {
		t.Errorf("quoted key containing only bare-key bytes should canonicalize bare, got %q", got)
	}
}

func TestCanonicalizeKeyQuotedStaysQuotedWhenNotBare(t *testing.T) {
	got, err := canonicalizeKey(`"a.b"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `"a.b"` {
		t.Errorf(`got %q, want "a.b"`, got)
	}
}

func TestCanonicalizeKeyRejectsEmpty(t *testing.T) {
	if _, err := canonicalizeKey(""); err == nil {
		t.Fatal("expected error for empty key")
	}
}

func TestSplitDottedKeySimple(t *testing.T) {
	parts, err := splitDottedKey("a.b.c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(parts, []string{"a", "b", "c"}) {
		t.Errorf("got %v", parts)
	}
}

func TestSplitDottedKeyQuotedSegmentWithDot(t *testing.T) {
	parts, err := splitDottedKey(`a."b.c".d`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"a", `"b.c"`, "d"}
	if !reflect.DeepEqual(parts, want) {
		t.Errorf("got %v, want %v", parts, want)
	}
}

func TestSplitDottedKeyEscapedQuoteInsideSegment(t *testing.T) {
	parts, err := splitDottedKey(`a."b\".c".d`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(parts) != 3 {
		t.Fatalf("expected 3 parts, got %v", parts)
	}
}

func TestLogicalKeyTextStripsQuotesFromNonBareKey(t *testing.T) {
	if got := logicalKeyText(`"a.b"`); got != "a.b" {
		t.Errorf("got %q, want a.b", got)
	}
	if got := logicalKeyText(`'a.b'`); got != "a.b" {
		t.Errorf("got %q, want a.b", got)
	}
	if got := logicalKeyText("bare"); got != "bare" {
		t.Errorf("bare key should pass through unchanged, got %q", got)
	}
}

func TestLogicalKeyTextDecodesEscapesInDoubleQuotedKey(t *testing.T) {
	if got := logicalKeyText(`"a\tb"`); got != "a\tb" {
		t.Errorf("got %q, want a tab-separated key", got)
	}
}

func TestSplitDottedKeyUnterminatedQuote(t *testing.T) {
	if _, err := splitDottedKey(`a."b`); err == nil {
		t.Fatal("expected error for unterminated quoted key segment")
	}
}
