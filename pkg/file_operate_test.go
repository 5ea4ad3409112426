package pkg

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCheckFileExist(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "present.toml")
	if err := os.WriteFile(path, []byte("x = 1"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	exists, err := CheckFileExist(path)
	if err != nil || !exists {
		t.Fatalf("CheckFileExist(present) = %v, %v", exists, err)
	}

	exists, err = CheckFileExist(filepath.Join(dir, "missing.toml"))
	if err != nil || exists {
		t.Fatalf("CheckFileExist(missing) = %v, %v", exists, err)
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.toml")
	want := "x = 1\n"
	if err := os.WriteFile(path, []byte(want), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error reading a missing file")
	}
}
