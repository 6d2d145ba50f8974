package memory

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.json")

	s := Open(path)
	if s.Len() != 0 {
		t.Fatalf("fresh store has %d entries", s.Len())
	}

	if err := s.Set("color", "blue"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set("city", "Berlin"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// Reopen from disk.
	s2 := Open(path)
	if got, ok := s2.Get("color"); !ok || got != "blue" {
		t.Errorf("Get(color): got %q, %v", got, ok)
	}
	keys := s2.Keys()
	if len(keys) != 2 || keys[0] != "city" || keys[1] != "color" {
		t.Errorf("Keys: got %v, want [city color]", keys)
	}
}

func TestStoreDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.json")
	s := Open(path)

	if err := s.Set("k", "v"); err != nil {
		t.Fatal(err)
	}

	old, ok, err := s.Delete("k")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !ok || old != "v" {
		t.Errorf("Delete: got %q, %v", old, ok)
	}

	if _, ok, _ := s.Delete("k"); ok {
		t.Error("second Delete reported a hit")
	}

	if _, ok := Open(path).Get("k"); ok {
		t.Error("deleted key survived a reload")
	}
}

func TestOpenCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := Open(path)
	if s.Len() != 0 {
		t.Errorf("corrupt file should start empty, got %d entries", s.Len())
	}
	if err := s.Save(); err != nil {
		t.Errorf("Save over corrupt file: %v", err)
	}
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	s := Open(filepath.Join(dir, "memory.json"))
	if err := s.Set("a", "1"); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "memory.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("unexpected files after Save: %v", names)
	}
}
