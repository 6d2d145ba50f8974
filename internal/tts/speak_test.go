package tts

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestSpeakWithoutBinary(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	e := New()
	if e.Available() {
		t.Fatal("engine claims a binary on an empty PATH")
	}
	// Degrades to a note, never an error.
	if err := e.Speak(context.Background(), "hello"); err != nil {
		t.Errorf("Speak without binary: %v", err)
	}
}

func TestSpeakRunsBinary(t *testing.T) {
	dir := t.TempDir()
	record := filepath.Join(dir, "spoken.txt")
	script := "#!/bin/sh\nprintf '%s' \"$1\" > " + record + "\n"
	if err := os.WriteFile(filepath.Join(dir, "termux-tts-speak"), []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir)

	e := New()
	if !e.Available() {
		t.Fatal("stub binary not found")
	}
	if err := e.Speak(context.Background(), "good morning"); err != nil {
		t.Fatalf("Speak: %v", err)
	}

	got, err := os.ReadFile(record)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "good morning" {
		t.Errorf("spoken text: got %q, want %q", got, "good morning")
	}
}

func TestSpeakEmptyText(t *testing.T) {
	e := &Engine{}
	if err := e.Speak(context.Background(), ""); err != nil {
		t.Errorf("Speak(\"\"): %v", err)
	}
}
