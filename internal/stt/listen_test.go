package stt

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestListenWithoutBinary(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	l := NewListener()
	if l.Available() {
		t.Fatal("listener claims a binary on an empty PATH")
	}
	if _, err := l.Listen(context.Background()); err == nil {
		t.Error("Listen without a recognizer should fail")
	}
}

func TestListenTrimsOutput(t *testing.T) {
	dir := t.TempDir()
	script := "#!/bin/sh\nprintf '  turn on the lamp \\n'\n"
	if err := os.WriteFile(filepath.Join(dir, "termux-speech-to-text"), []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir)

	l := NewListener()
	got, err := l.Listen(context.Background())
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	if got != "turn on the lamp" {
		t.Errorf("Listen: got %q, want %q", got, "turn on the lamp")
	}
}
