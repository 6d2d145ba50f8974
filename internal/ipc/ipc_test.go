package ipc

import (
	"path/filepath"
	"testing"
	"time"
)

func TestSendCommandReachesHandler(t *testing.T) {
	path := filepath.Join(t.TempDir(), "iris.sock")

	got := make(chan ControlMessage, 1)
	if err := StartServer(path, func(msg ControlMessage) {
		got <- msg
	}); err != nil {
		t.Fatalf("StartServer: %v", err)
	}

	if err := SendCommand(path, "say", "good evening"); err != nil {
		t.Fatalf("SendCommand: %v", err)
	}

	select {
	case msg := <-got:
		if msg.Cmd != "say" || msg.Arg != "good evening" {
			t.Errorf("handler got %+v", msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("handler never saw the command")
	}
}

func TestSendCommandNoServer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "iris.sock")
	if err := SendCommand(path, "blink", ""); err == nil {
		t.Error("expected an error with no server listening")
	}
}
