// Package stt captures one spoken utterance by shelling out to the
// termux-api recognizer.
package stt

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

const listenTimeout = 15 * time.Second

type Listener struct {
	bin string
}

func NewListener() *Listener {
	p, err := exec.LookPath("termux-speech-to-text")
	if err != nil {
		return &Listener{}
	}
	return &Listener{bin: p}
}

func (l *Listener) Available() bool {
	return l.bin != ""
}

// Listen records until the recognizer gives up and returns the
// recognized text, trimmed. An empty string with nil error means
// nothing intelligible was heard.
func (l *Listener) Listen(ctx context.Context) (string, error) {
	if l.bin == "" {
		return "", fmt.Errorf("no speech recognizer on PATH")
	}

	ctx, cancel := context.WithTimeout(ctx, listenTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, l.bin).Output()
	if err != nil {
		return "", fmt.Errorf("run %s: %w", l.bin, err)
	}
	return strings.TrimSpace(string(out)), nil
}
