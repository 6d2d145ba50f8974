// Package tts voices text by shelling out to whichever speech binary
// the host provides: termux-tts-speak on Android, espeak elsewhere.
package tts

import (
	"context"
	"fmt"
	log "log/slog"
	"os/exec"
	"time"
)

const speakTimeout = 30 * time.Second

type Engine struct {
	bin string
}

// New probes the PATH for a usable speech binary. An Engine with no
// binary still works; Speak then degrades to a logged note.
func New() *Engine {
	for _, name := range []string{"termux-tts-speak", "espeak"} {
		if p, err := exec.LookPath(name); err == nil {
			return &Engine{bin: p}
		}
	}
	return &Engine{}
}

func (e *Engine) Available() bool {
	return e.bin != ""
}

// Speak voices text, blocking until playback ends.
func (e *Engine) Speak(ctx context.Context, text string) error {
	if text == "" {
		return nil
	}
	if e.bin == "" {
		log.Info("no TTS available", "text", text)
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, speakTimeout)
	defer cancel()

	if err := exec.CommandContext(ctx, e.bin, text).Run(); err != nil {
		return fmt.Errorf("run %s: %w", e.bin, err)
	}
	return nil
}

// SpeakAsync voices text in the background. Failures are logged and
// swallowed so a broken speaker never stalls the session.
func (e *Engine) SpeakAsync(text string) {
	go func() {
		if err := e.Speak(context.Background(), text); err != nil {
			log.Warn("speak failed", "err", err)
		}
	}()
}
