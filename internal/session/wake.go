package session

import (
	"context"
	"fmt"
	log "log/slog"
	"strings"
	"time"
)

// Chime is an optional audio cue played when the wake word lands.
type Chime func()

// RunWake runs the hands-free loop: wait for the wake word, capture one
// command, dispatch it, speak the answer. Returns when the user quits,
// the context is cancelled, or no recognizer is available.
func (s *Session) RunWake(ctx context.Context, word string, chime Chime) error {
	if s.Disp.Voice == nil || !s.Disp.Voice.Available() {
		return fmt.Errorf("wake mode needs a speech recognizer on PATH")
	}
	defer s.shutdown()

	word = strings.ToLower(word)
	hint := fmt.Sprintf("Say %q to activate me.", word)
	s.print(hint)
	s.speak(hint)

	for ctx.Err() == nil {
		heard, err := s.Disp.Voice.Listen(ctx)
		if err != nil {
			log.Debug("wake listen", "err", err)
			time.Sleep(time.Second) // don't spin on a broken recognizer
			continue
		}
		if !strings.Contains(strings.ToLower(heard), word) {
			continue
		}

		if chime != nil {
			chime()
		}
		s.speak("Yes, I'm listening.")

		cmdLine, err := s.Disp.Voice.Listen(ctx)
		if err != nil || cmdLine == "" {
			s.speak("I didn't catch that.")
			continue
		}

		s.print(fmt.Sprintf("You: %s", cmdLine))
		if quit := s.handle(ctx, cmdLine); quit {
			return nil
		}
	}
	return ctx.Err()
}
