// Package session runs the foreground loop of the assistant: prompt,
// read, dispatch, print. All writes go through the animator's output
// lock so they never tear against a frame redraw.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	log "log/slog"
	"strings"

	"iris/internal/command"
	"iris/internal/face"
	"iris/internal/memory"
	"iris/internal/tts"
)

const prompt = ">>> "

type Session struct {
	Anim  *face.Animator
	Disp  *command.Dispatcher
	Store *memory.Store
	Voice *tts.Engine
	In    io.Reader
	Out   io.Writer

	// Greeting is printed and spoken once before the first prompt.
	Greeting string
}

func (s *Session) print(text string) {
	s.Anim.WithOutputLock(func() {
		fmt.Fprintln(s.Out, text)
	})
}

func (s *Session) speak(text string) {
	if s.Voice != nil && text != "" {
		s.Voice.SpeakAsync(text)
	}
}

// Run blocks until the user quits or input runs out. End of input is a
// stop request, not an error. The animator is stopped and memory is
// persisted before Run returns.
func (s *Session) Run(ctx context.Context) error {
	defer s.shutdown()

	if s.Greeting != "" {
		s.print(s.Greeting)
		s.speak(s.Greeting)
	}

	in := bufio.NewReader(s.In)
	for {
		s.Anim.WithOutputLock(func() {
			fmt.Fprint(s.Out, prompt)
		})

		line, err := in.ReadString('\n')
		line = strings.TrimRight(line, "\n")

		if line != "" {
			if quit := s.handle(ctx, line); quit {
				return nil
			}
		}
		if err != nil {
			if err != io.EOF {
				log.Warn("read input", "err", err)
			}
			return nil
		}
	}
}

// handle feeds one line through the dispatcher and reports whether the
// session should end.
func (s *Session) handle(ctx context.Context, line string) bool {
	res := s.Disp.Dispatch(ctx, line)

	if res.Clear {
		s.Anim.WithOutputLock(func() {
			fmt.Fprint(s.Out, face.ScreenClear)
		})
	}
	if res.Text != "" {
		s.print(res.Text)
	}
	s.speak(res.Speak)
	return res.Quit
}

func (s *Session) shutdown() {
	s.Anim.Stop()
	s.Anim.WithOutputLock(func() {
		fmt.Fprintln(s.Out, "\nGoodbye — memory saved.")
	})
	if err := s.Store.Save(); err != nil {
		log.Error("save memory on exit", "err", err)
	}
}
