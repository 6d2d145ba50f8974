// Package command maps one line of user input to an assistant action.
package command

import (
	"context"
	"fmt"
	log "log/slog"
	"math/rand"
	"strings"
	"time"

	"iris/internal/memory"
	"iris/internal/stt"
)

// Result tells the session what to do with a handled line. Commands
// never fail outward; anything that goes wrong becomes displayable
// text.
type Result struct {
	Text  string // response to print; empty means nothing to show
	Speak string // text to vocalize, if any
	Clear bool   // wipe the screen instead of printing
	Quit  bool   // end the session
}

// Blinker is the slice of the animator the dispatcher needs.
type Blinker interface {
	TriggerBlink()
	SetAuto(enabled bool)
}

// Responder produces a free-form reply for input no command matched.
type Responder interface {
	Reply(ctx context.Context, text string) (string, error)
}

type Dispatcher struct {
	store *memory.Store
	eyes  Blinker

	// Optional collaborators, nil when the host lacks them.
	Voice *stt.Listener
	Chat  Responder
}

func New(store *memory.Store, eyes Blinker) *Dispatcher {
	return &Dispatcher{store: store, eyes: eyes}
}

var jokes = []string{
	"Why did the computer show up at work late? It had a hard drive.",
	"Why do programmers prefer dark mode? Because light attracts bugs!",
	"I would tell you a UDP joke, but you might not get it.",
}

const helpText = `Available commands:
  help                      - show this help
  say <text>                - speak text (TTS)
  remember <key> = <value>  - store a value in memory
  recall <key>              - get value from memory
  list                      - list all memory keys
  forget <key>              - remove key from memory
  time                      - show current time
  date                      - show current date
  joke                      - tell a random joke
  blink                     - force a blink
  blink_auto on|off         - enable/disable auto blinking
  listen                    - take one voice command
  clear                     - clear the assistant screen
  exit / quit               - exit the assistant`

// Dispatch handles one input line.
func (d *Dispatcher) Dispatch(ctx context.Context, line string) Result {
	line = strings.TrimSpace(line)
	if line == "" {
		return Result{}
	}

	cmd, arg, _ := strings.Cut(line, " ")
	cmd = strings.ToLower(cmd)
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "help", "?":
		return Result{Text: helpText}
	case "say":
		if arg == "" {
			return Result{Text: "Use: say <text>"}
		}
		return Result{Text: "(spoken)", Speak: arg}
	case "remember":
		return d.remember(arg)
	case "recall":
		return d.recall(arg)
	case "list":
		return d.list()
	case "forget":
		return d.forget(arg)
	case "time", "now":
		return Result{Text: time.Now().Format("Current time: 2006-01-02 15:04:05")}
	case "date":
		return Result{Text: time.Now().Format("Today is Monday, 02 January 2006")}
	case "joke":
		j := jokes[rand.Intn(len(jokes))]
		return Result{Text: j, Speak: j}
	case "blink":
		d.eyes.TriggerBlink()
		return Result{Text: "(blinked)"}
	case "blink_auto":
		return d.blinkAuto(arg)
	case "listen":
		return d.listen(ctx)
	case "clear":
		return Result{Clear: true}
	case "exit", "quit":
		return Result{Quit: true}
	}

	return d.fallback(ctx, line)
}

func (d *Dispatcher) remember(arg string) Result {
	key, val, ok := strings.Cut(arg, "=")
	if !ok {
		return Result{Text: "Use: remember key = value"}
	}
	key = strings.TrimSpace(key)
	val = strings.TrimSpace(val)
	if err := d.store.Set(key, val); err != nil {
		log.Warn("persist memory", "err", err)
		return Result{Text: fmt.Sprintf("Could not save memory: %v", err)}
	}
	return Result{Text: fmt.Sprintf("Okay, remembered %s = %q", key, val)}
}

func (d *Dispatcher) recall(arg string) Result {
	key := strings.TrimSpace(arg)
	if key == "" {
		return Result{Text: "Use: recall key"}
	}
	if val, ok := d.store.Get(key); ok {
		return Result{Text: fmt.Sprintf("%s = %q", key, val)}
	}
	return Result{Text: fmt.Sprintf("I don't have %q in memory.", key)}
}

func (d *Dispatcher) list() Result {
	keys := d.store.Keys()
	if len(keys) == 0 {
		return Result{Text: "Memory is empty."}
	}
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		v, _ := d.store.Get(k)
		lines = append(lines, fmt.Sprintf("%s = %q", k, v))
	}
	return Result{Text: strings.Join(lines, "\n")}
}

func (d *Dispatcher) forget(arg string) Result {
	key := strings.TrimSpace(arg)
	if key == "" {
		return Result{Text: "Use: forget key"}
	}
	old, ok, err := d.store.Delete(key)
	if err != nil {
		log.Warn("persist memory", "err", err)
		return Result{Text: fmt.Sprintf("Could not save memory: %v", err)}
	}
	if !ok {
		return Result{Text: fmt.Sprintf("No memory for %q", key)}
	}
	return Result{Text: fmt.Sprintf("Forgot %s (was %q)", key, old)}
}

func (d *Dispatcher) blinkAuto(arg string) Result {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "on", "1", "true", "yes":
		d.eyes.SetAuto(true)
		return Result{Text: "Auto-blink: ON"}
	case "off", "0", "false", "no":
		d.eyes.SetAuto(false)
		return Result{Text: "Auto-blink: OFF"}
	default:
		return Result{Text: "Use: blink_auto on|off"}
	}
}

// listen captures one utterance and feeds it back through Dispatch.
func (d *Dispatcher) listen(ctx context.Context) Result {
	if d.Voice == nil || !d.Voice.Available() {
		return Result{Text: "Voice input is not available here."}
	}
	heard, err := d.Voice.Listen(ctx)
	if err != nil {
		return Result{Text: fmt.Sprintf("Could not hear you: %v", err)}
	}
	if heard == "" {
		return Result{Text: "I didn't catch that."}
	}
	res := d.Dispatch(ctx, heard)
	res.Text = fmt.Sprintf("(heard %q)\n%s", heard, res.Text)
	return res
}

func (d *Dispatcher) fallback(ctx context.Context, line string) Result {
	lower := strings.ToLower(line)
	if strings.Contains(lower, "name") {
		return Result{Text: "I'm Iris, your terminal assistant. You can teach me things with 'remember'."}
	}
	if strings.Contains(lower, "hello") || strings.Contains(lower, "hi") {
		return Result{Text: "Hello! Type 'help' for commands."}
	}

	if d.Chat != nil {
		reply, err := d.Chat.Reply(ctx, line)
		if err != nil {
			log.Warn("chat fallback failed", "err", err)
			return Result{Text: "Sorry, I don't understand that. Type 'help' for commands."}
		}
		return Result{Text: reply, Speak: reply}
	}

	return Result{Text: "Sorry, I don't understand that. Type 'help' for commands."}
}
