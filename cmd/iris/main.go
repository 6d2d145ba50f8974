package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	cli "github.com/spf13/pflag"

	"github.com/lmittmann/tint"
	log "log/slog"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"iris/internal/bus"
	"iris/internal/command"
	"iris/internal/face"
	"iris/internal/ipc"
	"iris/internal/memory"
	"iris/internal/nlu"
	"iris/internal/notify"
	"iris/internal/proxy"
	"iris/internal/session"
	"iris/internal/stt"
	"iris/internal/tts"
)

var logLevelMap = map[string]log.Level{
	"debug": log.LevelDebug,
	"info":  log.LevelInfo,
	"warn":  log.LevelWarn,
	"error": log.LevelError,
}

func main() {
	envFile := cli.StringP("env", "e", ".env", "Env file path")
	memPath := cli.StringP("memory", "m", "memory.json", "Memory file path")
	sockPath := cli.StringP("socket", "s", ipc.DefaultSocketPath, "Control socket path")
	busURL := cli.StringP("bus", "b", "", "Websocket hub url (optional)")
	proxyAddr := cli.StringP("proxy", "p", "", "Socks proxy address for the chat API (optional)")
	chimePath := cli.StringP("chime", "c", "", "Chime mp3 path (optional)")
	wakeWord := cli.StringP("wake", "w", "", "Run hands-free, activated by this wake word")
	logLevel := cli.StringP("log", "l", "warn", "Log level")
	cli.Parse()

	// Logs go to stderr; stdout belongs to the face.
	log.SetDefault(log.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: logLevelMap[*logLevel],
	})))

	godotenv.Load(*envFile)

	store := memory.Open(*memPath)
	voice := tts.New()
	if !voice.Available() {
		log.Info("no TTS binary found, responses will be text only")
	}

	anim := face.NewAnimator(os.Stdout, face.DefaultTiming())

	disp := command.New(store, anim)
	disp.Voice = stt.NewListener()
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		opts := []option.RequestOption{option.WithAPIKey(apiKey)}
		if *proxyAddr != "" {
			httpClient, err := proxy.NewSocksClient(*proxyAddr)
			if err != nil {
				log.Error("Failed to dial socks proxy", "proxy", *proxyAddr, "err", err)
				os.Exit(1)
			}
			opts = append(opts, option.WithHTTPClient(httpClient))
		}
		disp.Chat = nlu.New(openai.NewClient(opts...))
	}

	if err := ipc.StartServer(*sockPath, func(msg ipc.ControlMessage) {
		switch msg.Cmd {
		case "blink":
			anim.TriggerBlink()
		case "auto":
			anim.SetAuto(msg.Arg != "off")
		case "say":
			voice.SpeakAsync(msg.Arg)
		default:
			log.Warn("Unknown control command", "cmd", msg.Cmd)
		}
	}); err != nil {
		log.Warn("Control socket unavailable", "err", err)
	}

	if *busURL != "" {
		go func() {
			client, err := bus.Dial(*busURL)
			if err != nil {
				log.Error("Failed to dial bus", "url", *busURL, "err", err)
				return
			}
			defer client.Close()
			if err := bus.Serve(context.Background(), client, disp); err != nil {
				log.Error("Bus loop ended", "err", err)
			}
		}()
	}

	var chime session.Chime
	if *chimePath != "" {
		chime = func() {
			if err := notify.Chime(*chimePath); err != nil {
				log.Warn("Chime failed", "err", err)
			}
		}
		chime()
	}

	fmt.Print(face.ScreenClear)
	anim.Start()

	sess := &session.Session{
		Anim:     anim,
		Disp:     disp,
		Store:    store,
		Voice:    voice,
		In:       os.Stdin,
		Out:      os.Stdout,
		Greeting: "Iris ready — type 'help' for commands.",
	}

	ctx := context.Background()
	var err error
	if *wakeWord != "" {
		err = sess.RunWake(ctx, *wakeWord, chime)
	} else {
		err = sess.Run(ctx)
	}
	if err != nil {
		log.Error("Session ended", "err", err)
		os.Exit(1)
	}
}
