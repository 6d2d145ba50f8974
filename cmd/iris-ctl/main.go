package main

import (
	"fmt"
	"os"
	"strings"

	"iris/internal/ipc"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: iris-ctl <blink|auto|say> [arg...]")
		return
	}

	cmd := os.Args[1]
	arg := strings.Join(os.Args[2:], " ")

	if err := ipc.SendCommand(ipc.DefaultSocketPath, cmd, arg); err != nil {
		fmt.Println("iris not running:", err)
	}
}
