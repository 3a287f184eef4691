package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/wagiedev/terminal-emulator-go/internal/command"
	"github.com/wagiedev/terminal-emulator-go/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	env, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	root := command.NewRootCmd(command.Options{Env: env})
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
