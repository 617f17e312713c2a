//go:build !ebiten

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"conway/internal/term"

	"github.com/apex/log"
	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := parseConfig()
	closer := setupLogging(cfg, false)
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	screen, err := tcell.NewScreen()
	if err != nil {
		console.WithError(err).Fatal("open terminal")
	}
	if err := screen.Init(); err != nil {
		console.WithError(err).Fatal("init terminal")
	}

	err = term.Run(ctx, screen, cfg, log.Log)
	screen.Fini()
	if err != nil {
		console.WithError(err).Fatal("configure simulation")
	}
}
