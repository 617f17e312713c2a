//go:build ebiten

package main

import (
	"errors"

	"conway/internal/app"
	"conway/internal/render"

	"github.com/apex/log"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := parseConfig()
	defer setupLogging(cfg, true).Close()

	game, err := app.NewGame(cfg, log.Log)
	if err != nil {
		console.WithError(err).Fatal("configure simulation")
	}

	ebiten.SetWindowTitle(render.Title(false, cfg.Speed))
	ebiten.SetWindowSize(game.WindowSize())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		console.WithError(err).Fatal("run game")
	}
}
