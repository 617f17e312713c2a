package main

import (
	"io"
	"os"

	"conway/internal/app"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/apex/log/handlers/discard"
	"github.com/apex/log/handlers/text"
	"github.com/integrii/flaggy"
)

// console reports startup failures on stderr whatever handler the session
// logs through.
var console = &log.Logger{Handler: cli.New(os.Stderr), Level: log.InfoLevel}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func parseConfig() *app.Config {
	cfg := app.NewConfig()
	p := flaggy.NewParser("life")
	p.Description = "Conway's Game of Life on a toroidal grid"
	cfg.Bind(p)
	if err := p.Parse(); err != nil {
		console.WithError(err).Fatal("parse flags")
	}
	return cfg
}

// setupLogging installs the log handler. A configured log file wins; otherwise
// logs go to stderr when toStderr is set and are dropped when it is not, since
// the terminal UI owns the screen.
func setupLogging(cfg *app.Config, toStderr bool) io.Closer {
	if cfg.Verbose {
		log.SetLevel(log.DebugLevel)
	}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			console.WithError(err).Fatal("open log file")
		}
		log.SetHandler(text.New(f))
		return f
	}
	if toStderr {
		log.SetHandler(cli.New(os.Stderr))
	} else {
		log.SetHandler(discard.New())
	}
	return nopCloser{}
}
