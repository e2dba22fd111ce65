package main

import (
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/GarrettArm/planckplot/internal/config"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load("")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	zerolog.SetGlobalLevel(cfg.Log.Level)
	if cfg.File != "" {
		log.Debug().Str("file", cfg.File).Msg("Loaded config file")
	}

	a := app.New()
	w := a.NewWindow("Planck's Law")

	w.SetContent(NewPlanckWindow(w, cfg))
	w.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	w.ShowAndRun()
}
