package main

import (
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/jask/karta/app"
	"github.com/jask/karta/core"
	"github.com/jask/karta/internal/catalog"
	"github.com/jask/karta/internal/config"
)

func runUI(cfg config.Config) error {
	if cfg.Log.File != "" {
		f, err := tea.LogToFile(cfg.Log.File, cfg.Log.Prefix)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	keys := core.NewKeyRegistry(core.ApplyActionKeybindings(core.DefaultKeyBindings(), cfg.Keys))
	settings := core.Settings{
		City:            cfg.UI.City,
		Currency:        cfg.UI.Currency,
		SheetCloseDelay: cfg.UI.SheetCloseDelay,
	}
	m := core.NewModel(app.Panels(), keys, catalog.Default(), settings)
	app.ConfigureModel(&m)

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		m.Zones = zone.New()
		defer m.Zones.Close()
		opts = append(opts, tea.WithMouseCellMotion())
	}

	log.Printf("starting karta (city %s, close delay %s, mouse %t)", settings.City, settings.SheetCloseDelay, cfg.UI.Mouse)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
