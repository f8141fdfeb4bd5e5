package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/akyairhashvil/alarm/internal/alert"
	"github.com/akyairhashvil/alarm/internal/config"
	"github.com/akyairhashvil/alarm/internal/journal"
	"github.com/akyairhashvil/alarm/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	ctx := context.Background()

	// 1. Settings
	settings, err := config.Load()
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}

	// 2. Activity journal; the standard logger feeds it while the UI owns the screen.
	j, err := journal.Open(ctx, config.JournalDSN)
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	defer j.Close()

	logFile, err := routeLogs(j, settings.LogFile)
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	// 3. Alert capability and the main model
	sink := alert.Detect(settings.AlertMode, log.Writer())
	model := tui.NewMainModel(ctx, tui.Options{
		Journal:       j,
		Sink:          sink,
		Logger:        log.Default(),
		Theme:         settings.Theme,
		ActivityLimit: settings.ActivityLimit,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}

// routeLogs points the standard logger at the journal, and also at path when
// one is configured.
func routeLogs(j io.Writer, path string) (*os.File, error) {
	log.SetFlags(0)
	if path == "" {
		log.SetOutput(j)
		return nil, nil
	}
	f, err := tea.LogToFile(path, "")
	if err != nil {
		return nil, err
	}
	log.SetOutput(io.MultiWriter(j, f))
	return f, nil
}
