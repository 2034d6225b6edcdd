package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkovach/ttm/internal/api"
	"github.com/dkovach/ttm/internal/config"
	"github.com/dkovach/ttm/internal/i18n"
	"github.com/dkovach/ttm/internal/store"
	"github.com/dkovach/ttm/internal/ui"
	"github.com/dkovach/ttm/internal/ui/styles"
	"github.com/dkovach/ttm/internal/ui/views"
)

// Version information set via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Handle version flag
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Printf("ttm %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	cfg := config.Load()

	local, err := store.Open(cfg.DataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening local store: %v\n", err)
		os.Exit(1)
	}
	defer local.Close()

	// Restore persisted preferences before any view renders.
	lang, _ := local.Get(store.KeyLanguage)
	theme, _ := local.Get(store.KeyTheme)
	styles.SetTheme(theme)

	client := api.New(cfg.APIBaseURL, cfg.RequestTimeout)
	env := views.Env{
		API:     client,
		Session: store.NewSession(client, local),
		Local:   local,
		Tr:      i18n.New(lang),
	}

	app := ui.NewApp(env)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}
