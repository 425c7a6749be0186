package app

import (
	"log/slog"
	"os"

	fs "github.com/moxie99/flight-search-app/internal/flightsearch"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.flight-search.enabled") {
		if err := fs.New(fs.Dependency{
			Config: a.config,
			Router: a.router,
		}); err != nil {
			slog.Error("failed to init module flight-search", "error", err)
			os.Exit(1)
		}
	}
}
