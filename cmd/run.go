package cmd

import (
	"fmt"

	"github.com/sdiallo/avicoach/internal/app"
	"github.com/sdiallo/avicoach/internal/config"
	"github.com/sdiallo/avicoach/internal/narrate"
	"github.com/sdiallo/avicoach/internal/progress"
	"github.com/sdiallo/avicoach/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg := config.Load()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	recorder, err := progress.NewRecorder(st.ProgressRepo())
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}

	var speaker narrate.Speaker = narrate.Noop{}
	if cfg.Narration {
		speaker = narrate.Detect()
	}

	return app.Run(recorder, cfg, speaker)
}
