// Package cli wires the commands: interactive map by default, batch
// frame rendering under "render".
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"baymap/internal/config"
	"baymap/internal/dataset"
	"baymap/internal/tui"
)

var dbFlag string

var rootCmd = &cobra.Command{
	Use:   "baymap",
	Short: "Interactive map of BART ridership, journeys, and population",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		ds, db, err := openDataset(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		p := tea.NewProgram(tui.New(ds), tea.WithAltScreen(), tea.WithMouseAllMotion())
		_, err = p.Run()
		return err
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "dataset database path (overrides BAYMAP_DB)")
	rootCmd.AddCommand(renderCmd)
}

func loadConfig() *config.Config {
	cfg := config.Load()
	if dbFlag != "" {
		cfg.DatabasePath = dbFlag
	}
	return cfg
}

// openDataset opens the store and loads everything up front. Load
// failures are fatal to the command; there is no retry path.
func openDataset(ctx context.Context, cfg *config.Config) (*dataset.Dataset, *sql.DB, error) {
	db, err := dataset.Open(cfg.DatabasePath)
	if err != nil {
		return nil, nil, err
	}
	ds, err := dataset.Load(ctx, db, cfg.LandName)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("load dataset from %s: %w", cfg.DatabasePath, err)
	}
	return ds, db, nil
}
