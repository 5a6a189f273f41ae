package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"baymap/internal/render"
)

var (
	outFlag string
	popFlag bool
)

// highlightNone is the sentinel argument meaning "highlight nothing".
const highlightNone = "none"

var renderCmd = &cobra.Command{
	Use:   "render [station-code|none]",
	Short: "Compose a single frame and write it to a file",
	Long: "Compose exactly one frame, optionally pre-highlighting one station\n" +
		"by its two-character code, and write the result to the output path.\n" +
		"The exit status reports whether the output file was produced.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		if outFlag != "" {
			cfg.OutputPath = outFlag
		}

		ds, db, err := openDataset(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		var hl []string
		if len(args) == 1 && args[0] != highlightNone {
			st, err := ds.Station(args[0])
			if err != nil {
				return err
			}
			hl = []string{st.Code}
		}

		s := render.NewCellSurface(cfg.RenderCols, cfg.RenderRows)
		render.Frame(s, ds, hl, popFlag)
		if err := os.WriteFile(cfg.OutputPath, []byte(s.RenderPlain()+"\n"), 0o644); err != nil {
			return fmt.Errorf("write frame: %w", err)
		}
		if _, err := os.Stat(cfg.OutputPath); err != nil {
			return fmt.Errorf("output file not produced: %w", err)
		}
		log.Printf("wrote frame to %s", cfg.OutputPath)
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&outFlag, "out", "o", "", "output file path (overrides BAYMAP_OUT)")
	renderCmd.Flags().BoolVar(&popFlag, "population", false, "include the population layer")
}
