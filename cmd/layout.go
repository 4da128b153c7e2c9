package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/HaiFongPan/panes-cli/internal/config"
	"github.com/HaiFongPan/panes-cli/internal/panels"
	"github.com/HaiFongPan/panes-cli/internal/persist"
)

var layoutAutoSaveID string

// layoutCmd groups commands working on saved layouts
var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Inspect or reset saved layouts",
}

var layoutShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved layout of the configured panels",
	Long: `Print the layout saved for the configured panels, or the default layout when
nothing matching is saved.

Examples:
  panes-cli layout show
  panes-cli layout show --id editor`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showLayout(cmd.Context(), os.Stdout)
	},
}

var layoutResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every layout saved under the auto-save id",
	RunE: func(cmd *cobra.Command, args []string) error {
		return resetLayout(cmd.Context(), os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(layoutCmd)
	layoutCmd.AddCommand(layoutShowCmd)
	layoutCmd.AddCommand(layoutResetCmd)

	layoutCmd.PersistentFlags().StringVar(&layoutAutoSaveID, "id", "", "auto-save id (overrides ui.auto_save_id)")
}

func effectiveAutoSaveID(cfg *config.Config) string {
	if layoutAutoSaveID != "" {
		return layoutAutoSaveID
	}
	return cfg.UI.AutoSaveID
}

func showLayout(ctx context.Context, out io.Writer) error {
	cfg := GetConfig()
	sorted, err := config.BuildPanels(cfg.Panels)
	if err != nil {
		return err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return err
	}

	source := "default"
	var sizes []float64
	if store != nil {
		sizes, err = persist.LoadLayout(ctx, store, effectiveAutoSaveID(cfg), panels.IDs(sorted))
		if err != nil {
			return fmt.Errorf("failed to load layout: %w", err)
		}
		if sizes != nil {
			source = "saved"
		}
	}
	if sizes == nil {
		if sizes, err = panels.DefaultSizes(sorted); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "Layout (%s):\n", source)
	if store != nil {
		fmt.Fprintf(out, "Store: %s\n", describeStore(store))
	}
	return writeSizes(out, sorted, sizes)
}

func writeSizes(out io.Writer, sorted []*panels.Panel, sizes []float64) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PANEL\tSIZE\tMIN\tMAX\tCOLLAPSED")
	for i, p := range sorted {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n",
			p.ID, panels.FormatSize(sizes[i]), panels.FormatSize(p.MinSize), panels.FormatSize(p.MaxSize), sizes[i] == 0)
	}
	return w.Flush()
}

func resetLayout(ctx context.Context, out io.Writer) error {
	cfg := GetConfig()
	store, err := buildStore(ctx, cfg)
	if err != nil {
		return err
	}
	if store == nil {
		return fmt.Errorf("persistence is disabled (persist.backend = none)")
	}

	deleter, ok := store.(persist.Deleter)
	if !ok {
		return fmt.Errorf("backend %s cannot delete layouts", cfg.Persist.Backend)
	}

	id := effectiveAutoSaveID(cfg)
	if err := deleter.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to reset layout %s: %w", id, err)
	}
	fmt.Fprintf(out, "Layout %s reset.\n", id)
	return nil
}
