package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/HaiFongPan/panes-cli/internal/config"
	"github.com/HaiFongPan/panes-cli/internal/group"
	"github.com/HaiFongPan/panes-cli/internal/panels"
)

var simulateCells int

// simulateCmd replays resize operations on the configured panels without a terminal UI
var simulateCmd = &cobra.Command{
	Use:   "simulate [op...]",
	Short: "Replay resize operations and print each resulting layout",
	Long: `Replay resize operations on the configured panels and print the layout after
each one. Operations:

  resize:<panel>:<size>       resize a panel to size percent
  collapse:<panel>            collapse a collapsible panel
  expand:<panel>              expand a collapsed panel
  key:<divider>:<key>         press left, right, up, down, home, end or enter on
                              the divider at index; prefix the key with shift+
                              for coarse steps
  drag:<divider>:<cells>      drag the divider at index by a number of cells

Examples:
  panes-cli simulate resize:left:25 collapse:right
  panes-cli simulate key:0:shift+right drag:1:-5 --cells 120`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ops := make([]simOp, 0, len(args))
		for _, arg := range args {
			op, err := parseOp(arg)
			if err != nil {
				return err
			}
			ops = append(ops, op)
		}
		return runSimulation(GetConfig(), ops, simulateCells, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().IntVar(&simulateCells, "cells", 100, "cells available to panels along the group axis")
}

type simOp struct {
	raw     string
	kind    string
	target  string
	divider int
	size    float64
	key     panels.Key
	coarse  bool
	cells   int
}

var keyNames = map[string]panels.Key{
	"left":  panels.KeyArrowLeft,
	"right": panels.KeyArrowRight,
	"up":    panels.KeyArrowUp,
	"down":  panels.KeyArrowDown,
	"home":  panels.KeyHome,
	"end":   panels.KeyEnd,
	"enter": panels.KeyEnter,
}

func parseOp(s string) (simOp, error) {
	parts := strings.Split(s, ":")
	op := simOp{raw: s, kind: parts[0]}

	switch op.kind {
	case "collapse", "expand":
		if len(parts) != 2 || parts[1] == "" {
			return op, fmt.Errorf("invalid operation %q: expected %s:<panel>", s, op.kind)
		}
		op.target = parts[1]

	case "resize":
		if len(parts) != 3 {
			return op, fmt.Errorf("invalid operation %q: expected resize:<panel>:<size>", s)
		}
		size, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return op, fmt.Errorf("invalid size in %q: %w", s, err)
		}
		op.target, op.size = parts[1], size

	case "key":
		if len(parts) != 3 {
			return op, fmt.Errorf("invalid operation %q: expected key:<divider>:<key>", s)
		}
		divider, err := strconv.Atoi(parts[1])
		if err != nil {
			return op, fmt.Errorf("invalid divider in %q: %w", s, err)
		}
		name := strings.ToLower(parts[2])
		if strings.HasPrefix(name, "shift+") {
			op.coarse = true
			name = strings.TrimPrefix(name, "shift+")
		}
		k, ok := keyNames[name]
		if !ok {
			return op, fmt.Errorf("unknown key %q in %q", parts[2], s)
		}
		op.divider, op.key = divider, k

	case "drag":
		if len(parts) != 3 {
			return op, fmt.Errorf("invalid operation %q: expected drag:<divider>:<cells>", s)
		}
		divider, err := strconv.Atoi(parts[1])
		if err != nil {
			return op, fmt.Errorf("invalid divider in %q: %w", s, err)
		}
		cells, err := strconv.Atoi(parts[2])
		if err != nil {
			return op, fmt.Errorf("invalid movement in %q: %w", s, err)
		}
		op.divider, op.cells = divider, cells

	default:
		return op, fmt.Errorf("unknown operation %q", s)
	}
	return op, nil
}

func applyOp(g *group.Group, op simOp) (bool, error) {
	switch op.kind {
	case "collapse":
		return g.CollapsePanel(op.target), nil
	case "expand":
		return g.ExpandPanel(op.target), nil
	case "resize":
		return g.ResizePanel(op.target, op.size), nil
	}

	dividers := g.Dividers()
	if op.divider < 0 || op.divider >= len(dividers) {
		return false, fmt.Errorf("divider %d out of range (%d dividers)", op.divider, len(dividers))
	}
	id := dividers[op.divider].ID

	if op.kind == "key" {
		return g.KeyDown(id, op.key, op.coarse), nil
	}

	start := g.DividerOffset(id)
	if !g.StartDragging(id, start) {
		return false, nil
	}
	defer g.StopDragging()
	return g.Drag(start + op.cells), nil
}

func runSimulation(cfg *config.Config, ops []simOp, cells int, out io.Writer) error {
	direction, err := panels.ParseDirection(cfg.UI.Direction)
	if err != nil {
		return err
	}

	g := group.New(group.Options{ID: "simulate", Direction: direction})
	decls := make([]panels.Config, 0, len(cfg.Panels))
	for _, decl := range cfg.Panels {
		decls = append(decls, decl.PanelConfig())
	}
	if _, err := g.RegisterAll(decls...); err != nil {
		return err
	}
	g.SetBounds(group.Bounds{Length: cells + len(g.Dividers())})

	sorted := g.Panels()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "STEP\tOP\tCHANGED\t%s\n", strings.Join(panels.IDs(sorted), "\t"))
	writeRow(w, "0", "initial", true, g.Sizes())

	for i, op := range ops {
		changed, err := applyOp(g, op)
		if err != nil {
			w.Flush()
			return err
		}
		writeRow(w, strconv.Itoa(i+1), op.raw, changed, g.Sizes())
	}
	return w.Flush()
}

func writeRow(w io.Writer, step, op string, changed bool, sizes []float64) {
	cols := make([]string, len(sizes))
	for i, s := range sizes {
		cols[i] = panels.FormatSize(s)
	}
	fmt.Fprintf(w, "%s\t%s\t%t\t%s\n", step, op, changed, strings.Join(cols, "\t"))
}
