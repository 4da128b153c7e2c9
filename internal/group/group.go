package group

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/HaiFongPan/panes-cli/internal/panels"
	"github.com/HaiFongPan/panes-cli/internal/persist"
)

var (
	// ErrNoGroup is returned when a panel is registered without a group.
	ErrNoGroup = errors.New("panel must be registered with a panel group")
	// ErrDuplicatePanel is returned when a panel id is already registered.
	ErrDuplicatePanel = errors.New("panel id is already registered")
)

// Limit reports which bound stopped the last drag.
type Limit int

const (
	LimitNone Limit = iota
	LimitMin
	LimitMax
)

func (l Limit) String() string {
	switch l {
	case LimitMin:
		return "min"
	case LimitMax:
		return "max"
	default:
		return ""
	}
}

// Options configures a Group.
type Options struct {
	ID         string
	Direction  panels.Direction
	AutoSaveID string
	Store      persist.Store
	SaveDelay  time.Duration
	// OnLayout receives every committed size vector once all panels registered.
	OnLayout func(sizes []float64)
	Context  context.Context
}

// Divider is the boundary between two adjacent panels. The n-th divider
// separates the n-th and (n+1)-th panels in order.
type Divider struct {
	ID       string
	Disabled bool
}

// Bounds is the container position and extent along the group axis, in cells.
type Bounds struct {
	Offset int
	Length int
}

// Group owns the panels of one panel group and their committed layout.
// A Group is not safe for concurrent use; drive it from a single event loop.
type Group struct {
	id         string
	direction  panels.Direction
	autoSaveID string
	store      persist.Store
	onLayout   func(sizes []float64)
	ctx        context.Context
	saver      *persist.Debouncer

	registered   []*panels.Panel
	sizes        []float64
	memory       panels.CollapseMemory
	lastNotified map[string]float64
	dividers     []Divider
	bounds       Bounds

	activeDivider string
	initialOffset int
	limit         Limit
}

// New creates an empty group.
func New(opts Options) *Group {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	return &Group{
		id:           panels.UniqueID(opts.ID),
		direction:    opts.Direction,
		autoSaveID:   opts.AutoSaveID,
		store:        opts.Store,
		onLayout:     opts.OnLayout,
		ctx:          ctx,
		saver:        persist.NewDebouncer(opts.SaveDelay),
		memory:       make(panels.CollapseMemory),
		lastNotified: make(map[string]float64),
	}
}

// ID returns the group id.
func (g *Group) ID() string {
	return g.id
}

// Direction returns the group axis.
func (g *Group) Direction() panels.Direction {
	return g.direction
}

// Register adds a panel to the group and recomputes the layout when the panel
// count no longer matches it.
func (g *Group) Register(cfg panels.Config) (*PanelHandle, error) {
	handles, err := g.RegisterAll(cfg)
	if err != nil {
		return nil, err
	}
	return handles[0], nil
}

// RegisterAll adds several panels and stabilizes the group once. Either every
// panel is registered or none is.
func (g *Group) RegisterAll(cfgs ...panels.Config) ([]*PanelHandle, error) {
	if g == nil {
		return nil, ErrNoGroup
	}

	candidates := append([]*panels.Panel(nil), g.registered...)
	handles := make([]*PanelHandle, 0, len(cfgs))
	for _, cfg := range cfgs {
		p, err := panels.NewPanel(cfg)
		if err != nil {
			return nil, err
		}
		if panels.IndexOf(candidates, p.ID) >= 0 {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePanel, p.ID)
		}
		candidates = append(candidates, p)
		handles = append(handles, &PanelHandle{group: g, id: p.ID})
	}

	if err := panels.ValidateGroup(panels.SortPanels(candidates)); err != nil {
		return nil, err
	}

	g.registered = candidates
	logrus.WithFields(logrus.Fields{
		"group":  g.id,
		"panels": len(g.registered),
	}).Debug("Panels registered")

	g.stabilize()
	return handles, nil
}

// Unregister removes panel id. It reports whether the panel was registered.
func (g *Group) Unregister(id string) bool {
	i := panels.IndexOf(g.registered, id)
	if i < 0 {
		return false
	}

	g.registered = append(g.registered[:i:i], g.registered[i+1:]...)
	delete(g.memory, id)
	delete(g.lastNotified, id)
	logrus.WithFields(logrus.Fields{
		"group": g.id,
		"panel": id,
	}).Debug("Panel unregistered")

	g.stabilize()
	return true
}

// Panels returns the registered panels sorted by order.
func (g *Group) Panels() []*panels.Panel {
	return panels.SortPanels(g.registered)
}

// Sizes returns a copy of the committed layout. It is empty until the group
// has stabilized.
func (g *Group) Sizes() []float64 {
	out := make([]float64, len(g.sizes))
	copy(out, g.sizes)
	return out
}

// Stabilized reports whether the layout matches the registered panels.
func (g *Group) Stabilized() bool {
	return len(g.registered) > 0 && len(g.sizes) == len(g.registered)
}

// stabilize derives a new layout from the saved one or from defaults when the
// panel count changed. A layout that already matches is never recomputed.
func (g *Group) stabilize() {
	sorted := g.Panels()
	g.syncDividers(len(sorted))

	if len(sorted) == 0 {
		g.sizes = nil
		return
	}
	if len(g.sizes) == len(sorted) {
		return
	}

	next := g.loadLayout(sorted)
	if next == nil {
		defaults, err := panels.DefaultSizes(sorted)
		if errors.Is(err, panels.ErrDefaultOutOfBounds) {
			// Unregistering may leave panels whose shared default no longer fits.
			logrus.WithError(err).Warn("Default layout out of bounds, fitting it")
			defaults, err = panels.FitSizes(sorted, panels.ResolveDefaults(sorted)), nil
		}
		if err != nil {
			logrus.WithError(err).Error("Failed to compute default layout")
			return
		}
		next = defaults
	}

	logrus.WithFields(logrus.Fields{
		"group": g.id,
		"sizes": next,
	}).Debug("Layout stabilized")

	g.sizes = next
	g.notify(sorted, next)
	if g.onLayout != nil {
		g.onLayout(g.Sizes())
	}
}

func (g *Group) loadLayout(sorted []*panels.Panel) []float64 {
	if g.store == nil || g.autoSaveID == "" {
		return nil
	}

	sizes, err := persist.LoadLayout(g.ctx, g.store, g.autoSaveID, panels.IDs(sorted))
	if err != nil {
		logrus.WithError(err).WithField("auto_save_id", g.autoSaveID).Warn("Failed to load saved layout")
		return nil
	}
	if sizes == nil {
		return nil
	}

	for i, p := range sorted {
		s := sizes[i]
		valid := s <= p.MaxSize && (s >= p.MinSize || (p.Collapsible && s == 0))
		if !valid {
			logrus.WithField("panel", p.ID).Debug("Saved layout violates panel bounds, using defaults")
			return nil
		}
	}
	if !panels.SizesEqual(panels.Total(sizes), 100) {
		return nil
	}
	return sizes
}

// commit replaces the layout with next unless next is the current layout.
func (g *Group) commit(next []float64) bool {
	if panels.Same(next, g.sizes) {
		return false
	}

	sorted := g.Panels()
	g.sizes = next
	g.notify(sorted, next)
	if g.onLayout != nil {
		g.onLayout(g.Sizes())
	}
	g.scheduleSave(sorted)
	return true
}

// notify fires callbacks of panels whose size differs from the last size
// announced to them. Panels never announced before always fire.
func (g *Group) notify(sorted []*panels.Panel, next []float64) {
	for i, p := range sorted {
		if i >= len(next) {
			return
		}
		var prev []float64
		if last, ok := g.lastNotified[p.ID]; ok {
			prev = []float64{last}
		}
		panels.NotifyChanges([]*panels.Panel{p}, prev, next[i:i+1])
		g.lastNotified[p.ID] = next[i]
	}
}

func (g *Group) scheduleSave(sorted []*panels.Panel) {
	if g.store == nil || g.autoSaveID == "" {
		return
	}

	ids := panels.IDs(sorted)
	snapshot := g.Sizes()
	store, autoSaveID, ctx := g.store, g.autoSaveID, g.ctx
	g.saver.Trigger(func() {
		if err := persist.SaveLayout(ctx, store, autoSaveID, ids, snapshot); err != nil {
			logrus.WithError(err).WithField("auto_save_id", autoSaveID).Warn("Failed to save layout")
			return
		}
		logrus.WithField("auto_save_id", autoSaveID).Debug("Layout saved")
	})
}

// adjust runs the resize engine on the pair and commits the result.
func (g *Group) adjust(idBefore, idAfter string, delta float64) bool {
	if !g.Stabilized() {
		return false
	}
	next := panels.AdjustByDelta(g.Panels(), idBefore, idAfter, delta, g.sizes, g.memory)
	return g.commit(next)
}

func (g *Group) panelSize(id string) (*panels.Panel, float64, bool) {
	sorted := g.Panels()
	i := panels.IndexOf(sorted, id)
	if i < 0 || i >= len(g.sizes) {
		return nil, 0, false
	}
	return sorted[i], g.sizes[i], true
}

// pairDelta orients delta for the pair returned by BeforeAndAfter: delta grows
// the panel, and the last panel sits on the after side.
func (g *Group) pairDelta(id string, delta float64) (string, string, float64, bool) {
	sorted := g.Panels()
	idBefore, idAfter, ok := panels.BeforeAndAfter(id, sorted)
	if !ok {
		return "", "", 0, false
	}
	if panels.IsLast(id, sorted) {
		delta = -delta
	}
	return idBefore, idAfter, delta, true
}

// CollapsePanel collapses a collapsible panel to 0.
func (g *Group) CollapsePanel(id string) bool {
	p, size, ok := g.panelSize(id)
	if !ok || !p.Collapsible || size == 0 {
		return false
	}

	idBefore, idAfter, delta, ok := g.pairDelta(id, -size)
	if !ok {
		return false
	}
	return g.adjust(idBefore, idAfter, delta)
}

// ExpandPanel restores a collapsed panel to its size before collapsing, or at
// least its minSize.
func (g *Group) ExpandPanel(id string) bool {
	p, size, ok := g.panelSize(id)
	if !ok || size != 0 {
		return false
	}

	target := p.MinSize
	if remembered, ok := g.memory[id]; ok && remembered > target {
		target = remembered
	}
	if target == 0 {
		return false
	}

	idBefore, idAfter, delta, ok := g.pairDelta(id, target)
	if !ok {
		return false
	}
	return g.adjust(idBefore, idAfter, delta)
}

// ResizePanel moves the divider next to panel id so it gets size percent.
func (g *Group) ResizePanel(id string, size float64) bool {
	_, current, ok := g.panelSize(id)
	if !ok || panels.SizesEqual(size, current) {
		return false
	}

	idBefore, idAfter, delta, ok := g.pairDelta(id, size-current)
	if !ok {
		return false
	}
	return g.adjust(idBefore, idAfter, delta)
}

// Close writes any pending layout immediately.
func (g *Group) Close() {
	g.saver.Flush()
}
