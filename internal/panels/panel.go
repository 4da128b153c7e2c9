package panels

import (
	"fmt"
	"sort"
	"strconv"
	"sync/atomic"
)

// Default constraints applied when a Config leaves them unset.
const (
	DefaultMinSize = 10
	DefaultMaxSize = 100
)

// Config declares a panel. Nil size fields take their defaults; a nil
// DefaultSize means the panel shares the space left by explicit defaults.
type Config struct {
	ID          string
	Order       int
	MinSize     *float64
	MaxSize     *float64
	DefaultSize *float64
	Collapsible bool
	OnResize    func(size float64)
	OnCollapse  func(collapsed bool)
}

// Panel is a validated panel descriptor.
type Panel struct {
	ID          string
	Order       int
	MinSize     float64
	MaxSize     float64
	DefaultSize *float64
	Collapsible bool
	OnResize    func(size float64)
	OnCollapse  func(collapsed bool)
}

// Size returns a pointer to v, for optional Config fields.
func Size(v float64) *float64 {
	return &v
}

var idCounter atomic.Uint64

// UniqueID returns id, or a process-wide generated id when id is empty.
func UniqueID(id string) string {
	if id != "" {
		return id
	}
	return strconv.FormatUint(idCounter.Add(1)-1, 10)
}

// NewPanel validates cfg and builds a Panel.
func NewPanel(cfg Config) (*Panel, error) {
	p := &Panel{
		ID:          UniqueID(cfg.ID),
		Order:       cfg.Order,
		MinSize:     DefaultMinSize,
		MaxSize:     DefaultMaxSize,
		Collapsible: cfg.Collapsible,
		OnResize:    cfg.OnResize,
		OnCollapse:  cfg.OnCollapse,
	}
	if cfg.MinSize != nil {
		p.MinSize = *cfg.MinSize
	}
	if cfg.MaxSize != nil {
		p.MaxSize = *cfg.MaxSize
	}
	if cfg.DefaultSize != nil {
		d := *cfg.DefaultSize
		p.DefaultSize = &d
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the panel's own constraints.
func (p *Panel) Validate() error {
	if !inRange(p.MinSize) {
		return &ConfigError{PanelID: p.ID, Field: "minSize", Err: fmt.Errorf("%w, got %v", ErrOutOfRange, p.MinSize)}
	}
	if !inRange(p.MaxSize) {
		return &ConfigError{PanelID: p.ID, Field: "maxSize", Err: fmt.Errorf("%w, got %v", ErrOutOfRange, p.MaxSize)}
	}
	if p.MinSize > p.MaxSize {
		return &ConfigError{PanelID: p.ID, Field: "minSize", Err: fmt.Errorf("%w (%v > %v)", ErrMinExceedsMax, p.MinSize, p.MaxSize)}
	}
	if p.DefaultSize != nil {
		if !inRange(*p.DefaultSize) {
			return &ConfigError{PanelID: p.ID, Field: "defaultSize", Err: fmt.Errorf("%w, got %v", ErrOutOfRange, *p.DefaultSize)}
		}
		if !p.Collapsible && p.MinSize > *p.DefaultSize {
			return &ConfigError{PanelID: p.ID, Field: "defaultSize", Err: fmt.Errorf("%w (%v > %v)", ErrMinExceedsDefault, p.MinSize, *p.DefaultSize)}
		}
		if *p.DefaultSize > p.MaxSize {
			return &ConfigError{PanelID: p.ID, Field: "defaultSize", Err: fmt.Errorf("%w (%v > %v)", ErrDefaultExceedsMax, *p.DefaultSize, p.MaxSize)}
		}
	}
	return nil
}

func inRange(v float64) bool {
	return v >= 0 && v <= 100
}

// SortPanels returns the panels ordered by Order. Panels with equal Order keep
// their relative input order.
func SortPanels(list []*Panel) []*Panel {
	sorted := make([]*Panel, len(list))
	copy(sorted, list)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})
	return sorted
}

// IndexOf returns the position of id in sorted, or -1.
func IndexOf(sorted []*Panel, id string) int {
	for i, p := range sorted {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// IDs returns the panel ids in slice order.
func IDs(list []*Panel) []string {
	ids := make([]string, len(list))
	for i, p := range list {
		ids[i] = p.ID
	}
	return ids
}
