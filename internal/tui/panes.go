package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/HaiFongPan/panes-cli/internal/config"
	"github.com/HaiFongPan/panes-cli/internal/group"
	"github.com/HaiFongPan/panes-cli/internal/panels"
	"github.com/HaiFongPan/panes-cli/internal/persist"
	uiconfig "github.com/HaiFongPan/panes-cli/internal/tui/config"
	"github.com/HaiFongPan/panes-cli/internal/tui/messaging"
	"github.com/HaiFongPan/panes-cli/internal/tui/theme"
	"github.com/HaiFongPan/panes-cli/internal/utils"
)

// PaneModel renders one panel group and lets the user resize it
type PaneModel struct {
	group        *group.Group
	titles       map[string]string
	autoSaveID   string
	keyMap       KeyMap
	help         help.Model
	status       messaging.StatusManager
	focused      string
	showHelp     bool
	showSizes    bool
	windowWidth  int
	windowHeight int
	copyLayout   func(string) error
}

type statusTickMsg time.Time

// NewPaneModel creates the pane view for the configured panels. store may be
// nil to disable persistence.
func NewPaneModel(cfg *config.Config, store persist.Store) (*PaneModel, error) {
	direction, err := panels.ParseDirection(cfg.UI.Direction)
	if err != nil {
		return nil, err
	}

	m := &PaneModel{
		titles:     make(map[string]string, len(cfg.Panels)),
		keyMap:     DefaultKeyMap(),
		help:       help.New(),
		status:     messaging.NewStatusManager(),
		showSizes:  cfg.UI.ShowSizes,
		copyLayout: utils.CopyToClipboard,
	}

	opts := group.Options{
		ID:        "panes",
		Direction: direction,
		SaveDelay: time.Duration(cfg.Persist.DebounceMS) * time.Millisecond,
	}
	if store != nil {
		opts.Store = store
		opts.AutoSaveID = cfg.UI.AutoSaveID
		m.autoSaveID = cfg.UI.AutoSaveID
	}
	m.group = group.New(opts)

	panelCfgs := make([]panels.Config, 0, len(cfg.Panels))
	for _, decl := range cfg.Panels {
		title := decl.Title
		if title == "" {
			title = decl.ID
		}
		m.titles[decl.ID] = title

		pc := decl.PanelConfig()
		pc.OnCollapse = m.collapseListener(title)
		panelCfgs = append(panelCfgs, pc)
	}
	if _, err := m.group.RegisterAll(panelCfgs...); err != nil {
		return nil, fmt.Errorf("failed to register panels: %w", err)
	}

	m.focused = m.group.NextDivider("", false)
	return m, nil
}

func (m *PaneModel) collapseListener(title string) func(bool) {
	return func(collapsed bool) {
		if collapsed {
			m.status.SetMessage(fmt.Sprintf("%s collapsed", title), messaging.MessageInfo)
		} else {
			m.status.SetMessage(fmt.Sprintf("%s expanded", title), messaging.MessageInfo)
		}
	}
}

// SetClipboard replaces the function used to copy the layout
func (m *PaneModel) SetClipboard(fn func(string) error) {
	m.copyLayout = fn
}

// Group returns the panel group driven by the model
func (m *PaneModel) Group() *group.Group {
	return m.group
}

// Focused returns the id of the divider receiving key presses
func (m *PaneModel) Focused() string {
	return m.focused
}

// Close flushes the pending layout write
func (m *PaneModel) Close() {
	m.group.Close()
}

// Init implements the bubbletea.Model interface
func (m *PaneModel) Init() tea.Cmd {
	return statusTick()
}

func statusTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return statusTickMsg(t)
	})
}

// Update implements the bubbletea.Model interface
func (m *PaneModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		m.help.Width = msg.Width
		m.updateBounds()
		return m, nil

	case statusTickMsg:
		m.status.Expire(time.Time(msg))
		return m, statusTick()
	}
	return m, nil
}

func (m *PaneModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		if msg.String() == "ctrl+c" {
			m.Close()
			return m, tea.Quit
		}
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keyMap.Quit):
		m.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Help):
		m.showHelp = true

	case key.Matches(msg, m.keyMap.NextDivider):
		m.focused = m.group.NextDivider(m.focused, false)

	case key.Matches(msg, m.keyMap.PrevDivider):
		m.focused = m.group.NextDivider(m.focused, true)

	case key.Matches(msg, m.keyMap.Collapse):
		if id, ok := m.focusedPanel(); ok && !m.group.CollapsePanel(id) {
			m.status.SetMessage(fmt.Sprintf("%s cannot collapse", m.titles[id]), messaging.MessageWarning)
		}

	case key.Matches(msg, m.keyMap.Expand):
		if id, ok := m.focusedPanel(); ok && !m.group.ExpandPanel(id) {
			m.status.SetMessage(fmt.Sprintf("%s is not collapsed", m.titles[id]), messaging.MessageWarning)
		}

	case key.Matches(msg, m.keyMap.Copy):
		m.copyCurrentLayout()

	default:
		k, coarse := dividerKey(msg)
		if k == panels.KeyNone || m.focused == "" {
			return m, nil
		}
		m.group.KeyDown(m.focused, k, coarse)
	}
	return m, nil
}

// focusedPanel is the panel before the focused divider.
func (m *PaneModel) focusedPanel() (string, bool) {
	idBefore, _, ok := m.group.DividerPanels(m.focused)
	return idBefore, ok
}

func (m *PaneModel) copyCurrentLayout() {
	layout := utils.FormatLayout(panels.IDs(m.group.Panels()), m.group.Sizes())
	if err := m.copyLayout(layout); err != nil {
		logrus.WithError(err).Warn("Failed to copy layout")
		m.status.SetMessage(fmt.Sprintf("Copy failed: %v", err), messaging.MessageError)
		return
	}
	m.status.SetMessage("Layout copied to clipboard", messaging.MessageSuccess)
}

func (m *PaneModel) handleMouse(msg tea.MouseMsg) {
	pos := msg.X
	if m.group.Direction() == panels.Vertical {
		pos = msg.Y
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if id, ok := m.group.HitDivider(pos); ok {
			m.focused = id
			m.group.StartDragging(id, pos)
		}

	case tea.MouseActionMotion:
		if !m.group.Dragging() {
			return
		}
		if !m.group.Drag(pos) && m.group.Limit() != group.LimitNone {
			logrus.Debugf("Divider %s reached its %s limit", m.group.ActiveDivider(), m.group.Limit())
		}

	case tea.MouseActionRelease:
		m.group.StopDragging()
	}
}

func (m *PaneModel) contentSize() (int, int) {
	width := m.windowWidth
	if width < uiconfig.MinContentWidth {
		width = uiconfig.MinContentWidth
	}
	height := m.windowHeight - uiconfig.HeaderHeight - uiconfig.FooterHeight
	if height < uiconfig.MinContentHeight {
		height = uiconfig.MinContentHeight
	}
	return width, height
}

func (m *PaneModel) updateBounds() {
	width, height := m.contentSize()
	if m.group.Direction() == panels.Vertical {
		m.group.SetBounds(group.Bounds{Offset: uiconfig.HeaderHeight, Length: height})
		return
	}
	m.group.SetBounds(group.Bounds{Offset: 0, Length: width})
}

// View implements the bubbletea.Model interface
func (m *PaneModel) View() string {
	width, height := m.contentSize()

	header := fmt.Sprintf("panes-cli · %s", m.group.Direction())
	if m.autoSaveID != "" {
		header += fmt.Sprintf(" · %s", m.autoSaveID)
	}
	headerLine := theme.CreateHeaderStyle().Render(header)

	var content string
	if m.showHelp {
		content = lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, m.renderHelpDialog())
	} else {
		content = m.renderGroup(width, height)
	}

	statusLine := m.status.RenderMessage()
	if statusLine == "" {
		statusLine = theme.CreateSecondaryTextStyle().Render(m.describeFocus())
	}
	footerLine := theme.CreateFooterStyle().Render(m.help.ShortHelpView(m.keyMap.ShortHelp()))

	return lipgloss.JoinVertical(lipgloss.Left, headerLine, content, statusLine, footerLine)
}

func (m *PaneModel) describeFocus() string {
	values, ok := m.group.Separator(m.focused)
	if !ok {
		return ""
	}
	text := fmt.Sprintf("divider %s: %d%% (%d-%d)", m.titles[values.Controls], values.Now, values.Min, values.Max)
	if m.group.Dragging() {
		if limit := m.group.Limit(); limit != group.LimitNone {
			text += fmt.Sprintf(" · at %s", limit)
		}
	}
	return text
}

func (m *PaneModel) renderGroup(width, height int) string {
	sorted := m.group.Panels()
	dividers := m.group.Dividers()
	cells := m.group.PanelCells()
	sizes := m.group.Sizes()
	vertical := m.group.Direction() == panels.Vertical

	parts := make([]string, 0, len(sorted)+len(dividers))
	for i, p := range sorted {
		if i < len(cells) && cells[i] > 0 {
			size := 0.0
			if i < len(sizes) {
				size = sizes[i]
			}
			if vertical {
				parts = append(parts, m.renderPanel(i, p.ID, size, width, cells[i]))
			} else {
				parts = append(parts, m.renderPanel(i, p.ID, size, cells[i], height))
			}
		}
		if i < len(dividers) {
			parts = append(parts, m.renderDivider(dividers[i].ID, vertical, width, height))
		}
	}

	if vertical {
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *PaneModel) renderPanel(index int, id string, size float64, width, height int) string {
	lines := []string{theme.CreatePanelTitleStyle().Render(m.titles[id])}
	if m.showSizes {
		lines = append(lines, fmt.Sprintf("%.*f%%", uiconfig.SizeLabelDecimals, size))
	}
	return theme.CreatePanelStyle(width, height, index, size == 0).Render(strings.Join(lines, "\n"))
}

func (m *PaneModel) renderDivider(id string, vertical bool, width, height int) string {
	state := theme.DividerIdle
	switch {
	case m.group.ActiveDivider() == id && m.group.Limit() != group.LimitNone:
		state = theme.DividerAtLimit
	case m.group.ActiveDivider() == id:
		state = theme.DividerDragging
	case m.focused == id:
		state = theme.DividerFocused
	}

	// Side by side panels are separated by vertical lines.
	glyph := theme.DividerGlyph(!vertical, state != theme.DividerIdle)
	var line string
	if vertical {
		line = strings.Repeat(glyph, width)
	} else {
		line = strings.TrimSuffix(strings.Repeat(glyph+"\n", height), "\n")
	}
	return theme.CreateDividerStyle(state).Render(line)
}

func (m *PaneModel) renderHelpDialog() string {
	title := theme.CreatePromptStyle().Render("panes-cli help")
	content := lipgloss.JoinVertical(lipgloss.Left, title, m.help.FullHelpView(m.keyMap.FullHelp()))

	width := uiconfig.HelpDialogWidth
	if m.windowWidth > 0 && m.windowWidth-uiconfig.DialogMarginSize < width {
		width = m.windowWidth - uiconfig.DialogMarginSize
	}
	return theme.CreateHelpDialogStyle(width).Render(content)
}
