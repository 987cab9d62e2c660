package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/frame-arcade/internal/core"
	"github.com/vovakirdan/frame-arcade/internal/registry"
	"github.com/vovakirdan/frame-arcade/internal/storage"
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuFamilyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	menuFooterStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuItem is one playable variant in the picker.
type MenuItem struct {
	GameID string
	Title  string
	Family string
	Best   int
}

// MenuModel is the Bubble Tea model for the game picker.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper

	quitting   bool
	selected   *MenuItem
	scoreboard bool
}

// NewMenuModel lists the registered games with their stored best scores.
// store may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		item := MenuItem{GameID: g.ID, Title: g.Title, Family: g.Family}
		if store != nil {
			if best, err := store.BestScore(g.ID); err == nil {
				item.Best = best
			}
		}
		items = append(items, item)
	}

	return MenuModel{
		items:     items,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = max(0, m.cursor-1)
	case MenuActionDown:
		m.cursor = min(len(m.items)-1, m.cursor+1)
	case MenuActionSelect:
		if len(m.items) > 0 {
			item := m.items[m.cursor]
			m.selected = &item
			return m, tea.Quit
		}
	case MenuActionScoreboard:
		m.scoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	width := m.config.ScreenW

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("F R A M E   A R C A D E"), width))
	b.WriteString("\n\n")

	family := ""
	for i, item := range m.items {
		if item.Family != family {
			family = item.Family
			b.WriteString("\n")
			b.WriteString(centerText(menuFamilyStyle.Render(strings.ToUpper(family)), width))
			b.WriteString("\n")
		}

		line := fmt.Sprintf(" %-30s %8s ", item.Title, bestLabel(item.Best))
		if i == m.cursor {
			line = menuSelectedStyle.Render(line)
		}
		b.WriteString(centerText(line, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuFooterStyle.Render("up/down move  enter play  tab scores  q quit"), width))
	b.WriteString("\n")
	return b.String()
}

func bestLabel(best int) string {
	if best <= 0 {
		return "-"
	}
	return fmt.Sprintf("best %d", best)
}

// centerText pads text so it sits in the middle of width cells. Width is
// measured without ANSI escapes.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult is what the player picked.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

func (m MenuModel) result() MenuResult {
	res := MenuResult{Config: m.config}
	switch {
	case m.scoreboard:
		res.WantsScoreboard = true
	case m.selected != nil:
		res.GameID = m.selected.GameID
	default:
		res.Quit = true
	}
	return res
}

// RunMenu shows the picker until the player chooses something.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.result(), nil
}
