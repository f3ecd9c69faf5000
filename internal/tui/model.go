package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"beandex/internal/engine"
	"beandex/internal/storage"
	"beandex/internal/ui"
)

type boardModel struct {
	store *engine.Store

	width  int
	height int

	level     engine.LevelInfo
	streak    int
	valueLow  float64
	valueHigh float64
	items     []storage.Item

	selected int
	lastLog  string
	loading  bool
	err      error
}

type loadedMsg struct {
	level     engine.LevelInfo
	streak    int
	valueLow  float64
	valueHigh float64
	items     []storage.Item
}

type removedMsg struct {
	id string
	ok bool
}

func newBoardModel(store *engine.Store) boardModel {
	return boardModel{
		store:   store,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		low, high := m.store.TotalValue()
		return loadedMsg{
			level:     m.store.Level(),
			streak:    m.store.Streak(),
			valueLow:  low,
			valueHigh: high,
			items:     m.store.Collection(),
		}
	}
}

func (m boardModel) removeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return removedMsg{id: id, ok: m.store.RemoveItem(id)}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.level = msg.level
		m.streak = msg.streak
		m.valueLow = msg.valueLow
		m.valueHigh = msg.valueHigh
		m.items = msg.items
		if m.selected >= len(m.items) {
			m.selected = len(m.items) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case removedMsg:
		if !msg.ok {
			m.lastLog = "Remove failed: item not found."
			return m, nil
		}
		m.lastLog = "Removed item."
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.items)-1 {
				m.selected++
			}
			return m, nil
		case "x", "delete":
			if m.selected >= 0 && m.selected < len(m.items) {
				return m, m.removeCmd(m.items[m.selected].ID)
			}
			return m, nil
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.loading {
		return ui.Muted.Render("Loading collection…")
	}
	if m.err != nil {
		return ui.Bad.Render(ui.IconError + " " + m.err.Error())
	}

	var b strings.Builder

	header := fmt.Sprintf("%s %s  Lv %d %s  %s %d day streak  %s %s",
		ui.IconPlush, ui.PanelTitle.Render("Beandex"),
		m.level.Level, ui.Muted.Render(m.level.Title),
		ui.IconFire, m.streak,
		ui.IconMoney, ui.ValueRange(m.valueLow, m.valueHigh),
	)
	b.WriteString(ui.Panel.Render(header))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(ui.Muted.Render("No plush yet. Add one with `bd add`."))
		b.WriteString("\n")
	}
	for i, it := range m.items {
		line := fmt.Sprintf("%s %s %s %s %s",
			ui.TierText(it.Tier),
			it.Name,
			ui.Muted.Render("("+it.AnimalType+")"),
			ui.ValueRange(it.EffectiveLow(), it.EffectiveHigh()),
			ui.Dim.Render(it.Timestamp.Format("2006-01-02")),
		)
		if i == m.selected {
			line = ui.SelectedRow.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(ui.Dim.Render("↑/↓ select · x remove · r refresh · q quit"))
	b.WriteString("\n")
	b.WriteString(ui.Muted.Render(m.lastLog))
	b.WriteString("\n")

	return b.String()
}
