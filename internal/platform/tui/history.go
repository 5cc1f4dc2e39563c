package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/trackgen/internal/storage"
)

// filterAll shows generations of every template.
const filterAll = "all"

// HistoryModel is the Bubble Tea model for the generation history table.
type HistoryModel struct {
	all      []storage.Generation
	filters  []string
	filter   int
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a history view over the given generations.
func NewHistoryModel(gens []storage.Generation, width, height int) HistoryModel {
	m := HistoryModel{
		all:     gens,
		filters: historyFilters(gens),
		help:    help.New(),
		keys:    DefaultHistoryKeyMap(),
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// historyFilters returns "all" followed by every template present, sorted.
func historyFilters(gens []storage.Generation) []string {
	seen := make(map[string]bool)
	var names []string
	for _, g := range gens {
		name := templateLabel(g.Template)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return append([]string{filterAll}, names...)
}

func templateLabel(t string) string {
	if t == "" {
		return "config"
	}
	return t
}

// createTable creates a table sized to the window.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Seed", Width: 10},
		{Title: "Template", Width: 10},
		{Title: "Strategy", Width: 9},
		{Title: "Size", Width: 7},
		{Title: "Verts", Width: 6},
		{Title: "Spikes", Width: 6},
		{Title: "When", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Visible returns the generations matching the active filter.
func (m HistoryModel) Visible() []storage.Generation {
	f := m.filters[m.filter]
	if f == filterAll {
		return m.all
	}
	var out []storage.Generation
	for _, g := range m.all {
		if templateLabel(g.Template) == f {
			out = append(out, g)
		}
	}
	return out
}

// Filter returns the active filter name.
func (m HistoryModel) Filter() string {
	return m.filters[m.filter]
}

func (m *HistoryModel) updateTableRows() {
	gens := m.Visible()
	rows := make([]table.Row, len(gens))
	for i, g := range gens {
		seed := g.Seed
		if len(seed) > 8 {
			seed = seed[:8]
		}
		rows[i] = table.Row{
			seed,
			templateLabel(g.Template),
			g.Strategy,
			fmt.Sprintf("%gx%g", g.Width, g.Height),
			fmt.Sprintf("%d", g.VertexCount),
			fmt.Sprintf("%d", g.SpikeCount),
			g.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history view.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Filter):
			m.filter = (m.filter + 1) % len(m.filters)
			m.updateTableRows()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history view.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("GENERATION HISTORY - %s", m.Filter())))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.all) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2).
			Render("No generations recorded yet.\nRun trackgen generate to create one!")
		b.WriteString(boxStyle.Render(empty))
	} else {
		b.WriteString(boxStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// RunHistory shows the history table until the user quits.
func RunHistory(gens []storage.Generation, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(gens, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
