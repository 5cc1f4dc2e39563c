package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/trackgen/internal/app"
	"github.com/vovakirdan/trackgen/internal/config"
	"github.com/vovakirdan/trackgen/internal/core"
	"github.com/vovakirdan/trackgen/internal/level"
	"github.com/vovakirdan/trackgen/internal/level/formats"
	"github.com/vovakirdan/trackgen/internal/registry"
	"github.com/vovakirdan/trackgen/internal/rng"
	"github.com/vovakirdan/trackgen/internal/storage"
)

// PreviewOptions configures a preview session.
type PreviewOptions struct {
	// Template is the initial template ID. Ignored when File is set.
	Template string
	// File is an explicit track config, e.g. one loaded with --config.
	// Switching templates replaces it.
	File   *config.TrackFile
	Preset config.Preset
	Seed   rng.Seed

	// Store records saved levels. Optional.
	Store *storage.Store
	// SaveDir is where levels are written. Empty disables saving.
	SaveDir string

	Width, Height int
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model of the level preview.
type Model struct {
	opts     PreviewOptions
	template string
	file     config.TrackFile
	out      *app.Output
	err      error
	rejected bool // out failed the topology check

	status   string
	statusID int

	screen *core.Screen
	keys   PreviewKeyMap
	help   help.Model
	width  int
	height int

	quitting bool
	newSeed  func() rng.Seed
}

// NewModel creates a preview and generates its first level.
func NewModel(opts PreviewOptions) Model {
	if opts.Width <= 0 || opts.Height <= 0 {
		def := core.DefaultConfig()
		opts.Width, opts.Height = def.ScreenW, def.ScreenH
	}

	m := Model{
		opts:    opts,
		screen:  core.NewScreen(opts.Width, opts.Height),
		keys:    DefaultPreviewKeyMap(),
		help:    help.New(),
		width:   opts.Width,
		height:  opts.Height,
		newSeed: rng.NewSeed,
	}
	m.help.Width = opts.Width

	if opts.File != nil {
		m.file = *opts.File
		m.generate(opts.Seed)
		return m
	}

	id := opts.Template
	if id == "" {
		id = registry.Next("")
	}
	m.useTemplate(id, opts.Seed)
	return m
}

// useTemplate switches to template id and regenerates with seed.
func (m *Model) useTemplate(id string, seed rng.Seed) {
	file, err := app.TemplateFile(id, m.opts.Preset)
	if err != nil {
		m.err = err
		return
	}
	m.template = id
	m.file = file
	m.generate(seed)
}

func (m *Model) generate(seed rng.Seed) {
	m.out, m.err = app.Build(app.Request{File: m.file, Template: m.template, Seed: seed})
	m.rejected = m.out != nil && m.err != nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Regenerate):
		m.generate(m.newSeed())

	case key.Matches(msg, m.keys.NextTemplate):
		m.useTemplate(registry.Next(m.template), m.seed())

	case key.Matches(msg, m.keys.PrevTemplate):
		m.useTemplate(registry.Prev(m.template), m.seed())

	case key.Matches(msg, m.keys.Save):
		return m.save()
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	return m, nil
}

// save writes the current level to SaveDir and records it in the store.
func (m Model) save() (tea.Model, tea.Cmd) {
	switch {
	case m.opts.SaveDir == "":
		return m.setStatus("saving is disabled in this session")
	case m.out == nil:
		return m.setStatus("nothing to save")
	case m.rejected:
		return m.setStatus("level failed topology check, not saved")
	}

	path := filepath.Join(m.opts.SaveDir, m.out.Level.Name+".yaml")
	if err := formats.Save(path, m.out.Level); err != nil {
		m.err = err
		return m, nil
	}

	if m.opts.Store != nil {
		//nolint:errcheck // Best-effort history, the file is already written
		m.opts.Store.Record(m.out.Generation(path))
	}
	return m.setStatus("saved " + path)
}

func (m Model) setStatus(s string) (tea.Model, tea.Cmd) {
	m.statusID++
	m.status = s
	return m, clearStatusCmd(m.statusID)
}

// seed returns the seed of the level on screen.
func (m Model) seed() rng.Seed {
	if m.out != nil {
		return m.out.Seed
	}
	return m.opts.Seed
}

// Level returns the level on screen, nil if generation failed validation
// of the config.
func (m Model) Level() *level.Level {
	if m.out == nil {
		return nil
	}
	return m.out.Level
}

// Template returns the active template ID, empty for a config file.
func (m Model) Template() string { return m.template }

// Status returns the transient status line.
func (m Model) Status() string { return m.status }

// Err returns the last generation or save error.
func (m Model) Err() error { return m.err }

// View renders the preview.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title()))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(m.info()))
	b.WriteString("\n")

	helpView := helpStyle.Render(m.help.View(m.keys))
	areaH := max(m.height-3-lipgloss.Height(helpView), 3)

	m.screen.Resize(m.width, areaH)
	m.screen.Clear()
	if lvl := m.Level(); lvl != nil {
		DrawLevel(m.screen, lvl)
	} else {
		m.screen.DrawBox(core.NewRect(0, 0, m.width, areaH), core.ColorGray)
		m.screen.DrawTextColor(2, areaH/2, "no level: press tab to pick a template", core.ColorGray)
	}
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.err.Error()))
	case m.status != "":
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(helpView)

	return b.String()
}

func (m Model) title() string {
	name := "custom config"
	if m.template != "" {
		name = m.template
		for _, info := range registry.List() {
			if info.ID == m.template {
				name = fmt.Sprintf("%s (%s)", info.Title, info.ID)
				break
			}
		}
	}
	return "TRACKGEN  " + name
}

func (m Model) info() string {
	if m.out == nil {
		return ""
	}
	st := m.out.Result.Stats
	parts := []string{
		st.Strategy,
		fmt.Sprintf("%gx%g", m.out.Track.Width, m.out.Track.Height),
		fmt.Sprintf("%d vertices", st.Vertices),
	}
	if st.Spikes > 0 {
		parts = append(parts, fmt.Sprintf("%d spikes", st.Spikes))
	}
	if m.opts.Preset != "" {
		parts = append(parts, string(m.opts.Preset))
	}
	parts = append(parts, "seed "+m.out.Seed.String())
	return strings.Join(parts, " | ")
}

// Run starts the preview in the alternate screen.
func Run(opts PreviewOptions) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
