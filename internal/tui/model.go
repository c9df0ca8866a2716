// Package tui provides the Bubble Tea interactive lookup.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/fwew/internal/dictionary"
	"github.com/verte-zerg/fwew/internal/model"
	"github.com/verte-zerg/fwew/internal/render"
	"github.com/verte-zerg/fwew/internal/search"
	"github.com/verte-zerg/fwew/internal/store"
)

var (
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	affixStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	traceStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	missStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	dividerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A"))
)

// Model implements the Bubble Tea lookup UI.
type Model struct {
	config   model.Config
	searcher *search.Searcher
	store    *store.Store

	input   textinput.Model
	results viewport.Model

	width  int
	height int

	lastQuery   string
	lastResults []dictionary.Word
	lookups     int
	hits        int
}

// NewModel constructs a lookup TUI model. st may be nil to skip history.
func NewModel(cfg model.Config, searcher *search.Searcher, st *store.Store) *Model {
	input := textinput.New()
	input.Prompt = promptFor(cfg)
	input.PromptStyle = promptStyle
	input.Placeholder = "kaltxì"
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorBlink)
	input.Focus()

	return &Model{
		config:   cfg,
		searcher: searcher,
		store:    st,
		input:    input,
		results:  viewport.New(0, 0),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab:
			m.config.Direction = m.config.Direction.Toggle()
			m.input.Prompt = promptFor(m.config)
			m.updateLayout()
			return m, nil
		case tea.KeyEnter:
			m.lookup(m.input.Value())
			return m, nil
		case tea.KeyPgUp, tea.KeyPgDown, tea.KeyUp, tea.KeyDown:
			var cmd tea.Cmd
			m.results, cmd = m.results.Update(msg)
			return m, cmd
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return m.input.View()
	}
	divider := dividerStyle.Render(strings.Repeat("─", m.width))
	return strings.Join([]string{
		m.input.View(),
		divider,
		m.results.View(),
		padLine(m.renderFooter(), m.width),
	}, "\n")
}

func (m *Model) updateLayout() {
	promptWidth := lipgloss.Width(m.input.Prompt)
	m.input.Width = max(10, m.width-promptWidth-2)
	m.results.Width = m.width
	m.results.Height = max(1, m.height-3)
	m.refreshResults()
}

func (m *Model) lookup(raw string) {
	query := strings.TrimSpace(raw)
	if query == "" {
		return
	}
	var words []dictionary.Word
	if m.config.Direction == model.ToNavi {
		words = m.searcher.TranslateToNavi(query, m.config.Lang)
	} else {
		words = m.searcher.TranslateFromNavi(query)
	}
	m.lastQuery = query
	m.lastResults = words
	m.lookups++
	if len(words) > 0 {
		m.hits++
	}
	m.record(query, len(words))
	m.input.SetValue("")
	m.refreshResults()
	m.results.GotoTop()
}

func (m *Model) record(query string, results int) {
	if m.store == nil || !m.config.History {
		return
	}
	rec := model.LookupRecord{
		At:        time.Now(),
		Query:     query,
		Direction: m.config.Direction,
		Lang:      m.config.Lang,
		Results:   results,
	}
	if err := m.store.InsertLookups(context.Background(), []model.LookupRecord{rec}); err != nil {
		logErrf("failed to save lookup: %v\n", err)
	}
}

func (m *Model) refreshResults() {
	m.results.SetContent(m.renderResults())
}

func (m *Model) renderResults() string {
	if m.lastQuery == "" {
		return ""
	}
	if len(m.lastResults) == 0 {
		return missStyle.Render(fmt.Sprintf("no results for %q", m.lastQuery))
	}
	opts := render.Options{
		Lang:      m.config.Lang,
		IPA:       m.config.IPA,
		Syllables: m.config.Syllables,
		Width:     m.width,
	}
	var lines []string
	for i, w := range m.lastResults {
		entry := render.Entry(w, i+1, opts)
		affixRows := len(render.AffixRows(w.Data.Affixes))
		headerRows := len(entry) - affixRows
		lines = append(lines, styleLines(entry[:headerRows], headerStyle)...)
		lines = append(lines, styleLines(entry[headerRows:], affixStyle)...)
		if m.config.Explain && !w.Data.Affixes.Empty() {
			for _, step := range render.Trace(search.Explain(w)) {
				lines = append(lines, traceStyle.Render("        "+step))
			}
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderFooter() string {
	segments := []string{
		directionLabel(m.config),
		"tab switch",
		"enter look up",
		"esc quit",
	}
	if m.lookups > 0 {
		segments = append(segments, fmt.Sprintf("Lookups %d · hits %d", m.lookups, m.hits))
	}
	return footerStyle.Render(truncateLine(strings.Join(segments, "  "), m.width))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
