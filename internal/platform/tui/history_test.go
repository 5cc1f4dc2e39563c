package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/trackgen/internal/storage"
)

func sampleHistory() []storage.Generation {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return []storage.Generation{
		{Seed: "aaaaaaaaaaaa", Template: "spiky", Strategy: "segments", Width: 50, Height: 7, VertexCount: 83, SpikeCount: 39, CreatedAt: now},
		{Seed: "bbbbbbbbbbbb", Template: "", Strategy: "walk", Width: 50, Height: 7, VertexCount: 60, CreatedAt: now},
		{Seed: "cccccccccccc", Template: "canyon", Strategy: "walk", Width: 80, Height: 12, VertexCount: 95, CreatedAt: now},
		{Seed: "dddddddddddd", Template: "spiky", Strategy: "segments", Width: 50, Height: 7, VertexCount: 80, SpikeCount: 38, CreatedAt: now},
	}
}

func TestHistoryFilters(t *testing.T) {
	m := NewHistoryModel(sampleHistory(), 100, 30)

	expected := []string{"all", "canyon", "config", "spiky"}
	if strings.Join(m.filters, ",") != strings.Join(expected, ",") {
		t.Fatalf("filters = %v, expected %v", m.filters, expected)
	}

	counts := map[string]int{"all": 4, "canyon": 1, "config": 1, "spiky": 2}
	for range expected {
		if got := len(m.Visible()); got != counts[m.Filter()] {
			t.Errorf("filter %q shows %d rows, expected %d", m.Filter(), got, counts[m.Filter()])
		}
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = next.(HistoryModel)
	}

	if m.Filter() != "all" {
		t.Errorf("filter should wrap back to all, got %q", m.Filter())
	}
}

func TestHistoryView(t *testing.T) {
	m := NewHistoryModel(sampleHistory(), 100, 30)
	view := m.View()

	if !strings.Contains(view, "GENERATION HISTORY - all") {
		t.Errorf("View() missing title:\n%s", view)
	}
	if !strings.Contains(view, "aaaaaaaa") || strings.Contains(view, "aaaaaaaaa") {
		t.Error("seeds should be shortened to 8 characters")
	}

	empty := NewHistoryModel(nil, 100, 30)
	if !strings.Contains(empty.View(), "No generations recorded yet") {
		t.Error("empty history should show a hint")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil || next.(HistoryModel).View() != "" {
		t.Error("q should quit the history view")
	}
}
