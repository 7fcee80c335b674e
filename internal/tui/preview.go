// Package tui renders a read-only preview of a materialized mission.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"droneops-mission/internal/mission"
)

const (
	minWidth     = 40
	detailHeight = 9
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	descStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	detailStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the bubbletea model for the mission preview.
type Model struct {
	name   string
	desc   string
	items  []mission.Item
	table  table.Model
	detail bool
	width  int
	height int
}

// New builds a preview model for items. width seeds the layout until the
// first window size message arrives.
func New(name, desc string, items []mission.Item, width int) Model {
	if width < minWidth {
		width = minWidth
	}
	t := table.New(
		table.WithColumns(columns()),
		table.WithRows(itemRows(items)),
		table.WithFocused(true),
		table.WithHeight(len(items)+1),
	)
	m := Model{name: name, desc: desc, items: items, table: t, width: width}
	m.table.SetWidth(width)
	return m
}

func columns() []table.Column {
	return []table.Column{
		{Title: "Seq", Width: 4},
		{Title: "Command", Width: 16},
		{Title: "Frame", Width: 20},
		{Title: "P1", Width: 8},
		{Title: "P2", Width: 8},
		{Title: "P3", Width: 8},
		{Title: "P4", Width: 8},
		{Title: "Lat", Width: 11},
		{Title: "Lon", Width: 11},
		{Title: "Alt", Width: 8},
		{Title: "Auto", Width: 4},
	}
}

func itemRows(items []mission.Item) []table.Row {
	rows := make([]table.Row, len(items))
	for i, it := range items {
		rows[i] = table.Row{
			fmt.Sprintf("%d", it.Seq),
			it.Command.String(),
			it.Frame.String(),
			fmt.Sprintf("%.2f", it.Param1),
			fmt.Sprintf("%.2f", it.Param2),
			fmt.Sprintf("%.2f", it.Param3),
			fmt.Sprintf("%.2f", it.Param4),
			fmt.Sprintf("%.6f", it.X),
			fmt.Sprintf("%.6f", it.Y),
			fmt.Sprintf("%.1f", it.Z),
			fmt.Sprintf("%d", it.Autocontinue),
		}
	}
	return rows
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetWidth(msg.Width)
		m.resizeTable()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.detail = !m.detail
			m.resizeTable()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *Model) resizeTable() {
	if m.height == 0 {
		return
	}
	h := m.height - lipgloss.Height(m.header()) - 2
	if m.detail {
		h -= detailHeight
	}
	if h < 3 {
		h = 3
	}
	if h > len(m.items)+1 {
		h = len(m.items) + 1
	}
	m.table.SetHeight(h)
}

func (m Model) header() string {
	title := titleStyle.Render(truncate.StringWithTail(m.name, uint(m.width), "…"))
	if m.desc == "" {
		return title
	}
	return title + "\n" + descStyle.Render(wordwrap.String(m.desc, m.width))
}

// Selected returns the item under the cursor.
func (m Model) Selected() (mission.Item, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.items) {
		return mission.Item{}, false
	}
	return m.items[i], true
}

// Detail reports whether the parameter pane is open.
func (m Model) Detail() bool { return m.detail }

func (m Model) detailView() string {
	it, ok := m.Selected()
	if !ok {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "#%d %s (target %d/%d)\n", it.Seq, it.Command, it.TargetSystem, it.TargetComponent)
	for _, p := range mission.Describe(it) {
		fmt.Fprintf(&b, "%-12s %g\n", p.Name, p.Value)
	}
	return detailStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	if m.detail {
		b.WriteString("\n")
		b.WriteString(m.detailView())
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ select • enter details • q quit"))
	return b.String()
}
