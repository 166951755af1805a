package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/dmi-decode/smbios"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	handleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	unknownStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type browseState int

const (
	stateBrowse browseState = iota
	stateFilter
	stateDetail
)

type browseModel struct {
	table    *smbios.Table
	filter   textinput.Model
	visible  []int // record positions surviving the filter
	selected int
	offset   int
	height   int
	state    browseState
}

func newBrowseModel(table *smbios.Table) *browseModel {
	filter := textinput.New()
	filter.Placeholder = "type name or handle"
	filter.CharLimit = 40

	m := &browseModel{
		table:  table,
		filter: filter,
		height: 24,
	}
	m.applyFilter("")
	return m
}

func runInteractive(table *smbios.Table) error {
	_, err := tea.NewProgram(newBrowseModel(table), tea.WithAltScreen()).Run()
	return err
}

func (m *browseModel) applyFilter(query string) {
	query = strings.ToLower(strings.TrimSpace(query))
	m.visible = m.visible[:0]
	for i, rec := range m.table.Records {
		if query == "" ||
			strings.Contains(strings.ToLower(rec.Kind.String()), query) ||
			strings.Contains(strings.ToLower(rec.Structure.Header.Handle.String()), query) {
			m.visible = append(m.visible, i)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = 0
	}
	m.offset = 0
}

func (m *browseModel) Init() tea.Cmd {
	return nil
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height

	case tea.KeyMsg:
		if m.state == stateFilter {
			switch msg.String() {
			case "enter", "esc":
				m.state = stateBrowse
				m.filter.Blur()
			case "ctrl+c":
				return m, tea.Quit
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				m.applyFilter(m.filter.Value())
				return m, cmd
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			if m.state == stateDetail {
				m.state = stateBrowse
				return m, nil
			}
			return m, tea.Quit

		case "up", "k":
			if m.state == stateBrowse && m.selected > 0 {
				m.selected--
				if m.selected < m.offset {
					m.offset = m.selected
				}
			}

		case "down", "j":
			if m.state == stateBrowse && m.selected < len(m.visible)-1 {
				m.selected++
				if m.selected >= m.offset+m.listHeight() {
					m.offset = m.selected - m.listHeight() + 1
				}
			}

		case "enter":
			if m.state == stateBrowse && len(m.visible) > 0 {
				m.state = stateDetail
			}

		case "esc":
			if m.state == stateDetail {
				m.state = stateBrowse
			} else if m.filter.Value() != "" {
				m.filter.SetValue("")
				m.applyFilter("")
			}

		case "/":
			if m.state == stateBrowse {
				m.state = stateFilter
				m.filter.Focus()
			}
		}
	}
	return m, nil
}

func (m *browseModel) listHeight() int {
	h := m.height - 4 // title, filter line, help
	if h < 1 {
		h = 1
	}
	return h
}

func (m *browseModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("SMBIOS table — %d structures", m.table.Len())))
	b.WriteString("\n")

	if m.state == stateDetail {
		rec, ok := m.table.At(m.visible[m.selected])
		if ok {
			b.WriteString("\n")
			b.WriteString(rec.String())
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("esc/q: back • ctrl+c: quit"))
		return b.String()
	}

	if m.state == stateFilter || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n")
	}

	end := m.offset + m.listHeight()
	if end > len(m.visible) {
		end = len(m.visible)
	}
	for row := m.offset; row < end; row++ {
		rec, _ := m.table.At(m.visible[row])
		line := fmt.Sprintf("%s  %s",
			handleStyle.Render(rec.Structure.Header.Handle.String()),
			renderKind(rec))
		if row == m.selected {
			line = selectedStyle.Render(fmt.Sprintf("%s  %s", rec.Structure.Header.Handle, rec.Kind))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(m.visible) == 0 {
		b.WriteString(helpStyle.Render("no structures match the filter"))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("↑/↓: move • enter: detail • /: filter • q: quit"))
	return b.String()
}

func renderKind(rec smbios.Record) string {
	if !rec.Known() {
		return unknownStyle.Render(rec.Structure.Header.Type.String())
	}
	return kindStyle.Render(rec.Kind.String())
}
