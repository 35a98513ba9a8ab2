package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/karrick/rpnbrain"
	"github.com/mattn/go-runewidth"
)

type keyMap struct {
	Push      key.Binding
	Backspace key.Binding
	Clear     key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Push:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "push")),
		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete")),
		Clear:     key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

func (k keyMap) bindings() []key.Binding {
	return []key.Binding{k.Push, k.Backspace, k.Clear, k.Quit}
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	stackStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	valueStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	absentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// calcModel is a Bubble Tea model that edits one word at a time and pushes it onto a Brain.
type calcModel struct {
	brain *rpnbrain.Brain
	keys  keyMap
	input []rune
	value float64
	ok    bool
	width int
}

func newCalcModel(b *rpnbrain.Brain) *calcModel {
	value, ok := b.Evaluate()
	return &calcModel{brain: b, keys: defaultKeyMap(), value: value, ok: ok, width: 40}
}

func (m *calcModel) Init() tea.Cmd { return nil }

func (m *calcModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Push):
			m.push()
		case key.Matches(msg, m.keys.Backspace):
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
		case key.Matches(msg, m.keys.Clear):
			m.brain.Clear()
			m.input = m.input[:0]
			m.value, m.ok = m.brain.Evaluate()
		case msg.Type == tea.KeyRunes:
			m.input = append(m.input, msg.Runes...)
		}
	}
	return m, nil
}

// push applies the pending word, or re-evaluates when there is none.
func (m *calcModel) push() {
	m.value, m.ok = feed(m.brain, string(m.input))
	m.input = m.input[:0]
}

func (m *calcModel) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("rpnbrain"))
	sb.WriteString("\n\n")

	lines := stackLines(m.brain.Descriptions())
	for _, line := range lines {
		sb.WriteString(stackStyle.Render(runewidth.Truncate(line, m.width, "…")))
		sb.WriteString("\n")
	}
	if len(lines) > 0 {
		sb.WriteString("\n")
	}

	sb.WriteString("= ")
	if m.ok {
		sb.WriteString(valueStyle.Render(formatResult(m.value, m.ok)))
	} else {
		sb.WriteString(absentStyle.Render(absent))
	}
	sb.WriteString("\n> ")
	sb.WriteString(string(m.input))
	sb.WriteString("\n\n")

	help := make([]string, 0, 4)
	for _, b := range m.keys.bindings() {
		h := b.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	sb.WriteString(helpStyle.Render(strings.Join(help, " • ")))
	sb.WriteString("\n")
	return sb.String()
}
