package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/wrapper"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	offStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const (
	inputKind = iota
	inputValue
)

type interactiveModel struct {
	err      error
	lines    []string
	inputs   []textinput.Model
	kind     wrapper.Kind
	focusIdx int
	raw      bool
	done     bool
}

func newInteractiveModel() *interactiveModel {
	kind := textinput.New()
	kind.Prompt = "kind:  "
	kind.Placeholder = "INT, I or s32"
	kind.Width = 20
	kind.Focus()

	value := textinput.New()
	value.Prompt = "value: "
	value.Placeholder = "257, 1.5, true, 'c'"
	value.Width = 30

	return &interactiveModel{
		inputs: []textinput.Model{kind, value},
		kind:   wrapper.KindInt,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			m.done = true
			return m, tea.Quit

		case "tab", "shift+tab":
			m.inputs[m.focusIdx].Blur()
			m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
			return m, m.inputs[m.focusIdx].Focus()

		case "ctrl+r":
			m.raw = !m.raw
			m.evaluate()
			return m, nil

		case "enter":
			m.evaluate()
			return m, nil
		}
	}

	var cmds []tea.Cmd
	for i := range m.inputs {
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// evaluate wraps the current value into the current kind.
func (m *interactiveModel) evaluate() {
	m.err = nil
	m.lines = nil

	if s := strings.TrimSpace(m.inputs[inputKind].Value()); s != "" {
		k, err := parseKind(s)
		if err != nil {
			m.err = err
			return
		}
		m.kind = k
	}

	s := strings.TrimSpace(m.inputs[inputValue].Value())
	if s == "" {
		return
	}

	var value any
	if m.raw {
		bits, err := parseBits(s)
		if err != nil {
			m.err = err
			return
		}
		value = m.kind.WrapRaw(bits)
	} else {
		lit, err := parseLiteral(s)
		if err != nil {
			m.err = err
			return
		}
		if value, err = m.kind.Wrap(lit); err != nil {
			m.err = err
			return
		}
	}
	m.lines = describe(m.kind, value)
}

func (m *interactiveModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Kinds"))
	mode := "wrap"
	if m.raw {
		mode = "raw bits"
	}
	b.WriteString(" " + mode + "\n\n")

	for _, input := range m.inputs {
		b.WriteString(input.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}
	for _, line := range m.lines {
		b.WriteString(resultStyle.Render(line))
		b.WriteString("\n")
	}
	if len(m.lines) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(kindStyle.Render(m.kind.String()) + " converts from: ")
	for _, src := range wrapper.Kinds() {
		style := offStyle
		if m.kind.IsConvertibleFrom(src) {
			style = kindStyle
		}
		b.WriteString(style.Render(string(rune(src.Tag()))) + " ")
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("tab switch field • enter evaluate • ctrl+r toggle raw • esc quit"))

	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
