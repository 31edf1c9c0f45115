package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	widthStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	input  textinput.Model
	report string
	err    error
	width  int
}

func newInteractiveModel(seed string, width int) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "D834 DD1E 0000"
	ti.Prompt = "units: "
	ti.Width = 60
	ti.SetValue(seed)
	ti.Focus()

	if width != 32 {
		width = 16
	}

	m := &interactiveModel{input: ti, width: width}
	m.decode()
	return m
}

func runInteractive(seed string, width int) error {
	p := tea.NewProgram(newInteractiveModel(seed, width))
	_, err := p.Run()
	return err
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			if m.width == 16 {
				m.width = 32
			} else {
				m.width = 16
			}
			m.decode()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.decode()
	return m, cmd
}

// decode recomputes the report for the current input. An empty input
// clears the report instead of showing the appended-terminator note.
func (m *interactiveModel) decode() {
	m.report = ""
	m.err = nil

	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return
	}

	var b strings.Builder
	st := newStyles(true)

	if m.width == 16 {
		units, err := parseHex[uint16](text)
		if err != nil {
			m.err = err
			return
		}
		report(&b, st, units)
	} else {
		units, err := parseHex[uint32](text)
		if err != nil {
			m.err = err
			return
		}
		report(&b, st, units)
	}
	m.report = b.String()
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Wide String Inspector"))
	b.WriteString(" ")
	b.WriteString(widthStyle.Render(fmt.Sprintf("UTF-%d", m.width)))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	} else if m.report != "" {
		b.WriteString(m.report)
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab toggle width • esc quit"))
	return b.String()
}
