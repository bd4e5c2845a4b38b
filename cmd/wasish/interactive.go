package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/subcommands"
	"golang.org/x/term"

	"github.com/wippyai/wasi-shim/errors"
	"github.com/wippyai/wasi-shim/wasi"
)

// previewLimit caps how much of a file the browser reads.
const previewLimit = 8 * 1024

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	dirStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	fileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type browseCmd struct{ command }

// requireTerminal fails unless f is a terminal the browser can draw on.
func requireTerminal(f *os.File) error {
	if !term.IsTerminal(int(f.Fd())) {
		return errors.Unsupported(errors.PhaseConfig, f.Name()+" is not a terminal")
	}
	return nil
}

func (c *browseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if err := requireTerminal(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "wasish browse: %v\n", err)
		return subcommands.ExitFailure
	}
	return c.run(ctx, f, 0, 1, func(s *session, args []string) error {
		start := "/"
		if len(args) == 1 {
			start = path.Clean("/" + args[0])
		}
		p := tea.NewProgram(newBrowserModel(s, start), tea.WithAltScreen())
		_, err := p.Run()
		return err
	})
}

type browseState int

const (
	stateList browseState = iota
	stateGoto
	statePreview
)

type browserModel struct {
	err      error
	sess     *session
	cwd      string
	preview  string
	entries  []entry
	input    textinput.Model
	selected int
	state    browseState
}

type dirMsg struct {
	err     error
	path    string
	entries []entry
}

type previewMsg struct {
	err  error
	text string
}

func newBrowserModel(s *session, start string) *browserModel {
	ti := textinput.New()
	ti.Prompt = "go to: "
	ti.Width = 50
	return &browserModel{sess: s, cwd: start, input: ti, state: stateList}
}

func (m *browserModel) Init() tea.Cmd {
	return m.load(m.cwd)
}

func (m *browserModel) load(p string) tea.Cmd {
	return func() tea.Msg {
		entries, err := m.sess.readDir(p)
		return dirMsg{path: p, entries: entries, err: err}
	}
}

func (m *browserModel) open(p string) tea.Cmd {
	return func() tea.Msg {
		var buf bytes.Buffer
		if _, err := m.sess.copyFile(&buf, p, previewLimit); err != nil {
			return previewMsg{err: err}
		}
		if !utf8.Valid(buf.Bytes()) {
			return previewMsg{text: fmt.Sprintf("(%d bytes of binary data)", buf.Len())}
		}
		return previewMsg{text: buf.String()}
	}
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateGoto {
			return m.updateGoto(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateList && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateList && m.selected < len(m.entries)-1 {
				m.selected++
			}

		case "enter", "right", "l":
			if m.state != stateList || len(m.entries) == 0 {
				break
			}
			e := m.entries[m.selected]
			target := joinGuest(m.cwd, e.name)
			if e.typ == wasi.FiletypeDirectory {
				return m, m.load(target)
			}
			m.state = statePreview
			m.preview = ""
			return m, m.open(target)

		case "backspace", "left", "h":
			switch m.state {
			case statePreview:
				m.state = stateList
			case stateList:
				if m.cwd != "/" {
					return m, m.load(path.Dir(m.cwd))
				}
			}

		case "esc":
			m.state = stateList
			m.err = nil

		case "/", "g":
			if m.state == stateList {
				m.state = stateGoto
				m.input.SetValue(m.cwd)
				m.input.Focus()
				return m, textinput.Blink
			}
		}

	case dirMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.cwd = msg.path
		m.entries = msg.entries
		m.selected = 0

	case previewMsg:
		m.err = msg.err
		m.preview = msg.text
	}

	return m, nil
}

func (m *browserModel) updateGoto(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.state = stateList
		m.input.Blur()
		return m, m.load(path.Clean("/" + m.input.Value()))
	case "esc":
		m.state = stateList
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *browserModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("WASI Sandbox"))
	b.WriteString(" ")
	b.WriteString(m.cwd)
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	switch m.state {
	case stateList, stateGoto:
		if len(m.entries) == 0 {
			b.WriteString(helpStyle.Render("(empty)"))
			b.WriteString("\n")
		}
		for i, e := range m.entries {
			line := m.formatEntry(e)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + e.name))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		if m.state == stateGoto {
			b.WriteString(m.input.View())
			b.WriteString("\n")
			b.WriteString(helpStyle.Render("enter go • esc cancel"))
		} else {
			b.WriteString(helpStyle.Render("↑/↓ select • enter open • ← up • / go to • q quit"))
		}

	case statePreview:
		if len(m.entries) > 0 {
			b.WriteString(fileStyle.Render(m.entries[m.selected].name))
			b.WriteString("\n\n")
		}
		b.WriteString(m.preview)
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("← back • q quit"))
	}

	return b.String()
}

func (m *browserModel) formatEntry(e entry) string {
	if e.typ == wasi.FiletypeDirectory {
		return dirStyle.Render(e.name + "/")
	}
	return fileStyle.Render(e.name)
}
