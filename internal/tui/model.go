package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/firefly-engineering/nextfit/internal/allocator"
	"github.com/firefly-engineering/nextfit/internal/display"
	"github.com/firefly-engineering/nextfit/internal/session"
)

// focusArea identifies which widget receives key input
type focusArea int

const (
	focusName focusArea = iota
	focusSize
	focusList
	focusCount
)

// resultMsg carries a session reply back into Update
type resultMsg struct {
	cmd    session.Command
	result session.Result
}

// blockItem implements list.Item for block display
type blockItem struct {
	summary allocator.BlockSummary
	line    string
}

func (i blockItem) Title() string {
	return i.line
}

func (i blockItem) Description() string {
	if i.summary.Status == allocator.StatusFree {
		return "free"
	}
	return fmt.Sprintf("%d process(es), %d/%d KB used",
		len(i.summary.Occupants), i.summary.Capacity-i.summary.Remaining, i.summary.Capacity)
}

func (i blockItem) FilterValue() string {
	return i.line
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)
)

// Model is the bubbletea model for the allocation form
type Model struct {
	session  *session.Session
	renderer display.Renderer

	nameInput textinput.Model
	sizeInput textinput.Model
	blocks    list.Model
	focus     focusArea

	status    string
	statusErr bool

	detailTitle string
	detail      string
	showDetail  bool

	quitting bool
	width    int
	height   int
}

// NewModel creates the form over a session
func NewModel(s *session.Session, r display.Renderer) Model {
	ni := textinput.New()
	ni.Placeholder = "process name"
	ni.CharLimit = 64
	ni.Width = 40
	ni.Focus()

	si := textinput.New()
	si.Placeholder = "size in KB"
	si.CharLimit = 10
	si.Width = 12

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedStyle
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	l := list.New(nil, delegate, 80, 22)
	l.Title = "Memory Blocks"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.KeyMap.Quit.SetEnabled(false)
	l.Styles.Title = titleStyle

	m := Model{
		session:   s,
		renderer:  r,
		nameInput: ni,
		sizeInput: si,
		blocks:    l,
		focus:     focusName,
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// execute sends a command to the session off the update loop
func execute(s *session.Session, c session.Command) tea.Cmd {
	return func() tea.Msg {
		return resultMsg{cmd: c, result: s.Execute(c)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.blocks.SetSize(msg.Width, max(msg.Height-10, 8))
		return m, nil

	case resultMsg:
		m.handleResult(msg)
		return m, nil

	case tea.KeyMsg:
		if m.showDetail {
			switch msg.String() {
			case "ctrl+c":
				m.quitting = true
				return m, tea.Quit
			case "esc", "enter", "q":
				m.showDetail = false
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "tab":
			return m, m.setFocus((m.focus + 1) % focusCount)

		case "shift+tab":
			return m, m.setFocus((m.focus + focusCount - 1) % focusCount)

		case "ctrl+r":
			return m, execute(m.session, session.ResetCmd{})

		case "enter":
			if m.focus == focusList {
				if item, ok := m.blocks.SelectedItem().(blockItem); ok {
					return m, execute(m.session, session.InspectBlockCmd{Ordinal: item.summary.Ordinal})
				}
				return m, nil
			}
			c, err := session.ParseAllocate(m.nameInput.Value(), m.sizeInput.Value())
			if err != nil {
				m.setStatus("Input Error: "+err.Error(), true)
				return m, nil
			}
			return m, execute(m.session, c)
		}
	}

	return m.updateFocused(msg)
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusName:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case focusSize:
		m.sizeInput, cmd = m.sizeInput.Update(msg)
	case focusList:
		m.blocks, cmd = m.blocks.Update(msg)
	}
	return m, cmd
}

func (m *Model) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	m.nameInput.Blur()
	m.sizeInput.Blur()
	switch f {
	case focusName:
		return m.nameInput.Focus()
	case focusSize:
		return m.sizeInput.Focus()
	}
	return nil
}

func (m *Model) handleResult(msg resultMsg) {
	res := msg.result
	if res.Err != nil {
		m.setStatus(res.Err.Error(), true)
		return
	}

	switch msg.cmd.(type) {
	case session.AllocateCmd:
		m.setStatus(display.Result(*res.Allocation), !res.Allocation.OK)
		if res.Allocation.OK {
			m.nameInput.Reset()
			m.sizeInput.Reset()
		}
	case session.ResetCmd:
		m.nameInput.Reset()
		m.sizeInput.Reset()
		m.setStatus(display.ResetMessage, false)
	case session.InspectBlockCmd:
		m.detailTitle = display.OccupantTitle(res.Ordinal)
		m.detail = display.OccupantList(res.Occupants)
		if m.detail == "" {
			m.detail = "(no processes)"
		}
		m.showDetail = true
		return
	}
	m.refresh()
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

// refresh rebuilds the block list from the session
func (m *Model) refresh() {
	summaries := m.session.Inspect()
	items := make([]list.Item, len(summaries))
	for i, s := range summaries {
		items[i] = blockItem{summary: s, line: m.renderer.Line(s)}
	}
	m.blocks.SetItems(items)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Next Fit Memory Allocation"))
	b.WriteString("\n")

	if m.showDetail {
		b.WriteString(detailStyle.Render(labelStyle.Render(m.detailTitle) + "\n\n" + m.detail))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("[enter/esc] Close"))
		return b.String()
	}

	b.WriteString(labelStyle.Render("Process Name: "))
	b.WriteString(m.nameInput.View())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Process Size (KB): "))
	b.WriteString(m.sizeInput.View())
	b.WriteString("\n\n")

	if m.status != "" {
		style := infoStyle
		if m.statusErr {
			style = errStyle
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n\n")
	}

	b.WriteString(m.blocks.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("[enter] Allocate / show processes  [tab] Next field  [ctrl+r] Reset  [esc] Quit"))

	return b.String()
}

// Status returns the last status line and whether it reports a problem
func (m Model) Status() (string, bool) {
	return m.status, m.statusErr
}

// Run runs the interactive allocation form
func Run(s *session.Session, r display.Renderer) error {
	p := tea.NewProgram(NewModel(s, r), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
