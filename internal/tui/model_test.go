package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/firefly-engineering/nextfit/internal/allocator"
	"github.com/firefly-engineering/nextfit/internal/display"
	"github.com/firefly-engineering/nextfit/internal/session"
)

func newTestModel() (Model, *session.Session) {
	s := session.New(allocator.NewDefault())
	return NewModel(s, display.New(0)), s
}

// press sends a key without running any command it returns
func press(t *testing.T, m Model, key tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(key)
	return next.(Model)
}

// run sends a key that must produce a session command, executes it and
// feeds the reply back into the model.
func run(t *testing.T, m Model, key tea.KeyMsg) Model {
	t.Helper()
	next, cmd := m.Update(key)
	m = next.(Model)
	if cmd == nil {
		t.Fatalf("%s returned no command", key)
	}
	msg, ok := cmd().(resultMsg)
	if !ok {
		t.Fatalf("%s did not produce a session reply", key)
	}
	next, _ = m.Update(msg)
	return next.(Model)
}

func TestNewModel(t *testing.T) {
	m, _ := newTestModel()

	if m.focus != focusName {
		t.Errorf("focus = %v, want focusName", m.focus)
	}
	if got := len(m.blocks.Items()); got != 6 {
		t.Fatalf("items = %d, want 6", got)
	}
	item := m.blocks.Items()[0].(blockItem)
	if item.Title() != "Block 1: 300 KB (Free)" {
		t.Errorf("Title() = %q", item.Title())
	}
	if item.Description() != "free" {
		t.Errorf("Description() = %q", item.Description())
	}
	if m.Init() == nil {
		t.Error("Init() should start the cursor blink")
	}
}

func TestAllocateFromForm(t *testing.T) {
	m, s := newTestModel()
	m.nameInput.SetValue("P1")
	m.sizeInput.SetValue("250")

	m = run(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	status, isErr := m.Status()
	if status != "Allocated 250 KB to P1 in Block 1" || isErr {
		t.Errorf("Status() = %q, %v", status, isErr)
	}
	if m.nameInput.Value() != "" || m.sizeInput.Value() != "" {
		t.Error("inputs should be cleared after a successful allocation")
	}
	if s.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", s.Cursor())
	}

	item := m.blocks.Items()[0].(blockItem)
	if item.Title() != "Block 1: 300 KB (Allocated to P1, Remaining: 50 KB)" {
		t.Errorf("Title() = %q", item.Title())
	}
	if !strings.Contains(item.Description(), "250/300 KB") {
		t.Errorf("Description() = %q", item.Description())
	}
}

func TestAllocateNoFitKeepsInputs(t *testing.T) {
	m, _ := newTestModel()
	m.nameInput.SetValue("huge")
	m.sizeInput.SetValue("999")

	m = run(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	status, isErr := m.Status()
	if status != display.NoFitMessage || !isErr {
		t.Errorf("Status() = %q, %v", status, isErr)
	}
	if m.sizeInput.Value() != "999" {
		t.Error("inputs should be kept after a failed allocation")
	}
}

func TestInvalidInput(t *testing.T) {
	for _, size := range []string{"", "abc", "0", "-3"} {
		t.Run(size, func(t *testing.T) {
			m, s := newTestModel()
			m.nameInput.SetValue("P1")
			m.sizeInput.SetValue(size)

			next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
			m = next.(Model)

			if cmd != nil {
				t.Error("invalid input must not reach the session")
			}
			status, isErr := m.Status()
			if !isErr || !strings.HasPrefix(status, "Input Error") {
				t.Errorf("Status() = %q, %v", status, isErr)
			}
			if s.Cursor() != 0 {
				t.Error("allocator state changed")
			}
		})
	}
}

func TestReset(t *testing.T) {
	m, s := newTestModel()
	s.Allocate("P1", 10)
	m.nameInput.SetValue("pending")

	m = run(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})

	status, _ := m.Status()
	if status != display.ResetMessage {
		t.Errorf("Status() = %q", status)
	}
	if m.nameInput.Value() != "" {
		t.Error("reset should clear inputs")
	}
	if s.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", s.Cursor())
	}
	if item := m.blocks.Items()[0].(blockItem); item.summary.Status != allocator.StatusFree {
		t.Error("list should show block 1 free after reset")
	}
}

func TestFocusCycle(t *testing.T) {
	m, _ := newTestModel()

	want := []focusArea{focusSize, focusList, focusName}
	for _, f := range want {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
		if m.focus != f {
			t.Fatalf("focus = %v, want %v", m.focus, f)
		}
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != focusList {
		t.Errorf("focus = %v, want focusList", m.focus)
	}
}

func TestTypingGoesToFocusedInput(t *testing.T) {
	m, _ := newTestModel()

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("qP")})
	if m.nameInput.Value() != "qP" {
		t.Errorf("name = %q, want %q", m.nameInput.Value(), "qP")
	}
	if m.quitting {
		t.Error("typing q in an input must not quit")
	}
}

func TestShowBlockOccupants(t *testing.T) {
	m, s := newTestModel()
	s.Allocate("P1", 10)
	s.Reset()
	for _, name := range []string{"A", "B", "C", "D", "E", "F"} {
		s.Allocate(name, 10)
	}
	s.Allocate("G", 10)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = run(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !m.showDetail {
		t.Fatal("enter on the list should open the occupant view")
	}
	if m.detailTitle != "Processes in Block 1" {
		t.Errorf("detailTitle = %q", m.detailTitle)
	}
	if m.detail != "A\nG" {
		t.Errorf("detail = %q, want %q", m.detail, "A\nG")
	}
	if !strings.Contains(m.View(), "Processes in Block 1") {
		t.Error("View() should render the occupant view")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.showDetail {
		t.Error("esc should close the occupant view")
	}
	if m.quitting {
		t.Error("esc in the occupant view must not quit")
	}
}

func TestQuit(t *testing.T) {
	for _, key := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m, _ := newTestModel()
		next, cmd := m.Update(key)
		m = next.(Model)

		if !m.quitting {
			t.Errorf("%s should quit", key)
		}
		if cmd == nil {
			t.Errorf("%s should return tea.Quit", key)
		}
		if m.View() != "" {
			t.Error("View() should be empty when quitting")
		}
	}
}

func TestView(t *testing.T) {
	m, _ := newTestModel()
	view := m.View()

	for _, want := range []string{"Next Fit Memory Allocation", "Process Name", "Process Size (KB)", "Block 1: 300 KB (Free)", "[ctrl+r] Reset"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestWindowResize(t *testing.T) {
	m, _ := newTestModel()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	if m.width != 120 || m.height != 40 {
		t.Errorf("size = %dx%d", m.width, m.height)
	}
}
