// Package tui provides the terminal form for nextfit.
//
// This package uses the Bubble Tea framework to render the allocation
// form as two text inputs, a list of blocks and a status line.
//
// # Keys
//
//   - Enter in an input: allocate the entered process
//   - Enter on the block list: show every process in the selected block
//   - Tab / Shift+Tab: move between name, size and block list
//   - Ctrl+R: reset memory, clear the inputs and confirm
//   - Esc / Ctrl+C: quit
//
// # Session boundary
//
// The model never touches the allocator. Every action is sent to the
// session as a command from a tea.Cmd and the reply comes back to Update as
// a message, where it is rendered.
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - UI components
//   - github.com/charmbracelet/lipgloss - Styling
package tui
