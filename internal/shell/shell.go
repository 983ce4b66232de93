// Package shell implements the line-oriented nextfit REPL.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	shellquote "github.com/kballard/go-shellquote"

	"github.com/firefly-engineering/nextfit/internal/display"
	"github.com/firefly-engineering/nextfit/internal/logging"
	"github.com/firefly-engineering/nextfit/internal/session"
)

const Prompt = "nextfit> "

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

const helpText = `Available Commands:
  allocate <name> <size>  Allocate <size> KB to process <name> (quote names with spaces)
  show                    Show every block
  block <n>               List every process in block <n>
  reset                   Reset memory to its initial state
  help                    Show this help
  exit                    Terminate this session`

// Shell reads commands from a line stream and sends them to a session
type Shell struct {
	scanner  *bufio.Scanner
	out      io.Writer
	session  *session.Session
	renderer display.Renderer
}

// New creates a shell reading from in and writing to out
func New(in io.Reader, out io.Writer, s *session.Session, r display.Renderer) *Shell {
	return &Shell{
		scanner:  bufio.NewScanner(in),
		out:      out,
		session:  s,
		renderer: r,
	}
}

// Run processes lines until exit or end of input
func (sh *Shell) Run() error {
	fmt.Fprintln(sh.out, bannerStyle.Render("Next Fit Memory Allocation"))
	sh.printHelp()
	sh.printBlocks()

	for {
		fmt.Fprint(sh.out, Prompt)
		if !sh.scanner.Scan() {
			fmt.Fprintln(sh.out)
			return sh.scanner.Err()
		}
		if !sh.Process(sh.scanner.Text()) {
			return nil
		}
	}
}

// Process runs a single input line. It returns false when the shell
// should stop.
func (sh *Shell) Process(line string) bool {
	fields, err := shellquote.Split(line)
	if err != nil {
		sh.printError("Parse error: %v", err)
		return true
	}
	if len(fields) == 0 {
		return true
	}

	command := strings.ToLower(fields[0])
	logging.Debug("shell command", "command", command, "args", len(fields)-1)

	switch command {
	default:
		sh.printError("Unknown command %q (try \"help\")", command)
	case "allocate", "alloc", "a":
		sh.processAllocate(fields[1:])
	case "show", "list", "ls":
		sh.printBlocks()
	case "block", "b":
		sh.processBlock(fields[1:])
	case "reset":
		sh.session.Execute(session.ResetCmd{})
		fmt.Fprintln(sh.out, display.ResetMessage)
		sh.printBlocks()
	case "help", "?":
		sh.printHelp()
	case "exit", "quit", "q":
		return false
	}
	return true
}

func (sh *Shell) processAllocate(args []string) {
	if len(args) != 2 {
		sh.printError("Usage: allocate <name> <size>")
		return
	}

	cmd, err := session.ParseAllocate(args[0], args[1])
	if err != nil {
		sh.printError("Input Error: %v", err)
		return
	}

	res := sh.session.Execute(cmd)
	if res.Err != nil {
		sh.printError("Input Error: %v", res.Err)
		return
	}

	fmt.Fprintln(sh.out, display.Result(*res.Allocation))
	sh.printBlocks()
}

func (sh *Shell) processBlock(args []string) {
	if len(args) != 1 {
		sh.printError("Usage: block <n>")
		return
	}

	ordinal, err := strconv.Atoi(args[0])
	if err != nil {
		sh.printError("Invalid block number %q", args[0])
		return
	}

	res := sh.session.Execute(session.InspectBlockCmd{Ordinal: ordinal})
	if res.Err != nil {
		sh.printError("%v", res.Err)
		return
	}

	fmt.Fprintln(sh.out, display.OccupantTitle(ordinal))
	if len(res.Occupants) == 0 {
		fmt.Fprintln(sh.out, "(no processes)")
		return
	}
	fmt.Fprintln(sh.out, display.OccupantList(res.Occupants))
}

func (sh *Shell) printBlocks() {
	for _, line := range sh.renderer.Lines(sh.session.Inspect()) {
		fmt.Fprintln(sh.out, line)
	}
}

func (sh *Shell) printHelp() {
	fmt.Fprintln(sh.out, helpText)
}

func (sh *Shell) printError(format string, args ...any) {
	fmt.Fprintln(sh.out, errorStyle.Render(fmt.Sprintf(format, args...)))
}
