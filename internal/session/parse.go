package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/firefly-engineering/nextfit/internal/errors"
)

// ParseAllocate validates raw user input for an allocation request.
// The name must be non-empty and the size a positive base-10 integer.
func ParseAllocate(name, sizeText string) (AllocateCmd, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return AllocateCmd{}, errors.InvalidInput("process name cannot be empty")
	}

	sizeText = strings.TrimSpace(sizeText)
	if sizeText == "" {
		return AllocateCmd{}, errors.InvalidInput("please enter a valid process size")
	}

	size, err := strconv.Atoi(sizeText)
	if err != nil {
		return AllocateCmd{}, errors.Wrap(errors.ExitInvalidInput,
			fmt.Sprintf("invalid process size %q", sizeText), err)
	}
	if size <= 0 {
		return AllocateCmd{}, errors.InvalidInput(
			fmt.Sprintf("process size must be positive (got %d)", size))
	}

	return AllocateCmd{Name: name, Size: size}, nil
}

// ParseRequest parses a NAME:SIZE pair. The last colon separates the size,
// so names may themselves contain colons.
func ParseRequest(raw string) (AllocateCmd, error) {
	i := strings.LastIndex(raw, ":")
	if i < 0 {
		return AllocateCmd{}, errors.InvalidInput(
			fmt.Sprintf("invalid request %q: expected NAME:SIZE", raw))
	}
	return ParseAllocate(raw[:i], raw[i+1:])
}
