package app

import (
	"reflect"
	"testing"

	"github.com/firefly-engineering/nextfit/internal/allocator"
	"github.com/firefly-engineering/nextfit/internal/config"
	"github.com/firefly-engineering/nextfit/internal/errors"
	"github.com/firefly-engineering/nextfit/internal/session"
)

func TestNew(t *testing.T) {
	a, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if a.Config == nil {
		t.Fatal("Config should not be nil")
	}
	if a.Session == nil {
		t.Fatal("Session should not be nil")
	}
	if !reflect.DeepEqual(a.Session.Layout(), allocator.DefaultLayout) {
		t.Errorf("Layout = %v, want default", a.Session.Layout())
	}
	if a.Renderer.MaxOccupants != 3 {
		t.Errorf("MaxOccupants = %d, want 3", a.Renderer.MaxOccupants)
	}
}

func TestNew_WithConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Blocks = []int{10, 20}
	cfg.Display.MaxOccupants = 1

	a, err := New(WithConfig(cfg))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if a.Config != cfg {
		t.Error("WithConfig did not set config")
	}
	if !reflect.DeepEqual(a.Session.Layout(), []int{10, 20}) {
		t.Errorf("Layout = %v", a.Session.Layout())
	}
	if a.Renderer.MaxOccupants != 1 {
		t.Errorf("MaxOccupants = %d, want 1", a.Renderer.MaxOccupants)
	}
}

func TestNew_InvalidLayout(t *testing.T) {
	cfg := config.Default()
	cfg.Blocks = []int{0}

	_, err := New(WithConfig(cfg))
	if err == nil {
		t.Fatal("New() expected error")
	}
	if code := errors.GetExitCode(err); code != errors.ExitConfigError {
		t.Errorf("exit code = %d, want %d", code, errors.ExitConfigError)
	}
}

func TestNew_WithSession(t *testing.T) {
	alloc, err := allocator.New(5)
	if err != nil {
		t.Fatal(err)
	}
	s := session.New(alloc)

	a, err := New(WithSession(s))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if a.Session != s {
		t.Error("WithSession did not set session")
	}
}

func TestLines(t *testing.T) {
	a, err := New()
	if err != nil {
		t.Fatal(err)
	}
	a.Session.Allocate("P1", 250)

	lines := a.Lines()
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6", len(lines))
	}
	if lines[0] != "Block 1: 300 KB (Allocated to P1, Remaining: 50 KB)" {
		t.Errorf("lines[0] = %q", lines[0])
	}
}
