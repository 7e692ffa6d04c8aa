package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/reusee/dscope"
	"github.com/reusee/gaji/gajigrid"
	"github.com/reusee/gaji/modes"
)

const (
	printU = "🍆🌱🌱🍆🍆🌱🌱🍆🍆🌱🌱🍆🍆🌱🌱🍆🍆\n" +
		"🌱🌱🍆🌱🌱🌱🍆🌱🌱🌱🍆🌱🌱🌱🍆🌱🌱\n"

	readThenPrint = "🌱🍆🍆🌱🌱🍆🌱🌱🍆🌱🍆🍆🌱🌱🍆🌱🌱🍆🌱🌱🍆🌱🍆🍆🌱🌱🍆🍆🌱🌱🍆🍆🌱🌱🍆🍆\n" +
		"🌱🍆🍆🌱🍆🍆🌱🍆🍆🌱🍆🍆🌱🍆🍆🌱🍆🍆🌱🍆🌱🍆🌱🌱🌱🍆🌱🌱🌱🍆🌱🌱🌱🍆🌱🌱\n"
)

func testRun(t *testing.T, fn func(run Run)) {
	dscope.New(new(Module), modes.ForTest(t)).Call(fn)
}

func writeProgram(t *testing.T, source string) string {
	path := filepath.Join(t.TempDir(), "program.gaji")
	if err := os.WriteFile(path, []byte(source), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunFile(t *testing.T) {
	testRun(t, func(run Run) {
		stdout := new(bytes.Buffer)
		stderr := new(bytes.Buffer)
		err := run(context.Background(), options{
			Path: writeProgram(t, printU),
		}, bufio.NewReader(strings.NewReader("")), stdout, stderr)
		if err != nil {
			t.Fatal(err)
		}
		if stdout.String() != "U" {
			t.Fatalf("got %q", stdout.String())
		}
		if stderr.Len() != 0 {
			t.Fatalf("got %q", stderr.String())
		}
	})
}

func TestRunInteractive(t *testing.T) {
	testRun(t, func(run Run) {
		stdout := new(bytes.Buffer)
		stdin := bufio.NewReader(strings.NewReader(readThenPrint + "\n" + "\xb1"))
		err := run(context.Background(), options{}, stdin, stdout, new(bytes.Buffer))
		if err != nil {
			t.Fatal(err)
		}
		if stdout.String() != "U" {
			t.Fatalf("got %q", stdout.String())
		}
		if stdin.Buffered() != 0 {
			t.Fatalf("input left: %v", stdin.Buffered())
		}
	})
}

func TestRunEcho(t *testing.T) {
	testRun(t, func(run Run) {
		stderr := new(bytes.Buffer)
		err := run(context.Background(), options{
			Path: writeProgram(t, "🍆x🌱\n🌱\n"),
			Echo: true,
		}, bufio.NewReader(strings.NewReader("")), new(bytes.Buffer), stderr)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff("code:\n🍆❓🌱\n🌱❓❓\n\n", stderr.String()); diff != "" {
			t.Fatal(diff)
		}
	})
}

func TestRunStepBudget(t *testing.T) {
	testRun(t, func(run Run) {
		stdout := new(bytes.Buffer)
		err := run(context.Background(), options{
			Path:     writeProgram(t, strings.Repeat("🌱", 10)),
			MaxSteps: 3,
		}, bufio.NewReader(strings.NewReader("")), stdout, new(bytes.Buffer))
		if err == nil || !strings.Contains(err.Error(), "step budget 3 exhausted") {
			t.Fatalf("got %v", err)
		}
		if !strings.Contains(err.Error(), "run: ") {
			t.Fatalf("got %v", err)
		}
	})
}

func TestRunBudgetNotReached(t *testing.T) {
	testRun(t, func(run Run) {
		stdout := new(bytes.Buffer)
		err := run(context.Background(), options{
			Path:     writeProgram(t, printU),
			MaxSteps: 17,
		}, bufio.NewReader(strings.NewReader("")), stdout, new(bytes.Buffer))
		if err != nil {
			t.Fatal(err)
		}
		if stdout.String() != "U" {
			t.Fatalf("got %q", stdout.String())
		}
	})
}

func TestRunOutOfBounds(t *testing.T) {
	testRun(t, func(run Run) {
		err := run(context.Background(), options{
			Path: writeProgram(t, "🍆🌱🍆\n🌱 too long\n"),
		}, bufio.NewReader(strings.NewReader("")), new(bytes.Buffer), new(bytes.Buffer))
		if !errors.Is(err, gajigrid.ErrOutOfBounds) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestRunMissingFile(t *testing.T) {
	testRun(t, func(run Run) {
		err := run(context.Background(), options{
			Path: filepath.Join(t.TempDir(), "missing.gaji"),
		}, bufio.NewReader(strings.NewReader("")), new(bytes.Buffer), new(bytes.Buffer))
		if !errors.Is(err, ErrSourceRead) {
			t.Fatalf("got %v", err)
		}
		if !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("got %v", err)
		}
	})
}
