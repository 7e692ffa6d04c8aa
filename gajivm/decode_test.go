package gajivm

import (
	"testing"

	"github.com/reusee/gaji/gajigrid"
)

func TestDecodeWeights(t *testing.T) {
	weights := []Command{1, 2, 4, 1, 2, 4, 1, 2}
	for i, offset := range neighborOffsets {
		grid := gajigrid.New(3, 3)
		grid.Set(1+offset[0], 1+offset[1], gajigrid.Planted)
		if got := Decode(grid, 1, 1); got != weights[i] {
			t.Fatalf("offset %v: got %v", offset, got)
		}
	}
}

func TestDecodeFullNeighborhood(t *testing.T) {
	grid, err := gajigrid.Build("🍆🍆🍆\n🍆🍆🍆\n🍆🍆🍆")
	if err != nil {
		t.Fatal(err)
	}
	// 17 mod 7, the center itself does not count
	if got := Decode(grid, 1, 1); got != CommandSkipPlant {
		t.Fatalf("got %v", got)
	}
	// corners see only their in-bounds neighbors
	if got := Decode(grid, 0, 0); got != CommandSkipExecute {
		t.Fatalf("got %v", got)
	}
	if got := Decode(grid, 2, 2); got != CommandSkipHarvest {
		t.Fatalf("got %v", got)
	}
}

func TestDecodeIgnoresInertAndOpen(t *testing.T) {
	grid, err := gajigrid.Build("x🌱x\n🌱🍆🌱\nx🌱x")
	if err != nil {
		t.Fatal(err)
	}
	if got := Decode(grid, 1, 1); got != CommandOutput {
		t.Fatalf("got %v", got)
	}
}

func TestDecodeOutOfBounds(t *testing.T) {
	grid, err := gajigrid.Build("🍆")
	if err != nil {
		t.Fatal(err)
	}
	if got := Decode(grid, 0, 0); got != CommandOutput {
		t.Fatalf("got %v", got)
	}
}

func TestDecodeStable(t *testing.T) {
	grid, err := gajigrid.Build("🍆🌱🍆\n🌱🍆🍆\n🍆🍆🌱")
	if err != nil {
		t.Fatal(err)
	}
	first := Decode(grid, 1, 1)
	for range 10 {
		if got := Decode(grid, 1, 1); got != first {
			t.Fatalf("got %v, want %v", got, first)
		}
	}
}

func TestCommandString(t *testing.T) {
	if CommandTurnLeft.String() != "turn-left" {
		t.Fatalf("got %v", CommandTurnLeft)
	}
	if Command(7).String() != "invalid" {
		t.Fatalf("got %v", Command(7))
	}
}
