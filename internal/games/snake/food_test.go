package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestFoodSpawnValidity(t *testing.T) {
	grid := core.NewGrid(40, 25)
	s := Spawn(grid.Center(), 4)
	rng := rand.New(rand.NewSource(999))

	for i := 0; i < 500; i++ {
		food, ok := PlaceFood(rng, grid, s)
		if !ok {
			t.Fatal("PlaceFood() reported a full board")
		}
		if s.Occupies(food) {
			t.Errorf("Food spawned on snake at %v", food)
		}
		if !grid.InBounds(food) {
			t.Errorf("Food spawned out of bounds at %v", food)
		}
	}
}

func TestFoodSpawnCrowdedBoard(t *testing.T) {
	grid := core.NewGrid(4, 1)
	s := newTestSnake([]core.Cell{{X: 3, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 0}}, core.DirLeft)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 20; i++ {
		food, ok := PlaceFood(rng, grid, s)
		if !ok || food != (core.Cell{X: 0, Y: 0}) {
			t.Fatalf("PlaceFood() = %v, %v; expected the only free cell (0,0)", food, ok)
		}
	}
}

func TestFoodSpawnFullBoard(t *testing.T) {
	grid := core.NewGrid(2, 2)
	s := newTestSnake([]core.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}, core.DirUp)

	if food, ok := PlaceFood(rand.New(rand.NewSource(1)), grid, s); ok {
		t.Errorf("PlaceFood() = %v, true; expected no free cell", food)
	}
}

func TestFoodSpawnDeterministic(t *testing.T) {
	grid := core.NewGrid(40, 25)
	s := Spawn(grid.Center(), 4)

	a := rand.New(rand.NewSource(42))
	b := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		fa, _ := PlaceFood(a, grid, s)
		fb, _ := PlaceFood(b, grid, s)
		if fa != fb {
			t.Fatalf("iteration %d: %v != %v with the same seed", i, fa, fb)
		}
	}
}
