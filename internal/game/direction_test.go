package game

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/snek/internal/core"
)

func TestDirectionManagerStartsIdle(t *testing.T) {
	m := NewDirectionManager()
	if m.Current() != core.DirIdle {
		t.Errorf("Current() = %v, expected idle", m.Current())
	}

	m.Update()
	if m.Current() != core.DirIdle {
		t.Error("Update with an empty queue should keep the current direction")
	}
}

func TestDirectionManagerDropsOldest(t *testing.T) {
	m := NewDirectionManager()
	m.Go(core.DirUp)
	m.Go(core.DirLeft)
	m.Go(core.DirDown)

	if m.Pending() != 2 {
		t.Fatalf("Pending() = %d, expected 2", m.Pending())
	}

	m.Update()
	if m.Current() != core.DirLeft {
		t.Errorf("Current() = %v, expected left (up should have been dropped)", m.Current())
	}
	m.Update()
	if m.Current() != core.DirDown {
		t.Errorf("Current() = %v, expected down", m.Current())
	}
	if m.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", m.Pending())
	}
}

func TestDirectionManagerRejectsReversal(t *testing.T) {
	tests := []struct {
		from, to core.Direction
	}{
		{core.DirUp, core.DirDown},
		{core.DirDown, core.DirUp},
		{core.DirLeft, core.DirRight},
		{core.DirRight, core.DirLeft},
	}

	for _, tc := range tests {
		t.Run(tc.from.String()+"->"+tc.to.String(), func(t *testing.T) {
			m := NewDirectionManager()
			m.Go(tc.from)
			m.Update()

			m.Go(tc.to)
			m.Update()

			if m.Current() != tc.from {
				t.Errorf("Current() = %v, expected reversal to be rejected", m.Current())
			}
			if m.Pending() != 0 {
				t.Error("rejected direction should still be consumed")
			}
		})
	}
}

func TestDirectionManagerUpThenDownFromIdle(t *testing.T) {
	m := NewDirectionManager()
	m.Go(core.DirUp)
	m.Go(core.DirDown)

	m.Update()
	if m.Current() != core.DirUp {
		t.Fatalf("Current() = %v, expected up", m.Current())
	}

	// Down is checked against Up, not against Idle.
	m.Update()
	if m.Current() != core.DirUp {
		t.Errorf("Current() = %v, expected down to be rejected against up", m.Current())
	}
}

func TestDirectionManagerNeverReverses(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	dirs := []core.Direction{core.DirUp, core.DirDown, core.DirLeft, core.DirRight}

	m := NewDirectionManager()
	for i := 0; i < 5000; i++ {
		for n := rng.Intn(4); n > 0; n-- {
			m.Go(dirs[rng.Intn(len(dirs))])
		}
		if m.Pending() > maxPending {
			t.Fatalf("Pending() = %d exceeds %d", m.Pending(), maxPending)
		}

		prev := m.Current()
		m.Update()
		if prev.Reverses(m.Current()) {
			t.Fatalf("iteration %d: reversed from %v to %v", i, prev, m.Current())
		}
	}
}
