package core

import "testing"

func TestDirectionVector(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected Position
	}{
		{DirIdle, Position{0, 0}},
		{DirUp, Position{0, -1}},
		{DirDown, Position{0, 1}},
		{DirLeft, Position{-1, 0}},
		{DirRight, Position{1, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if got := tc.dir.Vector(); got != tc.expected {
				t.Errorf("Vector() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestDirectionReverses(t *testing.T) {
	tests := []struct {
		name     string
		cur      Direction
		next     Direction
		expected bool
	}{
		{"up to down", DirUp, DirDown, true},
		{"down to up", DirDown, DirUp, true},
		{"left to right", DirLeft, DirRight, true},
		{"right to left", DirRight, DirLeft, true},
		{"up to left", DirUp, DirLeft, false},
		{"same direction", DirRight, DirRight, false},
		{"idle to anything", DirIdle, DirDown, false},
		{"anything to idle", DirUp, DirIdle, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cur.Reverses(tc.next); got != tc.expected {
				t.Errorf("%v.Reverses(%v) = %v, expected %v", tc.cur, tc.next, got, tc.expected)
			}
		})
	}
}

func TestPositionAdd(t *testing.T) {
	p := Position{X: 0, Y: 0}.Add(DirLeft.Vector())
	if p != (Position{X: -1, Y: 0}) {
		t.Errorf("Add() = %v, expected (-1, 0)", p)
	}
}

func TestCommandDirection(t *testing.T) {
	tests := []struct {
		cmd    Command
		dir    Direction
		steers bool
	}{
		{CommandGoUp, DirUp, true},
		{CommandGoDown, DirDown, true},
		{CommandGoLeft, DirLeft, true},
		{CommandGoRight, DirRight, true},
		{CommandPlay, DirIdle, false},
		{CommandQuit, DirIdle, false},
	}

	for _, tc := range tests {
		t.Run(tc.cmd.String(), func(t *testing.T) {
			dir, ok := tc.cmd.Direction()
			if dir != tc.dir || ok != tc.steers {
				t.Errorf("Direction() = (%v, %v), expected (%v, %v)", dir, ok, tc.dir, tc.steers)
			}
		})
	}
}

func TestCommandQueue(t *testing.T) {
	var q CommandQueue
	q.Push(CommandGoUp)
	q.Push(CommandNone)
	q.Push(CommandGoLeft)

	if q.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", q.Len())
	}

	cmds := q.Drain()
	if len(cmds) != 2 || cmds[0] != CommandGoUp || cmds[1] != CommandGoLeft {
		t.Errorf("Drain() = %v, expected [GoUp GoLeft]", cmds)
	}
	if q.Len() != 0 {
		t.Error("queue should be empty after Drain")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}

	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %f, expected 1", got)
	}
}
