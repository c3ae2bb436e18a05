package engine

import "testing"

func TestLevelCurveConsistency(t *testing.T) {
	for level := 1; level <= MaxLevel; level++ {
		xp := CumulativeXP(level)
		if got := LevelForXP(xp); got != level {
			t.Fatalf("LevelForXP(CumulativeXP(%d)) = %d", level, got)
		}
		if level > 1 {
			if got := LevelForXP(xp - 1); got != level-1 {
				t.Fatalf("LevelForXP(%d) = %d, want %d", xp-1, got, level-1)
			}
		}
	}
}

func TestLevelForXPMonotonic(t *testing.T) {
	prev := 0
	for xp := 0; xp <= CumulativeXP(MaxLevel)+500; xp += 7 {
		level := LevelForXP(xp)
		if level < prev {
			t.Fatalf("level decreased: xp=%d level=%d prev=%d", xp, level, prev)
		}
		if level < 1 || level > MaxLevel {
			t.Fatalf("level out of range: xp=%d level=%d", xp, level)
		}
		prev = level
	}
}

func TestLevelForXPNegative(t *testing.T) {
	if got := LevelForXP(-10); got != 1 {
		t.Fatalf("LevelForXP(-10) = %d, want 1", got)
	}
}

func TestXPForNextAtCap(t *testing.T) {
	if got := XPForNext(MaxLevel); got != 0 {
		t.Fatalf("XPForNext(MaxLevel) = %d, want 0", got)
	}
	// Cost from level 1 to 2 is the base cost.
	if got := XPForNext(1); got != 88 {
		t.Fatalf("XPForNext(1) = %d, want 88", got)
	}
	if got := XPForNext(2); got != 91 {
		t.Fatalf("XPForNext(2) = %d, want 91", got)
	}
}

func TestProgressInLevelBounds(t *testing.T) {
	for xp := 0; xp <= CumulativeXP(MaxLevel)+500; xp += 13 {
		p := ProgressInLevel(xp)
		if p < 0 || p > 1 {
			t.Fatalf("ProgressInLevel(%d) = %f", xp, p)
		}
	}
	if got := ProgressInLevel(CumulativeXP(MaxLevel) + 100); got != 1 {
		t.Fatalf("progress past the cap = %f, want 1", got)
	}
}
