package cube

import "testing"

func TestNewIsSolved(t *testing.T) {
	c := New()
	if !c.IsSolved() {
		t.Error("New() should be solved")
	}
}

func TestSumFaceOnSolvedCube(t *testing.T) {
	c := New()
	tests := []struct {
		face Face
		want uint8
	}{
		{U, 9 * ColourU},
		{F, 9 * ColourF},
		{R, 9 * ColourR},
		{B, 9 * ColourB},
		{L, 9 * ColourL},
		{D, 9 * ColourD},
	}
	for _, tt := range tests {
		if got := c.SumFace(tt.face); got != tt.want {
			t.Errorf("SumFace(%v) = %d, want %d", tt.face, got, tt.want)
		}
	}
}

func TestIsSolvedDetectsScramble(t *testing.T) {
	c := New()
	c.TwistR()
	if c.IsSolved() {
		t.Error("cube should not be solved after a single R twist")
	}
}

// colourCounts tallies every sticker value across the whole cube.
func colourCounts(c Cube) map[uint8]int {
	counts := make(map[uint8]int)
	for _, face := range c.Faces {
		for _, sticker := range face {
			counts[sticker]++
		}
	}
	return counts
}
