package cube

import (
	"reflect"
	"testing"
)

// twistPair names a clockwise twist together with its documented
// inverse and double, by name, so the invariant tests below can walk
// all eighteen face-twist words generically.
type twistPair struct {
	name      string
	cw, prime func(*Cube)
	double    func(*Cube)
}

func facePairs() []twistPair {
	return []twistPair{
		{name: "U", cw: (*Cube).TwistU, prime: (*Cube).TwistUPrime, double: (*Cube).TwistU2},
		{name: "F", cw: (*Cube).TwistF, prime: (*Cube).TwistFPrime, double: (*Cube).TwistF2},
		{name: "R", cw: (*Cube).TwistR, prime: (*Cube).TwistRPrime, double: (*Cube).TwistR2},
		{name: "B", cw: (*Cube).TwistB, prime: (*Cube).TwistBPrime, double: (*Cube).TwistB2},
		{name: "L", cw: (*Cube).TwistL, prime: (*Cube).TwistLPrime, double: (*Cube).TwistL2},
		{name: "D", cw: (*Cube).TwistD, prime: (*Cube).TwistDPrime, double: (*Cube).TwistD2},
	}
}

func rotationPairs() []twistPair {
	return []twistPair{
		{name: "X", cw: (*Cube).RotateX, prime: (*Cube).RotateXPrime, double: (*Cube).RotateX2},
		{name: "Y", cw: (*Cube).RotateY, prime: (*Cube).RotateYPrime, double: (*Cube).RotateY2},
		{name: "Z", cw: (*Cube).RotateZ, prime: (*Cube).RotateZPrime, double: (*Cube).RotateZ2},
	}
}

func TestTwistThenInverseRestoresIdentity(t *testing.T) {
	for _, tt := range append(facePairs(), rotationPairs()...) {
		t.Run(tt.name, func(t *testing.T) {
			start := New()
			start.TwistF() // scramble a bit so the test isn't vacuous on a solved cube
			c := start
			tt.cw(&c)
			tt.prime(&c)
			if !reflect.DeepEqual(c, start) {
				t.Errorf("%s then %s' did not restore the starting cube", tt.name, tt.name)
			}
		})
	}
}

func TestDoubleAppliedTwiceRestoresIdentity(t *testing.T) {
	for _, tt := range append(facePairs(), rotationPairs()...) {
		t.Run(tt.name+"2", func(t *testing.T) {
			start := New()
			start.TwistU()
			c := start
			tt.double(&c)
			tt.double(&c)
			if !reflect.DeepEqual(c, start) {
				t.Errorf("%s2 applied twice did not restore the starting cube", tt.name)
			}
		})
	}
}

func TestStickerMultisetInvariant(t *testing.T) {
	c := New()
	before := colourCounts(c)

	ops := []func(*Cube){
		(*Cube).TwistU, (*Cube).TwistUPrime, (*Cube).TwistU2,
		(*Cube).TwistF, (*Cube).TwistFPrime, (*Cube).TwistF2,
		(*Cube).TwistR, (*Cube).TwistRPrime, (*Cube).TwistR2,
		(*Cube).TwistB, (*Cube).TwistBPrime, (*Cube).TwistB2,
		(*Cube).TwistL, (*Cube).TwistLPrime, (*Cube).TwistL2,
		(*Cube).TwistD, (*Cube).TwistDPrime, (*Cube).TwistD2,
		(*Cube).RotateX, (*Cube).RotateXPrime, (*Cube).RotateX2,
		(*Cube).RotateY, (*Cube).RotateYPrime, (*Cube).RotateY2,
		(*Cube).RotateZ, (*Cube).RotateZPrime, (*Cube).RotateZ2,
	}
	for _, op := range ops {
		op(&c)
	}

	after := colourCounts(c)
	if !reflect.DeepEqual(before, after) {
		t.Errorf("sticker multiset changed: before %v, after %v", before, after)
	}
}

// TestSexyMoveOrderSix checks the well-known fact that R U R' U',
// repeated six times from solved, restores the solved state.
func TestSexyMoveOrderSix(t *testing.T) {
	c := New()
	for i := 0; i < 6; i++ {
		c.TwistR()
		c.TwistU()
		c.TwistRPrime()
		c.TwistUPrime()
	}
	if !c.IsSolved() {
		t.Error("R U R' U' repeated six times should restore the solved cube")
	}
}

func TestSexyMoveNotIdentityBeforeSixthRepeat(t *testing.T) {
	c := New()
	for i := 1; i < 6; i++ {
		c.TwistR()
		c.TwistU()
		c.TwistRPrime()
		c.TwistUPrime()
		if c.IsSolved() {
			t.Errorf("R U R' U' repeated %d times should not yet be solved", i)
		}
	}
}
