package signhands

import (
	"math"
	"testing"
)

func TestPoseTableCoversAlphabetAndDigits(t *testing.T) {
	for ch := 'a'; ch <= 'z'; ch++ {
		if _, ok := LookupPose(ch); !ok {
			t.Errorf("no pose for %q", ch)
		}
	}
	for ch := '0'; ch <= '9'; ch++ {
		if _, ok := LookupPose(ch); !ok {
			t.Errorf("no pose for %q", ch)
		}
	}
	if NumPoses() != 36 {
		t.Errorf("NumPoses() = %d, want 36", NumPoses())
	}
}

func TestLookupPoseCaseInsensitive(t *testing.T) {
	lower, _ := LookupPose('a')
	upper, ok := LookupPose('A')
	if !ok {
		t.Fatal("uppercase A not found")
	}
	if lower != upper {
		t.Errorf("A = %v, a = %v", upper, lower)
	}
}

func TestLookupPoseMissing(t *testing.T) {
	for _, ch := range []rune{'!', ' ', 'é', '-'} {
		if _, ok := LookupPose(ch); ok {
			t.Errorf("LookupPose(%q) should miss", ch)
		}
	}
}

func TestPoseValuesInRange(t *testing.T) {
	for ch, c := range poseTable {
		for f, v := range c {
			if math.IsNaN(v) || v < CurlOpen || v > CurlClosed {
				t.Errorf("pose %q finger %s = %v outside [%v, %v]", ch, Finger(f), v, CurlOpen, CurlClosed)
			}
		}
	}
}

func TestPoseShapesDistinguishKeyLetters(t *testing.T) {
	a, _ := LookupPose('a')
	b, _ := LookupPose('b')
	if a == b {
		t.Error("A and B share a handshape")
	}
	// B is a flat hand with the thumb tucked.
	for f := Index; f <= Pinky; f++ {
		if b[f] != CurlOpen {
			t.Errorf("B %s = %v, want open", f, b[f])
		}
	}
}
