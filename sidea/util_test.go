package sidea

import (
	"math/rand"
	"testing"
)

// A spread of words including the edges
func sampleWords() []Word {
	words := []Word{0, 1, 2, 3, 0x7fffffff, 0x80000000, 0xfffffffe, 0xffffffff, 0xdeadbeef, 0x12345678}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 32; i++ {
		words = append(words, Word(rng.Uint32()))
	}
	return words
}

func TestModAdd(t *testing.T) {
	if r := ModAdd(0xffffffff, 1); r != 0 {
		t.Errorf("Expected wraparound to 0, got %#x", r)
	}
	if r := ModAdd(0xfffffff0, 0x20); r != 0x10 {
		t.Errorf("Wrong wrapped sum: %#x", r)
	}

	words := sampleWords()
	for _, a := range words {
		for _, b := range words {
			if ModAdd(a, b) != ModAdd(b, a) {
				t.Errorf("ModAdd(%#x, %#x) not commutative", a, b)
			}
			if uint64(ModAdd(a, b)) != (uint64(a)+uint64(b))%(1<<32) {
				t.Errorf("ModAdd(%#x, %#x) = %#x", a, b, ModAdd(a, b))
			}
		}
	}
}

func TestModXOR(t *testing.T) {
	words := sampleWords()
	for _, a := range words {
		if ModXOR(a, a) != 0 {
			t.Errorf("ModXOR(%#x, %#x) != 0", a, a)
		}
		for _, b := range words {
			if ModXOR(a, b) != ModXOR(b, a) {
				t.Errorf("ModXOR(%#x, %#x) not commutative", a, b)
			}
		}
	}
}

func TestCircularShift(t *testing.T) {
	if r := CircularShift(1, 1); r != 0x80000000 {
		t.Errorf("Low bit should wrap to the top, got %#x", r)
	}
	if r := CircularShift(0x80000000, 1); r != 0x40000000 {
		t.Errorf("Wrong right rotation: %#x", r)
	}
	if r := CircularShift(0x12345678, 4); r != 0x81234567 {
		t.Errorf("Wrong nibble rotation: %#x", r)
	}

	for _, x := range sampleWords() {
		v := x
		for i := 0; i < 32; i++ {
			v = CircularShift(v, 1)
		}
		if v != x {
			t.Errorf("32 rotations of %#x gave %#x", x, v)
		}
		if r := CircularShift(CircularShift(x, 1), 31); r != x {
			t.Errorf("Rotating %#x by 1 then 31 gave %#x", x, r)
		}
		if r := CircularShift(CircularShift(x, 5), -5); r != x {
			t.Errorf("Negative rotation did not undo %#x: %#x", x, r)
		}
	}
}

type MulTestCase struct {
	A      Word
	B      Word
	Result Word
}

func TestModMul(t *testing.T) {
	tests := []MulTestCase{
		MulTestCase{A: 3, B: 5, Result: 0xc0000003},
		MulTestCase{A: 2, B: 3, Result: 3},
		MulTestCase{A: 7, B: 6, Result: 1073741828},
		MulTestCase{A: 0x80000001, B: 2, Result: 0xc0000000},
		MulTestCase{A: 0xffffffff, B: 2, Result: 0xffffffff},
		MulTestCase{A: 1, B: 0x80000000, Result: 2},
		MulTestCase{A: 0xdeadbeef, B: 0x12345678, Result: 0x5232fc12},
		MulTestCase{A: 0x12345678, B: 0xdeadbeef, Result: 0xa4f3a70e},
	}

	for idx, test := range tests {
		if r := ModMul(test.A, test.B); r != test.Result {
			t.Errorf("Wrong product for case %d: %#x", idx+1, r)
		}
	}

	for _, a := range sampleWords() {
		if r := ModMul(a, 0); r != 0 {
			t.Errorf("ModMul(%#x, 0) = %#x", a, r)
		}
		if r := ModMul(a, 1); r != a {
			t.Errorf("ModMul(%#x, 1) = %#x", a, r)
		}
	}
}

func TestMix(t *testing.T) {
	// k = 1 leaves n1 alone, which makes both orders easy to check by hand
	if r := MixForward(65, 66, 67, 68, 1); r != (65+66+67)^68 {
		t.Errorf("Wrong forward mix: %d", r)
	}
	if r := MixFinal(65, 66, 67, 68, 1); r != (65^66)+67+68 {
		t.Errorf("Wrong final mix: %d", r)
	}
	if r := MixForward(0xffffffff, 1, 0, 0, 1); r != 0 {
		t.Errorf("Forward mix should wrap: %#x", r)
	}
}
