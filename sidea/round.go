package sidea

// Number of bytes in a block
const BlockSize = 4

// Number of mix calls per block: four rounds, then four output steps
const TraceSize = 8

// X1..X4, one input byte per Word
type Block [4]Word

// Intermediate value after each mix call.  The last one is the output.
type Trace [TraceSize]Word

// Widens the first four bytes of b into a block
func NewBlock(b []byte) Block {
	_ = b[BlockSize-1]
	return Block{Word(b[0]), Word(b[1]), Word(b[2]), Word(b[3])}
}

// Round function for rounds 1-4: multiply, add, add, then XOR
func MixForward(n1, n2, n3, n4, k Word) Word {
	result := ModMul(n1, k)
	result = ModAdd(result, n2)
	result = ModAdd(result, n3)
	return ModXOR(result, n4)
}

// Output transform step: multiply, XOR, then add, add
func MixFinal(n1, n2, n3, n4, k Word) Word {
	result := ModMul(n1, k)
	result = ModXOR(result, n2)
	result = ModAdd(result, n3)
	return ModAdd(result, n4)
}

// Runs the eight mix calls over x and returns the block's output word
func Transform(x Block, z SubkeySet) Word {
	t := TransformTrace(x, z)
	return t[TraceSize-1]
}

// Runs the eight mix calls over x, recording every intermediate result
func TransformTrace(x Block, z SubkeySet) Trace {
	var t Trace
	x1, x2, x3, x4 := x[0], x[1], x[2], x[3]

	// Rounds 1-4 feed the previous result forward as N1
	r := MixForward(x1, x2, x3, x4, z[0])
	t[0] = r
	r = MixForward(r, x1, x2, x3, z[1])
	t[1] = r
	r = MixForward(r, x2, x3, x4, z[2])
	t[2] = r
	r = MixForward(r, x3, x4, x1, z[3])
	t[3] = r

	// Output transform, no swap
	r = MixFinal(r, x4, x1, x2, z[0])
	t[4] = r
	r = MixFinal(r, r, x4, x1, z[1])
	t[5] = r
	r = MixFinal(r, r, r, x4, z[2])
	t[6] = r
	r = MixFinal(r, r, r, r, z[3])
	t[7] = r

	return t
}
