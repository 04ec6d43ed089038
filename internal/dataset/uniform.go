package dataset

// mt19937 is the 32-bit Mersenne Twister seeded with init_genrand. Its double
// stream (53-bit resolution from two draws) reproduces the uniform samples
// of the reference numerical stack bit for bit, so fixtures generated here
// match published values.
type mt19937 struct {
	state [624]uint32
	index int
}

const (
	mtN         = 624
	mtM         = 397
	mtMatrixA   = 0x9908b0df
	mtUpperMask = 0x80000000
	mtLowerMask = 0x7fffffff
)

func newMT19937(seed uint32) *mt19937 {
	mt := &mt19937{index: mtN}
	mt.state[0] = seed
	for i := 1; i < mtN; i++ {
		prev := mt.state[i-1]
		mt.state[i] = 1812433253*(prev^(prev>>30)) + uint32(i)
	}
	return mt
}

func (mt *mt19937) twist() {
	for i := 0; i < mtN; i++ {
		y := (mt.state[i] & mtUpperMask) | (mt.state[(i+1)%mtN] & mtLowerMask)
		next := mt.state[(i+mtM)%mtN] ^ (y >> 1)
		if y&1 != 0 {
			next ^= mtMatrixA
		}
		mt.state[i] = next
	}
	mt.index = 0
}

func (mt *mt19937) uint32() uint32 {
	if mt.index >= mtN {
		mt.twist()
	}
	y := mt.state[mt.index]
	mt.index++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// float64 returns a uniform double in [0, 1)
func (mt *mt19937) float64() float64 {
	a := mt.uint32() >> 5
	b := mt.uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) / 9007199254740992.0
}

// Uniform returns size draws from U[0, 1) scaled by mu, seeded with seed
func Uniform(seed uint32, size int, mu float64) []float64 {
	mt := newMT19937(seed)
	out := make([]float64, size)
	for i := range out {
		out[i] = mt.float64() * mu
	}
	return out
}

// MakeUniform builds a single-column frame (column "x") of size uniform
// draws scaled by mu
func MakeUniform(seed uint32, size int, mu float64) *Frame {
	f := NewFrame()
	// lengths always match on an empty frame
	_ = f.AddColumn(DefaultColumn, Uniform(seed, size, mu))
	return f
}
