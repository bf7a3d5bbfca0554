package shuffle

const (
	stateSize  = 624
	shiftSize  = 397
	matrixA    = 0x9908b0df
	upperMask  = 0x80000000
	lowerMask  = 0x7fffffff
	initSeed   = 19650218
	initMult   = 1812433253
	arrayMult1 = 1664525
	arrayMult2 = 1566083941
)

// mt19937 is the 32-bit Mersenne Twister, seeded the way CPython seeds
// random.Random from a non-negative integer.
type mt19937 struct {
	state [stateSize]uint32
	index int
}

func newMT19937(seed uint32) *mt19937 {
	m := &mt19937{}
	m.seedByArray([]uint32{seed})
	return m
}

func (m *mt19937) seedLinear(s uint32) {
	m.state[0] = s
	for i := 1; i < stateSize; i++ {
		prev := m.state[i-1]
		m.state[i] = initMult*(prev^(prev>>30)) + uint32(i)
	}
	m.index = stateSize
}

func (m *mt19937) seedByArray(key []uint32) {
	m.seedLinear(initSeed)

	i, j := 1, 0
	k := stateSize
	if len(key) > k {
		k = len(key)
	}
	for ; k > 0; k-- {
		prev := m.state[i-1]
		m.state[i] = (m.state[i] ^ ((prev ^ (prev >> 30)) * arrayMult1)) + key[j] + uint32(j)
		i++
		j++
		if i >= stateSize {
			m.state[0] = m.state[stateSize-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k = stateSize - 1; k > 0; k-- {
		prev := m.state[i-1]
		m.state[i] = (m.state[i] ^ ((prev ^ (prev >> 30)) * arrayMult2)) - uint32(i)
		i++
		if i >= stateSize {
			m.state[0] = m.state[stateSize-1]
			i = 1
		}
	}

	// MSB is 1, assuring a non-zero initial state
	m.state[0] = upperMask
	m.index = stateSize
}

func (m *mt19937) twist() {
	for i := 0; i < stateSize; i++ {
		y := (m.state[i] & upperMask) | (m.state[(i+1)%stateSize] & lowerMask)
		next := m.state[(i+shiftSize)%stateSize] ^ (y >> 1)
		if y&1 != 0 {
			next ^= matrixA
		}
		m.state[i] = next
	}
	m.index = 0
}

// Uint32 returns the next tempered output
func (m *mt19937) Uint32() uint32 {
	if m.index >= stateSize {
		m.twist()
	}
	y := m.state[m.index]
	m.index++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}
