package bits

import (
	"math/rand/v2"
)

// Random is an infinite Stream where every bit is an independent fair coin flip. It is never exhausted.
type Random struct {
	src   *rand.Rand
	cache uint64
	left  int
}

func NewRandom() *Random {
	return NewSeededRandom(rand.Uint64())
}

func NewSeededRandom(seed uint64) *Random {
	return &Random{src: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *Random) Next() (uint8, bool) {
	if r.left == 0 {
		r.cache = r.src.Uint64()
		r.left = 64
	}
	bit := uint8(r.cache & 1)
	r.cache >>= 1
	r.left--
	return bit, true
}
