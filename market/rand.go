package market

// RandomNumGen is a linear-congruential generator. Given the same seed it
// always produces the same sequence, which keeps "random" mint outcomes
// reproducible on a deterministic ledger.
type RandomNumGen struct {
	seed uint64
}

const (
	lcgMultiplier uint64 = 6364136223846793005
	lcgIncrement  uint64 = 1442695040888963407
)

func NewRandomNumGen(seed uint64) *RandomNumGen {
	return &RandomNumGen{seed: seed}
}

func (r *RandomNumGen) Next() uint64 {
	r.seed = r.seed*lcgMultiplier + lcgIncrement
	return r.seed
}

// Range draws a value in [min, max], both inclusive.
func (r *RandomNumGen) Range(min, max uint64) uint64 {
	if max <= min {
		return min
	}
	width := max - min + 1
	return min + r.Next()%width
}
