package market

import "math/rand"

const (
	nameLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	nameDigits  = "0123456789"
)

// RandomName produces a ticker-style company name: three uppercase letters
// followed by two digits, e.g. "KQV07". Uniqueness is probabilistic, which
// is acceptable since companies are identified by ID, not name.
func RandomName(rng *rand.Rand) string {
	buf := make([]byte, 5)
	for i := 0; i < 3; i++ {
		buf[i] = nameLetters[rng.Intn(len(nameLetters))]
	}
	for i := 3; i < 5; i++ {
		buf[i] = nameDigits[rng.Intn(len(nameDigits))]
	}
	return string(buf)
}
