package pkg

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// GenerateGameID - generates a unique identifier for the game, used to correlate log records.
func GenerateGameID() string {
	return uuid.NewString()
}

// NewRandom - returns a generator for automatic moves. A zero seed means a time based one.
func NewRandom(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano()) //nolint: gosec // it's ok
	}

	return rand.New(rand.NewPCG(seed, seed>>1|1)) //nolint: gosec // not used for security
}
