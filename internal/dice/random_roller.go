package dice

import (
	"math/rand"
	"time"
)

// randomRoller implements Roller using math/rand
type randomRoller struct {
	random *rand.Rand
}

// Config for the random roller
type Config struct {
	// Optional seed for testing; zero means seed from the clock
	Seed int64
}

// NewRandomRoller creates a new random dice roller
func NewRandomRoller(cfg *Config) Roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &randomRoller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// RollNumber implements Roller.RollNumber
func (r *randomRoller) RollNumber(max int, canZero bool) (int, error) {
	if max <= 0 {
		// Degenerate die: 0 is its only legal value
		return 0, nil
	}

	if canZero {
		return r.random.Intn(max + 1), nil
	}

	return r.random.Intn(max) + 1, nil
}
