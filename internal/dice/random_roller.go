package dice

import (
	"errors"
	"math/rand"
	"sync"
)

// randomRoller implements Roller with math/rand
type randomRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomRoller creates a roller seeded from the global source
func NewRandomRoller() Roller {
	return &randomRoller{rng: rand.New(rand.NewSource(rand.Int63()))}
}

// NewSeededRoller creates a roller that repeats the same sequence for the same seed
func NewSeededRoller(seed int64) Roller {
	return &randomRoller{rng: rand.New(rand.NewSource(seed))}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, errors.New("invalid dice count")
	}
	if sides < 1 {
		return nil, errors.New("invalid dice size")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rolls := make([]int, count)
	rawTotal := 0
	for i := range rolls {
		rolls[i] = r.rng.Intn(sides) + 1
		rawTotal += rolls[i]
	}

	return &RollResult{
		Total:    rawTotal + bonus,
		Rolls:    rolls,
		Bonus:    bonus,
		Count:    count,
		Sides:    sides,
		RawTotal: rawTotal,
	}, nil
}
