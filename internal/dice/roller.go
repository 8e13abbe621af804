package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller provides an interface for rolling dice
// This allows us to inject different implementations for testing
type Roller interface {
	// Roll rolls a number of dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)
}

// RollResult is the outcome of one Roll call
type RollResult struct {
	Total    int   `json:"total"`
	Rolls    []int `json:"rolls"`
	Bonus    int   `json:"bonus"`
	Count    int   `json:"count"`
	Sides    int   `json:"sides"`
	RawTotal int   `json:"raw_total"`
}

// Pick returns a uniformly chosen index in [0, n)
func Pick(r Roller, n int) (int, error) {
	result, err := r.Roll(1, n, -1)
	if err != nil {
		return 0, err
	}
	return result.Total, nil
}
