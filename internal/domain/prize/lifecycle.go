package prize

// CycleThreshold is the number of purchases in a cycle that earns a prize.
const CycleThreshold = 5

// MaxCodeAttempts bounds how many fresh codes are tried when the drawn one
// is already taken.
const MaxCodeAttempts = 5

type Transition int

const (
	TransitionNone Transition = iota
	TransitionCreate
	TransitionAccrue
)

func (t Transition) String() string {
	switch t {
	case TransitionCreate:
		return "create"
	case TransitionAccrue:
		return "accrue"
	default:
		return "none"
	}
}

// Decide picks the transition a purchase triggers. cycleCount and
// validPoints are the values after the purchase was applied.
func Decide(hasActive bool, cycleCount int32, validPoints int64) Transition {
	switch {
	case hasActive:
		return TransitionAccrue
	case cycleCount >= CycleThreshold && validPoints > 0:
		return TransitionCreate
	default:
		return TransitionNone
	}
}

func Eligible(cycleCount int32) bool {
	return cycleCount >= CycleThreshold
}

func PurchasesToThreshold(cycleCount int32) int32 {
	return max(CycleThreshold-cycleCount, 0)
}
