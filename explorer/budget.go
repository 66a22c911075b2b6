package explorer

import "math"

// Iteration budget steps.
const (
	DefaultBudget  uint = 100
	BudgetStep     uint = 1
	BudgetStepFast uint = 10
)

// Increase adds step to b unless the sum would overflow, in which case b is
// returned unchanged.
func Increase(b, step uint) uint {
	if b > math.MaxUint-step {
		return b
	}
	return b + step
}

// Decrease subtracts step from b only when the result stays at least 1.
func Decrease(b, step uint) uint {
	if b <= step {
		return b
	}
	return b - step
}
