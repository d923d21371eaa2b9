// Package breakeven answers threshold questions by searching over the
// pay and benefit engines: what contract rate matches a payroll job's
// net, and at what earnings a partial benefit runs out.
package breakeven

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SolverOptions bound the search.
type SolverOptions struct {
	MaxIterations int
	// Tolerance is in dollars on the quantity being matched.
	Tolerance decimal.Decimal
}

// DefaultSolverOptions returns options tight enough for money amounts.
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		MaxIterations: 100,
		Tolerance:     decimal.NewFromFloat(0.01),
	}
}

// Result is the converged answer of one search.
type Result struct {
	// Value is the solved quantity: an hourly rate or a weekly earnings
	// amount depending on the question asked.
	Value      decimal.Decimal `json:"value"`
	Iterations int             `json:"iterations"`
	Converged  bool            `json:"converged"`
}

// Error describes a search that could not be run or could not converge.
type Error struct {
	Operation string
	Message   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("breakeven %s: %s", e.Operation, e.Message)
}
