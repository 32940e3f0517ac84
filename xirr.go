package journal

import (
	"fmt"
	"math"
	"slices"
)

// Newton-Raphson parameters for the money-weighted return solver.
const (
	daysPerYear = 365.25

	maxIterations = 100
	npvPrecision  = 1e-6 // |NPV| below this is considered converged
	derivativeMin = 1e-6 // |dNPV| below this means the iteration cannot improve

	minRate = -0.99 // rates below -100% are meaningless
	maxRate = 10.0  // 1000% annualized, a sanity cap

	// DefaultGuess is the initial rate used when the caller has no better estimate.
	DefaultGuess = 0.10
)

// XIRR computes the annualized money-weighted rate of return of a cash flow
// schedule, as the rate r for which the net present value of all flows is zero.
// Year fractions are counted from the earliest flow in days/365.25.
//
// A schedule with fewer than two flows has no meaningful return and yields 0.
// The solver is best-effort: when the NPV derivative flattens out or the
// iteration budget is exhausted, the last estimate is returned rather than an
// error. The rate is kept within [-0.99, 10] after every step.
func XIRR(flows Schedule, guess float64) (float64, error) {
	if len(flows) < 2 {
		return 0, nil
	}
	for _, f := range flows {
		if math.IsNaN(f.Amount) || math.IsInf(f.Amount, 0) {
			return 0, fmt.Errorf("cash flow on %s has non-finite amount", f.When.Format(DateFormat))
		}
	}

	sorted := slices.Clone(flows)
	sorted.Sort()
	t0 := sorted[0].When

	// years[i] is the year fraction between flow i and the earliest flow.
	years := make([]float64, len(sorted))
	for i, f := range sorted {
		years[i] = f.When.Sub(t0).Hours() / 24 / daysPerYear
	}

	rate := guess
	for range maxIterations {
		var npv, dnpv float64
		for i, f := range sorted {
			y := years[i]
			npv += f.Amount / math.Pow(1+rate, y)
			dnpv -= f.Amount * y / math.Pow(1+rate, y+1)
		}

		if math.Abs(npv) < npvPrecision {
			return rate, nil
		}
		if math.Abs(dnpv) < derivativeMin {
			// Flat derivative, the step would blow up. Keep the best estimate.
			return rate, nil
		}

		rate -= npv / dnpv
		rate = clampRate(rate)
	}

	// Iteration budget exhausted, return the last estimate.
	return rate, nil
}

func clampRate(rate float64) float64 {
	if rate < minRate {
		return minRate
	}
	if rate > maxRate {
		return maxRate
	}
	return rate
}
