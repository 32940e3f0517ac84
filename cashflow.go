package journal

import (
	"sort"
	"time"
)

// CashFlow is a dated signed amount. Negative amounts are money paid out
// (purchases), positive amounts are money received (sales, current value).
type CashFlow struct {
	When   time.Time
	Amount float64
}

// Schedule is a series of cash flows.
type Schedule []CashFlow

// Add appends a cash flow to the schedule.
func (s *Schedule) Add(when time.Time, amount float64) {
	*s = append(*s, CashFlow{When: when, Amount: amount})
}

// Sort orders the schedule chronologically. The sort is stable, so flows on
// the same instant keep their original relative order.
func (s Schedule) Sort() {
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].When.Before(s[j].When)
	})
}
