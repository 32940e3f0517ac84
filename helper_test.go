package journal

import "time"

// INR is a helper for tests to create rupee money from const
func INR(v float64) Money { return M(v, "INR") }

// NO is a helper for tests to create money with no currency set
func NO(v float64) Money { return M(v, "") }

// on is a helper for tests to build a flow instant from a date string.
func on(str string) time.Time { return MustParse(str).Time() }
