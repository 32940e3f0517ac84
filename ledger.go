package journal

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"sort"
)

// Ledger represents a list of transactions.
//
// In a Ledger transactions are always in chronological order. Transactions on
// the same day keep their insertion order.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Validate checks a transaction for correctness and applies quick fixes where
// applicable (e.g., defaulting a zero date to today). It returns the validated
// (and potentially modified) transaction or an error detailing any validation failures.
func (l *Ledger) Validate(tx Transaction) (Transaction, error) {
	validated, err := tx.Validate()
	if err != nil {
		return validated, fmt.Errorf("invalid %s transaction on %v: %w", tx.What(), tx.When(), err)
	}
	return validated, nil
}

// Append appends transactions to this ledger and maintains the chronological order of transactions.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	l.stableSort() // Ensure the ledger remains sorted after appending
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns an iterator that yields each transaction in ledger order.
// With no filter every transaction is yielded; with filters a transaction is
// yielded when any filter accepts it.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			accept := len(filters) == 0
			for _, filter := range filters {
				if filter(tx) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// stableSort sorts the ledger by transaction date. The sort is stable, meaning
// transactions on the same day maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].When().Before(l.transactions[j].When())
	})
}

// OldestTransactionDate returns the date of the earliest transaction in the ledger,
// or the zero date if the ledger has no transactions.
func (l *Ledger) OldestTransactionDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[0].When()
}

// NewestTransactionDate returns the date of the latest transaction in the ledger,
// or the zero date if the ledger has no transactions.
func (l *Ledger) NewestTransactionDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[len(l.transactions)-1].When()
}

// Position computes the signed quantity held of a security on a specific date.
// Over-selling is not corrected here, so the result can be negative.
func (l *Ledger) Position(security string, on Date) Quantity {
	var pos Quantity
	for _, tx := range l.transactions {
		if tx.When().After(on) {
			// The ledger is sorted by date, so it's safe to break.
			break
		}
		switch v := tx.(type) {
		case Buy:
			if v.Security == security {
				pos = pos.Add(v.Quantity)
			}
		case Sell:
			if v.Security == security {
				pos = pos.Sub(v.Quantity)
			}
		}
	}
	return pos
}

// AllSecurities returns a sequence of all security symbols that appear in the
// ledger, in sorted order.
func (l *Ledger) AllSecurities() iter.Seq[string] {
	return func(yield func(string) bool) {
		visited := make(map[string]struct{})
		for _, tx := range l.transactions {
			if sym := securityOf(tx); sym != "" {
				visited[sym] = struct{}{}
			}
		}
		symbols := slices.Collect(maps.Keys(visited))
		slices.Sort(symbols)
		for _, sym := range symbols {
			if !yield(sym) {
				return
			}
		}
	}
}

// Portfolios returns a sequence of all named portfolios that appear in the
// ledger, in sorted order. Transactions without a portfolio tag are not counted.
func (l *Ledger) Portfolios() iter.Seq[string] {
	return func(yield func(string) bool) {
		visited := make(map[string]struct{})
		for _, tx := range l.transactions {
			if p := portfolioOf(tx); p != "" {
				visited[p] = struct{}{}
			}
		}
		names := slices.Collect(maps.Keys(visited))
		slices.Sort(names)
		for _, name := range names {
			if !yield(name) {
				return
			}
		}
	}
}

// SecurityDetails returns the display name and kind of a security as recorded
// on its most recent transaction carrying them.
func (l *Ledger) SecurityDetails(security string) (name string, kind SecurityKind) {
	kind = Stock
	for _, tx := range l.transactions {
		if securityOf(tx) != security {
			continue
		}
		var sc secCmd
		switch v := tx.(type) {
		case Buy:
			sc = v.secCmd
		case Sell:
			sc = v.secCmd
		}
		if sc.Name != "" {
			name = sc.Name
		}
		if sc.Kind != "" {
			kind = sc.Kind
		}
	}
	return name, kind
}

func securityOf(tx Transaction) string {
	switch v := tx.(type) {
	case Buy:
		return v.Security
	case Sell:
		return v.Security
	default:
		return ""
	}
}

func portfolioOf(tx Transaction) string {
	switch v := tx.(type) {
	case Buy:
		return v.Portfolio
	case Sell:
		return v.Portfolio
	default:
		return ""
	}
}

// AcceptAll is a predicate that accepts every transaction.
func AcceptAll(Transaction) bool { return true }

// BySecurity returns a predicate that filters transactions by security symbol.
func BySecurity(security string) func(Transaction) bool {
	return func(tx Transaction) bool {
		return securityOf(tx) == security
	}
}

// ByPortfolio returns a predicate that filters transactions by portfolio name.
// The empty name accepts every transaction, matching the "all portfolios" view.
func ByPortfolio(name string) func(Transaction) bool {
	return func(tx Transaction) bool {
		return name == "" || portfolioOf(tx) == name
	}
}
