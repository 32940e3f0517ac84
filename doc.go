// Package journal computes holdings, valuations and money-weighted returns
// from a chronological ledger of buy and sell transactions.
//
// The ledger is the single source of truth: every report is recomputed from
// it on demand, with market prices supplied by a [QuoteProvider] collaborator.
package journal
