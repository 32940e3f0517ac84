package journal

import (
	"encoding/json"
	"errors"
	"fmt"
)

// CommandType is a typed string for identifying transaction commands.
type CommandType string

// Command types used for identifying transactions.
const (
	CmdBuy  CommandType = "buy"
	CmdSell CommandType = "sell"
)

// SecurityKind identifies the kind of instrument a transaction refers to.
type SecurityKind string

const (
	Stock SecurityKind = "stock"
	Fund  SecurityKind = "fund"
)

// ParseSecurityKind parses a string into a SecurityKind.
func ParseSecurityKind(s string) (SecurityKind, error) {
	switch SecurityKind(s) {
	case Stock:
		return Stock, nil
	case Fund:
		return Fund, nil
	default:
		return "", fmt.Errorf("unknown security kind: %q", s)
	}
}

// Transaction defines the common interface for all types of transactions
// that can be recorded in the ledger.
type Transaction interface {
	What() CommandType // What returns the command type of the transaction (e.g., "buy", "sell").
	When() Date        // When returns the date on which the transaction occurred.
	Equal(Transaction) bool
	Validate() (Transaction, error)
}

type baseCmd struct {
	Command   CommandType `json:"command"`             // Command specifies the type of transaction (e.g., "buy", "sell").
	Date      Date        `json:"date"`                // Date is the date when the transaction took place.
	Memo      string      `json:"memo,omitempty"`      // Memo provides an optional rationale or note for the transaction.
	Portfolio string      `json:"portfolio,omitempty"` // Portfolio is the optional named portfolio this transaction belongs to.
}

// What returns the command name for the transaction, which is used to identify the type of transaction.
func (t baseCmd) What() CommandType {
	return t.Command
}

// When returns the date of the transaction.
func (t baseCmd) When() Date {
	return t.Date
}

// Rationale returns the memo associated with the transaction.
func (t baseCmd) Rationale() string {
	return t.Memo
}

// MarshalJSON implements the json.Marshaler interface for baseCmd.
func (t baseCmd) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", t.Command)
	w.Append("date", t.Date)
	w.Optional("memo", t.Memo)
	w.Optional("portfolio", t.Portfolio)
	return w.MarshalJSON()
}

// Validate checks the base command fields. It sets the date to today if it's zero.
// It's meant to be embedded in other transaction validation methods.
func (t *baseCmd) Validate() {
	if t.Date == (Date{}) {
		t.Date = Today()
	}
}

// secCmd is a component for security-based transactions (buy, sell).
type secCmd struct {
	baseCmd
	Security string       `json:"security"`       // Security is the symbol of the security involved in the transaction.
	Name     string       `json:"name,omitempty"` // Name is the optional display name of the security.
	Kind     SecurityKind `json:"kind,omitempty"` // Kind is the instrument kind, stock or fund.
}

// Validate checks the security command fields. It validates the base command,
// ensures a security symbol is present, and defaults the kind to stock.
func (t *secCmd) Validate() error {
	t.baseCmd.Validate()

	if t.Security == "" {
		return errors.New("security symbol is missing")
	}
	if t.Kind == "" {
		t.Kind = Stock
	} else if _, err := ParseSecurityKind(string(t.Kind)); err != nil {
		return err
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for secCmd.
func (t secCmd) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("security", t.Security)
	w.Optional("name", t.Name)
	w.Optional("kind", t.Kind)
	return w.MarshalJSON()
}

// Buy represents a transaction where a quantity of a security is purchased
// at a given unit price.
type Buy struct {
	secCmd
	Quantity Quantity // Quantity is the number of shares or units bought.
	Price    Money    // Price is the unit price paid.
}

// NewBuy creates a new Buy transaction.
func NewBuy(day Date, memo, security string, quantity Quantity, price Money) Buy {
	return Buy{
		secCmd:   secCmd{baseCmd: baseCmd{Command: CmdBuy, Date: day, Memo: memo}, Security: security},
		Quantity: quantity,
		Price:    price,
	}
}

// Cost returns the total cost of the purchase.
func (t Buy) Cost() Money { return t.Price.Mul(t.Quantity) }

// MarshalJSON implements the json.Marshaler interface for Buy.
func (t Buy) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.secCmd)
	w.Append("quantity", t.Quantity)
	w.EmbedFrom(t.Price)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Buy.
// It handles the custom structure where price and currency are separate fields.
func (t *Buy) UnmarshalJSON(data []byte) error {
	// Use a temporary type that has all possible fields.
	var temp struct {
		secCmd
		priceCmd
		Quantity Quantity `json:"quantity"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}

	t.secCmd = temp.secCmd
	t.Quantity = temp.Quantity
	t.Price = temp.Money()
	return nil
}

func (t Buy) Equal(other Transaction) bool {
	o, ok := other.(Buy)
	return ok && t.secCmd == o.secCmd && t.Quantity.Equal(o.Quantity) && t.Price.Equal(o.Price)
}

func (t *Buy) Currency() string { return t.Price.Currency() }

// Validate checks the Buy transaction's fields. It ensures that the quantity
// and unit price are positive. It deliberately does not check any position or
// cash constraint: the ledger records what happened, not what was affordable.
func (t Buy) Validate() (Transaction, error) {
	if err := t.secCmd.Validate(); err != nil {
		return t, err
	}

	if !t.Quantity.IsPositive() {
		return t, fmt.Errorf("buy transaction quantity must be positive, got %s", t.Quantity.String())
	}
	if !t.Price.IsPositive() {
		return t, fmt.Errorf("buy transaction price must be positive, got %s", t.Price.String())
	}
	return t, nil
}

// Sell represents a transaction where a quantity of a security is sold
// at a given unit price.
type Sell struct {
	secCmd
	Quantity Quantity // Quantity is the number of shares or units sold.
	Price    Money    // Price is the unit price received.
}

// NewSell creates a new Sell transaction.
func NewSell(day Date, memo, security string, quantity Quantity, price Money) Sell {
	return Sell{
		secCmd:   secCmd{baseCmd: baseCmd{Command: CmdSell, Date: day, Memo: memo}, Security: security},
		Quantity: quantity,
		Price:    price,
	}
}

// Proceeds returns the total proceeds of the sale.
func (t Sell) Proceeds() Money { return t.Price.Mul(t.Quantity) }

// MarshalJSON implements the json.Marshaler interface for Sell.
func (t Sell) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.secCmd)
	w.Append("quantity", t.Quantity)
	w.EmbedFrom(t.Price)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Sell.
func (t *Sell) UnmarshalJSON(data []byte) error {
	// Use a temporary type that has all possible fields.
	var temp struct {
		secCmd
		priceCmd
		Quantity Quantity `json:"quantity"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}

	t.secCmd = temp.secCmd
	t.Quantity = temp.Quantity
	t.Price = temp.Money()
	return nil
}

func (t Sell) Equal(other Transaction) bool {
	o, ok := other.(Sell)
	return ok && t.secCmd == o.secCmd && t.Quantity.Equal(o.Quantity) && t.Price.Equal(o.Price)
}

func (t *Sell) Currency() string { return t.Price.Currency() }

// Validate checks the Sell transaction's fields. It ensures that the quantity
// and unit price are positive. Selling more than the current position is
// accepted and simply drives the running position negative.
func (t Sell) Validate() (Transaction, error) {
	if err := t.secCmd.Validate(); err != nil {
		return t, err
	}

	if !t.Quantity.IsPositive() {
		return t, fmt.Errorf("sell transaction quantity must be positive, got %s", t.Quantity.String())
	}
	if !t.Price.IsPositive() {
		return t, fmt.Errorf("sell transaction price must be positive, got %s", t.Price.String())
	}
	return t, nil
}
