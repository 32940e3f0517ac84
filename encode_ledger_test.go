package journal

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestDecodeLedger(t *testing.T) {
	// A multi-line string representing a JSONL stream with all command types
	jsonlStream := `
{"command":"buy","date":"2025-08-01","security":"RELIANCE","quantity":10,"price":2400.5}
{"command":"sell","date":"2025-08-02","security":"TCS","quantity":5,"currency":"INR","price":3300}
{"command":"buy","date":"2025-08-03","portfolio":"retirement","security":"PPFAS-FLEXI","name":"Parag Parikh Flexi Cap","kind":"fund","quantity":120.25,"currency":"INR","price":62.1}
`
	ledger, err := DecodeLedger(strings.NewReader(jsonlStream))

	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}

	if ledger.Len() != 3 {
		t.Fatalf("DecodeLedger() decoded wrong number of transactions. Got: %d, want: %d", ledger.Len(), 3)
	}

	expectedTypes := []reflect.Type{
		reflect.TypeOf(Buy{}),
		reflect.TypeOf(Sell{}),
		reflect.TypeOf(Buy{}),
	}
	for i, tx := range ledger.Transactions() {
		if reflect.TypeOf(tx) != expectedTypes[i] {
			t.Errorf("Transaction %d has wrong type. Got: %T, want: %v", i+1, tx, expectedTypes[i])
		}
	}

	// Spot-check the richest line.
	fund, ok := ledger.transactions[2].(Buy)
	if !ok {
		t.Fatalf("transaction 3 is %T, want Buy", ledger.transactions[2])
	}
	if fund.Portfolio != "retirement" {
		t.Errorf("Portfolio = %q, want retirement", fund.Portfolio)
	}
	if fund.Kind != Fund {
		t.Errorf("Kind = %q, want fund", fund.Kind)
	}
	if !fund.Quantity.Equal(Q(120.25)) {
		t.Errorf("Quantity = %v, want 120.25", fund.Quantity)
	}
	if !fund.Price.Equal(INR(62.1)) {
		t.Errorf("Price = %v, want 62.1 INR", fund.Price)
	}
}

func TestDecodeLedger_UnknownCommand(t *testing.T) {
	jsonlStream := `{"command":"dividend","date":"2025-08-01","security":"ITC","price":12}`

	if _, err := DecodeLedger(strings.NewReader(jsonlStream)); err == nil {
		t.Error("DecodeLedger() expected an error for an unknown command, got nil")
	}
}

func TestEncodeLedger(t *testing.T) {
	// Create test data in a deliberately unsorted order.
	// tx2 and tx3 have the same date. Their relative order must be preserved.
	tx1 := NewBuy(MustParse("2025-08-03"), "", "RELIANCE", Q(2), INR(2400))
	tx2 := NewBuy(MustParse("2025-08-01"), "", "TCS", Q(1), INR(3300))
	tx3 := NewSell(MustParse("2025-08-01"), "", "INFY", Q(4), INR(1500))

	ledger := &Ledger{
		transactions: []Transaction{
			tx1, // Should be last
			tx2, // Should be first
			tx3, // Should be second (stable sort)
		},
	}

	// Manually sort the transactions to build the expected output string.
	expectedOrder := []Transaction{tx2, tx3, tx1}
	var expectedOutputBuffer bytes.Buffer
	for _, tx := range expectedOrder {
		if err := EncodeTransaction(&expectedOutputBuffer, tx); err != nil {
			t.Fatalf("Failed to encode expected transaction: %v", err)
		}
	}

	var buffer bytes.Buffer
	if err := EncodeLedger(&buffer, ledger); err != nil {
		t.Fatalf("EncodeLedger() returned an unexpected error: %v", err)
	}

	if got := buffer.String(); got != expectedOutputBuffer.String() {
		t.Errorf("EncodeLedger() produced incorrect output.\nGot:\n%s\nWant:\n%s", got, expectedOutputBuffer.String())
	}
}

func TestEncodeDecodeLedger_RoundTrip(t *testing.T) {
	fund := NewBuy(MustParse("2025-08-03"), "monthly SIP", "PPFAS-FLEXI", Q(120.25), INR(62.1))
	fund.Portfolio = "retirement"
	fund.Name = "Parag Parikh Flexi Cap"
	fund.Kind = Fund

	original := NewLedger()
	original.Append(
		NewBuy(MustParse("2025-08-01"), "", "RELIANCE", Q(10), INR(2400.5)),
		NewSell(MustParse("2025-08-02"), "", "RELIANCE", Q(3), INR(2500)),
		fund,
	)

	var buffer bytes.Buffer
	if err := EncodeLedger(&buffer, original); err != nil {
		t.Fatalf("EncodeLedger() returned an unexpected error: %v", err)
	}

	decoded, err := DecodeLedger(&buffer)
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}

	if decoded.Len() != original.Len() {
		t.Fatalf("round trip changed the transaction count: got %d, want %d", decoded.Len(), original.Len())
	}
	for i := range original.transactions {
		if !original.transactions[i].Equal(decoded.transactions[i]) {
			t.Errorf("transaction %d changed in round trip.\nGot:  %+v\nWant: %+v", i, decoded.transactions[i], original.transactions[i])
		}
	}
}

func TestEncodeTransaction_CanonicalFieldOrder(t *testing.T) {
	buy := NewBuy(MustParse("2025-08-01"), "", "RELIANCE", Q(10), INR(2400.5))

	var buffer bytes.Buffer
	if err := EncodeTransaction(&buffer, buy); err != nil {
		t.Fatalf("EncodeTransaction() returned an unexpected error: %v", err)
	}

	want := `{"command":"buy","date":"2025-08-01","security":"RELIANCE","quantity":10,"currency":"INR","price":2400.5}` + "\n"
	if got := buffer.String(); got != want {
		t.Errorf("EncodeTransaction() = %q, want %q", got, want)
	}
}
