package folio

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/folio/date"
	"github.com/shopspring/decimal"
)

// Side is the direction of a transaction.
type Side int

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	if s == Sell {
		return "sell"
	}
	return "buy"
}

// Signed returns quantity signed for the side: positive for a Buy, negative for a Sell,
// whatever the sign of quantity.
func (s Side) Signed(quantity decimal.Decimal) decimal.Decimal {
	if s == Sell {
		return quantity.Abs().Neg()
	}
	return quantity.Abs()
}

// Transaction is a buy or a sell recorded by the API. Quantity is signed,
// negative for a sell.
type Transaction struct {
	ID       string          `json:"id"`
	Ticker   string          `json:"ticker"`
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Date     date.Date       `json:"transaction_date"`
}

// Side returns Sell for a negative quantity, Buy otherwise.
func (t Transaction) Side() Side {
	if t.Quantity.IsNegative() {
		return Sell
	}
	return Buy
}

// Amount returns the unsigned cash amount of the transaction.
func (t Transaction) Amount() decimal.Decimal { return t.Quantity.Abs().Mul(t.Price) }

// Validate checks the transaction as received from the API.
func (t Transaction) Validate() error {
	switch {
	case t.ID == "":
		return fmt.Errorf("transaction without id: %w", ErrMalformed)
	case t.Ticker == "":
		return fmt.Errorf("transaction %s without ticker: %w", t.ID, ErrMalformed)
	case t.Price.IsNegative():
		return fmt.Errorf("transaction %s: negative price %s: %w", t.ID, t.Price, ErrMalformed)
	}
	return nil
}

// Transactions is the content of the transactions table.
type Transactions []Transaction

// Validate validates each transaction.
func (txs Transactions) Validate() error {
	for i, tx := range txs {
		if err := tx.Validate(); err != nil {
			return fmt.Errorf("transaction #%d: %w", i, err)
		}
	}
	return nil
}

// Find returns the transaction with the given id.
func (txs Transactions) Find(id string) (Transaction, bool) {
	for _, tx := range txs {
		if tx.ID == id {
			return tx, true
		}
	}
	return Transaction{}, false
}

// ForTicker returns the transactions of ticker. Tickers are compared case-insensitively
// since the API does not normalize them.
func (txs Transactions) ForTicker(ticker string) Transactions {
	var res Transactions
	for _, tx := range txs {
		if strings.EqualFold(strings.TrimSpace(tx.Ticker), ticker) {
			res = append(res, tx)
		}
	}
	return res
}

// Recent returns the transactions most recent first, at most n of them (all if n <= 0).
func (txs Transactions) Recent(n int) Transactions {
	sorted := slices.Clone(txs)
	slices.SortStableFunc(sorted, func(a, b Transaction) int { return b.Date.Sub(a.Date) })
	if n > 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// TransactionRequest is the payload to create or update a transaction.
// Build it with NewTransactionRequest so that the quantity sign matches the side.
type TransactionRequest struct {
	Ticker   string          `json:"ticker"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Date     *date.Date      `json:"transaction_date,omitempty"`
}

// NewTransactionRequest returns a request for side, the ticker is upper-cased
// and the quantity signed.
func NewTransactionRequest(side Side, ticker string, quantity, price decimal.Decimal) TransactionRequest {
	return TransactionRequest{
		Ticker:   strings.ToUpper(strings.TrimSpace(ticker)),
		Quantity: side.Signed(quantity),
		Price:    price,
	}
}

// On sets the transaction date.
func (r TransactionRequest) On(d date.Date) TransactionRequest {
	r.Date = &d
	return r
}

// MarshalJSON encodes amounts as JSON numbers, decimal.Decimal defaults to strings.
func (r TransactionRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Ticker   string      `json:"ticker"`
		Quantity json.Number `json:"quantity"`
		Price    json.Number `json:"price"`
		Date     *date.Date  `json:"transaction_date,omitempty"`
	}{r.Ticker, json.Number(r.Quantity.String()), json.Number(r.Price.String()), r.Date})
}

// Validate checks the request before it is sent.
func (r TransactionRequest) Validate() error {
	switch {
	case r.Ticker == "":
		return fmt.Errorf("ticker is required")
	case r.Quantity.IsZero():
		return fmt.Errorf("quantity must not be zero")
	case !r.Price.IsPositive():
		return fmt.Errorf("price must be positive, got %s", r.Price)
	}
	return nil
}
