package fintra

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DebtDirection tells who owes whom.
type DebtDirection string

const (
	// OwedToMe is a receivable: the person owes the ledger owner.
	OwedToMe DebtDirection = "owedToMe"
	// OwedByMe is a payable: the ledger owner owes the person.
	OwedByMe DebtDirection = "owedByMe"
)

// ParseDebtDirection parses a string into a DebtDirection. It accepts the
// legacy Spanish spellings found in older data.
func ParseDebtDirection(s string) (DebtDirection, error) {
	switch s {
	case "owedToMe", "meDeben":
		return OwedToMe, nil
	case "owedByMe", "debo":
		return OwedByMe, nil
	default:
		return "", fmt.Errorf("unknown debt direction: %q", s)
	}
}

// Debt is a tracked receivable or payable with a partial-payment history.
// It is active while Remaining is positive; the store removes it once the
// balance reaches zero.
type Debt struct {
	ID          string
	Direction   DebtDirection
	Person      string
	Title       string
	Description string
	Amount      Money // original amount
	Remaining   Money
	Date        Date
}

// Validate checks the debt fields the user controls. It sets the date to
// today if zero, initializes Remaining from Amount, and returns the fixed debt.
func (d Debt) Validate() (Debt, error) {
	if d.Date.IsZero() {
		d.Date = Today()
	}
	if d.Person == "" {
		return d, fmt.Errorf("%w: debt person is missing", ErrValidation)
	}
	if d.Title == "" {
		return d, fmt.Errorf("%w: debt title is missing", ErrValidation)
	}
	// The title and description end up in loan and settlement movements,
	// which the exchange format cannot carry a ';' through.
	if strings.ContainsRune(d.Title, ';') || strings.ContainsRune(d.Description, ';') {
		return d, fmt.Errorf("%w: debt title and description cannot contain ';'", ErrValidation)
	}
	if d.Direction != OwedToMe && d.Direction != OwedByMe {
		return d, fmt.Errorf("%w: unknown debt direction %q", ErrValidation, d.Direction)
	}
	if !d.Amount.IsPositive() {
		return d, fmt.Errorf("%w: debt amount must be positive, got %s", ErrValidation, d.Amount.Decimal())
	}
	if d.Remaining.IsZero() {
		d.Remaining = d.Amount
	}
	if d.Remaining.IsNegative() || d.Amount.LessThan(d.Remaining) {
		return d, fmt.Errorf("%w: debt remaining %s out of bounds [0, %s]",
			ErrValidation, d.Remaining.Decimal(), d.Amount.Decimal())
	}
	return d, nil
}

// check verifies the debt bounds invariant: 0 <= remaining <= amount.
func (d Debt) check() error {
	if d.Remaining.IsNegative() || d.Amount.LessThan(d.Remaining) {
		return fmt.Errorf("debt %s: remaining %s out of bounds [0, %s]",
			d.ID, d.Remaining.Decimal(), d.Amount.Decimal())
	}
	return nil
}

// LoanMovementType is the movement type recorded when the debt is created:
// lending money out is an expense, borrowing is an income.
func (d Debt) LoanMovementType() MovementType {
	if d.Direction == OwedToMe {
		return Expense
	}
	return Income
}

// SettlementMovementType is the movement type recorded for each payment,
// the inverse of the loan: a receivable paid back is an income, a payable
// paid off is an expense.
func (d Debt) SettlementMovementType() MovementType {
	if d.Direction == OwedToMe {
		return Income
	}
	return Expense
}

// MarshalJSON implements json.Marshaler for Debt with a stable field order.
func (d Debt) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", d.ID)
	w.Append("type", d.Direction)
	w.Append("person", d.Person)
	w.Append("title", d.Title)
	w.Optional("description", d.Description)
	w.Append("amount", d.Amount.Decimal())
	w.Append("remaining", d.Remaining.Decimal())
	w.Append("date", d.Date)
	return w.MarshalJSON()
}

type debtRecord struct {
	ID          string          `json:"id"`
	Direction   DebtDirection   `json:"type"`
	Person      string          `json:"person"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Remaining   decimal.Decimal `json:"remaining"`
	Date        Date            `json:"date"`
}

func (r debtRecord) debt(currency string) Debt {
	return Debt{
		ID:          r.ID,
		Direction:   r.Direction,
		Person:      r.Person,
		Title:       r.Title,
		Description: r.Description,
		Amount:      M(r.Amount, currency),
		Remaining:   M(r.Remaining, currency),
		Date:        r.Date,
	}
}

// UnmarshalJSON decodes a debt; snapshot decoding rebinds amounts to the
// ledger currency afterwards.
func (d *Debt) UnmarshalJSON(data []byte) error {
	var r debtRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	*d = r.debt("")
	return nil
}
