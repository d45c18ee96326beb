package fintra

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MovementType discriminates the two kinds of dated entries.
type MovementType string

const (
	Income  MovementType = "income"
	Expense MovementType = "expense"
)

// ParseMovementType parses a string into a MovementType. It accepts the
// legacy Spanish spellings found in older exchange files.
func ParseMovementType(s string) (MovementType, error) {
	switch s {
	case "income", "ingreso":
		return Income, nil
	case "expense", "egreso":
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown movement type: %q", s)
	}
}

// FundDraw records one portion of an expense taken from one income fund.
type FundDraw struct {
	FundID string
	Amount Money
}

// MarshalJSON implements json.Marshaler for FundDraw.
func (f FundDraw) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("fundId", f.FundID)
	w.Append("amount", f.Amount.Decimal())
	return w.MarshalJSON()
}

// Movement is a single dated income or expense entry.
//
// Expense movements may carry an allocation record: the funds they drew
// from (FundsUsed), the fund the caller preferred (IncomeSourceID), and the
// portion no fund could cover (Overspend). Income movements carry none of
// these; instead each income movement originates exactly one IncomeFund
// sharing its id.
type Movement struct {
	ID          string
	Date        Date
	Type        MovementType
	Title       string
	Description string
	Amount      Money

	// Expense only.
	IncomeSourceID string
	FundsUsed      []FundDraw
	Overspend      Money
}

// Validate checks the movement fields the user controls. It sets the date
// to today if it is zero and returns the fixed movement.
func (m Movement) Validate() (Movement, error) {
	if m.Date.IsZero() {
		m.Date = Today()
	}
	if m.Title == "" {
		return m, fmt.Errorf("%w: movement title is missing", ErrValidation)
	}
	// The exchange format has no escaping, a ';' would corrupt the line.
	if strings.ContainsRune(m.Title, ';') || strings.ContainsRune(m.Description, ';') {
		return m, fmt.Errorf("%w: movement title and description cannot contain ';'", ErrValidation)
	}
	if m.Type != Income && m.Type != Expense {
		return m, fmt.Errorf("%w: unknown movement type %q", ErrValidation, m.Type)
	}
	if !m.Amount.IsPositive() {
		return m, fmt.Errorf("%w: movement amount must be positive, got %s", ErrValidation, m.Amount.Decimal())
	}
	if m.Type == Income && (m.IncomeSourceID != "" || len(m.FundsUsed) > 0 || !m.Overspend.IsZero()) {
		return m, fmt.Errorf("%w: income movements cannot carry fund allocations", ErrValidation)
	}
	return m, nil
}

// DrawnTotal returns the sum of all fund draws of this movement.
func (m Movement) DrawnTotal() Money {
	total := M(0, m.Amount.Currency())
	for _, d := range m.FundsUsed {
		total = total.Add(d.Amount)
	}
	return total
}

// MarshalJSON implements json.Marshaler for Movement with a stable field order.
func (m Movement) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", m.ID)
	w.Append("date", m.Date)
	w.Append("type", m.Type)
	w.Append("title", m.Title)
	w.Optional("description", m.Description)
	w.Append("amount", m.Amount.Decimal())
	w.Optional("incomeSourceId", m.IncomeSourceID)
	if len(m.FundsUsed) > 0 {
		w.Append("fundsUsed", m.FundsUsed)
	}
	if !m.Overspend.IsZero() {
		w.Append("overspend", m.Overspend.Decimal())
	}
	return w.MarshalJSON()
}

// movementRecord is the read-side shape of a Movement in snapshot files.
type movementRecord struct {
	ID             string          `json:"id"`
	Date           Date            `json:"date"`
	Type           MovementType    `json:"type"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	IncomeSourceID string          `json:"incomeSourceId"`
	FundsUsed      []fundDrawRecord `json:"fundsUsed"`
	Overspend      decimal.Decimal `json:"overspend"`
}

type fundDrawRecord struct {
	FundID string          `json:"fundId"`
	Amount decimal.Decimal `json:"amount"`
}

func (r movementRecord) movement(currency string) Movement {
	m := Movement{
		ID:             r.ID,
		Date:           r.Date,
		Type:           r.Type,
		Title:          r.Title,
		Description:    r.Description,
		Amount:         M(r.Amount, currency),
		IncomeSourceID: r.IncomeSourceID,
		Overspend:      M(r.Overspend, currency),
	}
	for _, d := range r.FundsUsed {
		m.FundsUsed = append(m.FundsUsed, FundDraw{FundID: d.FundID, Amount: M(d.Amount, currency)})
	}
	return m
}

// UnmarshalJSON decodes a movement without its currency; snapshot decoding
// rebinds amounts to the ledger currency afterwards.
func (m *Movement) UnmarshalJSON(data []byte) error {
	var r movementRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	*m = r.movement("")
	return nil
}
