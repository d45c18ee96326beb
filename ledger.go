package fintra

import (
	"fmt"
	"iter"
	"sort"

	"github.com/google/uuid"
)

// DefaultCurrency is the ledger currency used when none is configured.
const DefaultCurrency = "EUR"

// Ledger holds movements, income funds and debts, and enforces the
// referential invariants between them.
//
// A Ledger is an explicit value passed to whoever needs it; there is no
// package-level instance. Movements are kept in chronological order. Every
// mutation either completes with all invariants intact or leaves the
// ledger untouched.
type Ledger struct {
	name      string
	currency  string
	movements []Movement
	funds     []IncomeFund
	debts     []Debt // active debts only (remaining > 0)
}

// NewLedger creates an empty ledger in the given currency.
func NewLedger(currency string) *Ledger {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Ledger{currency: currency}
}

// Name returns the ledger name (its file name without extension).
func (l *Ledger) Name() string { return l.name }

// Currency returns the ledger currency code.
func (l *Ledger) Currency() string { return l.currency }

// Amount builds a Money in the ledger currency.
func (l *Ledger) Amount(value float64) Money { return M(value, l.currency) }

// Movements returns an iterator over movements in chronological order.
func (l *Ledger) Movements() iter.Seq[Movement] {
	return func(yield func(Movement) bool) {
		for _, m := range l.movements {
			if !yield(m) {
				return
			}
		}
	}
}

// Funds returns an iterator over income funds in creation order.
func (l *Ledger) Funds() iter.Seq[IncomeFund] {
	return func(yield func(IncomeFund) bool) {
		for _, f := range l.funds {
			if !yield(f) {
				return
			}
		}
	}
}

// Debts returns an iterator over active debts in creation order.
func (l *Ledger) Debts() iter.Seq[Debt] {
	return func(yield func(Debt) bool) {
		for _, d := range l.debts {
			if !yield(d) {
				return
			}
		}
	}
}

// Movement returns the movement with this id, if any.
func (l *Ledger) Movement(id string) (Movement, bool) {
	for _, m := range l.movements {
		if m.ID == id {
			return m, true
		}
	}
	return Movement{}, false
}

// Fund returns the income fund with this id, if any.
func (l *Ledger) Fund(id string) (IncomeFund, bool) {
	for _, f := range l.funds {
		if f.ID == id {
			return f, true
		}
	}
	return IncomeFund{}, false
}

// Debt returns the active debt with this id, if any.
func (l *Ledger) Debt(id string) (Debt, bool) {
	for _, d := range l.debts {
		if d.ID == id {
			return d, true
		}
	}
	return Debt{}, false
}

// IsEmpty reports whether the ledger holds no records at all.
func (l *Ledger) IsEmpty() bool {
	return len(l.movements) == 0 && len(l.debts) == 0 && len(l.funds) == 0
}

// stableSort sorts movements by date. The sort is stable: movements on the
// same day keep their insertion order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.movements, func(i, j int) bool {
		return l.movements[i].Date.Before(l.movements[j].Date)
	})
}

// snapshot captures the mutable state so a failed multi-step mutation can
// be rolled back without observable partial updates.
func (l *Ledger) snapshot() Ledger {
	s := *l
	s.movements = make([]Movement, len(l.movements))
	copy(s.movements, l.movements)
	for i, m := range s.movements {
		if len(m.FundsUsed) > 0 {
			s.movements[i].FundsUsed = append([]FundDraw(nil), m.FundsUsed...)
		}
	}
	s.funds = append([]IncomeFund(nil), l.funds...)
	s.debts = append([]Debt(nil), l.debts...)
	return s
}

func (l *Ledger) restore(s Ledger) { *l = s }

// AddMovement validates and records a movement, returning its new id.
//
// Income movements originate an income fund carrying the same id. Expense
// movements are backed by the fund allocator; when the available funds
// cannot cover the amount and allowOverspend is false, the call fails with
// ErrOverspend and nothing is recorded. With allowOverspend true the
// movement is recorded with partial (or no) fund backing and the uncovered
// portion kept in Overspend.
func (l *Ledger) AddMovement(m Movement, allowOverspend bool) (string, error) {
	m.Amount = M(m.Amount.Decimal(), l.currency)
	m, err := m.Validate()
	if err != nil {
		return "", err
	}
	m.ID = uuid.NewString()
	m.FundsUsed = nil
	m.Overspend = M(0, l.currency)

	switch m.Type {
	case Income:
		l.funds = append(l.funds, IncomeFund{
			ID:        m.ID,
			Title:     m.Title,
			Original:  m.Amount,
			Remaining: m.Amount,
		})
	case Expense:
		if m.IncomeSourceID != "" {
			if _, ok := l.Fund(m.IncomeSourceID); !ok {
				return "", fmt.Errorf("preferred fund %q: %w", m.IncomeSourceID, ErrNotFound)
			}
		}
		plan := PlanAllocation(l.funds, m.Amount, m.IncomeSourceID)
		if !plan.Covered() && !allowOverspend {
			return "", fmt.Errorf("%w: %s not covered", ErrOverspend, plan.Overspend)
		}
		l.applyAllocation(plan)
		m.FundsUsed = plan.Draws
		m.Overspend = plan.Overspend
	}

	l.movements = append(l.movements, m)
	l.stableSort()
	return m.ID, nil
}

// applyAllocation decrements the planned draws from the funds.
func (l *Ledger) applyAllocation(plan Allocation) {
	for _, draw := range plan.Draws {
		for i := range l.funds {
			if l.funds[i].ID == draw.FundID {
				l.funds[i].Remaining = l.funds[i].Remaining.Sub(draw.Amount)
				break
			}
		}
	}
}

// DeleteMovement removes a movement and reverses its effect on the funds.
//
// Deleting an expense credits every fund it drew from by exactly the drawn
// amount. Deleting an income movement removes its fund; if live expense
// movements still draw from that fund the call fails with ErrConflict,
// unless cascade is true, in which case the dangling draws are converted
// into overspend on the referencing movements and the fund is removed.
func (l *Ledger) DeleteMovement(id string, cascade bool) error {
	idx := -1
	for i, m := range l.movements {
		if m.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("movement %q: %w", id, ErrNotFound)
	}
	m := l.movements[idx]

	saved := l.snapshot()
	switch m.Type {
	case Expense:
		for _, draw := range m.FundsUsed {
			for i := range l.funds {
				if l.funds[i].ID == draw.FundID {
					l.funds[i].Remaining = l.funds[i].Remaining.Add(draw.Amount)
					break
				}
			}
			// A missing fund was already removed by a cascade; nothing to credit.
		}
	case Income:
		if err := l.removeFund(m.ID, cascade); err != nil {
			l.restore(saved)
			return err
		}
	}

	l.movements = append(l.movements[:idx], l.movements[idx+1:]...)
	if err := l.checkFunds(); err != nil {
		l.restore(saved)
		return err
	}
	return nil
}

// removeFund drops the fund originated by an income movement. Draws of live
// expense movements against it are either a conflict or, when cascading,
// folded into those movements' overspend so the conservation law holds.
func (l *Ledger) removeFund(fundID string, cascade bool) error {
	fi := -1
	for i, f := range l.funds {
		if f.ID == fundID {
			fi = i
			break
		}
	}
	if fi < 0 {
		return nil // already reconciled away
	}

	for mi := range l.movements {
		m := &l.movements[mi]
		kept := m.FundsUsed[:0:0]
		for _, draw := range m.FundsUsed {
			if draw.FundID != fundID {
				kept = append(kept, draw)
				continue
			}
			if !cascade {
				return fmt.Errorf("fund %q still backs movement %q: %w", fundID, m.ID, ErrConflict)
			}
			m.Overspend = m.Overspend.Add(draw.Amount)
		}
		if len(kept) != len(m.FundsUsed) {
			m.FundsUsed = kept
		}
		if m.IncomeSourceID == fundID {
			m.IncomeSourceID = ""
		}
	}

	l.funds = append(l.funds[:fi], l.funds[fi+1:]...)
	return nil
}

// UpdateMovement replaces a movement by deleting it and recording the
// replacement under a fresh id. The original is restored if the
// replacement cannot be recorded.
func (l *Ledger) UpdateMovement(id string, m Movement, allowOverspend bool) (string, error) {
	saved := l.snapshot()
	if err := l.DeleteMovement(id, false); err != nil {
		return "", err
	}
	newID, err := l.AddMovement(m, allowOverspend)
	if err != nil {
		l.restore(saved)
		return "", err
	}
	return newID, nil
}

// AddDebt validates and records a debt, returning its new id. Creating a
// debt also records the loan movement: lending out is an expense, borrowing
// is an income.
func (l *Ledger) AddDebt(d Debt) (string, error) {
	d.Amount = M(d.Amount.Decimal(), l.currency)
	d.Remaining = M(d.Remaining.Decimal(), l.currency)
	d, err := d.Validate()
	if err != nil {
		return "", err
	}
	d.ID = uuid.NewString()

	saved := l.snapshot()
	l.debts = append(l.debts, d)
	// The loan movement is a consequence of the debt, not a user decision:
	// an uncovered loan expense is recorded as overspend without asking.
	_, err = l.AddMovement(Movement{
		Date:        d.Date,
		Type:        d.LoanMovementType(),
		Title:       "Loan " + d.Title,
		Description: d.Description,
		Amount:      d.Amount,
	}, true)
	if err != nil {
		l.restore(saved)
		return "", fmt.Errorf("recording loan movement: %w", err)
	}
	return d.ID, nil
}

// PayDebt records a partial or final payment on an active debt. The
// payment must be positive and cannot exceed the remaining balance. Each
// payment emits exactly one settlement movement, dated today. A debt paid
// down to zero leaves the active set.
func (l *Ledger) PayDebt(id string, amount Money) error {
	di := -1
	for i, d := range l.debts {
		if d.ID == id {
			di = i
			break
		}
	}
	if di < 0 {
		return fmt.Errorf("debt %q: %w", id, ErrNotFound)
	}
	d := l.debts[di]

	amount = M(amount.Decimal(), l.currency)
	if !amount.IsPositive() {
		return fmt.Errorf("%w: payment must be positive, got %s", ErrInvalidAmount, amount.Decimal())
	}
	if d.Remaining.LessThan(amount) {
		return fmt.Errorf("%w: payment %s exceeds remaining %s", ErrInvalidAmount, amount.Decimal(), d.Remaining.Decimal())
	}

	saved := l.snapshot()
	_, err := l.AddMovement(Movement{
		Date:   Today(), // settlement time, not the debt date
		Type:   d.SettlementMovementType(),
		Title:  "Payment " + d.Title,
		Amount: amount,
	}, true)
	if err != nil {
		l.restore(saved)
		return fmt.Errorf("recording settlement movement: %w", err)
	}

	d.Remaining = d.Remaining.Sub(amount)
	if d.Remaining.IsZero() {
		l.debts = append(l.debts[:di], l.debts[di+1:]...)
	} else {
		l.debts[di] = d
	}
	return nil
}

// PayFullDebt settles the whole remaining balance of a debt.
func (l *Ledger) PayFullDebt(id string) error {
	d, ok := l.Debt(id)
	if !ok {
		return fmt.Errorf("debt %q: %w", id, ErrNotFound)
	}
	return l.PayDebt(id, d.Remaining)
}

// DeleteDebt removes a debt in any state. When the debt still has a
// remaining balance and writeOff is true, a settlement-type write-off
// movement is emitted for the forgone remainder.
func (l *Ledger) DeleteDebt(id string, writeOff bool) error {
	di := -1
	for i, d := range l.debts {
		if d.ID == id {
			di = i
			break
		}
	}
	if di < 0 {
		return fmt.Errorf("debt %q: %w", id, ErrNotFound)
	}
	d := l.debts[di]

	saved := l.snapshot()
	l.debts = append(l.debts[:di], l.debts[di+1:]...)
	if writeOff && d.Remaining.IsPositive() {
		_, err := l.AddMovement(Movement{
			Date:   Today(),
			Type:   d.SettlementMovementType(),
			Title:  "Write-off " + d.Title,
			Amount: d.Remaining,
		}, true)
		if err != nil {
			l.restore(saved)
			return fmt.Errorf("recording write-off movement: %w", err)
		}
	}
	return nil
}

// Reconcile removes funds referenced by no movement: neither the income
// movement that originated them nor any expense draw. It returns the
// number of funds removed and is idempotent.
func (l *Ledger) Reconcile() int {
	referenced := make(map[string]bool)
	for _, m := range l.movements {
		referenced[m.ID] = referenced[m.ID] || m.Type == Income
		for _, draw := range m.FundsUsed {
			referenced[draw.FundID] = true
		}
	}
	kept := l.funds[:0:0]
	removed := 0
	for _, f := range l.funds {
		if referenced[f.ID] {
			kept = append(kept, f)
		} else {
			removed++
		}
	}
	l.funds = kept
	return removed
}

// checkFunds verifies the fund bounds invariant after a mutation.
func (l *Ledger) checkFunds() error {
	for _, f := range l.funds {
		if err := f.check(); err != nil {
			return err
		}
	}
	return nil
}
