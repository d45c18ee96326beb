package fintra

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// IncomeFund is the unspent balance of one income movement: a pool that
// subsequent expenses draw against. A fund shares the id of the income
// movement that originated it; that 1:1 relation is the only link between
// the two.
type IncomeFund struct {
	ID        string
	Title     string
	Original  Money
	Remaining Money
}

// check verifies the fund bounds invariant: 0 <= remaining <= original.
func (f IncomeFund) check() error {
	if f.Remaining.IsNegative() || f.Original.LessThan(f.Remaining) {
		return fmt.Errorf("fund %s: remaining %s out of bounds [0, %s]",
			f.ID, f.Remaining.Decimal(), f.Original.Decimal())
	}
	return nil
}

// MarshalJSON implements json.Marshaler for IncomeFund with a stable field order.
func (f IncomeFund) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", f.ID)
	w.Append("title", f.Title)
	w.Append("originalAmount", f.Original.Decimal())
	w.Append("remaining", f.Remaining.Decimal())
	return w.MarshalJSON()
}

type fundRecord struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Original  decimal.Decimal `json:"originalAmount"`
	Remaining decimal.Decimal `json:"remaining"`
}

func (r fundRecord) fund(currency string) IncomeFund {
	return IncomeFund{
		ID:        r.ID,
		Title:     r.Title,
		Original:  M(r.Original, currency),
		Remaining: M(r.Remaining, currency),
	}
}

// UnmarshalJSON decodes a fund; snapshot decoding rebinds amounts to the
// ledger currency afterwards.
func (f *IncomeFund) UnmarshalJSON(data []byte) error {
	var r fundRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	*f = r.fund("")
	return nil
}

// Allocation is the plan for backing one expense with income funds.
//
// Conservation law: the sum of all draw amounts plus Overspend equals the
// planned expense amount exactly.
type Allocation struct {
	Draws     []FundDraw
	Overspend Money
}

// Covered reports whether the funds fully back the expense.
func (a Allocation) Covered() bool { return a.Overspend.IsZero() }

// PlanAllocation distributes an expense across the available funds without
// mutating them.
//
// Candidates are the funds with a positive remaining balance. When the
// caller prefers a fund it is tried first (preferential, not exclusive) and
// the others follow in ledger order; otherwise candidates are tried largest
// remaining balance first. Each fund contributes min(remaining, left) until
// the expense is covered or the candidates are exhausted; whatever is left
// uncovered becomes the plan's Overspend.
func PlanAllocation(funds []IncomeFund, amount Money, preferredID string) Allocation {
	candidates := make([]IncomeFund, 0, len(funds))
	for _, f := range funds {
		if f.Remaining.IsPositive() {
			candidates = append(candidates, f)
		}
	}

	if preferredID != "" {
		for i, f := range candidates {
			if f.ID == preferredID {
				candidates = append([]IncomeFund{f}, append(candidates[:i:i], candidates[i+1:]...)...)
				break
			}
		}
	} else {
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[j].Remaining.LessThan(candidates[i].Remaining)
		})
	}

	plan := Allocation{}
	left := amount
	for _, f := range candidates {
		if left.IsZero() {
			break
		}
		take := f.Remaining.Min(left)
		plan.Draws = append(plan.Draws, FundDraw{FundID: f.ID, Amount: take})
		left = left.Sub(take)
	}
	plan.Overspend = left
	return plan
}
