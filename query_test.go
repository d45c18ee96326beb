package fintra

import "testing"

func TestQuery(t *testing.T) {
	l := newTestLedger()
	addIncome(t, l, "2024-01-05", 2500, "Salary")
	addExpense(t, l, "2024-01-10", 89.9, "Groceries")

	v, err := Query(l, "$.movements[*].title")
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	titles, ok := v.([]any)
	if !ok || len(titles) != 2 {
		t.Fatalf("got %#v, want two titles", v)
	}
	if titles[0] != "Salary" || titles[1] != "Groceries" {
		t.Errorf("titles = %v", titles)
	}

	v, err = Query(l, "$.currency")
	if err != nil {
		t.Fatal(err)
	}
	if v != "EUR" {
		t.Errorf("currency = %#v", v)
	}

	if _, err := Query(l, "$.movements["); err == nil {
		t.Error("broken expression did not fail")
	}
}
