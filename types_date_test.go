package fintra

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want Date
	}{
		{"2024-01-05", NewDate(2024, time.January, 5)},
		{"2024-1-5", NewDate(2024, time.January, 5)},
		{"05/01/2024", NewDate(2024, time.January, 5)},
		{"29/02/2024", NewDate(2024, time.February, 29)},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if err != nil {
			t.Errorf("ParseDate(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	for _, in := range []string{"", "yesterday", "2024/01/05", "99/99/2024"} {
		if _, err := ParseDate(in); err == nil {
			t.Errorf("ParseDate(%q) did not fail", in)
		}
	}
}

func TestDateFormats(t *testing.T) {
	d := NewDate(2024, time.March, 7)
	if got := d.String(); got != "2024-03-07" {
		t.Errorf("String() = %q", got)
	}
	if got := d.Exchange(); got != "07/03/2024" {
		t.Errorf("Exchange() = %q", got)
	}
}

func TestDateArithmetic(t *testing.T) {
	d := NewDate(2024, time.January, 31)
	if got := d.Add(1); got != NewDate(2024, time.February, 1) {
		t.Errorf("Add(1) = %s", got)
	}
	if got := d.StartOfMonth(); got != NewDate(2024, time.January, 1) {
		t.Errorf("StartOfMonth() = %s", got)
	}
	if got := NewDate(2024, time.February, 10).EndOfMonth(); got != NewDate(2024, time.February, 29) {
		t.Errorf("EndOfMonth() = %s", got)
	}
	if !NewDate(2024, time.January, 1).Before(d) || !d.After(NewDate(2024, time.January, 1)) {
		t.Error("Before/After disagree")
	}
	if !d.SameMonth(NewDate(2024, time.January, 1)) || d.SameMonth(NewDate(2023, time.January, 31)) {
		t.Error("SameMonth is wrong")
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}
	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %s) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2024, time.March, 7)
	data, err := d.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2024-03-07"` {
		t.Errorf("MarshalJSON = %s", data)
	}
	var back Date
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Errorf("round trip = %s, want %s", back, d)
	}
	// Data files use ISO only; the exchange form is not valid there.
	if err := back.UnmarshalJSON([]byte(`"07/03/2024"`)); err == nil {
		t.Error("UnmarshalJSON accepted an exchange-format date")
	}
}
