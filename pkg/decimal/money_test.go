package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
)

func mustMoney(t *testing.T, s string) Money {
	t.Helper()
	d, err := stddec.NewFromString(s)
	if err != nil {
		t.Fatalf("parsing %q: %v", s, err)
	}
	return NewMoneyFromDecimal(d)
}

func TestNewMoneyFromDecimal(t *testing.T) {
	d := stddec.NewFromFloat(10.125)
	m := NewMoneyFromDecimal(d)
	if !m.Decimal.Equal(d) {
		t.Fatalf("NewMoneyFromDecimal mismatch: got %s want %s", m.Decimal, d)
	}
	if m.String() != "10.13" {
		t.Fatalf("String got %s want 10.13", m.String())
	}
}

func TestWhole(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"75936.88", "75937"},
		{"0.49", "0"},
		{"2.5", "3"},
		{"-2.5", "-3"},
	}
	for _, c := range cases {
		if got := mustMoney(t, c.in).Whole().Decimal.String(); got != c.out {
			t.Fatalf("whole(%s) got %s want %s", c.in, got, c.out)
		}
	}
}

func TestGrouped(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"0", "0"},
		{"0.4", "0"},
		{"999.5", "1,000"},
		{"75936.88359899614", "75,937"},
		{"1234567", "1,234,567"},
		{"123456", "123,456"},
		{"-6450.95", "-6,451"},
		{"-0.2", "0"},
	}
	for _, c := range cases {
		if got := mustMoney(t, c.in).Grouped(); got != c.out {
			t.Fatalf("Grouped(%s) got %q want %q", c.in, got, c.out)
		}
	}
}

func TestAfterTax(t *testing.T) {
	cases := []struct {
		amount string
		rate   string
		out    string
	}{
		{"100", "0.33", "67.00"},
		{"100", "0", "100.00"},
		{"100", "1", "0.00"},
		{"12.5", "0.2", "10.00"},
	}
	for _, c := range cases {
		rate, _ := stddec.NewFromString(c.rate)
		got := mustMoney(t, c.amount).AfterTax(rate)
		if got.String() != c.out {
			t.Fatalf("AfterTax(%s, %s) got %s want %s", c.amount, c.rate, got, c.out)
		}
		want := mustMoney(t, c.amount).Decimal.Mul(stddec.NewFromInt(1).Sub(rate))
		if !got.Decimal.Equal(want) {
			t.Fatalf("AfterTax(%s, %s) = %s, not exactly %s", c.amount, c.rate, got.Decimal, want)
		}
	}
}
