package core

import (
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		out float64
		ok  bool
	}{
		{"1", 1, true},
		{"1.0", 1, true},
		{"430.5", 430.5, true},
		{" 2.50 ", 2.5, true},
		{"-12", -12, true},
		{"0", 0, true},
		{"1e3", 1000, true},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"1,5", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"0x10", 0, false},
		{"1e400", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %v, got %v (err=%v)", tc.in, tc.out, got, err)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidNumber) {
			t.Fatalf("%q expected ErrInvalidNumber, got %v", tc.in, err)
		}
	}
}

func TestDifference(t *testing.T) {
	cases := []struct {
		budgeted, actual, want float64
	}{
		{500.0, 430.5, 69.5},
		{0.3, 0.1, 0.2},
		{100, 150, -50},
		{-10, 5, -15},
	}
	for _, tc := range cases {
		if got := Difference(tc.budgeted, tc.actual); got != tc.want {
			t.Fatalf("Difference(%v, %v) = %v, want %v", tc.budgeted, tc.actual, got, tc.want)
		}
	}
}

func TestSumAmounts(t *testing.T) {
	if got := SumAmounts(0.1, 0.2); got != 0.3 {
		t.Fatalf("SumAmounts(0.1, 0.2) = %v", got)
	}
	if got := SumAmounts(); got != 0 {
		t.Fatalf("empty sum = %v", got)
	}
}

func TestFormatAmount(t *testing.T) {
	cases := map[float64]string{
		69.5:    "69.50",
		100:     "100.00",
		-0.126:  "-0.13",
		1234.56: "1234.56",
		0:       "0.00",
	}
	for in, want := range cases {
		if got := FormatAmount(in); got != want {
			t.Fatalf("FormatAmount(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestRoundAmount(t *testing.T) {
	cases := map[float64]float64{
		69.5:     69.5,
		10.005:   10.01,
		-3.14159: -3.14,
		0.1:      0.1,
	}
	for in, want := range cases {
		if got := RoundAmount(in); got != want {
			t.Fatalf("RoundAmount(%v) = %v, want %v", in, got, want)
		}
	}
}
