package selectivity

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestFractionsSumToOne(t *testing.T) {
	for _, c := range []Composition{{1, 1}, {3, 7}, {0.001, 1e6}, {0, 2}, {5, 0}} {
		a, b, err := Fractions(c, "bulk", Strict)
		if err != nil {
			t.Fatalf("Fractions(%v): %v", c, err)
		}
		chk.Float64(t, "sum", 1e-15, a+b, 1)
		if a < 0 || a > 1 || b < 0 || b > 1 {
			t.Errorf("Fractions(%v) = %g, %g: out of [0,1]", c, a, b)
		}
	}
}

func TestCompute(t *testing.T) {
	cases := []struct {
		p      float64
		bulk   Composition
		sorbed Composition
		want   float64
	}{
		{1, Composition{1, 1}, Composition{1, 1}, 1},
		{10, Composition{3, 7}, Composition{6, 4}, 3.5},
		{2, Composition{1, 3}, Composition{1, 3}, 1},
		{5, Composition{1, 1}, Composition{9, 1}, 9},
	}
	for _, c := range cases {
		res, err := Compute(c.p, c.bulk, c.sorbed, Strict)
		if err != nil {
			t.Fatalf("Compute(%v, %v): %v", c.bulk, c.sorbed, err)
		}
		chk.Float64(t, "pressure", 0, res.Pressure, c.p)
		chk.Float64(t, "selectivity", 1e-12, res.Selectivity, c.want)
	}
}

func swap(c Composition) Composition {
	return Composition{A: c.B, B: c.A}
}

func TestComputeSwap(t *testing.T) {
	bulk, sorbed := Composition{3, 7}, Composition{6, 4}

	res, err := Compute(1, bulk, sorbed, Strict)
	if err != nil {
		t.Fatal(err)
	}
	swapped, err := Compute(1, swap(bulk), swap(sorbed), Strict)
	if err != nil {
		t.Fatal(err)
	}
	chk.Float64(t, "1/S", 1e-12, swapped.Selectivity, 1/res.Selectivity)
}

func TestComputeIdempotent(t *testing.T) {
	bulk, sorbed := Composition{0.3, 0.9}, Composition{12.5, 2.25}
	first, _ := Compute(7, bulk, sorbed, IEEE)
	second, _ := Compute(7, bulk, sorbed, IEEE)
	if first != second {
		t.Errorf("Compute is not repeatable: %v vs %v", first, second)
	}
}

func TestComputeStrict(t *testing.T) {
	cases := []struct {
		bulk   Composition
		sorbed Composition
		ratio  string
	}{
		{Composition{0, 0}, Composition{1, 1}, "bulk total"},
		{Composition{0, 0}, Composition{0, 0}, "bulk total"},
		{Composition{1, -1}, Composition{1, 1}, "bulk total"},
		{Composition{1, 1}, Composition{0, 0}, "sorbed total"},
		{Composition{0, 1}, Composition{1, 1}, "y_A"},
		{Composition{1, 0}, Composition{1, 1}, "y_B"},
		{Composition{1, 1}, Composition{1, 0}, "x_B"},
		{Composition{1e-300, 1}, Composition{1, 1e-300}, "selectivity"},
	}
	for _, c := range cases {
		_, err := Compute(1, c.bulk, c.sorbed, Strict)
		var de *DomainError
		if !errors.As(err, &de) {
			t.Errorf("Compute(%v, %v): err = %v, want a DomainError", c.bulk, c.sorbed, err)
			continue
		}
		if de.Ratio != c.ratio {
			t.Errorf("Compute(%v, %v): ratio = %q, want %q", c.bulk, c.sorbed, de.Ratio, c.ratio)
		}
	}
}

func TestComputeIEEE(t *testing.T) {
	res, err := Compute(1, Composition{0, 0}, Composition{1, 1}, IEEE)
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(res.Selectivity) {
		t.Errorf("zero bulk total: got %g, want NaN", res.Selectivity)
	}

	res, err = Compute(1, Composition{1, 1}, Composition{1, 0}, IEEE)
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(res.Selectivity, 1) {
		t.Errorf("zero x_B: got %g, want +Inf", res.Selectivity)
	}

	res, err = Compute(1, Composition{1, 1}, Composition{0, 1}, IEEE)
	if err != nil {
		t.Fatal(err)
	}
	chk.Float64(t, "zero x_A", 0, res.Selectivity, 0)

	res, err = Compute(1, Composition{1e-300, 1}, Composition{1, 1e-300}, IEEE)
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(res.Selectivity, 1) {
		t.Errorf("overflow: got %g, want +Inf", res.Selectivity)
	}
}

func TestParsePolicy(t *testing.T) {
	cases := []struct {
		in   string
		want Policy
	}{
		{"", Strict},
		{"strict", Strict},
		{" IEEE ", IEEE},
	}
	for _, c := range cases {
		got, err := ParsePolicy(c.in)
		if err != nil || got != c.want {
			t.Errorf("ParsePolicy(%q) = %v, %v; want %v", c.in, got, err, c.want)
		}
	}

	if _, err := ParsePolicy("lenient"); err == nil {
		t.Error("ParsePolicy(lenient): expected an error")
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		res  Result
		want string
	}{
		{Result{1, 1}, "   1.00000\t    1.00000\n"},
		{Result{10, (0.6 / 0.3) / (0.4 / 0.7)}, "  10.00000\t    3.50000\n"},
		{Result{1, 2.345671}, "   1.00000\t    2.34567\n"},
		{Result{123456.5, 0.000004}, "123456.50000\t    0.00000\n"},
	}
	for _, c := range cases {
		var buf bytes.Buffer
		if err := Format(&buf, c.res); err != nil {
			t.Fatal(err)
		}
		if buf.String() != c.want {
			t.Errorf("Format(%v) = %q, want %q", c.res, buf.String(), c.want)
		}
	}
}
