package selectivity

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// Policy decides what happens when a denominator is zero.
type Policy int

const (
	// Strict returns a *DomainError naming the undefined ratio.
	Strict Policy = iota
	// IEEE lets the division produce ±Inf or NaN.
	IEEE
)

// ParsePolicy converts the name used in the parameter files. An empty name is
// Strict.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "strict":
		return Strict, nil
	case "ieee":
		return IEEE, nil
	}
	return Strict, fmt.Errorf("unknown policy `%s` (strict or ieee)", name)
}

func (p Policy) String() string {
	if p == IEEE {
		return "ieee"
	}
	return "strict"
}

// Composition is the amount of species A and B in one phase. In the bulk
// phase it is a number of moles per unit volume, in the sorbed phase the
// average number of moles sorbed.
type Composition struct {
	A, B float64
}

// Result is the pressure, passed through, and the selectivity of A over B.
type Result struct {
	Pressure    float64
	Selectivity float64
}

// Fractions returns the mole fractions of A and B. phase is the name used in
// the DomainError when the total is zero ("bulk" or "sorbed").
func Fractions(c Composition, phase string, pol Policy) (a, b float64, err error) {
	total := c.A + c.B
	if pol == Strict && total == 0 {
		return 0, 0, &DomainError{Ratio: phase + " total"}
	}

	return c.A / total, c.B / total, nil
}

// Compute returns the selectivity (x_A/y_A)/(x_B/y_B) where y are the bulk
// mole fractions and x the sorbed ones. The pressure is not used by the
// calculation.
func Compute(pressure float64, bulk, sorbed Composition, pol Policy) (Result, error) {
	yA, yB, err := Fractions(bulk, "bulk", pol)
	if err != nil {
		return Result{}, err
	}

	xA, xB, err := Fractions(sorbed, "sorbed", pol)
	if err != nil {
		return Result{}, err
	}

	if pol == Strict {
		switch {
		case yA == 0:
			return Result{}, &DomainError{Ratio: "y_A"}
		case yB == 0:
			return Result{}, &DomainError{Ratio: "y_B"}
		case xB == 0:
			return Result{}, &DomainError{Ratio: "x_B"}
		}
	}

	sel := (xA / yA) / (xB / yB)
	if pol == Strict && (math.IsNaN(sel) || math.IsInf(sel, 0)) {
		return Result{}, &DomainError{Ratio: "selectivity"}
	}

	return Result{Pressure: pressure, Selectivity: sel}, nil
}

// Format writes the pressure and the selectivity with 5 decimals, each right
// aligned in 10 characters.
func Format(w io.Writer, r Result) error {
	_, err := fmt.Fprintf(w, "%10.5f\t %10.5f\n", r.Pressure, r.Selectivity)
	return err
}
