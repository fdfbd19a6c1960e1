package selectivity

import (
	"errors"
	"fmt"
)

// ErrUsage is returned when the number of arguments is wrong.
var ErrUsage = errors.New("wrong number of arguments")

// DomainError reports a zero denominator or a selectivity that is not finite.
// Ratio names the quantity that is undefined: "bulk total", "sorbed total",
// "y_A", "y_B", "x_B" or "selectivity".
type DomainError struct {
	Ratio string
}

func (e *DomainError) Error() string {
	if e.Ratio == "selectivity" {
		return "selectivity is not finite"
	}
	return fmt.Sprintf("%s is zero: selectivity is undefined", e.Ratio)
}

// SourceReadError reports a sorbed-phase file that cannot be opened or whose
// first token is not a number.
type SourceReadError struct {
	Source string
	Err    error
}

func (e *SourceReadError) Error() string {
	return fmt.Sprintf("cannot read `%s`: %v", e.Source, e.Err)
}

func (e *SourceReadError) Unwrap() error { return e.Err }
