package util

import (
	"bufio"
	"errors"
	"fmt"
	"math"
	"os"
	"regexp"
	"strconv"
)

// ErrNoNumber is returned by ReadNumber when the file holds no token at all.
var ErrNoNumber = errors.New("no number found")

// ErrNotDecimal is returned by ReadNumber when the first token is not a finite
// decimal number ("nan", "inf", "0x1p-2", "1e400").
var ErrNotDecimal = errors.New("not a finite decimal number")

const decimal = `[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?`

var (
	numPrefix = regexp.MustCompile(`^[ \t\n\v\f\r]*(` + decimal + `)`)
	numToken  = regexp.MustCompile(`^` + decimal + `$`)
)

// ParseNumberOrDefault converts the longest decimal numeric prefix of s into a
// float64. Leading whitespace is skipped and trailing garbage is ignored
// ("3.5kPa" gives 3.5). Hexadecimal, "inf" and "nan" prefixes are not
// recognized. def is returned when no prefix is found. A
// prefix out of the float64 range gives ±Inf.
func ParseNumberOrDefault(s string, def float64) float64 {
	m := numPrefix.FindStringSubmatch(s)
	if m == nil {
		return def
	}

	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return def
	}
	return v
}

// ReadNumber opens the file, parses its first whitespace-delimited token as a
// float64 and closes the file. The rest of the file is not read. The token must
// be a finite decimal number in full.
func ReadNumber(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	s := bufio.NewScanner(f)
	s.Split(bufio.ScanWords)
	if !s.Scan() {
		if err := s.Err(); err != nil {
			return 0, err
		}
		return 0, ErrNoNumber
	}

	tok := s.Text()
	if !numToken.MatchString(tok) {
		return 0, fmt.Errorf("%w: %q", ErrNotDecimal, tok)
	}

	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrNotDecimal, tok)
	}
	return v, nil
}
