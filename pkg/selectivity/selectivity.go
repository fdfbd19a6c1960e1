// Package selectivity calculates the adsorption selectivity of species A over
// species B from the bulk-phase and the sorbed-phase compositions.
package selectivity

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kpotier/molsorb/pkg/util"

	"github.com/pelletier/go-toml"
)

// Type is name of the calculation.
var Type = "selectivity"

// Selectivity is a structure containing the parameters that can be parsed from
// a TOML configuration file. This structure can be instanced through the New
// method. FileA and FileB contain a single number: the average number of moles
// sorbed of A and B. If FileOut is empty, the result is written to Out.
type Selectivity struct {
	FileA   string `toml:"selectivity.file_a"`
	FileB   string `toml:"selectivity.file_b"`
	FileOut string `toml:"selectivity.file_out"`

	Pressure float64 `toml:"selectivity.pressure"`
	BulkA    float64 `toml:"selectivity.bulk_a"`
	BulkB    float64 `toml:"selectivity.bulk_b"`

	Policy string `toml:"selectivity.policy"`

	Out io.Writer `toml:"-"`

	pol Policy
}

// New returns an instance of the Selectivity structure. It reads and parses
// the configuration file given in argument. The file must be a TOML file.
func New(path string) (*Selectivity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sel Selectivity
	dec := toml.NewDecoder(f)
	err = dec.Decode(&sel)
	if err != nil {
		return nil, err
	}

	if sel.FileA == "" || sel.FileB == "" {
		return nil, errors.New("FileA and FileB must be set")
	}

	sel.pol, err = ParsePolicy(sel.Policy)
	if err != nil {
		return nil, err
	}

	sel.Out = os.Stdout
	return &sel, nil
}

// Start performs the calculation. It reads both sorbed-phase files before
// writing anything, so nothing is written when one of them is unreadable.
func (s *Selectivity) Start() (err error) {
	sorbed, err := ReadSorbed(s.FileA, s.FileB)
	if err != nil {
		return err
	}

	res, err := Compute(s.Pressure, Composition{A: s.BulkA, B: s.BulkB}, sorbed, s.pol)
	if err != nil {
		return fmt.Errorf("Compute: %w", err)
	}

	if s.FileOut == "" {
		return Format(s.Out, res)
	}

	out, err := util.Write(s.FileOut, s)
	if err != nil {
		return fmt.Errorf("Write: %w", err)
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = out.WriteString("P S\n")
	if err != nil {
		return err
	}

	return Format(out, res)
}

// ReadSorbed reads the average number of moles sorbed of A and B. Each file is
// opened, read once and closed before the next one is opened.
func ReadSorbed(fileA, fileB string) (Composition, error) {
	a, err := util.ReadNumber(fileA)
	if err != nil {
		return Composition{}, &SourceReadError{Source: fileA, Err: err}
	}

	b, err := util.ReadNumber(fileB)
	if err != nil {
		return Composition{}, &SourceReadError{Source: fileB, Err: err}
	}

	return Composition{A: a, B: b}, nil
}

// Run is the command line form of the calculation: args are P, A, B, fileA
// and fileB. P, A and B fall back to 0 when they are not numbers. The result
// line is written to w only if everything succeeded.
func Run(w io.Writer, args []string, pol Policy) error {
	if len(args) != 5 {
		return ErrUsage
	}

	p := util.ParseNumberOrDefault(args[0], 0)
	bulk := Composition{
		A: util.ParseNumberOrDefault(args[1], 0),
		B: util.ParseNumberOrDefault(args[2], 0),
	}

	sorbed, err := ReadSorbed(args[3], args[4])
	if err != nil {
		return err
	}

	res, err := Compute(p, bulk, sorbed, pol)
	if err != nil {
		return err
	}

	return Format(w, res)
}
