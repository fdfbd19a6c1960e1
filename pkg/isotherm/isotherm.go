// Package isotherm calculates the selectivity at several pressures for a
// given bulk-phase composition.
package isotherm

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kpotier/molsorb/pkg/selectivity"
	"github.com/kpotier/molsorb/pkg/util"

	"github.com/pelletier/go-toml"
)

// Type is name of the calculation.
var Type = "isotherm"

// Isotherm is a structure containing the parameters that can be parsed from a
// TOML configuration file. This structure can be instanced through the New
// method. FilesA[i] and FilesB[i] hold the average number of moles sorbed at
// Pressures[i]. The three slices must have the same length.
type Isotherm struct {
	FilesA  []string `toml:"isotherm.files_a"`
	FilesB  []string `toml:"isotherm.files_b"`
	FileOut string   `toml:"isotherm.file_out"`

	Pressures []float64 `toml:"isotherm.pressures"`
	BulkA     float64   `toml:"isotherm.bulk_a"`
	BulkB     float64   `toml:"isotherm.bulk_b"`

	Policy string `toml:"isotherm.policy"`

	Out io.Writer `toml:"-"`

	pol selectivity.Policy
}

// New returns an instance of the Isotherm structure. It reads and parses the
// configuration file given in argument. The file must be a TOML file.
func New(path string) (*Isotherm, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var iso Isotherm
	dec := toml.NewDecoder(f)
	err = dec.Decode(&iso)
	if err != nil {
		return nil, err
	}

	if len(iso.Pressures) == 0 {
		return nil, errors.New("Pressures is empty")
	}

	if len(iso.FilesA) != len(iso.Pressures) || len(iso.FilesB) != len(iso.Pressures) {
		return nil, fmt.Errorf("length of FilesA and FilesB isn't equal to Pressures (%d and %d vs %d)",
			len(iso.FilesA), len(iso.FilesB), len(iso.Pressures))
	}

	iso.pol, err = selectivity.ParsePolicy(iso.Policy)
	if err != nil {
		return nil, err
	}

	iso.Out = os.Stdout
	return &iso, nil
}

// Points computes the selectivity at every pressure, in order. It stops at
// the first point that fails.
func (i *Isotherm) Points() ([]selectivity.Result, error) {
	bulk := selectivity.Composition{A: i.BulkA, B: i.BulkB}
	res := make([]selectivity.Result, 0, len(i.Pressures))
	for k, p := range i.Pressures {
		sorbed, err := selectivity.ReadSorbed(i.FilesA[k], i.FilesB[k])
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", k, err)
		}

		r, err := selectivity.Compute(p, bulk, sorbed, i.pol)
		if err != nil {
			return nil, fmt.Errorf("point %d (P = %g): %w", k, p, err)
		}
		res = append(res, r)
	}
	return res, nil
}

// Start performs the calculation. All the points are computed before the
// output is written.
func (i *Isotherm) Start() (err error) {
	res, err := i.Points()
	if err != nil {
		return fmt.Errorf("Points: %w", err)
	}

	w := i.Out
	if i.FileOut != "" {
		var out *os.File
		out, err = util.Write(i.FileOut, i)
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
		w = out
	}

	for _, r := range res {
		err = selectivity.Format(w, r)
		if err != nil {
			return err
		}
	}
	return nil
}
