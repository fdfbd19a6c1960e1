// Package cfg dispatches several selectivity calculations. It avoids to start
// the program once per pressure or per mixture.
package cfg

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/pelletier/go-toml"
)

// Cfg is a structure where the types of calculations are stored. It can be
// instanced through the New method. The length of the Files slice must be equal
// to the length of the Types files. Each calculation requires a configuration
// file where the parameters required to run the calculation are stored.
type Cfg struct {
	Types [][]string `toml:"types"`
	Files [][]string `toml:"files"`
}

// New returns an instance of the Cfg structure. It opens and reads the
// configuration file where Types and Files are stored. The configuration file
// must use the TOML format.
func New(path string) (Cfg, error) {
	f, err := os.Open(path)
	if err != nil {
		return Cfg{}, err
	}
	defer f.Close()

	var cfg Cfg
	dec := toml.NewDecoder(f)
	err = dec.Decode(&cfg)
	if err != nil {
		return Cfg{}, err
	}

	if len(cfg.Files) != len(cfg.Types) {
		return Cfg{}, fmt.Errorf("length of Files isn't equal to Types (%d vs %d)",
			len(cfg.Files), len(cfg.Types))
	}

	for k, v := range cfg.Files {
		if len(v) != len(cfg.Types[k]) {
			return Cfg{}, fmt.Errorf("length of Files isn't equal to Types (%d vs %d, step %d)",
				len(v), len(cfg.Types[k]), k)
		}
	}

	return cfg, nil
}

// Start dispatches and performs the calculations. If several calculations are
// in the same array (e.g Types: ["selectivity", "isotherm"]), they will be
// performed in parallel. Steps are performed one after the other.
//
// It is a thread blocking method. If an error occurs for a specific
// calculation, the calculation will stop and log the error but the method won't
// stop. It returns the number of calculations that failed.
func (c Cfg) Start(log *log.Logger) int {
	var (
		mux    sync.Mutex
		failed int
	)
	launch := func(step, rtn int, name string) {
		log.Printf("Launching `%s` (step %d, routine %d): %s\n", name, step, rtn, c.Files[step][rtn])
		err := Launch(name, c.Files[step][rtn])
		if err != nil {
			log.Println(fmt.Errorf("Launch (step %d, routine %d): %w", step, rtn, err))
			mux.Lock()
			failed++
			mux.Unlock()
		}
	}

	var wg sync.WaitGroup
	for step, types := range c.Types {
		if len(types) == 0 {
			continue
		}

		if len(types) > 1 {
			for rtn, name := range types[1:] { // For each calculation
				wg.Add(1)
				go func(step, rtn int, name string) {
					launch(step, rtn, name)
					wg.Done()
				}(step, rtn+1, name)

			}
		}

		launch(step, 0, types[0])
		wg.Wait()
	}

	return failed
}
