package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/kpotier/molsorb/pkg/selectivity"
)

// UsageExitCode is the exit status when the arguments are wrong. The usage is
// printed on stdout and treated as a success.
const UsageExitCode = 0

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	log := log.New(stderr, "", log.LstdFlags)

	name := "molsorb"
	var params []string
	if len(args) > 0 {
		name, params = args[0], args[1:]
	}

	err := selectivity.Run(stdout, params, selectivity.Strict)
	if errors.Is(err, selectivity.ErrUsage) {
		usage(stdout, name)
		return UsageExitCode
	}
	if err != nil {
		log.Println(err)
		return 1
	}
	return 0
}

func usage(w io.Writer, name string) {
	fmt.Fprintf(w, "Usage:\n%s <P> <A> <B> <fileA> <fileB>\n", name)
	fmt.Fprint(w, "P     - Pressure\n")
	fmt.Fprint(w, "A     - moles of species A per unit volume in bulk phase.\n")
	fmt.Fprint(w, "B     - moles of species B per unit volume in bulk phase.\n")
	fmt.Fprint(w, "fileA - filename of text file whose contents is a single number: the\n        avg moles sorbed of species A.\n")
	fmt.Fprint(w, "fileB - filename of text file whose contents is a single number: the\n        avg moles sorbed of species B.\n")
}
