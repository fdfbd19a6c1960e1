package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/kpotier/molsorb/pkg/cfg"
)

func main() {
	os.Exit(run(os.Args, os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	log := log.New(stderr, "", log.LstdFlags)

	if len(args) != 2 {
		log.Println("one argument is needed: path of the configuration file")
		return 1
	}

	c, err := cfg.New(args[1])
	if err != nil {
		log.Println(fmt.Errorf("New: %w", err))
		return 1
	}

	if failed := c.Start(log); failed > 0 {
		log.Printf("%d calculation(s) failed\n", failed)
		return 1
	}
	return 0
}
