// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/advent/challenge"
	"github.com/ezrec/advent/config"
	"github.com/ezrec/advent/gravity"
	"github.com/ezrec/advent/input"
)

func main() {
	var conf string
	var inputs string
	var limit int
	var verbose bool
	var list bool

	flag.StringVar(&conf, "c", "", "advent.toml file to use")
	flag.StringVar(&inputs, "i", "", "Puzzle input directory")
	flag.IntVar(&limit, "l", -1, "Tick limit per run, 0 for none")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&list, "list", false, "List challenges")

	flag.Parse()

	var cfg *config.Config
	var err error
	if len(conf) != 0 {
		cfg, err = config.Load(conf)
	} else {
		cfg, err = config.LoadDir(".")
	}
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	// Flags override the file.
	if len(inputs) != 0 {
		cfg.Inputs = inputs
	}
	if limit >= 0 {
		cfg.Limit = limit
	}
	cfg.Verbose = cfg.Verbose || verbose

	in := input.Dir(cfg.Inputs)

	reg := &challenge.Registry{}
	reg.Register(gravity.NAME, func() challenge.Challenge {
		grav := gravity.NewGravity(in)
		cfg.Apply(grav)
		return grav
	})

	if list {
		for _, name := range reg.Names() {
			fmt.Println(name)
		}
		return
	}

	if flag.NArg() != 2 {
		log.Fatalf("%v: `challenge` and `part` args required", os.Args[0])
	}

	answer, err := reg.Run(flag.Arg(0), flag.Arg(1))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(answer)
}
