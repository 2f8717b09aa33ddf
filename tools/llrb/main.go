package main

import "os"
import "fmt"
import "time"

import "github.com/spf13/pflag"
import log "github.com/sirupsen/logrus"

import "github.com/bnclabs/gollrb/lib"
import "github.com/bnclabs/gollrb/llrb"

var options struct {
	n        int
	seed     int64
	searches int
	pops     int
	degree   int
	validate bool
	dot      string
	logs     []string
}

func argParse() {
	var logs string

	pflag.IntVar(&options.n, "n", 10000,
		"number of items to generate and insert")
	pflag.Int64Var(&options.seed, "seed", 0,
		"seed for generating the workload, 0 picks the current time")
	pflag.IntVar(&options.searches, "searches", 50000,
		"number of lookups and size calls to time")
	pflag.IntVar(&options.pops, "pops", 500,
		"number of min, max and delete-min, delete-max calls to time")
	pflag.IntVar(&options.degree, "degree", 32,
		"degree for btree baseline")
	pflag.BoolVar(&options.validate, "validate", false,
		"validate llrb and compare containers after every phase")
	pflag.StringVar(&options.dot, "dot", "",
		"write graphviz dot script of the final llrb tree to file")
	pflag.StringVar(&logs, "log", "",
		"comma separated list of components to log, like llrb,all")
	pflag.Parse()

	if options.seed == 0 {
		options.seed = time.Now().UnixNano()
	}
	options.logs = lib.Parsecsv(logs)
}

func main() {
	argParse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.InfoLevel)
	llrb.LogComponents(options.logs...)

	fmt.Printf("Testing for %v elements, seed %v\n", options.n, options.seed)

	b := newbench(options.n, options.seed, options.degree)
	b.searches, b.pops, b.validate = options.searches, options.pops, options.validate
	if err := b.run(os.Stdout); err != nil {
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}

	if options.dot != "" {
		if err := b.dotdump(options.dot); err != nil {
			fmt.Printf("%v\n", err)
			os.Exit(1)
		}
	}
	b.tree.Log(true)
}
