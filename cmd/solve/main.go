package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jgardner8/NPuzzle/internal/puzzle"
	"github.com/jgardner8/NPuzzle/internal/search"
)

var log = logrus.New()

func init() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"usage: %s <puzzle-file> <strategy>\n\nstrategies: %s\n",
			os.Args[0], strings.Join(search.Codes(), ", "),
		)
	}
}

func main() {
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	filename, code := flag.Arg(0), flag.Arg(1)

	file, err := os.Open(filename)
	if err != nil {
		log.Fatal("unable to open puzzle file: ", err)
	}
	defer file.Close()

	initial, goal, err := puzzle.ParsePuzzle(file)
	if err != nil {
		log.Fatalf("unable to parse puzzle %s: %s", filename, err)
	}

	strategy, err := search.ByCode(code)
	if err != nil {
		log.Fatal(err)
	}

	start := time.Now()
	result := search.Search(initial, goal, strategy.NewFrontier(goal))
	fmt.Printf("Time taken: %s\n", time.Since(start))

	fmt.Println(filename, strategy.Code, result.Expanded)
	if result.Found {
		fmt.Println(puzzle.FormatActions(result.Actions))
	} else {
		fmt.Println("No solution found.")
	}
}
