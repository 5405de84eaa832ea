// Command affixcheck is a small demonstration of the hunspell package: it
// loads a .aff/.dic pair and reports, for each word read from stdin,
// whether it is known and (if not) its nearest suggestions. It exists only
// to exercise the library end to end, the way the teacher's
// examples/typeahead exercises levtrie — spell-checking's CLI/host-program
// wrapping is explicitly out of the core's scope (spec.md §1).
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/aaw/hunspell"
)

var (
	affFile = flag.String("aff", "", "path to a Hunspell .aff affix file")
	dicFile = flag.String("dic", "", "path to a Hunspell .dic dictionary file")
	limit   = flag.Int("limit", 5, "maximum number of suggestions per unknown word")
	maxDist = flag.Float64("maxdist", 0.2, "suggestion radius; <1 is a fraction of word length")
)

func main() {
	flag.Parse()
	logger := log.New(os.Stderr, "INFO: ", log.Ldate|log.Ltime)

	if *affFile == "" || *dicFile == "" {
		fmt.Fprintln(os.Stderr, "usage: affixcheck -aff path/to.aff -dic path/to.dic")
		os.Exit(2)
	}

	checker, err := loadChecker(logger, *affFile, *dicFile)
	if err != nil {
		logger.Fatalf("loading dictionary: %v", err)
	}

	runREPL(checker, os.Stdin, os.Stdout)
}

func loadChecker(logger *log.Logger, affPath, dicPath string) (*hunspell.Checker, error) {
	affBytes, err := os.ReadFile(affPath)
	if err != nil {
		return nil, err
	}
	dicBytes, err := os.ReadFile(dicPath)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	checker, err := hunspell.New(string(affBytes), string(dicBytes), hunspell.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	checker.InitBkTree()
	logger.Printf("Loaded %v words from %v/%v in %v.\n",
		len(checker.Words()), affPath, dicPath, time.Since(start))
	return checker, nil
}

func runREPL(checker *hunspell.Checker, in *os.File, out *os.File) {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanLines)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		if checker.Check(word) {
			fmt.Fprintf(out, "%s: OK\n", word)
			continue
		}
		suggestions := checker.Suggest(word, hunspell.WithMaxDist(*maxDist), hunspell.WithLimit(*limit))
		fmt.Fprintf(out, "%s: unknown, suggestions: %s\n", word, strings.Join(suggestions, ", "))
	}
}
