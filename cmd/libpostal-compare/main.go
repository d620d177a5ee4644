// Command libpostal-compare runs the same addresses through this parser and
// through libpostal, printing both component breakdowns side by side. It is
// a separate binary so that only it needs the cgo libpostal dependency.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	postal "github.com/openvenues/gopostal/parser"

	usaddr "github.com/usaddr-parse"
	"github.com/usaddr-parse/internal/config"
)

func main() {
	var (
		address   = flag.String("address", "", "single address to compare")
		fromStdin = flag.Bool("stdin", false, "read one address per line from stdin")
		modelPath = flag.String("model", "", "path to the trained model file")
	)
	flag.Parse()

	if *address == "" && !*fromStdin {
		printUsage()
		return
	}

	config.LoadEnv()
	if *modelPath == "" {
		*modelPath = usaddr.DefaultModelPath()
	}
	parser := usaddr.NewParserFromModel(*modelPath)

	if *address != "" {
		compare(parser, *address)
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		compare(parser, line)
		fmt.Println()
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("Reading stdin: %v", err)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  Compare a single address:")
	fmt.Println("    ./libpostal-compare -address=\"123 N Main St. Suite 4, Springfield IL 62704\"")
	fmt.Println()
	fmt.Println("  Compare addresses from stdin:")
	fmt.Println("    cat addresses.txt | ./libpostal-compare -stdin")
}

func compare(parser *usaddr.Parser, address string) {
	fmt.Printf("Address: %s\n", address)

	components, addressType, err := parser.Tag(address, nil)
	if err != nil {
		fmt.Printf("  usaddr: error: %v\n", err)
	} else {
		fmt.Printf("  usaddr (%s):\n", addressType)
		for _, component := range components {
			fmt.Printf("    %-28s %s\n", component.Label, component.Value)
		}
	}

	fmt.Println("  libpostal:")
	for _, component := range postal.ParseAddress(address) {
		fmt.Printf("    %-28s %s\n", component.Label, component.Value)
	}
}
