// cmd/context-check/main.go
//
// Non-interactive validator for an intelligence document on disk. Intended
// for CI: exit 0 when the document satisfies every structural rule, 1 with
// the violations enumerated otherwise.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/kingrea/project-intel/internal/intel"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: context-check /path/to/project-intelligence.md")
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "context-check: %v\n", err)
		os.Exit(1)
	}
	content := string(data)
	if violations := intel.Validate(content); len(violations) > 0 {
		fmt.Printf("Invalid: %s\n", path)
		for _, v := range violations {
			fmt.Printf("- %v\n", v)
		}
		os.Exit(1)
	}
	rec := intel.ParseDocument(content, time.Now().Format(intel.DateLayout))
	fmt.Printf("OK: %s (version %s)\n", path, rec.Version)
}
