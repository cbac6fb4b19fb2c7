// cmd/add-context/main.go
//
// Entry point for the project intelligence wizard. Without flags it runs
// the full interactive session; the direct flags jump straight to a single
// field-group edit. Exit code 0 covers success and user cancellation, 1
// covers validation failures, invalid menu choices, and anything uncaught.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kingrea/project-intel/internal/config"
	"github.com/kingrea/project-intel/internal/logging"
	"github.com/kingrea/project-intel/internal/session"
)

func main() {
	// .env is optional; it may carry OPENCODE_HOME for --global runs.
	_ = godotenv.Load()

	update := flag.Bool("update", false, "assume an existing document and skip the holding-directory check")
	techStack := flag.Bool("tech-stack", false, "update only the four technology stack fields")
	patterns := flag.Bool("patterns", false, "update only the API and component patterns")
	global := flag.Bool("global", false, "target the per-user configuration location instead of the project")
	flag.Usage = usage
	flag.Parse()

	modes := 0
	for _, set := range []bool{*update, *techStack, *patterns} {
		if set {
			modes++
		}
	}
	if modes > 1 {
		fmt.Fprintln(os.Stderr, "add-context: --update, --tech-stack, and --patterns are mutually exclusive")
		os.Exit(1)
	}

	cwd, err := os.Getwd()
	if err != nil {
		die("determine working directory: %v", err)
	}
	cfg, err := config.New(cwd, *global)
	if err != nil {
		die("%v", err)
	}
	logger, err := logging.New(cfg.LogsDir())
	if err != nil {
		die("%v", err)
	}
	defer logger.Close()

	prompter := session.NewPrompter(os.Stdin, os.Stdout)
	sess := session.New(cfg, prompter, logger)

	var runErr error
	switch {
	case *techStack:
		runErr = sess.RunTechStack()
	case *patterns:
		runErr = sess.RunPatterns()
	default:
		runErr = sess.Run(*update)
	}

	switch {
	case runErr == nil:
	case errors.Is(runErr, session.ErrCancelled):
		fmt.Println("Cancelled. No files were written.")
	case errors.Is(runErr, session.ErrDeferred):
		// Guidance was already printed by the session.
	default:
		logger.Printf("error: %v", runErr)
		die("%v", runErr)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: add-context [flags]

Maintains the project intelligence context document and its navigation
index under .opencode/context/project-intelligence/.

Flags:
  --update      assume an existing document and skip the holding-directory check
  --tech-stack  update only the four technology stack fields
  --patterns    update only the API and component patterns (requires a document)
  --global      target ~/.config/opencode instead of the project directory
  --help, -h    print this text
`)
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "add-context: "+format+"\n", args...)
	os.Exit(1)
}
