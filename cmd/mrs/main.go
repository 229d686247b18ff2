// Command mrs is the headless maintenance CLI for the Murrasil console.
//
// Usage:
//
//	mrs                     Show help
//	mrs counts              Per-tab item totals
//	mrs list                List queue items for a status
//	mrs fetch               Trigger an immediate ingestion pass
//	mrs sources             List configured ingestion sources
//	mrs history             Show recent local moderation decisions
package main

import (
	"fmt"
	"os"
)

const usage = `mrs — Murrasil console maintenance CLI

Usage:
  mrs <command> [flags]

Commands:
  counts      Per-tab item totals
  list        List queue items (-status new|approved|rejected, -page, -limit)
  fetch       Trigger an immediate ingestion pass
  sources     List configured ingestion sources
  history     Recent local moderation decisions (-n limit)

Environment:
  MURRASIL_API_URL  Backend base URL (default: http://127.0.0.1:8000)

Run 'mrs <command> -h' for command-specific help.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(0)
	}

	cmd := os.Args[1]
	// Strip the program name + subcommand so flag sets see only their flags
	os.Args = os.Args[1:]

	switch cmd {
	case "counts":
		runCounts()
	case "list":
		runList()
	case "fetch":
		runFetch()
	case "sources":
		runSources()
	case "history":
		runHistory()
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "mrs: unknown command %q\n\n", cmd)
		fmt.Print(usage)
		os.Exit(1)
	}
}
