// Command softap-log views and analyzes soft-AP event log files.
//
// Log files are created by running softap-sim with the -log flag; each file
// is a stream of CBOR-encoded lifecycle events.
//
// Usage:
//
//	softap-log <command> [flags] <file.cbor>
//
// Commands:
//
//	view     View log file in human-readable format
//	stats    Show statistics about the log file
//
// Examples:
//
//	# View all events
//	softap-log view events.cbor
//
//	# View one station's errors
//	softap-log view -client 02:00:00:00:00:02 -category error events.cbor
//
//	# Show statistics
//	softap-log stats events.cbor
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/softap-project/softap-go/pkg/log"
)

const usage = `softap-log - Soft-AP Event Log Analyzer

Usage:
  softap-log <command> [flags] <file.cbor>

Commands:
  view     View log file in human-readable format
  stats    Show statistics about the log file

Use "softap-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func parseCategory(s string) (*log.Category, error) {
	if s == "" {
		return nil, nil
	}
	for _, c := range []log.Category{
		log.CategoryStateChange, log.CategoryMlme, log.CategoryTimeout, log.CategoryError,
	} {
		if s == c.String() || s == lower(c.String()) {
			return &c, nil
		}
	}
	return nil, fmt.Errorf("unknown category %q (state_change, mlme, timeout, error)", s)
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	clientAddr := fs.String("client", "", "Filter by station address")
	category := fs.String("category", "", "Filter by category (state_change, mlme, timeout, error)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		os.Exit(1)
	}

	cat, err := parseCategory(*category)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	r, err := log.NewFilteredReader(fs.Arg(0), log.Filter{
		ClientAddr: *clientAddr,
		Category:   cat,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	defer r.Close()

	for {
		ev, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		fmt.Println(formatEvent(ev))
	}
}

func formatEvent(ev log.Event) string {
	prefix := fmt.Sprintf("%s  %-17s  %-12s",
		ev.Timestamp.Format("15:04:05.000000"), ev.ClientAddr, ev.Category)

	switch {
	case ev.StateChange != nil:
		s := fmt.Sprintf("%s  %s -> %s", prefix, ev.StateChange.OldState, ev.StateChange.NewState)
		if ev.StateChange.Reason != "" {
			s += fmt.Sprintf(" (%s)", ev.StateChange.Reason)
		}
		return s
	case ev.Mlme != nil:
		if ev.Mlme.Code != "" {
			return fmt.Sprintf("%s  %s code=%s", prefix, ev.Mlme.Record, ev.Mlme.Code)
		}
		return fmt.Sprintf("%s  %s", prefix, ev.Mlme.Record)
	case ev.Timeout != nil:
		return fmt.Sprintf("%s  %s handled=%t", prefix, ev.Timeout.Kind, ev.Timeout.Handled)
	case ev.Error != nil:
		s := fmt.Sprintf("%s  %s", prefix, ev.Error.Message)
		if ev.Error.Context != "" {
			s += fmt.Sprintf(" [%s]", ev.Error.Context)
		}
		return s
	default:
		return prefix
	}
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		os.Exit(1)
	}

	r, err := log.NewReader(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	defer r.Close()

	total := 0
	byCategory := make(map[log.Category]int)
	byClient := make(map[string]int)

	for {
		ev, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		total++
		byCategory[ev.Category]++
		byClient[ev.ClientAddr]++
	}

	fmt.Printf("Events: %d\n\n", total)

	fmt.Println("By category:")
	for _, c := range []log.Category{
		log.CategoryStateChange, log.CategoryMlme, log.CategoryTimeout, log.CategoryError,
	} {
		if byCategory[c] > 0 {
			fmt.Printf("  %-14s %d\n", c, byCategory[c])
		}
	}

	addrs := make([]string, 0, len(byClient))
	for addr := range byClient {
		addrs = append(addrs, addr)
	}
	sort.Strings(addrs)

	fmt.Println("\nBy station:")
	for _, addr := range addrs {
		fmt.Printf("  %-17s %d\n", addr, byClient[addr])
	}
}
