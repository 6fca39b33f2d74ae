// Command prop-trace is a tool for viewing and analyzing property
// access trace files.
//
// Trace files are created by pointing a log.FileLogger at an accessor,
// for example with the prop-shell -trace flag.
//
// Usage:
//
//	prop-trace <command> [flags] <file.trace>
//
// Commands:
//
//	view     View trace events in human-readable format
//	stats    Show per-device and per-operation statistics
//
// Examples:
//
//	# View all events
//	prop-trace view access.trace
//
//	# View only failed writes against one device
//	prop-trace view -device thermo-1 -op write -failed access.trace
//
//	# Summarize a trace
//	prop-trace stats access.trace
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/devprop-protocol/devprop-go/pkg/log"
)

const usage = `prop-trace - Property Access Trace Analyzer

Usage:
  prop-trace <command> [flags] <file.trace>

Commands:
  view     View trace events in human-readable format
  stats    Show per-device and per-operation statistics

Use "prop-trace <command> -help" for more information about a command.
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

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	deviceID := fs.String("device", "", "Filter by device ID")
	prop := fs.String("property", "", "Filter by property name")
	op := fs.String("op", "", "Filter by operation (read, write, probe, bind, extent)")
	failed := fs.Bool("failed", false, "Show only failed operations")
	_ = fs.Parse(args)

	path := requirePath(fs)

	filter := log.Filter{
		DeviceID:   *deviceID,
		Property:   *prop,
		FailedOnly: *failed,
	}
	if *op != "" {
		parsed, err := parseOp(*op)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		filter.Op = &parsed
	}

	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open trace: %v\n", err)
		os.Exit(1)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read trace: %v\n", err)
			os.Exit(1)
		}
		printEvent(event)
	}
}

func printEvent(e log.Event) {
	line := fmt.Sprintf("%s %-6s %s/%s",
		e.Timestamp.Format("15:04:05.000000"), e.Op, e.DeviceID, e.Property)
	if len(e.Indices) > 0 {
		line += fmt.Sprintf(" %v", e.Indices)
	}
	if e.Op == log.OpRead || e.Op == log.OpWrite {
		line += fmt.Sprintf(" = %v", e.Value)
	}
	if !e.Checked {
		line += " (unchecked)"
	}
	if e.Failed() {
		line += " ERROR: " + e.Err
	}
	fmt.Println(line)
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	_ = fs.Parse(args)

	path := requirePath(fs)

	reader, err := log.NewReader(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open trace: %v\n", err)
		os.Exit(1)
	}
	defer reader.Close()

	var total, failures int
	byOp := make(map[string]int)
	byDevice := make(map[string]int)

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read trace: %v\n", err)
			os.Exit(1)
		}
		total++
		byOp[event.Op.String()]++
		byDevice[event.DeviceID]++
		if event.Failed() {
			failures++
		}
	}

	fmt.Printf("Events:   %d\n", total)
	fmt.Printf("Failures: %d\n", failures)

	fmt.Println("By operation:")
	for _, name := range sortedKeys(byOp) {
		fmt.Printf("  %-8s %d\n", name, byOp[name])
	}
	fmt.Println("By device:")
	for _, name := range sortedKeys(byDevice) {
		fmt.Printf("  %-16s %d\n", name, byDevice[name])
	}
}

func requirePath(fs *flag.FlagSet) string {
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Expected exactly one trace file argument")
		os.Exit(1)
	}
	return fs.Arg(0)
}

func parseOp(s string) (log.Op, error) {
	switch strings.ToLower(s) {
	case "read":
		return log.OpRead, nil
	case "write":
		return log.OpWrite, nil
	case "probe":
		return log.OpProbe, nil
	case "bind":
		return log.OpBind, nil
	case "extent":
		return log.OpExtent, nil
	default:
		return 0, fmt.Errorf("unknown operation %q", s)
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
