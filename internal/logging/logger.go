// Package logging provides colored, leveled log output for the hicpipe CLI.
//
// All output functions write a prefixed, color-coded line. Debug output is
// suppressed unless verbose mode is enabled via SetVerbose(true).
package logging

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
)

// verbose controls whether Debug() and PrintConfig() produce output.
var verbose bool

// Color printers for each log level.
var (
	infoPrefix    = color.New(color.FgBlue).SprintFunc()
	successPrefix = color.New(color.FgGreen).SprintFunc()
	warnPrefix    = color.New(color.FgYellow).SprintFunc()
	errorPrefix   = color.New(color.FgRed).SprintFunc()
	stagePrefix   = color.New(color.FgCyan).SprintFunc()
	debugPrefix   = color.New(color.FgBlue).SprintFunc()
)

// SetVerbose enables or disables Debug and PrintConfig output.
func SetVerbose(v bool) {
	verbose = v
}

// Verbose reports whether verbose mode is enabled.
func Verbose() bool {
	return verbose
}

// Info prints an informational message to stdout in blue.
func Info(msg string) {
	fmt.Println(infoPrefix("[INFO]") + " " + msg)
}

// Success prints a success message to stdout in green.
func Success(msg string) {
	fmt.Println(successPrefix("[SUCCESS]") + " " + msg)
}

// Warn prints a warning message to stdout in yellow.
func Warn(msg string) {
	fmt.Println(warnPrefix("[WARN]") + " " + msg)
}

// Error prints an error message to stderr in red.
func Error(msg string) {
	fmt.Fprintln(os.Stderr, errorPrefix("[ERROR]")+" "+msg)
}

// Stage prints a pipeline stage header to stdout in cyan, surrounded by
// separator lines.
func Stage(msg string) {
	sep := stagePrefix("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println(sep)
	fmt.Println(stagePrefix("[STAGE]") + " " + msg)
	fmt.Println(sep)
}

// Debug prints a debug message to stdout in blue, only when verbose mode is enabled.
func Debug(msg string) {
	if !verbose {
		return
	}
	fmt.Println(debugPrefix("[DEBUG]") + " " + msg)
}

// PrintConfig dumps a configuration mapping with sorted keys under a titled
// separator block, only when verbose mode is enabled.
//
// Example output:
//
//	--- Config ------------------------------------------------------------
//	bin_size: 10000
//	enzyme: HindIII
//	------------------------------------------------------------------------
func PrintConfig(title string, m map[string]any) {
	if !verbose {
		return
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pad := 72 - len(title)
	if pad < 3 {
		pad = 3
	}
	fmt.Printf("\n--- %s %s\n", title, strings.Repeat("-", pad))
	for _, k := range keys {
		fmt.Printf("%s: %v\n", k, m[k])
	}
	fmt.Println(strings.Repeat("-", 72))
}

// FormatDuration converts a duration in seconds to a human-readable string.
//
// Examples:
//
//	FormatDuration(0)    => "0s"
//	FormatDuration(45)   => "45s"
//	FormatDuration(90)   => "1m 30s"
//	FormatDuration(3661) => "1h 1m 1s"
func FormatDuration(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	if seconds < 3600 {
		return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
	}
	return fmt.Sprintf("%dh %dm %ds", seconds/3600, (seconds%3600)/60, seconds%60)
}
