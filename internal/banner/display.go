// Package banner provides colored banner display functions for the hicpipe CLI.
package banner

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/hicpipe/hicpipe/internal/logging"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold).SprintFunc()
	successColor = color.New(color.FgGreen, color.Bold).SprintFunc()
	errorColor   = color.New(color.FgRed, color.Bold).SprintFunc()
)

const sepLine = "═══════════════════════════════════════════════════"

// PrintStartupBanner displays the run parameters before the engine starts.
//
// Example output:
//
//	═══════════════════════════════════════════════════
//	  hicpipe - Hi-C contact matrix pipeline
//	═══════════════════════════════════════════════════
//	  Genome:     mm10
//	  Input:      /data/fastq
//	  Output:     /runs/hic1
//	  Samples:    4 (paired-end)
//	═══════════════════════════════════════════════════
func PrintStartupBanner(genome, indir, outdir string, sampleCount int, paired bool) {
	layout := "single-end"
	if paired {
		layout = "paired-end"
	}

	sep := headerColor(sepLine)
	fmt.Println(sep)
	fmt.Println(headerColor("  hicpipe - Hi-C contact matrix pipeline"))
	fmt.Println(sep)
	fmt.Printf("  Genome:     %s\n", genome)
	fmt.Printf("  Input:      %s\n", indir)
	fmt.Printf("  Output:     %s\n", outdir)
	fmt.Printf("  Samples:    %d (%s)\n", sampleCount, layout)
	fmt.Println(sep)
}

// PrintCompletionBanner displays the completion banner with the run duration.
func PrintCompletionBanner(durationSecs int) {
	sep := successColor(sepLine)
	fmt.Println(sep)
	fmt.Println(successColor("  ✓ Pipeline run finished"))
	fmt.Printf("  Duration:   %s (%ds)\n", logging.FormatDuration(durationSecs), durationSecs)
	fmt.Println(sep)
}

// PrintErrorBanner displays a prominent error banner. Long messages wrap at
// the separator width.
func PrintErrorBanner(msg string) {
	sep := errorColor(sepLine)
	fmt.Println(sep)
	fmt.Println(errorColor("  ✗ Pipeline run failed"))
	for _, line := range wrap(msg, len(sepLine)-2) {
		fmt.Printf("  %s\n", line)
	}
	fmt.Println(sep)
}

// wrap splits s into lines of at most width characters, breaking on spaces.
func wrap(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}
