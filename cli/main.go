package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/schollz/progressbar/v3"

	"ytexport"
	"ytexport/config"
	"ytexport/export"
)

func main() {
	command := "run"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "run":
		cmdRun()
	case "replay":
		cmdReplay()
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `ytexport - export your YouTube playlists to CSV

Usage:
  ytexport            Export all playlists (same as "ytexport run")
  ytexport run        Export all playlists
  ytexport replay     Rewrite the CSV files from the last run's snapshot
  ytexport help       Show this help message

Settings come from ytexport.json or YTEXPORT_* environment variables.
The first run opens an OAuth consent URL; credentials.json must hold the
OAuth client secret of a Google Cloud project with the YouTube Data API enabled.
`)
}

func cmdRun() {
	cfg := loadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	onProgress, finish := newProgress(cfg.Progress)
	report, err := ytexport.Run(ctx, cfg, onProgress)
	finish()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting playlists: %v\n", err)
		if report != nil {
			printReport(report, cfg.OutputDir)
		}
		os.Exit(1)
	}

	printReport(report, cfg.OutputDir)
}

func cmdReplay() {
	cfg := loadConfig()

	report, err := ytexport.Replay(context.Background(), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error replaying snapshot: %v\n", err)
		os.Exit(1)
	}

	printReport(report, cfg.OutputDir)
}

func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newProgress returns a progress callback drawing a bar on stderr, and a
// function that completes the bar. Both are no-ops when disabled.
func newProgress(enabled bool) (func(done, total int), func()) {
	if !enabled {
		return nil, func() {}
	}

	var bar *progressbar.ProgressBar
	onProgress := func(done, total int) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionSetDescription("Fetching playlist items"),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)
		}
		bar.Set(done)
	}
	finish := func() {
		if bar != nil {
			bar.Finish()
		}
	}
	return onProgress, finish
}

func printReport(report *export.Report, dir string) {
	if len(report.Skipped) > 0 {
		w := tabwriter.NewWriter(os.Stderr, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "PLAYLIST\tFILE\tERROR")
		for _, s := range report.Skipped {
			fmt.Fprintf(w, "%s\t%s\t%v\n", s.PlaylistID, truncate(s.File, 40), s.Err)
		}
		w.Flush()
		fmt.Fprintln(os.Stderr)
	}

	fmt.Fprintf(os.Stderr, "Wrote %d files to %s (run %s)\n", len(report.Files), dir, report.RunID)
	if len(report.Skipped) > 0 {
		fmt.Fprintf(os.Stderr, "Skipped %d playlist tables\n", len(report.Skipped))
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
