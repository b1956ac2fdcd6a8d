package commands

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"assetfix/assets"
	"assetfix/html"
)

// FixCommand rewrites stale asset references in a built site directory
// so they point at the actual emitted (hash-renamed) filenames.
func FixCommand() {
	startTime := time.Now()

	fixFlags := flag.NewFlagSet("fix", flag.ExitOnError)
	dir := fixFlags.String("dir", "", "Build directory containing the emitted files")
	typesFlag := fixFlags.String("types", "", "Comma-separated asset type suffixes (default: html,css,js)")
	excludeFlag := fixFlags.String("exclude", "", "Comma-separated document keys or references to skip")
	configFile := fixFlags.String("config", "", "JSON options file")
	workers := fixFlags.Int("workers", 10, "Number of concurrent file readers (1-50)")
	quiet := fixFlags.Bool("quiet", false, "Suppress the change summary")
	dryRun := fixFlags.Bool("dry-run", false, "Report changes without writing files")
	extractor := fixFlags.String("extractor", "regex", "Reference extraction strategy: regex or dom")
	fixFlags.Parse(os.Args[2:])

	if *dir == "" {
		fmt.Println("Please provide a build directory with -dir flag.")
		fixFlags.Usage()
		os.Exit(1)
	}

	if *workers < 1 || *workers > 50 {
		fmt.Println("Workers must be between 1 and 50.")
		os.Exit(1)
	}

	opts := assets.DefaultOptions()
	var warnings []string
	if *configFile != "" {
		data, err := os.ReadFile(*configFile)
		if err != nil {
			fmt.Printf("Failed to read config file: %v\n", err)
			os.Exit(1)
		}
		opts, warnings, err = assets.ParseOptions(data)
		if err != nil {
			fmt.Printf("Failed to parse config file: %v\n", err)
			os.Exit(1)
		}
	}
	if *typesFlag != "" {
		opts.Types = splitList(*typesFlag)
	}
	if *excludeFlag != "" {
		opts.Exclude = append(opts.Exclude, splitList(*excludeFlag)...)
	}
	if *quiet {
		opts.Output = false
	}
	warnings = append(warnings, opts.Normalize()...)

	artifacts, err := assets.LoadDir(*dir, *workers)
	if err != nil {
		fmt.Printf("Failed to load build directory: %v\n", err)
		os.Exit(1)
	}

	fixer, err := assets.NewFixer(opts)
	if err != nil {
		fmt.Printf("Failed to configure fixer: %v\n", err)
		os.Exit(1)
	}
	switch *extractor {
	case "regex":
	case "dom":
		domExtractor, err := html.NewDOMExtractor(opts.Types)
		if err != nil {
			fmt.Printf("Failed to configure extractor: %v\n", err)
			os.Exit(1)
		}
		fixer.SetExtractor(domExtractor)
	default:
		fmt.Printf("Unknown extractor strategy: %s\n", *extractor)
		os.Exit(1)
	}
	fixer.Report().AddWarnings(warnings)

	rewrites := fixer.Fix(artifacts)

	if !*dryRun {
		for _, rw := range rewrites {
			path := filepath.Join(*dir, filepath.FromSlash(strings.TrimPrefix(rw.Key, "/")))
			if err := os.WriteFile(path, []byte(rw.Body), 0644); err != nil {
				fmt.Printf("Failed to write %s: %v\n", rw.Key, err)
				os.Exit(1)
			}
		}
	}

	rep := fixer.Report()
	for _, w := range rep.Warnings() {
		fmt.Printf("warning: %s\n", w)
	}
	for _, e := range rep.Errors() {
		fmt.Printf("error: %s\n", e)
	}
	if opts.Output {
		if summary := rep.Render(); summary != "" {
			fmt.Print(summary)
		}
	}

	totalTime := time.Since(startTime)
	fmt.Printf("Fixed %d document(s) in %.2fs\n", len(rewrites), totalTime.Seconds())
	if len(rep.Errors()) > 0 {
		os.Exit(1)
	}
}

func splitList(s string) []string {
	var list []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			list = append(list, item)
		}
	}
	return list
}
