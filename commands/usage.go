package commands

import "fmt"

// PrintUsage displays help information for available commands
func PrintUsage() {
	fmt.Println("assetfix - Fix stale asset references after content-hash renaming")
	fmt.Println("")
	fmt.Println("Usage:")
	fmt.Println("  assetfix fix -dir <directory> [options]")
	fmt.Println("  assetfix serve -dir <directory> [-port <port>]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  fix       Rewrite src/href references in HTML documents to match")
	fmt.Println("            the emitted (hash-renamed) asset filenames")
	fmt.Println("  serve     Start HTTP server to preview a fixed build")
	fmt.Println("")
	fmt.Println("Fix options:")
	fmt.Println("  -dir        Build directory containing the emitted files (required)")
	fmt.Println("  -types      Comma-separated asset type suffixes (default: html,css,js)")
	fmt.Println("  -exclude    Comma-separated document keys or references to skip")
	fmt.Println("  -config     JSON options file")
	fmt.Println("  -workers    Number of concurrent file readers (default: 10, range: 1-50)")
	fmt.Println("  -quiet      Suppress the change summary")
	fmt.Println("  -dry-run    Report changes without writing files")
	fmt.Println("  -extractor  Reference extraction strategy: regex or dom (default: regex)")
	fmt.Println("")
	fmt.Println("Serve options:")
	fmt.Println("  -dir      Build directory to serve (required)")
	fmt.Println("  -port     Port for HTTP server (default: 8080)")
}
