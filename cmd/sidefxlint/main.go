// Command sidefxlint runs the side-effect engine over host-supplied
// ingestion documents (each a parsed module plus its scope-resolution
// pass) and prints the resulting diagnostics.
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/sidefxlint/sidefxlint/pkg/sidefx"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [--config path] <document.json> [file2.json...]\n", os.Args[0])
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var configPath string
	var files []string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--config":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "sidefxlint: --config requires a path")
				os.Exit(1)
			}
			configPath = args[i+1]
			i++
		case "-h", "--help", "help":
			usage()
			os.Exit(0)
		default:
			files = append(files, args[i])
		}
	}

	if len(files) == 0 {
		usage()
		os.Exit(1)
	}

	color := colorEnabled()
	exitCode := 0

	for _, path := range files {
		document, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "sidefxlint: %s: %v\n", path, err)
			exitCode = 1
			continue
		}

		diags, err := sidefx.Analyze(document, sidefx.Options{ConfigPath: configPath})
		if err != nil {
			fmt.Fprintf(os.Stderr, "sidefxlint: %s: %v\n", path, err)
			exitCode = 1
			continue
		}
		if len(diags) == 0 {
			continue
		}

		exitCode = 1
		for _, d := range diags {
			printDiagnostic(path, d, color)
		}
	}

	os.Exit(exitCode)
}

func colorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func printDiagnostic(path string, d sidefx.Diagnostic, color bool) {
	start := d.Node.GetLoc().Start
	loc := fmt.Sprintf("%s:%d:%d", path, start.Line, start.Column)
	if !color {
		fmt.Printf("%s: %s\n", loc, d.Message)
		return
	}
	fmt.Printf("\033[2m%s\033[0m: \033[33m%s\033[0m\n", loc, d.Message)
}
