// Command tabgrid scrapes bordered tables from a PDF file into CSV.
//
// Usage:
//
//	tabgrid [-p RANGE] [-b WIDTH] [-o FILE] [-debug-svg PATH] [-v|-q] file.pdf
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/tabgrid/tabgrid"
	"github.com/tabgrid/tabgrid/export"
)

// Verbosity levels selected by repeatable -v/-q flags.
const (
	levelError = iota
	levelWarning
	levelInfo
	levelDebug
)

// countFlag counts flag repetitions: -v -v raises verbosity by two.
type countFlag int

func (c *countFlag) String() string   { return strconv.Itoa(int(*c)) }
func (c *countFlag) Set(string) error { *c++; return nil }
func (c *countFlag) IsBoolFlag() bool { return true }

// verbosityLevel maps the flag counts onto the level ladder. Warnings show
// by default; -q drops to errors only, -v adds info, -v -v adds debug.
func verbosityLevel(verbose, quiet int) int {
	level := levelWarning + verbose - quiet
	if level < levelError {
		return levelError
	}
	if level > levelDebug {
		return levelDebug
	}
	return level
}

func main() {
	var (
		pageRange   = flag.String("p", "", "page range, 1-indexed, e.g. \"3\" or \"2-9\"")
		borderWidth = flag.Float64("b", 1, "width of table borders in page units")
		outfile     = flag.String("o", "", "path to CSV output file (default stdout)")
		debugSVG    = flag.String("debug-svg", "", "path pattern for debug SVG output; %d inserts the page number")

		verbose, quiet countFlag
	)
	flag.Var(&verbose, "v", "print more diagnostics; repeat for debug output")
	flag.Var(&quiet, "q", "suppress warnings; repeat to silence everything but errors")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: tabgrid [flags] file.pdf")
		flag.PrintDefaults()
		os.Exit(2)
	}
	pdfPath := flag.Arg(0)

	log.SetFlags(0)
	level := verbosityLevel(int(verbose), int(quiet))

	ext := tabgrid.Open(pdfPath).BorderWidth(*borderWidth)

	if *pageRange != "" {
		first, last, err := parsePageRange(*pageRange)
		if err != nil {
			log.Fatalf("invalid page range %q: %v", *pageRange, err)
		}
		ext = ext.PageRange(first, last)
	}

	if *debugSVG != "" {
		if err := dumpOverlays(ext, *debugSVG, level); err != nil {
			log.Fatal(err)
		}
	}

	tbls, warnings, err := ext.Tables()
	if err != nil {
		log.Fatal(err)
	}
	if level >= levelWarning && len(warnings) > 0 {
		log.Println(tabgrid.FormatWarnings(warnings))
	}
	if level >= levelInfo {
		log.Printf("extracted %d tables from %s", len(tbls), pdfPath)
	}

	if *outfile != "" {
		err = export.WriteCSVFile(*outfile, tbls)
	} else {
		err = export.WriteCSV(os.Stdout, tbls)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// dumpOverlays writes one diagnostic SVG per processed page. A %d verb in
// the path pattern is replaced by the page number; without one, the last
// page overwrites earlier ones.
func dumpOverlays(ext *tabgrid.Extractor, pattern string, level int) error {
	overlays, _, err := ext.Overlays()
	if err != nil {
		return err
	}
	for page, ov := range overlays {
		path := pattern
		if strings.Contains(pattern, "%") {
			path = fmt.Sprintf(pattern, page)
		}
		if level >= levelDebug {
			log.Printf("writing page %d overlay to %s", page, path)
		}
		if err := export.WriteSVGFile(path, ov); err != nil {
			return err
		}
	}
	return nil
}

// parsePageRange parses "N" or "FIRST-LAST" into an inclusive page range.
func parsePageRange(text string) (int, int, error) {
	text = strings.TrimSpace(text)

	if page, err := strconv.Atoi(text); err == nil {
		return page, page, nil
	}

	first, last, ok := strings.Cut(text, "-")
	if !ok {
		return 0, 0, fmt.Errorf("expected N or FIRST-LAST")
	}
	f, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil {
		return 0, 0, err
	}
	l, err := strconv.Atoi(strings.TrimSpace(last))
	if err != nil {
		return 0, 0, err
	}
	return f, l, nil
}
