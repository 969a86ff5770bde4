package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/colinoflynn/crcbeagle/internal/beagle"
	"github.com/colinoflynn/crcbeagle/internal/capture"
	"github.com/colinoflynn/crcbeagle/internal/codegen"
	"github.com/colinoflynn/crcbeagle/internal/common"
	"github.com/colinoflynn/crcbeagle/internal/crcengine"
	"github.com/colinoflynn/crcbeagle/internal/report"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}
	cmd := os.Args[1]
	switch cmd {
	case "search":
		searchCmd(os.Args[2:])
	case "report":
		reportCmd(os.Args[2:])
	case "catalog":
		catalogCmd(os.Args[2:])
	default:
		usage()
	}
}

func usage() {
	fmt.Printf(`crcbeagle %s (built %s) <command> [options]

Commands:
  search   --in <capture.json|capture.txt> [--catalog <overlay.yaml>] [--out <report.json>] [--pdf <report.pdf>] [--ndjson <outcomes.jsonl>] [--example] [--concurrency <n>] [--metrics] [--progress]
  report   --in <report.json> --pdf <report.pdf>
  catalog  [--width <8|16|32>] [--catalog <overlay.yaml>]
`, version, buildDate)
}

func searchCmd(args []string) {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	in := fs.String("in", "", "capture file (.json or hex lines)")
	overlay := fs.String("catalog", "", "catalog overlay YAML")
	outJSON := fs.String("out", "", "report JSON output")
	outPDF := fs.String("pdf", "", "report PDF output")
	outNDJSON := fs.String("ndjson", "", "per-group outcomes output (jsonl)")
	example := fs.Bool("example", false, "print generated usage code for resolved solutions")
	concurrency := fs.Int("concurrency", 1, "maximum concurrent catalog matches per difference")
	metricsFlag := fs.Bool("metrics", false, "print search throughput metrics")
	progressFlag := fs.Bool("progress", false, "display search progress updates")
	fs.Parse(args)

	if *in == "" {
		fmt.Println("required: --in")
		os.Exit(1)
	}

	ds, err := capture.Load(*in)
	if err != nil {
		fmt.Println("load capture:", err)
		os.Exit(1)
	}

	catalog, err := crcengine.CatalogWithOverlay(*overlay)
	if err != nil {
		fmt.Println("load catalog:", err)
		os.Exit(1)
	}

	var metrics *common.Metrics
	if *metricsFlag || *progressFlag {
		metrics = common.NewMetrics()
	}

	searcher := beagle.NewSearcher()
	searcher.Catalog = catalog
	searcher.Concurrency = *concurrency
	searcher.Metrics = metrics

	if metrics != nil {
		metrics.Start()
	}
	var stopProgress func()
	if metrics != nil && *progressFlag {
		stopProgress = common.StartProgressPrinter(os.Stderr, metrics, 500*time.Millisecond)
	}
	rep, err := searcher.Search(ds.Messages, ds.Checks)
	if stopProgress != nil {
		stopProgress()
	}
	if metrics != nil {
		metrics.Stop()
	}
	if err != nil {
		fmt.Println("search:", err)
		os.Exit(1)
	}

	printReport(rep, ds, *example)

	if *outJSON != "" {
		if err := report.SaveReportJSON(rep, *outJSON); err != nil {
			fmt.Println("write report:", err)
			os.Exit(1)
		}
	}
	if *outPDF != "" {
		if err := report.SaveReportPDF(rep, *outPDF); err != nil {
			fmt.Println("write pdf:", err)
			os.Exit(1)
		}
	}
	if *outNDJSON != "" {
		if err := beagle.WriteOutcomesNDJSON(rep, *outNDJSON); err != nil {
			fmt.Println("write outcomes:", err)
			os.Exit(1)
		}
	}
	if metrics != nil && *metricsFlag {
		snap := metrics.Snapshot()
		fmt.Printf("Metrics: duration=%s groups=%d pairs=%d comparisons=%d (%.0f/s)\n",
			snap.Duration.Round(10*time.Millisecond),
			snap.Groups,
			snap.Pairs,
			snap.Comparisons,
			snap.ComparisonsPerSecond(),
		)
	}
}

func printReport(rep *beagle.SearchReport, ds capture.Dataset, example bool) {
	fmt.Printf("Session %s: %d-bit check value, %d messages, %d length groups\n",
		rep.SessionID, rep.Width, rep.Messages, len(rep.Groups))
	if rep.Linear != nil {
		fmt.Printf("Possible linear code and not CRC: %s checksum XOR 0x%02X (works on all %d inputs)\n",
			rep.Linear.Kind, rep.Linear.Mask, rep.Messages)
	}
	for _, g := range rep.Groups {
		fmt.Printf("\nMessages of length %d (%d members, %d pairs): %s\n", g.MessageLen, g.Members, g.Pairs, g.Status)
		for _, note := range g.Notes {
			fmt.Printf("  note: %s\n", note)
		}
		for _, sol := range g.Solutions {
			fmt.Printf("  %s\n", sol)
			if example {
				src, err := codegen.UsageExample(sol, exampleMessage(ds, g.MessageLen))
				if err != nil {
					fmt.Println("  generate example:", err)
					continue
				}
				fmt.Println("********** example usage *************")
				fmt.Println(src)
				fmt.Println("**************************************")
			}
		}
	}
}

// exampleMessage picks the first capture of the group's length to echo in
// generated usage code.
func exampleMessage(ds capture.Dataset, msgLen int) []byte {
	for _, m := range ds.Messages {
		if len(m) == msgLen {
			return m
		}
	}
	return nil
}

func reportCmd(args []string) {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	in := fs.String("in", "", "report JSON input")
	outPDF := fs.String("pdf", "", "report PDF output")
	fs.Parse(args)

	if *in == "" || *outPDF == "" {
		fmt.Println("required: --in and --pdf")
		os.Exit(1)
	}
	rep, err := report.LoadReportJSON(*in)
	if err != nil {
		fmt.Println("load report:", err)
		os.Exit(1)
	}
	if err := report.SaveReportPDF(rep, *outPDF); err != nil {
		fmt.Println("write pdf:", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", *outPDF)
}

func catalogCmd(args []string) {
	fs := flag.NewFlagSet("catalog", flag.ExitOnError)
	width := fs.Int("width", 0, "restrict to one width (8, 16 or 32)")
	overlay := fs.String("catalog", "", "catalog overlay YAML")
	fs.Parse(args)

	catalog, err := crcengine.CatalogWithOverlay(*overlay)
	if err != nil {
		fmt.Println("load catalog:", err)
		os.Exit(1)
	}
	widths := crcengine.Widths
	if *width != 0 {
		widths = []int{*width}
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "WIDTH\tPOLY\tREFIN\tREFOUT")
	for _, wd := range widths {
		for _, e := range catalog(wd) {
			fmt.Fprintf(w, "%d\t0x%X\t%v\t%v\n", e.Width, e.Poly, e.ReflectIn, e.ReflectOut)
		}
	}
	w.Flush()
}
