package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/nvelichkova/Multi-viewer/src/loader"
	"github.com/nvelichkova/Multi-viewer/src/session"
	"github.com/nvelichkova/Multi-viewer/src/trace"
)

func main() {
	var hz float64
	var verbose bool
	flag.Float64Var(&hz, "hz", trace.DefaultSamplingHz, "Sampling rate in Hz applied to loaded files")
	flag.BoolVar(&verbose, "v", false, "Also list every trace")
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: traceinfo [-hz N] [-v] file.xlsx [file2.csv ...]")
		os.Exit(2)
	}

	sess := session.New(session.Config{Logger: zap.NewNop(), SamplingHz: hz})
	ld := loader.New(zap.NewNop())
	for _, path := range flag.Args() {
		src, err := ld.Load(path, hz)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		if _, err := sess.AddRecording(src); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	for _, rec := range sess.Recordings() {
		region := rec.Region
		if region == "" {
			region = "(none)"
		}
		fmt.Printf("%s: sample=%s region=%s hz=%g traces=%d\n",
			rec.Label, rec.Sample, region, rec.SamplingHz, len(rec.Traces))
		if !verbose {
			continue
		}
		for _, tr := range rec.Traces {
			times := tr.TimeValues()
			dur := 0.0
			if len(times) > 0 {
				dur = times[len(times)-1]
			}
			fmt.Printf("  %-36s segment=%s side=%s samples=%d duration=%.1fs\n",
				tr.ID(), tr.Seg.Segment, tr.Seg.Side, len(tr.Samples), dur)
		}
	}

	traces, err := sess.Select(sess.Resolve(session.Selection{})...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	groups := session.Groups(traces)
	fmt.Printf("Segment groups: %d\n", len(groups))
	for _, g := range groups {
		fmt.Printf("  %s: %d traces\n", g.ID, len(g.Traces))
	}
}
