// Multi-viewer main entrypoint.
//
// Headless comparison renderer for calcium-imaging trace recordings:
// load .xlsx/.csv exports, pick traces by sample/segment/side, apply
// normalization and smoothing, optionally add per-segment means and a
// delta trace, then write the overlay or stacked comparison chart as
// PNG.
//
// Settings resolve in three layers: command-line flags win, then the
// optional YAML comparison file (-config), then MULTIVIEWER_*
// environment defaults.
//
// Design notes:
//   - Recording identity: the file's display name (sample + region);
//     loading the same name twice replaces the first recording.
//   - Dependency direction: main -> session for the model, loader for
//     input, plot for output. The model never reads files or draws.
//   - One pass: load, select, transform, derive, render, exit non-zero
//     on the first error.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"

	"github.com/nvelichkova/Multi-viewer/src/loader"
	"github.com/nvelichkova/Multi-viewer/src/logging"
	"github.com/nvelichkova/Multi-viewer/src/plot"
	"github.com/nvelichkova/Multi-viewer/src/session"
)

func main() {
	var env envDefaults
	if err := envconfig.Process("multiviewer", &env); err != nil {
		fmt.Fprintln(os.Stderr, "environment:", err)
		os.Exit(2)
	}

	configPath := flag.String("config", "", "Optional YAML comparison file; flags win over its values")
	hz := flag.Float64("hz", env.SamplingHz, "Sampling rate in Hz applied to loaded files")
	samples := flag.String("samples", "", "Comma-separated sample names to select (empty = all)")
	segments := flag.String("segments", "", "Comma-separated segment names to select (empty = all)")
	sides := flag.String("sides", "both", "Side filter: both|left|right")
	normalize := flag.String("normalize", "none", "Normalization: none|mean|baseline")
	baselineStart := flag.Float64("baseline-start", 0, "Baseline window start in seconds (baseline mode)")
	baselineDur := flag.Float64("baseline-duration", 10, "Baseline window length in seconds (baseline mode)")
	smoothPct := flag.Float64("smooth", 0, "Gaussian smoothing sigma as percent of trace length (0 = off)")
	showMean := flag.Bool("mean", false, "Add the per-segment mean trace")
	showDelta := flag.Bool("delta", false, "Add the delta between the first two segment groups")
	view := flag.String("view", "overlay", "Chart view: overlay|stacked")
	colors := flag.String("colors", "identity", "Color scheme: identity|anatomy")
	align := flag.String("align", "strict", "Alignment for mismatched sample counts: strict|truncate|resample")
	title := flag.String("title", "", "Chart title (default derives from the loaded samples)")
	out := flag.String("out", env.Out, "Output PNG path")
	width := flag.Int("width", env.Width, "Chart width in pixels")
	height := flag.Int("height", env.Height, "Chart height in pixels (per panel when stacked)")
	logLevel := flag.String("log-level", env.LogLevel, "Log level (debug|info|warn|error)")
	flag.Parse()

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg := runConfig{
		Files:            flag.Args(),
		SamplingHz:       *hz,
		Samples:          splitList(*samples),
		Segments:         splitList(*segments),
		Sides:            *sides,
		Normalize:        *normalize,
		BaselineStart:    *baselineStart,
		BaselineDuration: *baselineDur,
		SmoothPct:        *smoothPct,
		Mean:             *showMean,
		Delta:            *showDelta,
		View:             *view,
		Colors:           *colors,
		Align:            *align,
		Title:            *title,
		Out:              *out,
		Width:            *width,
		Height:           *height,
		LogLevel:         *logLevel,
	}
	if *configPath != "" {
		fileCfg, err := loadCompareConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		applyCompareConfig(&cfg, fileCfg, set)
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Error("comparison failed", zap.Error(err))
		os.Exit(1)
	}
}

// run executes one comparison end to end.
func run(cfg runConfig, log *zap.Logger) error {
	start := time.Now()
	if len(cfg.Files) == 0 {
		return fmt.Errorf("no input files (pass paths as arguments or files: in -config)")
	}
	alignPol, err := session.ParseAlignPolicy(cfg.Align)
	if err != nil {
		return err
	}
	norm, err := parseNormMode(cfg.Normalize)
	if err != nil {
		return err
	}
	scheme, err := plot.ParseScheme(cfg.Colors)
	if err != nil {
		return err
	}
	sideFilter, err := session.ParseSideFilter(cfg.Sides)
	if err != nil {
		return err
	}
	if cfg.View != "overlay" && cfg.View != "stacked" {
		return fmt.Errorf("unknown view %q", cfg.View)
	}

	sess := session.New(session.Config{Logger: log, SamplingHz: cfg.SamplingHz, Align: alignPol})
	ld := loader.New(log)
	for _, path := range cfg.Files {
		src, err := ld.Load(path, cfg.SamplingHz)
		if err != nil {
			return err
		}
		if _, err := sess.AddRecording(src); err != nil {
			return err
		}
	}

	ids := sess.Resolve(session.Selection{
		Samples:  cfg.Samples,
		Segments: cfg.Segments,
		Sides:    sideFilter,
	})
	if len(ids) == 0 {
		return fmt.Errorf("selection matched no traces")
	}
	traces, err := sess.Select(ids...)
	if err != nil {
		return err
	}
	log.Info("selection resolved",
		zap.Int("traces", len(traces)),
		zap.Int("recordings", len(sess.Recordings())))

	series, err := buildSeries(sess, traces, cfg, norm, scheme, log)
	if err != nil {
		return err
	}

	opt := plot.Options{
		Title:  cfg.Title,
		YLabel: norm.yLabel(),
		Width:  cfg.Width,
		Height: cfg.Height,
		Footer: footerNote(cfg),
	}
	if opt.Title == "" {
		opt.Title = defaultTitle(sess)
	}
	var img image.Image
	if cfg.View == "stacked" {
		img, err = plot.RenderStacked(plot.BuildPanels(series), opt)
	} else {
		img, err = plot.RenderOverlay(series, opt)
	}
	if err != nil {
		return err
	}
	if err := plot.WritePNG(cfg.Out, img); err != nil {
		return err
	}
	log.Info("chart written",
		zap.String("path", cfg.Out),
		zap.String("view", cfg.View),
		zap.Int("series", len(series)),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

// splitList parses a comma-separated flag value into trimmed non-empty
// items.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// defaultTitle names the chart after the loaded samples.
func defaultTitle(sess *session.Session) string {
	samples := sess.Samples()
	if len(samples) > 3 {
		samples = append(samples[:3], "...")
	}
	return "Trace comparison - " + strings.Join(samples, ", ")
}
