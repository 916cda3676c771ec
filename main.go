/*
Package main implements gantt2svg, a command line renderer that turns JSON
Gantt chart documents into standalone SVG files.

A chart document carries the X axis limits, an optional action legend, the
tracks to load and an ordered list of load, unload and reflow updates. The
YAML configuration controls fonts, colors, layout and where output goes:
a local directory or a Google Cloud Storage bucket.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"gantt2svg/config"
	"gantt2svg/gantt"
)

func main() {
	// Parse command line arguments
	debugFlag := flag.Bool("debug", false, "Enable debug mode for verbose output")
	chartFile := flag.String("chart", "", "JSON chart document to render")
	batchDir := flag.String("batch", "", "Directory of JSON chart documents to render")
	configFile := flag.String("config", "", "YAML configuration file (optional)")
	outputFile := flag.String("output", "", "Output SVG file, directory, or gs://bucket/path (optional)")
	width := flag.Float64("width", 0, "Canvas width in pixels, overrides layout.width (optional)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		fmt.Fprintf(os.Stderr, "  --debug             Enable debug mode for verbose output\n")
		fmt.Fprintf(os.Stderr, "  --chart <file>      JSON chart document to render\n")
		fmt.Fprintf(os.Stderr, "  --batch <dir>       Render every .json document in a directory\n")
		fmt.Fprintf(os.Stderr, "  --config <file>     YAML configuration file (optional)\n")
		fmt.Fprintf(os.Stderr, "  --output <target>   Output file, directory, or gs://bucket/path (optional)\n")
		fmt.Fprintf(os.Stderr, "  --width <px>        Canvas width, overrides the configuration (optional)\n")
		fmt.Fprintf(os.Stderr, "\nExactly one of --chart or --batch is required.\n")
		fmt.Fprintf(os.Stderr, "If no config file is specified, default settings will be used.\n")
		fmt.Fprintf(os.Stderr, "If no output is specified, the chart filename with .svg extension will be used.\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s --chart chart.json --config style.yaml --output chart.svg\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --batch charts/ --output gs://my-bucket/charts\n", os.Args[0])
	}

	flag.Parse()

	// Validate required arguments
	if (*chartFile == "") == (*batchDir == "") {
		fmt.Fprintf(os.Stderr, "Error: exactly one of --chart or --batch is required.\n\n")
		flag.Usage()
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if *width > 0 {
		cfg.Layout.Width = *width
	}

	logger := newLogger(cfg, *debugFlag)
	slog.SetDefault(logger)
	gantt.SetLogger(logger)
	slog.Debug("configuration loaded",
		"width", cfg.Layout.Width, "trackHeight", cfg.Track.DefaultHeight, "storage", cfg.Storage.Type)

	ctx := context.Background()
	if *batchDir != "" {
		err = runBatch(ctx, cfg, *batchDir, *outputFile)
	} else {
		err = runSingle(ctx, cfg, *chartFile, *outputFile)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the structured logger shared with the gantt package. The
// level comes from the configuration unless debug mode forces debug output.
func newLogger(cfg *config.Config, debug bool) *slog.Logger {
	level := slog.Level(cfg.LogLevel)
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
