package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"

	"gantt2svg/config"
	"gantt2svg/gantt"
	"gantt2svg/internal/storage"
)

// getOutputFilename determines the output filename for the SVG file.
// If outputFile is provided and not empty, it returns that filename.
// Otherwise, it derives the filename from the chart file by replacing
// the extension with .svg (e.g., "chart.json" becomes "chart.svg").
func getOutputFilename(chartFile, outputFile string) string {
	if outputFile != "" {
		return outputFile
	}

	// Use chart filename with .svg extension
	base := filepath.Base(chartFile)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + ".svg"
}

// resolveOutput turns the --output target into a storage configuration and,
// for single charts, the output name. A gs:// target selects GCS; anything
// else is a local path. An empty target keeps the configured storage.
func resolveOutput(cfg config.StorageConfig, chartFile, target string, batch bool) (config.StorageConfig, string, error) {
	if bucket, object, ok := storage.ParseGCSURL(target); ok {
		out := config.StorageConfig{
			Type:            "gcs",
			Bucket:          bucket,
			CredentialsFile: cfg.CredentialsFile,
		}
		if batch || object == "" || strings.HasSuffix(object, "/") {
			out.ObjectPrefix = strings.TrimSuffix(object, "/")
			return out, getOutputFilename(chartFile, ""), nil
		}
		if dir := path.Dir(object); dir != "." {
			out.ObjectPrefix = dir
		}
		return out, path.Base(object), nil
	}
	if strings.HasPrefix(target, "gs://") {
		return cfg, "", fmt.Errorf("invalid GCS target %q", target)
	}

	switch {
	case target == "":
		return cfg, getOutputFilename(chartFile, ""), nil
	case batch:
		return config.StorageConfig{Type: "local", OutputDir: target}, "", nil
	default:
		return config.StorageConfig{Type: "local", OutputDir: "."}, getOutputFilename(chartFile, target), nil
	}
}

// renderChart decodes one chart document, builds it and writes the SVG to
// store under name.
func renderChart(ctx context.Context, store storage.Storage, cfg *config.Config, chartFile, name string) (err error) {
	f, err := os.Open(chartFile)
	if err != nil {
		return fmt.Errorf("error opening chart file: %w", err)
	}
	defer f.Close()

	doc, err := gantt.DecodeDocument(f)
	if err != nil {
		return err
	}
	g, err := doc.Build(cfg)
	if err != nil {
		return fmt.Errorf("%s: %w", chartFile, err)
	}
	defer g.Destroy()

	w, err := store.GetWriter(ctx, name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error writing %s: %w", store.Location(name), cerr)
		}
	}()

	if err := g.Render(w); err != nil {
		return fmt.Errorf("error writing %s: %w", store.Location(name), err)
	}
	slog.Info("chart rendered", "chart", chartFile, "output", store.Location(name), "graph", g)
	return nil
}

func runSingle(ctx context.Context, cfg *config.Config, chartFile, target string) error {
	storeCfg, name, err := resolveOutput(cfg.Storage, chartFile, target, false)
	if err != nil {
		return err
	}
	store, err := storage.New(ctx, storeCfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := renderChart(ctx, store, cfg, chartFile, name); err != nil {
		return err
	}
	fmt.Printf("Gantt SVG generated successfully: %s\n", store.Location(name))
	return nil
}

// chartFiles lists the .json documents directly inside dir, sorted by name.
func chartFiles(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// runBatch renders every chart document in dir. A failing chart is reported
// and skipped; the returned error joins all failures.
func runBatch(ctx context.Context, cfg *config.Config, dir, target string) error {
	files, err := chartFiles(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .json chart documents found in %s", dir)
	}
	slog.Debug("found chart documents", "count", len(files), "dir", dir)

	storeCfg, _, err := resolveOutput(cfg.Storage, "", target, true)
	if err != nil {
		return err
	}
	store, err := storage.New(ctx, storeCfg)
	if err != nil {
		return err
	}
	defer store.Close()

	bar := progressbar.NewOptions(
		len(files),
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetTheme(progressbar.ThemeASCII),
		progressbar.OptionFullWidth(),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("[cyan]Rendering charts...[reset]"),
	)

	var errs []error
	for _, file := range files {
		if err := renderChart(ctx, store, cfg, file, getOutputFilename(file, "")); err != nil {
			slog.Error("chart failed", "chart", file, "error", err)
			errs = append(errs, err)
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	fmt.Println()

	fmt.Printf("Rendered %d of %d charts to %s\n", len(files)-len(errs), len(files), store.Location(""))
	return errors.Join(errs...)
}
