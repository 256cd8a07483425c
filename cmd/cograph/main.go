package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/rfelix/cograph"
)

func main() {
	configPath := flag.String("config", "", "Path to config file (JSON)")
	input := flag.String("input", "", "Corpus file (.txt, .pdf, .xlsx, .db)")
	out := flag.String("out", "cograph.png", "Output image (.png, .svg, .pdf)")
	topN := flag.Int("top", 0, "Top-N pair cutoff (0 = configured default)")
	seed := flag.Int64("seed", 0, "Layout seed (0 = random layout per run)")
	canonical := flag.Bool("canonical", false, "Merge (a,b) and (b,a) before counting")
	verbose := flag.Bool("v", false, "Debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	if *input == "" {
		fmt.Fprintln(os.Stderr, "usage: cograph -input corpus.txt [-out graph.png]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg := cograph.DefaultConfig()
	if *configPath != "" {
		f, err := os.Open(*configPath)
		if err != nil {
			slog.Error("opening config", "error", err)
			os.Exit(1)
		}
		if err := json.NewDecoder(f).Decode(&cfg); err != nil {
			f.Close()
			slog.Error("parsing config", "error", err)
			os.Exit(1)
		}
		f.Close()
	}

	envOverrides(&cfg)

	pipeline, err := cograph.New(cfg)
	if err != nil {
		slog.Error("creating pipeline", "error", err)
		os.Exit(1)
	}

	opts := []cograph.RunOption{cograph.WithRenderTo(*out)}
	if *topN > 0 {
		opts = append(opts, cograph.WithTopN(*topN))
	}
	if *seed != 0 {
		opts = append(opts, cograph.WithSeed(*seed))
	}
	if *canonical {
		opts = append(opts, cograph.WithCanonicalPairs())
	}

	result, err := pipeline.Run(context.Background(), *input, opts...)
	if err != nil {
		slog.Error("pipeline failed", "error", err)
		os.Exit(1)
	}

	slog.Info("done",
		"lines", result.Lines,
		"bigrams", result.TotalBigrams,
		"unique_pairs", result.UniquePairs,
		"edges", result.Graph.EdgeCount(),
		"out", result.RenderedTo)

	// Ranked pair listing on stdout, most frequent first.
	for i, e := range result.Top {
		fmt.Printf("%3d  %6d  %s %s\n", i+1, e.Count, e.Pair.A, e.Pair.B)
	}
}

// envOverrides applies COGRAPH_* environment variables on top of the file
// config. Malformed numeric values are ignored.
func envOverrides(cfg *cograph.Config) {
	if v := os.Getenv("COGRAPH_TOP_N"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TopN = n
		}
	}
	if v := os.Getenv("COGRAPH_WEIGHT_MULTIPLIER"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.WeightMultiplier = n
		}
	}
	if v := os.Getenv("COGRAPH_SPACING"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Spacing = f
		}
	}
	if v := os.Getenv("COGRAPH_FONT_SIZE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.FontSize = f
		}
	}
	if v := os.Getenv("COGRAPH_LINE_WIDTH"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.LineWidth = f
		}
	}
	if v := os.Getenv("COGRAPH_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.LayoutSeed = n
		}
	}
	if v := os.Getenv("COGRAPH_SQLITE_TABLE"); v != "" {
		cfg.SQLiteTable = v
	}
	if v := os.Getenv("COGRAPH_SQLITE_COLUMN"); v != "" {
		cfg.SQLiteColumn = v
	}
}
