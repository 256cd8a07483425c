// Package cograph turns a text corpus into a rendered word co-occurrence
// graph: load, tokenize, count adjacent pairs, keep the top N, build an
// undirected weighted graph, and draw a force-directed layout of it.
package cograph

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/rfelix/cograph/corpus"
	"github.com/rfelix/cograph/graph"
	"github.com/rfelix/cograph/ngram"
	"github.com/rfelix/cograph/render"
)

// Result is the outcome of one pipeline run.
type Result struct {
	Graph        *graph.Graph  // co-occurrence graph, ≤ TopN edges
	Top          []ngram.Entry // ranked pairs the graph was built from
	Lines        int           // corpus records read
	TotalBigrams int           // bigrams counted across the corpus
	UniquePairs  int           // distinct pair keys in the frequency table
	RenderedTo   string        // output image path, empty if not rendered
}

// RunOption configures a single run.
type RunOption func(*runOptions)

type runOptions struct {
	topN       int
	renderPath string
	seed       int64
	canonical  bool
}

// WithTopN overrides the configured pair cutoff for this run.
func WithTopN(n int) RunOption {
	return func(o *runOptions) { o.topN = n }
}

// WithRenderTo renders the graph to the given image path (.png, .svg, .pdf).
func WithRenderTo(path string) RunOption {
	return func(o *runOptions) { o.renderPath = path }
}

// WithSeed fixes the layout's random initialization for this run.
func WithSeed(seed int64) RunOption {
	return func(o *runOptions) { o.seed = seed }
}

// WithCanonicalPairs counts both orientations of a pair as one key for this
// run.
func WithCanonicalPairs() RunOption {
	return func(o *runOptions) { o.canonical = true }
}

// Pipeline is the one-shot corpus-to-graph transform. It holds no state
// across runs.
type Pipeline struct {
	cfg     Config
	readers *corpus.Registry
}

// New creates a Pipeline with the given configuration.
func New(cfg Config) (*Pipeline, error) {
	def := DefaultConfig()
	if cfg.TopN == 0 {
		cfg.TopN = def.TopN
	}
	if cfg.WeightMultiplier == 0 {
		cfg.WeightMultiplier = def.WeightMultiplier
	}
	if cfg.Spacing == 0 {
		cfg.Spacing = def.Spacing
	}
	if cfg.FontSize == 0 {
		cfg.FontSize = def.FontSize
	}
	if cfg.LineWidth == 0 {
		cfg.LineWidth = def.LineWidth
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%w: %+v", err, cfg)
	}

	readers := corpus.NewRegistry(corpus.SQLiteConfig{
		Table:  cfg.SQLiteTable,
		Column: cfg.SQLiteColumn,
	})

	return &Pipeline{cfg: cfg, readers: readers}, nil
}

// Run executes the pipeline over one corpus file.
func (p *Pipeline) Run(ctx context.Context, path string, opts ...RunOption) (*Result, error) {
	options := &runOptions{
		topN:      p.cfg.TopN,
		seed:      p.cfg.LayoutSeed,
		canonical: p.cfg.CanonicalPairs,
	}
	for _, o := range opts {
		o(options)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	filename := filepath.Base(absPath)

	// Load and tokenize.
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(absPath), "."))
	reader, err := p.readers.Get(format)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	loadStart := time.Now()
	lines, err := reader.Read(ctx, absPath)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("%w: %s", ErrCorpusNotFound, absPath)
		case errors.Is(err, corpus.ErrInvalidUTF8):
			return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
		default:
			return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
		}
	}
	slog.Info("run: corpus loaded",
		"file", filename, "format", format, "lines", len(lines),
		"elapsed", time.Since(loadStart).Round(time.Millisecond))

	// Count bigrams and select the top pairs.
	countStart := time.Now()
	tokenLines := make([][]string, len(lines))
	for i, l := range lines {
		tokenLines[i] = l
	}
	table := ngram.Count(tokenLines, options.canonical)
	top := table.TopN(options.topN)
	slog.Info("run: pairs counted",
		"file", filename, "bigrams", table.Total(), "unique", table.Len(),
		"selected", len(top), "canonical", options.canonical,
		"elapsed", time.Since(countStart).Round(time.Millisecond))

	// Build the graph.
	g := graph.Build(top, p.cfg.WeightMultiplier)
	slog.Info("run: graph built",
		"file", filename, "nodes", g.Nodes().Len(), "edges", g.EdgeCount(),
		"weight_multiplier", p.cfg.WeightMultiplier)

	result := &Result{
		Graph:        g,
		Top:          top,
		Lines:        len(lines),
		TotalBigrams: table.Total(),
		UniquePairs:  table.Len(),
	}

	// Layout and render, if requested.
	if options.renderPath != "" {
		renderStart := time.Now()
		rcfg := render.Config{
			Repulsion: p.cfg.Spacing,
			FontSize:  p.cfg.FontSize,
			LineWidth: p.cfg.LineWidth,
			Seed:      options.seed,
		}
		if err := render.Render(g, rcfg, options.renderPath); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
		}
		result.RenderedTo = options.renderPath
		slog.Info("run: graph rendered",
			"file", filename, "out", options.renderPath, "seeded", options.seed != 0,
			"elapsed", time.Since(renderStart).Round(time.Millisecond))
	}

	return result, nil
}
