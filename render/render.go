// Package render computes a force-directed layout for a co-occurrence graph
// and draws it to an image file.
package render

import (
	"fmt"
	"image/color"
	"sort"

	"golang.org/x/exp/rand"

	gograph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/layout"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/rfelix/cograph/graph"
)

// Config controls layout and drawing.
type Config struct {
	Repulsion float64 // spring-embedder repulsion/spacing constant
	FontSize  float64 // label size in points
	LineWidth float64 // edge stroke width in points
	Seed      int64   // 0 = unseeded; reruns produce different positions
	Updates   int     // layout iterations per epoch; 0 = default
}

const (
	defaultUpdates = 100
	layoutRate     = 0.05
	layoutTheta    = 0.2

	canvasSize = 8 * vg.Inch
	nodeRadius = 4 // points
)

var (
	edgeColor  = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
	nodeColor  = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	labelColor = color.RGBA{A: 0xff}
)

// orderedGraph is the view of the graph handed to the spring embedder. The
// embedder assigns the random initial positions in Nodes() iteration order,
// and simple graphs iterate in map order, so a seeded layout is reproducible
// only over an ID-sorted view. The view also exposes no edge weights, so the
// attraction term pulls with unit springs rather than the count-scaled
// drawing weights.
type orderedGraph struct {
	gograph.Graph
}

func (g orderedGraph) Nodes() gograph.Nodes {
	n := gograph.NodesOf(g.Graph.Nodes())
	sort.Slice(n, func(i, j int) bool { return n[i].ID() < n[j].ID() })
	return iterator.NewOrderedNodes(n)
}

func (g orderedGraph) From(id int64) gograph.Nodes {
	n := gograph.NodesOf(g.Graph.From(id))
	sort.Slice(n, func(i, j int) bool { return n[i].ID() < n[j].ID() })
	return iterator.NewOrderedNodes(n)
}

// Positions runs the Eades spring embedder over the graph and returns the
// final 2D coordinate of every node. The layout is randomly initialized; a
// non-zero Seed makes it reproducible.
func Positions(g *graph.Graph, cfg Config) (map[int64]r2.Vec, error) {
	pos := make(map[int64]r2.Vec)
	if g.Nodes().Len() == 0 {
		return pos, nil
	}

	updates := cfg.Updates
	if updates <= 0 {
		updates = defaultUpdates
	}

	eades := layout.EadesR2{
		Repulsion: cfg.Repulsion,
		Rate:      layoutRate,
		Updates:   updates,
		Theta:     layoutTheta,
	}
	if cfg.Seed != 0 {
		eades.Src = rand.NewSource(uint64(cfg.Seed))
	}

	optimizer := layout.NewOptimizerR2(orderedGraph{g}, eades.Update)
	for optimizer.Update() {
	}

	nodes := g.Nodes()
	for nodes.Next() {
		id := nodes.Node().ID()
		pos[id] = optimizer.Coord2(id)
	}
	return pos, nil
}

// File draws the graph at the given positions and saves it to path. The
// output format follows the file extension (.png, .svg, .pdf). An empty
// graph produces a blank canvas.
func File(g *graph.Graph, pos map[int64]r2.Vec, cfg Config, path string) error {
	p := plot.New()
	p.HideAxes()

	// Edges first so nodes and labels draw on top.
	edges := g.WeightedEdges()
	for edges.Next() {
		e := edges.WeightedEdge()
		from, okF := pos[e.From().ID()]
		to, okT := pos[e.To().ID()]
		if !okF || !okT {
			continue
		}
		line, err := plotter.NewLine(plotter.XYs{
			{X: from.X, Y: from.Y},
			{X: to.X, Y: to.Y},
		})
		if err != nil {
			return fmt.Errorf("plotting edge: %w", err)
		}
		line.LineStyle.Width = vg.Points(cfg.LineWidth)
		line.LineStyle.Color = edgeColor
		p.Add(line)
	}

	// Nodes and labels.
	var (
		xys    plotter.XYs
		labels []string
	)
	nodes := g.Nodes()
	for nodes.Next() {
		n, ok := nodes.Node().(graph.Node)
		if !ok {
			continue
		}
		v, ok := pos[n.ID()]
		if !ok {
			continue
		}
		xys = append(xys, plotter.XY{X: v.X, Y: v.Y})
		labels = append(labels, n.Word)
	}

	if len(xys) > 0 {
		scatter, err := plotter.NewScatter(xys)
		if err != nil {
			return fmt.Errorf("plotting nodes: %w", err)
		}
		scatter.GlyphStyle = draw.GlyphStyle{
			Color:  nodeColor,
			Radius: vg.Points(nodeRadius),
			Shape:  draw.CircleGlyph{},
		}
		p.Add(scatter)

		lbls, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
		if err != nil {
			return fmt.Errorf("plotting labels: %w", err)
		}
		for i := range lbls.TextStyle {
			lbls.TextStyle[i].Font.Size = vg.Points(cfg.FontSize)
			lbls.TextStyle[i].Color = labelColor
			lbls.TextStyle[i].XAlign = text.XCenter
			lbls.TextStyle[i].YAlign = text.YBottom
		}
		p.Add(lbls)
	}

	if err := p.Save(canvasSize, canvasSize, path); err != nil {
		return fmt.Errorf("saving plot: %w", err)
	}
	return nil
}

// Render computes positions and writes the image in one step.
func Render(g *graph.Graph, cfg Config, path string) error {
	pos, err := Positions(g, cfg)
	if err != nil {
		return err
	}
	return File(g, pos, cfg, path)
}
