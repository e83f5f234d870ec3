package layout

import (
	"strings"

	"github.com/zhengming-dev/schemeline/pkg/scheme"
	"github.com/zhengming-dev/schemeline/pkg/timeline"
)

// Placement defaults, in canvas pixels.
const (
	DefaultCanvasWidth = 960.0
	DefaultMarginX     = 24.0

	DefaultMinCardWidth = 120.0
	DefaultMaxCardWidth = 260.0

	// Card heights: two fixed values, taller when a maintainer line exists.
	cardHeight           = 64.0
	cardHeightMaintained = 82.0

	// columns is the number of horizontal bands schemes rotate through.
	columns = 4

	// jitterRatio bounds the hash-derived horizontal perturbation to a
	// fraction of the column width.
	jitterRatio = 0.3

	cardPadding = 14.0
)

// Options configures horizontal placement and card sizing.
type Options struct {
	CanvasWidth  float64
	MarginX      float64
	MinCardWidth float64
	MaxCardWidth float64
}

// SetDefaults fills zero-valued fields with package defaults.
func (o *Options) SetDefaults() {
	if o.CanvasWidth == 0 {
		o.CanvasWidth = DefaultCanvasWidth
	}
	if o.MarginX == 0 {
		o.MarginX = DefaultMarginX
	}
	if o.MinCardWidth == 0 {
		o.MinCardWidth = DefaultMinCardWidth
	}
	if o.MaxCardWidth == 0 {
		o.MaxCardWidth = DefaultMaxCardWidth
	}
}

// Node is a scheme's final on-canvas box. X and Y locate the top-left
// corner. Nodes are created here, optionally nudged by Refine, and
// read-only afterward.
type Node struct {
	Scheme *scheme.Scheme
	X, Y   float64
	Width  float64
	Height float64
}

// CenterX returns the horizontal center of the box.
func (n *Node) CenterX() float64 { return n.X + n.Width/2 }

// CenterY returns the vertical center of the box.
func (n *Node) CenterY() float64 { return n.Y + n.Height/2 }

// TopCenter returns the curve anchor at the top edge.
func (n *Node) TopCenter() (float64, float64) { return n.CenterX(), n.Y }

// BottomCenter returns the curve anchor at the bottom edge.
func (n *Node) BottomCenter() (float64, float64) { return n.CenterX(), n.Y + n.Height }

// Place computes one box per scheme. The input must be sorted
// chronologically: the column rotation keys off the chronological rank so
// consecutive schemes land in different columns instead of clustering.
//
// Placement is a pure function of its input. Identical schemes, offsets,
// and options always produce bit-identical boxes.
func Place(sorted []scheme.Scheme, offsets timeline.OffsetMap, tOpts timeline.Options, opts Options) []Node {
	opts.SetDefaults()
	tOpts.SetDefaults()
	if len(sorted) == 0 || offsets.Offsets == nil {
		return nil
	}

	columnWidth := (opts.CanvasWidth - 2*opts.MarginX) / columns
	nodes := make([]Node, 0, len(sorted))

	for rank := range sorted {
		s := &sorted[rank]
		year := scheme.Year(s.Date)
		if year == 0 {
			continue
		}

		width, height := cardSize(s, opts)

		y := offsets.Offsets[year] +
			scheme.YearFraction(s.Date)*offsets.YearHeight(year, tOpts)

		column := rank % columns
		center := opts.MarginX + (float64(column)+0.5)*columnWidth
		center += jitter(placementHash(s), columnWidth*jitterRatio)

		x := clamp(center-width/2, opts.MarginX, opts.CanvasWidth-opts.MarginX-width)

		nodes = append(nodes, Node{
			Scheme: s,
			X:      x,
			Y:      y,
			Width:  width,
			Height: height,
		})
	}
	return nodes
}

// placementHash hashes the fields that identify a scheme's placement.
// Name, authors, and date are included so edits to a record move its card,
// while unrelated records keep their positions.
func placementHash(s *scheme.Scheme) uint32 {
	return stringHash(s.ID + s.Name + strings.Join(s.Authors, ",") + s.Date)
}

// cardSize derives the card box from the text lines it will display.
func cardSize(s *scheme.Scheme, opts Options) (w, h float64) {
	w = TextWidth(s.Name)
	if aw := TextWidth(strings.Join(s.Authors, "、")); aw > w {
		w = aw
	}
	if mw := TextWidth(strings.Join(s.Maintainers, "、")); mw > w {
		w = mw
	}
	if dw := TextWidth(s.Date); dw > w {
		w = dw
	}
	w = clamp(w+2*cardPadding, opts.MinCardWidth, opts.MaxCardWidth)

	h = cardHeight
	if len(s.Maintainers) > 0 {
		h = cardHeightMaintained
	}
	return w, h
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
