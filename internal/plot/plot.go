// Package plot renders recorded weight-space trajectories for visual
// comparison of the optimizer variants.
package plot

import (
	"fmt"

	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/descent-ml/descent/internal/trajectory"
)

// Series is one named trajectory to draw.
type Series struct {
	Name string
	Traj *trajectory.Trajectory
}

// Limits restricts the axes to zoom near the convergence point, e.g.
// intercept in [1.1, 1.2] and slope in [0.7, 0.9]. A nil *Limits leaves
// the axes autoscaled.
type Limits struct {
	IMin, IMax float64 // intercept axis
	SMin, SMax float64 // slope axis
}

// Save draws each trajectory as a line through weight space, marks the
// final weights of each series, and writes the plot to path (format
// chosen by extension, e.g. .png).
func Save(series []Series, title, path string, limits *Limits) error {
	if len(series) == 0 {
		return fmt.Errorf("no trajectories to plot")
	}

	p := gplot.New()
	p.Title.Text = title
	p.X.Label.Text = "Intercept"
	p.Y.Label.Text = "Slope"
	if limits != nil {
		p.X.Min, p.X.Max = limits.IMin, limits.IMax
		p.Y.Min, p.Y.Max = limits.SMin, limits.SMax
	}

	for i, s := range series {
		line, err := plotter.NewLine(toXYs(s.Traj))
		if err != nil {
			return fmt.Errorf("failed to build line for %q: %w", s.Name, err)
		}
		line.Color = plotutil.Color(i)

		end, err := plotter.NewScatter(plotter.XYs{lastXY(s.Traj)})
		if err != nil {
			return fmt.Errorf("failed to build end marker for %q: %w", s.Name, err)
		}
		end.GlyphStyle.Radius = vg.Length(2)
		end.GlyphStyle.Shape = draw.CircleGlyph{}
		end.GlyphStyle.Color = plotutil.Color(i)

		p.Add(line, end)
		p.Legend.Add(s.Name, line)
	}

	if err := p.Save(8*vg.Inch, 8*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}

func toXYs(t *trajectory.Trajectory) plotter.XYs {
	xys := make(plotter.XYs, t.Len())
	for i := range xys {
		w := t.At(i)
		xys[i] = plotter.XY{X: w[0], Y: w[1]}
	}
	return xys
}

func lastXY(t *trajectory.Trajectory) plotter.XY {
	w := t.Final()
	return plotter.XY{X: w[0], Y: w[1]}
}
