// Command egpwc-envelope-plot renders the mode 1/2/5 alert and warning
// boundary curves to a PNG, as a bench-engineering aid for tuning
// breakpoint tables without instrumenting a running computer.
package main

import (
	"flag"
	"log"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/stratux/egpwc/internal/egpwc"
)

func main() {
	out := flag.String("out", "egpwc-envelopes.png", "output PNG path")
	flag.Parse()

	p, err := plot.New()
	if err != nil {
		log.Fatalf("creating plot: %s", err)
	}
	p.Title.Text = "EGPWC mode envelope boundaries"
	p.X.Label.Text = "rate / deviation"
	p.Y.Label.Text = "radio altitude (ft)"

	for _, curve := range egpwc.EnvelopeCurves() {
		pts := make(plotter.XYs, len(curve.X))
		for i := range curve.X {
			pts[i].X = curve.X[i]
			pts[i].Y = curve.Y[i]
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			log.Fatalf("building line for %s: %s", curve.Name, err)
		}
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(curve.Name, line)
	}

	if err := p.Save(8*vg.Inch, 5*vg.Inch, *out); err != nil {
		log.Fatalf("saving plot: %s", err)
	}
	log.Printf("wrote %s", *out)
}
