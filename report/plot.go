package report

import (
	"errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/bent101/go-wordle-magicwords/genetic"
)

// Plot draws best and average conflicts per generation to an image file.
// The format follows the path extension.
func Plot(history []genetic.Stats, path string) error {
	if len(history) == 0 {
		return errors.New("no generations to plot")
	}

	p := plot.New()
	p.Title.Text = "Conflicts per generation"
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Conflicts"

	bestPts := make(plotter.XYs, len(history))
	avgPts := make(plotter.XYs, len(history))
	for i, s := range history {
		bestPts[i].X = float64(s.Generation)
		bestPts[i].Y = float64(s.Best)
		avgPts[i].X = float64(s.Generation)
		avgPts[i].Y = s.Average
	}

	bestLine, err := plotter.NewLine(bestPts)
	if err != nil {
		return err
	}
	avgLine, err := plotter.NewLine(avgPts)
	if err != nil {
		return err
	}
	avgLine.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(bestLine, avgLine)
	p.Legend.Add("best", bestLine)
	p.Legend.Add("average", avgLine)
	p.Legend.Top = true

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
