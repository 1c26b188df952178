package diagnostics

import (
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// TimingReport renders a histogram of cadences (caller-supplied
// M-cycle counts between successive samples, e.g. one per completed
// frame) as a PNG, the kind of internal timing visibility the
// teacher's Performance view gives over frame times
// (pkg/display/fyne/views/performance.go), repurposed here from a live
// Fyne canvas to a file a host or test can inspect offline.
func TimingReport(w io.Writer, cadences []int, width, height vg.Length) error {
	values := make(plotter.Values, len(cadences))
	for i, c := range cadences {
		values[i] = float64(c)
	}

	p := plot.New()
	p.Title.Text = "Frame cadence (M-cycles)"
	p.X.Label.Text = "M-cycles since previous completed frame"
	p.Y.Label.Text = "count"

	hist, err := plotter.NewHist(values, 32)
	if err != nil {
		return err
	}
	p.Add(hist)

	img := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(96))
	p.Draw(draw.New(img))

	_, err = img.WriteTo(w)
	return err
}
