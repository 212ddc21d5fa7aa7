package utility

import (
	"fmt"
	"image"
	"sync"
	"time"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"github.com/pkg/errors"
)

// manages the TUI: loss history on the left, decision boundary on the right.
type Dashboard struct {
	grid *ui.Grid

	lossPlot      *widgets.Plot
	boundary      *boundaryPlot
	progressGauge *widgets.Gauge
	statusList    *widgets.List
	logParagraph  *widgets.Paragraph

	fullLossData []float64
	renderMutex  sync.Mutex
}

func NewDashboard(learningRate float64, steps int) (*Dashboard, error) {
	if err := ui.Init(); err != nil {
		return nil, errors.Wrap(err, "failed to initialize termui")
	}

	d := &Dashboard{
		fullLossData: []float64{0, 0},
	}

	d.lossPlot = widgets.NewPlot()
	d.lossPlot.Title = "Loss"
	d.lossPlot.Data = [][]float64{d.fullLossData}
	d.lossPlot.LineColors[0] = ui.ColorRed

	d.boundary = newBoundaryPlot()
	d.boundary.Title = "Decision Boundary (red > 0.5, yellow/cyan = labels 1/0)"

	d.progressGauge = widgets.NewGauge()
	d.progressGauge.Title = "Progress"
	d.progressGauge.BarColor = ui.ColorBlue
	d.statusList = widgets.NewList()
	d.statusList.Title = "Status"
	hyperParamList := widgets.NewList()
	hyperParamList.Title = "Settings"
	hyperParamList.Rows = []string{
		fmt.Sprintf("Steps: %d", steps),
		fmt.Sprintf("Learn Rate: %.4f", learningRate),
		"Press q to quit",
	}
	d.logParagraph = widgets.NewParagraph()
	d.logParagraph.Title = "Event Log"

	d.grid = ui.NewGrid()
	termWidth, termHeight := ui.TerminalDimensions()
	d.grid.SetRect(0, 0, termWidth, termHeight)
	d.grid.Set(
		ui.NewRow(0.6, ui.NewCol(0.5, d.lossPlot), ui.NewCol(0.5, d.boundary)),
		ui.NewRow(0.2, ui.NewCol(0.5, d.statusList), ui.NewCol(0.5, hyperParamList)),
		ui.NewRow(0.2, ui.NewCol(1.0, ui.NewRow(0.4, d.progressGauge), ui.NewRow(0.6, d.logParagraph))),
	)

	return d, nil
}

// averages data into at most targetWidth bins so the plot fits its cell
func downsample(data []float64, targetWidth int) []float64 {
	if targetWidth <= 0 || len(data) <= targetWidth {
		return data
	}

	downsampled := make([]float64, targetWidth)
	binSize := float64(len(data)) / float64(targetWidth)

	for i := 0; i < targetWidth; i++ {
		start := int(float64(i) * binSize)
		end := int(float64(i+1) * binSize)
		if end > len(data) {
			end = len(data)
		}

		bin := data[start:end]
		if len(bin) == 0 {
			if i > 0 {
				downsampled[i] = downsampled[i-1]
			}
			continue
		}

		var sum float64
		for _, v := range bin {
			sum += v
		}
		downsampled[i] = sum / float64(len(bin))
	}
	return downsampled
}

func (d *Dashboard) AddLoss(loss float64) {
	d.renderMutex.Lock()
	defer d.renderMutex.Unlock()
	d.fullLossData = append(d.fullLossData, loss)
}

func (d *Dashboard) UpdateStats(step, totalSteps int, loss, accuracy float64, start time.Time) {
	d.renderMutex.Lock()
	defer d.renderMutex.Unlock()

	d.statusList.Rows = []string{
		fmt.Sprintf("Step: %d / %d", step, totalSteps),
		fmt.Sprintf("Loss: %.5f", loss),
		fmt.Sprintf("Accuracy: %.1f%%", accuracy*100),
		fmt.Sprintf("Elapsed: %v", time.Since(start).Round(time.Millisecond)),
	}
	if totalSteps > 0 {
		d.progressGauge.Percent = int(float64(step) / float64(totalSteps) * 100)
	}
	d.lossPlot.Data[0] = downsample(d.fullLossData, d.lossPlot.Inner.Dx())

	ui.Render(d.grid)
}

// replaces the boundary view with fresh samples and the labeled dataset.
func (d *Dashboard) DrawBoundary(samples []Sample, data []LabeledPoint, g GridSpec) {
	d.renderMutex.Lock()
	defer d.renderMutex.Unlock()
	d.boundary.samples = samples
	d.boundary.data = data
	d.boundary.spec = g
	ui.Render(d.grid)
}

func (d *Dashboard) Log(message string) {
	d.renderMutex.Lock()
	defer d.renderMutex.Unlock()
	d.logParagraph.Text = message
	ui.Render(d.grid)
}

func (d *Dashboard) Close() { ui.Close() }

// blocks until q or ctrl-c.
func (d *Dashboard) Loop() {
	uiEvents := ui.PollEvents()
	for {
		e := <-uiEvents
		switch e.ID {
		case "q", "<C-c>":
			return
		case "<Resize>":
			payload := e.Payload.(ui.Resize)
			d.renderMutex.Lock()
			d.grid.SetRect(0, 0, payload.Width, payload.Height)
			ui.Clear()
			ui.Render(d.grid)
			d.renderMutex.Unlock()
		}
	}
}

// braille scatter of grid predictions overlaid with the dataset.
// positions are computed at draw time since the grid assigns the rect lazily.
type boundaryPlot struct {
	ui.Block
	samples []Sample
	data    []LabeledPoint
	spec    GridSpec
}

func newBoundaryPlot() *boundaryPlot {
	return &boundaryPlot{Block: *ui.NewBlock(), spec: DefaultGrid()}
}

// maps a point in grid space onto braille dot coordinates inside r.
// y grows upward in grid space and downward on screen.
func dotPosition(p [2]float64, g GridSpec, r image.Rectangle) image.Point {
	w, h := r.Dx()*2, r.Dy()*4
	if w <= 0 || h <= 0 {
		return r.Min
	}
	span := g.Max - g.Min
	fx := (p[0] - g.Min) / span
	fy := (p[1] - g.Min) / span
	x := int(fx * float64(w-1))
	y := int((1 - fy) * float64(h-1))
	return image.Pt(r.Min.X*2+clamp(x, 0, w-1), r.Min.Y*4+clamp(y, 0, h-1))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (b *boundaryPlot) Draw(buf *ui.Buffer) {
	b.Block.Draw(buf)

	c := ui.NewCanvas()
	c.Border = false
	c.SetRect(b.Inner.Min.X, b.Inner.Min.Y, b.Inner.Max.X, b.Inner.Max.Y)

	for _, s := range b.samples {
		color := ui.ColorBlue
		if s.Positive {
			color = ui.ColorRed
		}
		c.SetPoint(dotPosition(s.P, b.spec, b.Inner), color)
	}
	for _, d := range b.data {
		color := ui.ColorCyan
		if d.Label == 1 {
			color = ui.ColorYellow
		}
		p := dotPosition(d.P, b.spec, b.Inner)
		c.SetLine(p.Add(image.Pt(-1, 0)), p.Add(image.Pt(1, 0)), color)
		c.SetLine(p.Add(image.Pt(0, -1)), p.Add(image.Pt(0, 1)), color)
	}
	c.Draw(buf)
}
