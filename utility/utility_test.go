package utility

import (
	"bytes"
	"image"
	"strings"
	"testing"

	"go-opgraph/op"
)

func TestNodeInspectorSummary(t *testing.T) {
	w, x := op.NewParameter(2), op.NewPlaceHolder(3)
	mul, sq := op.NewMul(), op.NewSquare()
	sq.Forward(mul.Forward(w.Forward(), x.Forward()))

	ni := NewNodeInspector().Add("w", w).Add("x", x).Add("mul", mul).Add("sq", sq).Add("tanh", op.NewTanh())
	var buf bytes.Buffer
	if err := ni.Summary(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"w (Parameter)", "mul (Mul)", "2, 3", "36", "tanh (Tanh)", "false", "Total Nodes: 5", "Trainable Parameters: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}

	total, trainable := ni.CountNodes()
	if total != 5 || trainable != 1 {
		t.Errorf("expected 5 nodes, 1 trainable, got %d, %d", total, trainable)
	}
}

func TestSampleBoundaryDefaultGrid(t *testing.T) {
	calls := 0
	m := ModelFunc(func(p [2]float64) float64 {
		calls++
		return p[0] + p[1]
	})
	samples, err := SampleBoundary(m, DefaultGrid())
	if err != nil {
		t.Fatal(err)
	}
	if len(samples) != 24*24 || calls != 24*24 {
		t.Fatalf("expected 576 samples and calls, got %d and %d", len(samples), calls)
	}
	first, last := samples[0], samples[len(samples)-1]
	if first.P != [2]float64{-0.1, -0.1} {
		t.Errorf("first sample at %v", first.P)
	}
	if last.P[0] < 1.04 || last.P[0] >= 1.1 {
		t.Errorf("last sample x out of range: %v", last.P)
	}
	for _, s := range samples {
		if s.Positive != (s.Out > 0.5) {
			t.Fatalf("sample %+v classified against threshold", s)
		}
	}
}

func TestSampleBoundaryRejectsBadGrid(t *testing.T) {
	m := ModelFunc(func(p [2]float64) float64 { return 0 })
	if _, err := SampleBoundary(m, GridSpec{Min: 0, Max: 1, Step: 0}); err == nil {
		t.Error("expected error for zero step")
	}
	if _, err := SampleBoundary(m, GridSpec{Min: 1, Max: 0, Step: 0.1}); err == nil {
		t.Error("expected error for inverted range")
	}
}

func TestAccuracy(t *testing.T) {
	data := []LabeledPoint{
		{P: [2]float64{0, 0}, Label: 0},
		{P: [2]float64{1, 1}, Label: 1},
		{P: [2]float64{1, 0}, Label: 1},
		{P: [2]float64{0, 1}, Label: 0},
	}
	m := ModelFunc(func(p [2]float64) float64 { return p[0] })
	if got := Accuracy(m, data, 0.5); got != 1 {
		t.Errorf("expected accuracy 1, got %v", got)
	}
	m = ModelFunc(func(p [2]float64) float64 { return p[1] })
	if got := Accuracy(m, data, 0.5); got != 0.5 {
		t.Errorf("expected accuracy 0.5, got %v", got)
	}
	if got := Accuracy(m, nil, 0.5); got != 0 {
		t.Errorf("empty dataset: expected 0, got %v", got)
	}
}

func TestDownsample(t *testing.T) {
	data := []float64{1, 3, 5, 7, 9, 11}
	got := downsample(data, 3)
	want := []float64{2, 6, 10}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bin %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	if short := downsample(data, 10); len(short) != len(data) {
		t.Errorf("short input should pass through, got %v", short)
	}
}

func TestDotPosition(t *testing.T) {
	g := GridSpec{Min: 0, Max: 1, Step: 0.1}
	r := image.Rect(10, 5, 20, 10) // 20x20 dots
	if got := dotPosition([2]float64{0, 0}, g, r); got != image.Pt(20, 39) {
		t.Errorf("origin: expected (20,39), got %v", got)
	}
	if got := dotPosition([2]float64{1, 1}, g, r); got != image.Pt(39, 20) {
		t.Errorf("corner: expected (39,20), got %v", got)
	}
	if got := dotPosition([2]float64{5, -5}, g, r); got != image.Pt(39, 39) {
		t.Errorf("out of range should clamp, got %v", got)
	}
}
