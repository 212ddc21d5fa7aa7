package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"go-opgraph/gradcheck"
	"go-opgraph/op"
	"go-opgraph/utility"
)

const (
	defaultSteps        = 2000
	defaultLearningRate = 0.5
	defaultSeed         = 7
	reportEvery         = 100
)

// the classic AND problem: only (1,1) is positive.
var andDataset = []utility.LabeledPoint{
	{P: [2]float64{0, 0}, Label: 0},
	{P: [2]float64{0, 1}, Label: 0},
	{P: [2]float64{1, 0}, Label: 0},
	{P: [2]float64{1, 1}, Label: 1},
}

func main() {
	steps := flag.Int("steps", defaultSteps, "number of full-batch descent steps")
	lr := flag.Float64("lr", defaultLearningRate, "learning rate for the hand-driven parameter updates")
	showUI := flag.Bool("ui", false, "show the terminal dashboard")
	trace := flag.Bool("trace", false, "log every node as it is constructed")
	seed := flag.Int64("seed", defaultSeed, "seed for initial weights and gradient-check points")
	flag.Parse()

	var opts []op.Option
	if *trace {
		opts = append(opts, op.WithTracer(op.LogTracer(log.New(os.Stderr, "", 0))))
	}
	rng := rand.New(rand.NewSource(*seed))

	fmt.Println("--> composition: loss = (w*x - y)^2")
	if err := runComposition(opts); err != nil {
		log.Fatalf("Error in composition: %v", err)
	}

	fmt.Println("\n--> gradient check")
	if err := runGradCheck(rng, opts); err != nil {
		log.Fatalf("Error in gradient check: %v", err)
	}

	fmt.Println("\n--> logistic neuron on AND")
	neuron := newNeuron(rng, opts)
	if err := train(neuron, *steps, *lr, *showUI); err != nil {
		log.Fatalf("Error in training: %v", err)
	}
}

func runComposition(opts []op.Option) error {
	w := op.NewParameter(2, opts...)
	x := op.NewPlaceHolder(3, opts...)
	y := op.NewPlaceHolder(4, opts...)
	mul, sub, sq := op.NewMul(opts...), op.NewSub(opts...), op.NewSquare(opts...)

	loss := sq.Forward(sub.Forward(mul.Forward(w.Forward(), x.Forward()), y.Forward()))

	dSub, err := sq.Backward(1)
	if err != nil {
		return err
	}
	dMul, err := sub.Grad1(dSub)
	if err != nil {
		return err
	}
	dY, err := sub.Grad2(dSub)
	if err != nil {
		return err
	}
	dW, err := mul.Grad1(dMul)
	if err != nil {
		return err
	}
	dX, err := mul.Grad2(dMul)
	if err != nil {
		return err
	}

	fmt.Printf("loss = %g, dL/dw = %g, dL/dx = %g, dL/dy = %g\n", loss, dW, dX, dY)
	return utility.NewNodeInspector().
		Add("w", w).Add("x", x).Add("y", y).
		Add("mul", mul).Add("sub", sub).Add("sq", sq).
		Summary(os.Stdout)
}

func runGradCheck(rng *rand.Rand, opts []op.Option) error {
	cfg := gradcheck.DefaultConfig()
	failed := 0
	for _, k := range op.Kinds() {
		if k.Arity() == 0 {
			continue
		}
		n, err := op.New(k, opts...)
		if err != nil {
			return err
		}
		args := make([]float64, k.Arity())
		for i := range args {
			args[i] = 0.1 + rng.Float64()*1.9
		}
		results, err := gradcheck.Node(n, 1, cfg, args...)
		if err != nil {
			return err
		}
		for _, r := range results {
			fmt.Println(r)
			if !r.OK {
				failed++
			}
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d gradient mismatches", failed)
	}
	return nil
}

// out = sigmoid(w1*x1 + w2*x2 + b), loss = (out - y)^2
type neuron struct {
	w1, w2, b *op.Parameter
	x1, x2, y *op.PlaceHolder
	m1, m2    *op.Mul
	a1, a2    *op.Add
	sig       *op.Sigmoid
	sub       *op.Sub
	sq        *op.Square
}

func newNeuron(rng *rand.Rand, opts []op.Option) *neuron {
	return &neuron{
		w1:  op.NewParameter(rng.Float64()*2-1, opts...),
		w2:  op.NewParameter(rng.Float64()*2-1, opts...),
		b:   op.NewParameter(0, opts...),
		x1:  op.NewPlaceHolder(0, opts...),
		x2:  op.NewPlaceHolder(0, opts...),
		y:   op.NewPlaceHolder(0, opts...),
		m1:  op.NewMul(opts...),
		m2:  op.NewMul(opts...),
		a1:  op.NewAdd(opts...),
		a2:  op.NewAdd(opts...),
		sig: op.NewSigmoid(opts...),
		sub: op.NewSub(opts...),
		sq:  op.NewSquare(opts...),
	}
}

func (n *neuron) Evaluate(p [2]float64) float64 {
	n.x1.Set(p[0])
	n.x2.Set(p[1])
	s := n.a1.Forward(n.m1.Forward(n.w1.Forward(), n.x1.Forward()), n.m2.Forward(n.w2.Forward(), n.x2.Forward()))
	return n.sig.Forward(n.a2.Forward(s, n.b.Forward()))
}

// runs forward and loss for one point, then walks back. returns the loss and
// the gradients for w1, w2, b.
func (n *neuron) step(d utility.LabeledPoint) (loss float64, grads [3]float64, err error) {
	out := n.Evaluate(d.P)
	n.y.Set(float64(d.Label))
	loss = n.sq.Forward(n.sub.Forward(out, n.y.Forward()))

	chain := []func(float64) (float64, error){n.sq.Backward, n.sub.Grad1, n.sig.Backward}
	g := 1.0
	for _, back := range chain {
		if g, err = back(g); err != nil {
			return 0, grads, err
		}
	}
	// a2: (a1 output, b)
	dA1, err := n.a2.Grad1(g)
	if err != nil {
		return 0, grads, err
	}
	if grads[2], err = n.a2.Grad2(g); err != nil {
		return 0, grads, err
	}
	dM1, err := n.a1.Grad1(dA1)
	if err != nil {
		return 0, grads, err
	}
	dM2, err := n.a1.Grad2(dA1)
	if err != nil {
		return 0, grads, err
	}
	if grads[0], err = n.m1.Grad1(dM1); err != nil {
		return 0, grads, err
	}
	if grads[1], err = n.m2.Grad1(dM2); err != nil {
		return 0, grads, err
	}
	return loss, grads, nil
}

func (n *neuron) inspector() *utility.NodeInspector {
	return utility.NewNodeInspector().
		Add("w1", n.w1).Add("w2", n.w2).Add("b", n.b).
		Add("x1", n.x1).Add("x2", n.x2).Add("y", n.y).
		Add("m1", n.m1).Add("m2", n.m2).Add("a1", n.a1).Add("a2", n.a2).
		Add("sig", n.sig).Add("sub", n.sub).Add("sq", n.sq)
}

func train(n *neuron, steps int, lr float64, showUI bool) error {
	var dash *utility.Dashboard
	if showUI {
		var err error
		if dash, err = utility.NewDashboard(lr, steps); err != nil {
			return err
		}
		defer dash.Close()
	}

	params := []*op.Parameter{n.w1, n.w2, n.b}
	grid := utility.DefaultGrid()
	start := time.Now()

	for s := 1; s <= steps; s++ {
		var total float64
		var sum [3]float64
		for _, d := range andDataset {
			loss, grads, err := n.step(d)
			if err != nil {
				return err
			}
			total += loss
			for i := range sum {
				sum[i] += grads[i]
			}
		}
		for i, p := range params {
			p.Update(p.Forward() - lr*sum[i]/float64(len(andDataset)))
		}
		avg := total / float64(len(andDataset))

		if dash != nil {
			dash.AddLoss(avg)
		}
		if s%reportEvery == 0 || s == steps {
			acc := utility.Accuracy(n, andDataset, grid.Threshold)
			if dash != nil {
				dash.UpdateStats(s, steps, avg, acc, start)
				if samples, err := utility.SampleBoundary(n, grid); err == nil {
					dash.DrawBoundary(samples, andDataset, grid)
				}
			} else {
				fmt.Printf("step %4d  loss %.5f  accuracy %.0f%%\n", s, avg, acc*100)
			}
		}
	}

	if dash != nil {
		dash.Log(fmt.Sprintf("done: w1=%.3f w2=%.3f b=%.3f", n.w1.Forward(), n.w2.Forward(), n.b.Forward()))
		dash.Loop()
		return nil
	}
	return n.inspector().Summary(os.Stdout)
}
