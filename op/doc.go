// Package op is a small set of scalar operator nodes for working reverse-mode
// differentiation out by hand.
//
// Every node remembers its last forward invocation and nothing else. The
// caller owns the graph: it feeds one node's Forward output into the next,
// then walks back in reverse order passing the upstream gradient into each
// node's gradient accessor.
//
//	w, x, y := op.NewParameter(2), op.NewPlaceHolder(3), op.NewPlaceHolder(4)
//	mul, sub, sq := op.NewMul(), op.NewSub(), op.NewSquare()
//
//	loss := sq.Forward(sub.Forward(mul.Forward(w.Forward(), x.Forward()), y.Forward()))
//
//	dSub, _ := sq.Backward(1)
//	dMul, _ := sub.Grad1(dSub)
//	dW, _ := mul.Grad1(dMul)
//
// Gradient accessors called before any Forward return an
// *UninitializedNodeError unless the node was built with Permissive. Nodes
// are not safe for concurrent use.
package op
