package utility

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"go-opgraph/op"
)

// provides a tabular view of a hand-wired graph's nodes and what each one remembers.
type NodeInspector struct {
	names []string
	nodes []op.Node
}

func NewNodeInspector() *NodeInspector {
	return &NodeInspector{}
}

// registers a node under a display name. order of registration is order of display.
func (ni *NodeInspector) Add(name string, n op.Node) *NodeInspector {
	ni.names = append(ni.names, name)
	ni.nodes = append(ni.nodes, n)
	return ni
}

// writes the summary table to w
func (ni *NodeInspector) Summary(w io.Writer) error {
	fmt.Fprintln(w, "\n--- Graph Summary ---")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Node (Kind)\tInputs\tOutput\tReady")
	fmt.Fprintln(tw, "-----------\t------\t------\t-----")

	for i, n := range ni.nodes {
		st := n.State()
		inputs := "-"
		if len(st.Inputs) > 0 {
			parts := make([]string, len(st.Inputs))
			for j, v := range st.Inputs {
				parts[j] = fmt.Sprintf("%.4g", v)
			}
			inputs = strings.Join(parts, ", ")
		}
		fmt.Fprintf(tw, "%s (%s)\t%s\t%.4g\t%t\n", ni.names[i], n.Kind(), inputs, st.Output, st.Ready)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	total, trainable := ni.CountNodes()
	fmt.Fprintln(w, "----------------------------------")
	fmt.Fprintf(w, "Total Nodes: %d\n", total)
	fmt.Fprintf(w, "Trainable Parameters: %d\n", trainable)
	fmt.Fprintln(w, "----------------------------------")
	return nil
}

// node counts for the graph. only Parameter nodes are trainable.
func (ni *NodeInspector) CountNodes() (total int, trainable int) {
	for _, n := range ni.nodes {
		total++
		if n.Kind() == op.KindParameter {
			trainable++
		}
	}
	return total, trainable
}
