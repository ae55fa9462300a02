// Package graph renders expression trees as undirected Graphviz graphs.
package graph

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	errors "gopkg.in/src-d/go-errors.v1"

	"github.com/alecthomas/expr"
)

var (
	// ErrNotGraphFile is returned by Create when the path does not have a ".gv" extension.
	ErrNotGraphFile = errors.NewKind("graph file %q must have a .gv extension")
	// ErrRender is returned when the dot renderer fails.
	ErrRender = errors.NewKind("failed to render %q: %s")

	// Dot is the Graphviz executable used by Render.
	Dot = "dot"
)

// Write a Graphviz description of the tree rooted at root to w.
//
// Every node gets a unique ID, its Label as the visible label and its Kind and depth as
// a tooltip.
func Write(w io.Writer, root expr.Node) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "graph {")
	var (
		parents []string
		count   int
	)
	err := expr.Visit(root, func(n expr.Node, next func() error) error {
		id := fmt.Sprintf("n%d", count)
		count++
		tooltip := fmt.Sprintf("%s depth=%d", n.Kind(), n.Depth())
		fmt.Fprintf(bw, "\t%s [label=%q, tooltip=%q];\n", id, n.Label(), tooltip)
		if len(parents) > 0 {
			fmt.Fprintf(bw, "\t%s -- %s;\n", parents[len(parents)-1], id)
		}
		parents = append(parents, id)
		err := next()
		parents = parents[:len(parents)-1]
		return err
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

// Create writes the graph for root to path, which must end in ".gv".
//
// If pdf is true the graph is also rendered to a PDF file next to it, with the ".gv"
// extension replaced by ".pdf".
func Create(ctx context.Context, root expr.Node, path string, pdf bool) error {
	if !strings.HasSuffix(path, ".gv") {
		return ErrNotGraphFile.New(path)
	}
	w, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(w, root); err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	if !pdf {
		return nil
	}
	return Render(ctx, path, strings.TrimSuffix(path, ".gv")+".pdf", "pdf")
}

// Render the Graphviz file at in to out in the given output format, eg. "pdf" or "svg".
func Render(ctx context.Context, in, out, format string) error {
	cmd := exec.CommandContext(ctx, Dot, "-T"+format, in, "-o", out)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return ErrRender.Wrap(err, in, strings.TrimSpace(string(output)))
	}
	return nil
}
