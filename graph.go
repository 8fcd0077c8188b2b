package solitaire

import (
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"
	"github.com/pkg/errors"
)

// SolutionGraph renders a solution's moves as a DOT digraph: one node per
// position, one labeled edge per move. Handy for eyeballing a solution with
// graphviz.
func SolutionGraph(name string, moves []string) (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(name); err != nil {
		return "", errors.Wrap(err, "naming solution graph")
	}
	if err := g.SetDir(true); err != nil {
		return "", errors.Wrap(err, "marking solution graph directed")
	}
	if err := g.AddNode(name, "s0", map[string]string{"label": strconv.Quote("start")}); err != nil {
		return "", errors.Wrap(err, "adding start node")
	}
	for i, move := range moves {
		node := fmt.Sprintf("s%d", i+1)
		label := strconv.Quote(fmt.Sprintf("%d", i+1))
		if err := g.AddNode(name, node, map[string]string{"label": label}); err != nil {
			return "", errors.Wrapf(err, "adding node for move %d", i+1)
		}
		prev := fmt.Sprintf("s%d", i)
		attrs := map[string]string{"label": strconv.Quote(move)}
		if err := g.AddEdge(prev, node, true, attrs); err != nil {
			return "", errors.Wrapf(err, "adding edge for move %d", i+1)
		}
	}
	return g.String(), nil
}
