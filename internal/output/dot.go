package output

import (
	"io"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"ggcat2bcalm/core/graph"
)

const dotGraphName = "unitigs"

// WriteDOT drains in and writes a Graphviz digraph with one node per unitig
// and one edge per undirected link, labelled with the overlap orientations
// (same as the GFA L line).
func WriteDOT(w io.Writer, in <-chan graph.Unitig) error {
	g := gographviz.NewGraph()
	if err := g.SetName(dotGraphName); err != nil {
		return err
	}
	if err := g.SetDir(true); err != nil {
		return err
	}
	type edge struct {
		from int
		link graph.Link
	}
	var edges []edge
	for u := range in {
		attrs := map[string]string{
			"label": strconv.Quote(strconv.Itoa(u.ID) + " (" + strconv.Itoa(len(u.Seq)) + " bp)"),
			"shape": "box",
		}
		if err := g.AddNode(dotGraphName, strconv.Itoa(u.ID), attrs); err != nil {
			return err
		}
		for _, l := range u.Links {
			if OwnsLink(u.ID, l) {
				edges = append(edges, edge{from: u.ID, link: l})
			}
		}
	}
	// Edges go in after every node so forward references resolve.
	for _, e := range edges {
		from, to := e.link.Overlap()
		attrs := map[string]string{
			"label": strconv.Quote(from.String() + "/" + to.String()),
		}
		if err := g.AddEdge(strconv.Itoa(e.from), strconv.Itoa(e.link.To), true, attrs); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, g.String())
	return err
}
