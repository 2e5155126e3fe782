package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbayes/core"
)

// newDirected builds a directed graph from nodes and "from→to" pairs.
func newDirected(t *testing.T, nodes []string, edges [][2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddNodes(core.IDs(nodes...)...))
	for _, e := range edges {
		g.AddEdge(core.NodeID(e[0]), core.NodeID(e[1]))
	}

	return g
}

func TestAddNode_EmptyAndDuplicate(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddNode(""), core.ErrEmptyNodeID)

	require.NoError(t, g.AddNode("A"))
	require.NoError(t, g.AddNode("A"))
	assert.Equal(t, 1, g.NodeCount())
	assert.Equal(t, core.IDs("A"), g.Nodes())
}

func TestAddEdge_SilentNoOps(t *testing.T) {
	g := newDirected(t, []string{"A", "B"}, nil)

	g.AddEdge("A", "missing")
	g.AddEdge("missing", "A")
	g.AddEdge("A", "A")
	assert.Equal(t, 0, g.EdgeCount())

	g.AddEdge("A", "B")
	g.AddEdge("A", "B")
	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
	assert.True(t, g.Adjacent("B", "A"))
}

func TestParentsChildren_InsertionOrder(t *testing.T) {
	g := newDirected(t, []string{"X", "C", "A", "B"}, [][2]string{{"C", "X"}, {"A", "X"}, {"B", "X"}, {"X", "B"}})

	ps, err := g.Parents("X")
	require.NoError(t, err)
	assert.Equal(t, core.IDs("C", "A", "B"), ps)

	cs, err := g.Children("X")
	require.NoError(t, err)
	assert.Equal(t, core.IDs("B"), cs)

	_, err = g.Parents("nope")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = g.Children("nope")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestRemoveEdge(t *testing.T) {
	g := newDirected(t, []string{"A", "B"}, [][2]string{{"A", "B"}})
	g.RemoveEdge("B", "A") // absent: no-op
	assert.Equal(t, 1, g.EdgeCount())
	g.RemoveEdge("A", "B")
	assert.Equal(t, 0, g.EdgeCount())
	ps, _ := g.Parents("B")
	assert.Empty(t, ps)
}

func TestRemoveNode_DropsIncidentEdges(t *testing.T) {
	g := newDirected(t, []string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"B", "C"}, {"A", "C"}})

	require.NoError(t, g.RemoveNode("B"))
	assert.False(t, g.HasNode("B"))
	assert.Equal(t, core.IDs("A", "C"), g.Nodes())
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, []core.Edge{{From: "A", To: "C"}}, g.Edges())

	assert.ErrorIs(t, g.RemoveNode("B"), core.ErrNodeNotFound)
}

func TestUndirected_MirrorsEdges(t *testing.T) {
	g := core.NewGraph(core.WithDirected(false))
	require.NoError(t, g.AddNodes("A", "B", "C"))
	g.AddEdge("B", "A")
	g.AddEdge("B", "C")

	assert.False(t, g.Directed())
	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A"))
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, []core.Edge{{From: "A", To: "B"}, {From: "B", To: "C"}}, g.Edges())

	g.RemoveEdge("A", "B")
	assert.False(t, g.HasEdge("B", "A"))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestToUndirected(t *testing.T) {
	g := newDirected(t, []string{"B", "A", "E", "R"}, [][2]string{{"B", "A"}, {"E", "A"}, {"E", "R"}})
	u := g.ToUndirected()

	assert.False(t, u.Directed())
	assert.True(t, g.Directed(), "source must stay directed")
	assert.Equal(t, g.Nodes(), u.Nodes())
	for _, e := range g.Edges() {
		assert.True(t, u.HasEdge(e.From, e.To))
		assert.True(t, u.HasEdge(e.To, e.From))
	}
	assert.Equal(t, 3, u.EdgeCount())

	// idempotent on node and edge sets
	uu := u.ToUndirected()
	assert.Equal(t, u.Nodes(), uu.Nodes())
	assert.ElementsMatch(t, u.Edges(), uu.Edges())
}

func TestClone_IsDeep(t *testing.T) {
	g := newDirected(t, []string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"C", "B"}})
	c := g.Clone()

	c.AddEdge("B", "C")
	require.NoError(t, c.RemoveNode("A"))
	require.NoError(t, c.AddNode("D"))

	assert.Equal(t, core.IDs("A", "B", "C"), g.Nodes())
	assert.Equal(t, 2, g.EdgeCount())
	ps, _ := g.Parents("B")
	assert.Equal(t, core.IDs("A", "C"), ps)
	assert.False(t, g.HasEdge("B", "C"))
}

func TestInducedSubgraph(t *testing.T) {
	g := newDirected(t, []string{"A", "B", "C", "D"}, [][2]string{{"C", "D"}, {"A", "D"}, {"B", "C"}, {"A", "B"}})
	s := g.InducedSubgraph(core.IDs("D", "A", "C", "ghost"))

	assert.Equal(t, core.IDs("A", "C", "D"), s.Nodes())
	ps, err := s.Parents("D")
	require.NoError(t, err)
	assert.Equal(t, core.IDs("C", "A"), ps, "parent order follows the source")
	assert.False(t, s.HasNode("B"))
	assert.Equal(t, 4, g.EdgeCount(), "source untouched")
}

func TestAncestorsDescendants(t *testing.T) {
	// A→C→E→G, B→D→F→H, E→H
	g := newDirected(t, []string{"A", "B", "C", "D", "E", "F", "G", "H"},
		[][2]string{{"A", "C"}, {"C", "E"}, {"E", "G"}, {"B", "D"}, {"D", "F"}, {"F", "H"}, {"E", "H"}})

	anc, err := g.Ancestors("H")
	require.NoError(t, err)
	assert.Equal(t, core.IDs("A", "B", "C", "D", "E", "F"), anc)

	desc, err := g.Descendants("C")
	require.NoError(t, err)
	assert.Equal(t, core.IDs("E", "G", "H"), desc)

	ok, err := g.IsAncestor("A", "H")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = g.IsDescendant("A", "H")
	require.NoError(t, err)
	assert.False(t, ok)
	ok, _ = g.IsDescendant("A", "A")
	assert.False(t, ok)

	_, err = g.Ancestors("Z")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = g.IsDescendant("A", "Z")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestCycles_TerminateAndDetect(t *testing.T) {
	g := newDirected(t, []string{"A", "B", "C", "D"}, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}, {"C", "D"}})

	assert.False(t, g.IsAcyclic())
	for _, n := range core.IDs("A", "B", "C") {
		ok, err := g.IsDescendant(n, n)
		require.NoError(t, err)
		assert.True(t, ok, "%s lies on a cycle", n)
	}
	ok, _ := g.IsDescendant("D", "D")
	assert.False(t, ok)

	anc, err := g.Ancestors("A")
	require.NoError(t, err)
	assert.Equal(t, core.IDs("A", "B", "C"), anc)

	g.RemoveEdge("C", "A")
	assert.True(t, g.IsAcyclic())
}

func TestConcurrentReaders(t *testing.T) {
	g := newDirected(t, []string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"B", "C"}})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = g.Descendants("A")
			_ = g.Edges()
			_ = g.Clone()
		}()
	}
	wg.Wait()
	assert.Equal(t, 2, g.EdgeCount())
}
