package core_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/floodflow/core"
)

// GraphSuite covers the vertex and arc lifecycle of core.Graph.
type GraphSuite struct {
	suite.Suite
}

// TestAddVertex verifies empty-ID rejection and idempotent insertion.
func (s *GraphSuite) TestAddVertex() {
	g := core.NewGraph()
	require.ErrorIs(s.T(), g.AddVertex(""), core.ErrEmptyVertexID)

	require.NoError(s.T(), g.AddVertex("A"))
	require.NoError(s.T(), g.AddVertex("A"))
	require.True(s.T(), g.HasVertex("A"))
	require.False(s.T(), g.HasVertex(""))
	require.Equal(s.T(), 1, g.VertexCount())
}

// TestAddEdge verifies arc fields and implicit endpoint creation.
func (s *GraphSuite) TestAddEdge() {
	g := core.NewGraph()
	id, err := g.AddEdge("A", "B", 3, 10, core.WithEdgeLabel("street1"))
	require.NoError(s.T(), err)

	e, err := g.GetEdge(id)
	require.NoError(s.T(), err)
	require.Equal(s.T(), "A", e.From)
	require.Equal(s.T(), "B", e.To)
	require.EqualValues(s.T(), 3, e.Cost)
	require.EqualValues(s.T(), 10, e.Capacity)
	require.Equal(s.T(), "street1", e.Label)

	require.True(s.T(), g.HasVertex("B"))
	require.True(s.T(), g.HasEdge("A", "B"))
	require.False(s.T(), g.HasEdge("B", "A"), "arcs are directed")
}

// TestConstraints covers loops, parallel arcs and negative capacity.
func (s *GraphSuite) TestConstraints() {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "A", 1, 1)
	require.ErrorIs(s.T(), err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge("A", "B", 1, -1)
	require.ErrorIs(s.T(), err, core.ErrNegativeCapacity)

	_, err = g.AddEdge("A", "B", 1, 1)
	require.NoError(s.T(), err)
	_, err = g.AddEdge("A", "B", 2, 1)
	require.ErrorIs(s.T(), err, core.ErrMultiEdgeNotAllowed)

	_, err = g.AddEdge("", "B", 1, 1)
	require.ErrorIs(s.T(), err, core.ErrEmptyVertexID)

	m := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	_, err = m.AddEdge("A", "B", 1, 1)
	require.NoError(s.T(), err)
	_, err = m.AddEdge("A", "B", 2, 1)
	require.NoError(s.T(), err)
	_, err = m.AddEdge("A", "A", 0, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, m.EdgeCount())
}

// TestDeterministicOrder checks Vertices sorted and Edges/Neighbors in insertion order.
func (s *GraphSuite) TestDeterministicOrder() {
	g := core.NewGraph()
	ids := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		to := string(rune('B' + i))
		id, err := g.AddEdge("A", to, int64(i), 1)
		require.NoError(s.T(), err)
		ids = append(ids, id)
	}

	got := make([]string, 0, 12)
	for _, e := range g.Edges() {
		got = append(got, e.ID)
	}
	require.Equal(s.T(), ids, got, "e10 must follow e9")

	nbrs, err := g.Neighbors("A")
	require.NoError(s.T(), err)
	require.Len(s.T(), nbrs, 12)
	require.Equal(s.T(), "B", nbrs[0].To)

	vs := g.Vertices()
	require.Equal(s.T(), "A", vs[0])
	require.Len(s.T(), vs, 13)

	_, err = g.Neighbors("Z")
	require.True(s.T(), errors.Is(err, core.ErrVertexNotFound))
}

// TestClone verifies that the clone is independent of the source graph.
func (s *GraphSuite) TestClone() {
	g := core.NewGraph()
	id, _ := g.AddEdge("A", "B", 1, 5)
	c := g.Clone()

	e, _ := c.GetEdge(id)
	e.Capacity = 0
	orig, _ := g.GetEdge(id)
	require.EqualValues(s.T(), 5, orig.Capacity)

	nid, err := c.AddEdge("B", "A", 1, 5)
	require.NoError(s.T(), err)
	require.NotEqual(s.T(), id, nid)
	require.False(s.T(), g.HasEdge("B", "A"))
}

// TestConcurrentReads exercises the read locks under parallel access.
func (s *GraphSuite) TestConcurrentReads() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1, 1)
	_, _ = g.AddEdge("B", "C", 1, 1)

	var wg sync.WaitGroup
	counts := make([]int, 32)
	for i := range counts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			counts[i] = len(g.Edges()) + len(g.Vertices())
		}(i)
	}
	wg.Wait()
	for _, c := range counts {
		require.Equal(s.T(), 5, c)
	}
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
