package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbayes/core"
	"github.com/katalvlaran/lvbayes/dfs"
)

func TestSimplePaths_Undirected(t *testing.T) {
	// B→A, E→A, E→R projected to undirected
	g := build(t, true, "BAER", "BA", "EA", "ER").ToUndirected()

	paths, err := dfs.SimplePaths(g, "A", "R")
	require.NoError(t, err)
	assert.Equal(t, [][]core.NodeID{core.IDs("A", "E", "R")}, paths)

	paths, err = dfs.SimplePaths(g, "B", "R")
	require.NoError(t, err)
	assert.Equal(t, [][]core.NodeID{core.IDs("B", "A", "E", "R")}, paths)
}

func TestSimplePaths_DiamondAndLimit(t *testing.T) {
	g := build(t, false, "ABCD", "AB", "AC", "BD", "CD")

	paths, err := dfs.SimplePaths(g, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, [][]core.NodeID{core.IDs("A", "B", "D"), core.IDs("A", "C", "D")}, paths)

	paths, err = dfs.SimplePaths(g, "A", "D", dfs.WithMaxPaths(1))
	require.NoError(t, err)
	assert.Len(t, paths, 1)
}

func TestSimplePaths_DirectedFollowsChildren(t *testing.T) {
	g := build(t, true, "ABC", "AB", "CB")

	paths, err := dfs.SimplePaths(g, "A", "C")
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestSimplePaths_EdgeCases(t *testing.T) {
	g := build(t, false, "AB")

	paths, err := dfs.SimplePaths(g, "A", "A")
	require.NoError(t, err)
	assert.Equal(t, [][]core.NodeID{{"A"}}, paths)

	paths, err = dfs.SimplePaths(g, "A", "B")
	require.NoError(t, err)
	assert.Empty(t, paths)

	_, err = dfs.SimplePaths(g, "A", "Z")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = dfs.SimplePaths(nil, "A", "B")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	assert.Panics(t, func() { dfs.WithMaxPaths(-1) })
}
