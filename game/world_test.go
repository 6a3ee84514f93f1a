package game

import (
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorld(t *testing.T) *World {
	t.Helper()
	return NewWorld(NumBodies, DefaultParams(), rand.New(rand.NewPCG(1, 2)))
}

func TestNewWorldSpawnsWithinRanges(t *testing.T) {
	w := newTestWorld(t)
	require.Len(t, w.Bodies, NumBodies)

	for i, b := range w.Bodies {
		assert.Equal(t, i, b.ID, "ids are dense and index ordered")
		assert.GreaterOrEqual(t, b.Radius, MinRadius)
		assert.Less(t, b.Radius, MaxRadius)
		assert.Equal(t, b.Radius*b.Radius, b.Mass)

		assert.GreaterOrEqual(t, b.X, b.Radius)
		assert.LessOrEqual(t, b.X, WorldWidth-b.Radius)
		assert.GreaterOrEqual(t, b.Y, b.Radius)
		assert.LessOrEqual(t, b.Y, WorldHeight/2-b.Radius)

		assert.GreaterOrEqual(t, b.VX, -SpawnSpeedX/2)
		assert.Less(t, b.VX, SpawnSpeedX/2)
		assert.GreaterOrEqual(t, b.VY, -SpawnSpeedY/2)
		assert.Less(t, b.VY, SpawnSpeedY/2)

		assert.False(t, b.Dragged)
	}
}

func TestRandomColorUsesBrightPalette(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 9))
	for i := 0; i < 200; i++ {
		c := RandomColor(rng)
		require.Len(t, c, 7)
		require.Equal(t, byte('#'), c[0])
		for _, r := range c[1:] {
			require.True(t, strings.ContainsRune(colorDigits, r), "unexpected digit %q in %s", r, c)
		}
	}
}

func TestWorldStepAdvancesTickAndKeepsLength(t *testing.T) {
	w := newTestWorld(t)
	for i := 0; i < 600; i++ {
		w.Step()
	}
	assert.Equal(t, 600, w.Tick)
	assert.Len(t, w.Bodies, NumBodies)
	for _, b := range w.Bodies {
		assert.False(t, math.IsNaN(b.X) || math.IsNaN(b.Y), "body %d lost its position", b.ID)
	}
}

func TestWorldDragLifecycle(t *testing.T) {
	w := newTestWorld(t)

	// drag before dragStart is ignored
	b, _ := w.Body(3)
	x0, y0 := b.X, b.Y
	assert.False(t, w.DragTo(3, 1, 1))
	assert.Equal(t, x0, b.X)
	assert.Equal(t, y0, b.Y)

	require.True(t, w.StartDrag(3))
	assert.True(t, b.Dragged)
	assert.Zero(t, b.VX)
	assert.Zero(t, b.VY)

	require.True(t, w.DragTo(3, 100, 100))
	for i := 0; i < 120; i++ {
		w.Step()
		require.Equal(t, 100.0, b.X, "tick %d", i)
		require.Equal(t, 100.0, b.Y, "tick %d", i)
		require.Zero(t, b.VX)
		require.Zero(t, b.VY)
	}
	assert.Equal(t, 1, w.NumDragged())

	require.True(t, w.EndDrag(3))
	assert.False(t, b.Dragged)
	w.Step()
	assert.NotEqual(t, 100.0, b.Y, "released body should fall again")
	assert.Zero(t, w.NumDragged())
}

func TestWorldRejectsUnknownIDs(t *testing.T) {
	w := newTestWorld(t)
	before := append([]Body(nil), w.Bodies...)

	for _, id := range []int{-1, NumBodies, 999} {
		_, ok := w.Body(id)
		assert.False(t, ok)
		assert.False(t, w.StartDrag(id))
		assert.False(t, w.DragTo(id, 1, 1))
		assert.False(t, w.EndDrag(id))
	}
	assert.Equal(t, before, w.Bodies)
}
