package dbscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashCellDeterministic(t *testing.T) {
	h1 := hashCell(3, -7, 2, defaultTableSize)
	h2 := hashCell(3, -7, 2, defaultTableSize)
	assert.Equal(t, h1, h2)
	assert.GreaterOrEqual(t, h1, 0)
	assert.Less(t, h1, defaultTableSize)
}

func TestHashCellWithinBounds(t *testing.T) {
	for _, tableSize := range []int{1, 7, 17, defaultTableSize} {
		for _, gx := range []int64{0, 1, -1, 1 << 40, -(1 << 40)} {
			h := hashCell(gx, gx, gx, tableSize)
			assert.GreaterOrEqual(t, h, 0)
			assert.Less(t, h, tableSize)
		}
	}
}

func TestNewGridDefaultsTableSize(t *testing.T) {
	g := newGrid(0, 1.0)
	assert.Equal(t, defaultTableSize, g.size())

	g2 := newGrid(-5, 1.0)
	assert.Equal(t, defaultTableSize, g2.size())

	g3 := newGrid(101, 1.0)
	assert.Equal(t, 101, g3.size())
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, int64(2), floorDiv(5, 2))
	assert.Equal(t, int64(-3), floorDiv(-5, 2))
	assert.Equal(t, int64(0), floorDiv(0, 2))
	assert.Equal(t, int64(-1), floorDiv(-0.5, 1))
}

func TestGridInsertAndStats(t *testing.T) {
	g := newGrid(101, 1.0)
	g.insert(0, 0.1, 0.1, 0, 2)
	g.insert(1, 0.2, 0.2, 0, 2) // same cell as point 0
	g.insert(2, 50, 50, 0, 2)   // a different cell

	stats := g.Stats()
	assert.Equal(t, 101, stats.Buckets)
	assert.GreaterOrEqual(t, stats.Occupied, 1)
	assert.LessOrEqual(t, stats.Occupied, 2)

	gx, gy, gz := cellOf(0.1, 0.1, 0, 2, g.eps)
	h := hashCell(gx, gy, gz, g.size())
	assert.True(t, g.touchedBucket(h))
	assert.Contains(t, g.buckets[h].indices, int32(0))
	assert.Contains(t, g.buckets[h].indices, int32(1))
}

func TestBucketPushGrowsFromEight(t *testing.T) {
	var b bucket
	assert.False(t, b.inited)
	b.push(42)
	assert.True(t, b.inited)
	assert.Equal(t, 8, cap(b.indices))
	assert.Equal(t, []int32{42}, b.indices)

	for i := int32(0); i < 20; i++ {
		b.push(i)
	}
	assert.Equal(t, 21, len(b.indices))
}

func TestCellOf2DIgnoresZ(t *testing.T) {
	gx, gy, gz := cellOf(3, 4, 999, 2, 1.0)
	assert.Equal(t, int64(3), gx)
	assert.Equal(t, int64(4), gy)
	assert.Equal(t, int64(0), gz)
}

func TestCellOf3D(t *testing.T) {
	gx, gy, gz := cellOf(3, 4, 5, 3, 1.0)
	assert.Equal(t, int64(3), gx)
	assert.Equal(t, int64(4), gy)
	assert.Equal(t, int64(5), gz)
}
