package dbscan

import (
	"math"

	"github.com/kelindar/bitmap"
)

// defaultTableSize is the grid's default bucket count, a prime chosen so
// that a few thousand occupied cells still spread thinly across the table
// (spec §3, §4.2).
const defaultTableSize = 200003

// Hash constants for 3D integer cell coordinates. These are a well-known
// triple for spatial hashing (Teschner et al.) and must keep these exact
// values; changing them changes which points share a bucket and therefore
// the grid's performance characteristics (never its correctness, which the
// region query's distance test guarantees regardless of bucket layout).
const (
	hashX = 73856093
	hashY = 19349663
	hashZ = 83492791
)

// bucket holds the point indices that hashed into one grid slot. Indices
// from distinct cell coordinates may share a bucket (spec §4.2); the
// region query's exact distance test is what makes that safe.
type bucket struct {
	indices []int32
	hintX   int64
	hintY   int64
	hintZ   int64
	inited  bool
}

// push appends idx, allocating an initial capacity of 8 on first use and
// letting append's doubling growth take it from there (spec §4.1).
func (b *bucket) push(idx int32) {
	if !b.inited {
		b.indices = make([]int32, 0, 8)
		b.inited = true
	}
	b.indices = append(b.indices, idx)
}

// Grid is the fixed-size spatial hash table described in spec §3/§4.2. It
// is built once per Run call and discarded at the end of it.
type Grid struct {
	buckets  []bucket
	touched  bitmap.Bitmap
	eps      float64
	occupied int
}

// GridStats summarizes a Grid's occupancy, counted as each bucket receives
// its first insert (the same moment its bit is set in the touched-bucket
// bitmap). Useful for tuning TableSize.
type GridStats struct {
	Buckets    int
	Occupied   int
	LoadFactor float64
}

// newGrid allocates a table of tableSize buckets (or defaultTableSize if
// tableSize <= 0) for the given epsilon.
func newGrid(tableSize int, eps float64) *Grid {
	if tableSize <= 0 {
		tableSize = defaultTableSize
	}
	g := &Grid{
		buckets: make([]bucket, tableSize),
		eps:     eps,
	}
	g.touched.Grow(uint32(tableSize - 1))
	return g
}

func (g *Grid) size() int { return len(g.buckets) }

// floorDiv implements the cell-coordinate rule from spec §3: floor(v/denom),
// represented in a signed 64-bit integer so extreme inputs or negative
// coordinates never overflow a 32-bit cell index.
func floorDiv(v, denom float64) int64 {
	return int64(math.Floor(v / denom))
}

// hashCell implements the hash from spec §4.2 exactly, including taking
// the absolute value before reducing modulo the table size. Converting
// through uint64 before the modulo keeps the result in [0, tableSize) even
// in the (practically unreachable) case where negating math.MinInt64
// overflows back to a negative number.
func hashCell(gx, gy, gz int64, tableSize int) int {
	h := hashX*gx ^ hashY*gy ^ hashZ*gz
	if h < 0 {
		h = -h
	}
	return int(uint64(h) % uint64(tableSize))
}

// cellOf computes the integer cell coordinates of a point (spec §3). gz is
// fixed at 0 for 2D points.
func cellOf(x, y, z float64, dim int, eps float64) (gx, gy, gz64 int64) {
	gx = floorDiv(x, eps)
	gy = floorDiv(y, eps)
	if dim == 3 {
		gz64 = floorDiv(z, eps)
	}
	return
}

// insert adds point idx into the grid (spec §4.2's insert operation). On
// first insertion into a bucket, the cell coordinates are recorded as a
// debugging hint (spec §3's cell-bucket identity hint; never used to
// disambiguate collisions, per spec §9).
func (g *Grid) insert(idx int32, x, y, z float64, dim int) {
	gx, gy, gz := cellOf(x, y, z, dim, g.eps)
	h := hashCell(gx, gy, gz, g.size())
	b := &g.buckets[h]
	if !b.inited {
		b.hintX, b.hintY, b.hintZ = gx, gy, gz
		g.touched.Set(uint32(h))
		g.occupied++
	}
	b.push(idx)
}

// Stats reports the grid's bucket occupancy, useful when tuning
// Options.TableSize for a dataset.
func (g *Grid) Stats() GridStats {
	return GridStats{
		Buckets:    g.size(),
		Occupied:   g.occupied,
		LoadFactor: float64(g.occupied) / float64(g.size()),
	}
}

// touchedBucket reports whether bucket h has ever received an insert. It
// mirrors bucket.inited through the bitmap so Grid's occupancy tracking
// stays in one place (spec §9 makes the per-bucket hint optional; keeping
// a dense membership bitmap alongside it is the idiomatic equivalent of
// the teacher's bitmap-backed occupancy grid in its own point-generation
// code).
func (g *Grid) touchedBucket(h int) bool {
	return g.touched.Contains(uint32(h))
}
