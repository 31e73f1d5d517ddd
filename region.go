package dbscan

// regionQuery returns every point index within Euclidean distance <= g.eps
// of pts at index p (spec §4.3). buf is the caller-owned scratch buffer;
// regionQuery resets it to length 0 and returns the (possibly reallocated)
// result, so callers must keep using the returned slice.
//
// The query always includes p itself, since p is within eps of itself —
// callers rely on this to treat "at least minPts neighbors" and "is a core
// point" as the same test.
func (g *Grid) regionQuery(pts *Points, p int32, buf []int32) []int32 {
	buf = buf[:0]

	x, y, z := pts.X[p], pts.Y[p], pts.z(int(p))
	gx, gy, gz := cellOf(x, y, z, pts.Dim, g.eps)
	eps2 := g.eps * g.eps

	// spec §4.3 edge case / §9: in 2D the z-offset loop must iterate
	// exactly once at dz=0; in 3D it ranges over {-1,0,+1}. The original C
	// source computes z_min/z_max in a way that degenerates 3D to zero
	// iterations (a bug flagged in spec §9) — this follows the stated
	// intended semantics instead.
	dzRange := dz2D
	if pts.Dim == 3 {
		dzRange = dz3D
	}

	// Distinct neighbor cells can hash to the same bucket; each bucket is
	// scanned once so that no index is reported twice.
	var visited [27]int
	nVisited := 0

	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
		cells:
			for _, dz := range dzRange {
				h := hashCell(gx+dx, gy+dy, gz+dz, g.size())
				for _, seen := range visited[:nVisited] {
					if seen == h {
						continue cells
					}
				}
				visited[nVisited] = h
				nVisited++
				b := &g.buckets[h]
				if !b.inited || len(b.indices) == 0 {
					continue
				}
				for _, idx := range b.indices {
					dx_ := pts.X[idx] - x
					dy_ := pts.Y[idx] - y
					d2 := dx_*dx_ + dy_*dy_
					if pts.Dim == 3 {
						dz_ := pts.Z[idx] - z
						d2 += dz_ * dz_
					}
					if d2 <= eps2 {
						buf = append(buf, idx)
					}
				}
			}
		}
	}
	return buf
}

var (
	dz2D = []int64{0}
	dz3D = []int64{-1, 0, 1}
)
