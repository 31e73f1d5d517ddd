// Package synth builds reproducible synthetic point sets for testing and
// benchmarking github.com/kelindar/dbscan. Point and center jitter is driven
// by a small deterministic hash-based offset generator local to this
// package, the same "hash seed+counter into a reproducible value" shape the
// teacher package used to drive its own point-generation code (sparse.go's
// SSI1/SSI2, poisson.go's Sparse1/Sparse2/Sparse3), retargeted here at
// jittering cluster members and placing cluster centers instead of a
// general-purpose noise API.
package synth

import (
	"github.com/kelindar/dbscan"
)

// Config parameterizes Generate.
type Config struct {
	// Seed makes the output reproducible for a given Config.
	Seed uint32
	// Dim is 2 or 3.
	Dim int
	// Clusters is the number of cluster centers to place.
	Clusters int
	// PointsPerCluster is the member count for each cluster.
	PointsPerCluster int
	// CenterGap is the minimum distance enforced between cluster centers.
	CenterGap float64
	// MemberSpread jitters each member point around its cluster's center
	// by up to +/- MemberSpread on every axis.
	MemberSpread float64
	// NoisePoints is the number of background points scattered uniformly
	// across [-Bound, +Bound] on every axis, independent of any cluster.
	NoisePoints int
	// Bound is the half-width of the noise-point bounding box.
	Bound float64
}

// Generate builds a *dbscan.Points fixture from cfg. The result is
// deterministic: the same Config always produces the same coordinates.
func Generate(cfg Config) *dbscan.Points {
	centers := placeCenters(cfg.Seed, cfg.Dim, cfg.Clusters, cfg.CenterGap)

	n := cfg.Clusters*cfg.PointsPerCluster + cfg.NoisePoints
	pts := &dbscan.Points{
		X:   make([]float64, 0, n),
		Y:   make([]float64, 0, n),
		Dim: cfg.Dim,
	}
	if cfg.Dim == 3 {
		pts.Z = make([]float64, 0, n)
	}

	var tick uint64
	for ci, c := range centers {
		base := cfg.Seed ^ uint32(ci)*0x9e3779b1
		for m := 0; m < cfg.PointsPerCluster; m++ {
			tick++
			jx := uniformSigned(base, tick) * 2 * cfg.MemberSpread
			jy := uniformSigned(base^1, tick) * 2 * cfg.MemberSpread
			pts.X = append(pts.X, c[0]+jx)
			pts.Y = append(pts.Y, c[1]+jy)
			if cfg.Dim == 3 {
				jz := uniformSigned(base^2, tick) * 2 * cfg.MemberSpread
				pts.Z = append(pts.Z, c[2]+jz)
			}
		}
	}

	const noiseSeedSalt = 0x5bd1e995
	for i := 0; i < cfg.NoisePoints; i++ {
		tick++
		x := uniformSigned(cfg.Seed^noiseSeedSalt, tick) * 2 * cfg.Bound
		y := uniformSigned(cfg.Seed^noiseSeedSalt^1, tick) * 2 * cfg.Bound
		pts.X = append(pts.X, x)
		pts.Y = append(pts.Y, y)
		if cfg.Dim == 3 {
			z := uniformSigned(cfg.Seed^noiseSeedSalt^2, tick) * 2 * cfg.Bound
			pts.Z = append(pts.Z, z)
		}
	}
	return pts
}

// placeCenters lays out n well-separated cluster centers on a jittered
// integer lattice, scanning outward ring by ring from the origin and
// accepting a candidate only if it clears gap from every center already
// placed. This is the same simple-sequential-inhibition technique and
// center-out traversal order the teacher package used for dot-pattern
// generation (SSI1/SSI2 in its sparse.go), retargeted here at placing
// coarse cluster centers instead of rendering dense point fields — at
// cluster-center counts (tens, not thousands) the O(n^2) acceptance check
// the teacher's poisson.go fell back to for large radii never matters.
func placeCenters(seed uint32, dim int, n int, gap float64) [][3]float64 {
	if n <= 0 {
		return nil
	}
	centers := make([][3]float64, 0, n)
	gap2 := gap * gap

	tryCell := func(ix, iy, iz int) {
		if len(centers) >= n {
			return
		}
		h := uint64(ix)*0x9e3779b97f4a7c15 ^ uint64(iy)*0xc2b2ae3d27d4eb4f ^ uint64(iz)*0x165667b19e3779f9
		jx := uniformSigned(seed, h)
		jy := uniformSigned(seed^1, h)
		cx := (float64(ix) + jx) * gap
		cy := (float64(iy) + jy) * gap
		cz := 0.0
		if dim == 3 {
			jz := uniformSigned(seed^2, h)
			cz = (float64(iz) + jz) * gap
		}
		for _, c := range centers {
			dx, dy, dz := cx-c[0], cy-c[1], cz-c[2]
			if dx*dx+dy*dy+dz*dz < gap2 {
				return
			}
		}
		centers = append(centers, [3]float64{cx, cy, cz})
	}

	for r := 0; len(centers) < n && r < 4096; r++ {
		if dim != 3 {
			ringXY(r, func(ix, iy int) { tryCell(ix, iy, 0) })
			continue
		}
		ringXYZ(r, tryCell)
	}
	return centers
}

// ringXY visits every (ix, iy) on the square ring of Chebyshev radius r,
// center-out (r=0 is the single origin cell).
func ringXY(r int, visit func(ix, iy int)) {
	if r == 0 {
		visit(0, 0)
		return
	}
	for ix := -r; ix <= r; ix++ {
		visit(ix, -r)
		visit(ix, r)
	}
	for iy := -r + 1; iy <= r-1; iy++ {
		visit(-r, iy)
		visit(r, iy)
	}
}

// ringXYZ visits every (ix, iy, iz) on the cube shell of Chebyshev radius r.
func ringXYZ(r int, visit func(ix, iy, iz int)) {
	if r == 0 {
		visit(0, 0, 0)
		return
	}
	for ix := -r; ix <= r; ix++ {
		for iy := -r; iy <= r; iy++ {
			for iz := -r; iz <= r; iz++ {
				if abs(ix) != r && abs(iy) != r && abs(iz) != r {
					continue // interior of the cube, not its shell
				}
				visit(ix, iy, iz)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// mix64 folds a seed and a counter into a well-distributed 64-bit value
// (a splitmix64-style finalizer). It's the PRNG substrate for
// uniformSigned: same seed+counter pair always produces the same mix.
func mix64(seed uint32, x uint64) uint64 {
	h := x + uint64(seed)*0x9e3779b97f4a7c15
	h ^= h >> 30
	h *= 0xbf58476d1ce4e5b9
	h ^= h >> 27
	h *= 0x94d049bb133111eb
	h ^= h >> 31
	return h
}

// uniformSigned returns a deterministic value in [-0.5, 0.5) derived from
// seed and x. It's the one jitter primitive Generate and placeCenters need:
// scaled by 2*spread it jitters a member point around its cluster center or
// scatters a noise point across the bounding box; used bare it nudges a
// cluster center off an integer lattice position.
func uniformSigned(seed uint32, x uint64) float64 {
	h := mix64(seed, x)
	return float64(h>>11)/float64(1<<53) - 0.5
}
