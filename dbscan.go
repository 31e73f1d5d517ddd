package dbscan

import (
	"fmt"
	"os"
)

// Options configures a Run call beyond the core (eps, minPts) parameters.
type Options struct {
	// TableSize overrides the grid's default bucket count (spec §4.2's
	// init(tableSize, eps)). Zero or negative uses defaultTableSize.
	TableSize int
}

// Run clusters pts in place using the default Options. See RunWithOptions.
func Run(pts *Points, eps float64, minPts int) error {
	return RunWithOptions(pts, eps, minPts, Options{})
}

// RunWithOptions is the driver described in spec §4.5: it validates the
// inputs, initializes every label to Unclassified, builds the grid, and
// grows clusters outward from each unvisited point in index order,
// assigning dense cluster IDs starting at 1.
//
// On an invalid argument it writes a diagnostic to stderr (matching the
// original's observable behavior) and returns an *InvalidArgumentError
// without touching pts.Labels, per spec §7's redesigned error policy.
func RunWithOptions(pts *Points, eps float64, minPts int, opts Options) error {
	if err := validate(pts, eps, minPts); err != nil {
		fmt.Fprintf(os.Stderr, "dbscan: %v\n", err)
		return err
	}

	n := len(pts.X)
	if pts.Labels == nil {
		pts.Labels = make([]int32, n)
	}
	for i := range pts.Labels {
		pts.Labels[i] = Unclassified
	}

	grid := newGrid(opts.TableSize, eps)
	for i := 0; i < n; i++ {
		grid.insert(int32(i), pts.X[i], pts.Y[i], pts.z(i), pts.Dim)
	}

	seedBuf := make([]int32, 0, 256)
	tmpBuf := make([]int32, 0, 256)

	clusterID := int32(1)
	for i := 0; i < n; i++ {
		if pts.Labels[i] != Unclassified {
			continue
		}
		formed, sb, tb := expandCluster(grid, pts, int32(i), clusterID, minPts, seedBuf, tmpBuf)
		seedBuf, tmpBuf = sb, tb
		if formed {
			clusterID++
		}
	}
	return nil
}
