// Package dbscan implements density-based spatial clustering (DBSCAN) for
// 2D and 3D point sets, accelerated by a uniform spatial hash grid.
//
// Run takes parallel coordinate arrays, a neighborhood radius eps, and a
// minimum-neighborhood size minPts, and fills a label array: Noise (0) for
// outliers, or a dense cluster ID (1..K) for points that are part of a
// density-connected cluster.
//
//	pts := &dbscan.Points{X: xs, Y: ys, Dim: 2}
//	if err := dbscan.Run(pts, 1.5, 3); err != nil {
//	    // handle invalid eps/minPts/dim
//	}
package dbscan
