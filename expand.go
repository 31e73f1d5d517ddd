package dbscan

// expandCluster grows cluster clusterID breadth-first from seed point p
// (spec §4.4). p must currently be Unclassified. It returns whether a
// cluster was formed, along with the (possibly reallocated) seed and
// scratch buffers for the caller to reuse on the next call.
//
// A point found to be Noise during expansion is promoted to clusterID but
// is never re-enqueued: that's the border-point rule from spec §4.4 — it
// joins the cluster without extending it. When a point is reachable from
// more than one cluster's expansion (only possible through epsilon
// overlap), whichever expansion reaches it first wins, since once its
// label is set it no longer satisfies "Unclassified or Noise" (spec §9).
func expandCluster(g *Grid, pts *Points, p int32, clusterID int32, minPts int, seedBuf, tmpBuf []int32) (formed bool, seed, tmp []int32) {
	seedBuf = g.regionQuery(pts, p, seedBuf)
	if len(seedBuf) < minPts {
		pts.Labels[p] = Noise
		return false, seedBuf, tmpBuf
	}

	for _, idx := range seedBuf {
		pts.Labels[idx] = clusterID
	}
	pts.Labels[p] = clusterID

	for head := 0; head < len(seedBuf); head++ {
		current := seedBuf[head]
		tmpBuf = g.regionQuery(pts, current, tmpBuf)
		if len(tmpBuf) < minPts {
			continue // current is a border point; it doesn't expand further
		}
		for _, q := range tmpBuf {
			switch pts.Labels[q] {
			case Unclassified:
				seedBuf = append(seedBuf, q)
				pts.Labels[q] = clusterID
			case Noise:
				pts.Labels[q] = clusterID // border point promoted, not enqueued
			}
		}
	}
	return true, seedBuf, tmpBuf
}
