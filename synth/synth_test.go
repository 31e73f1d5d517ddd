package synth

import (
	"testing"

	"github.com/kelindar/dbscan"
	"github.com/stretchr/testify/assert"
)

func TestGenerateCounts(t *testing.T) {
	cfg := Config{
		Seed:             1,
		Dim:              2,
		Clusters:         4,
		PointsPerCluster: 10,
		CenterGap:        20,
		MemberSpread:     1,
		NoisePoints:      5,
		Bound:            200,
	}
	pts := Generate(cfg)
	assert.Len(t, pts.X, 4*10+5)
	assert.Len(t, pts.Y, 4*10+5)
	assert.Nil(t, pts.Z)
	assert.Equal(t, 2, pts.Dim)
}

func TestGenerate3D(t *testing.T) {
	pts := Generate(Config{
		Seed: 2, Dim: 3, Clusters: 3, PointsPerCluster: 5,
		CenterGap: 10, MemberSpread: 1, NoisePoints: 0, Bound: 50,
	})
	assert.Len(t, pts.Z, 15)
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := Config{
		Seed: 99, Dim: 2, Clusters: 5, PointsPerCluster: 8,
		CenterGap: 15, MemberSpread: 0.5, NoisePoints: 10, Bound: 100,
	}
	a := Generate(cfg)
	b := Generate(cfg)
	assert.Equal(t, a.X, b.X)
	assert.Equal(t, a.Y, b.Y)
}

// TestGenerateProducesClustersDBSCANRecovers confirms the fixture is
// actually clusterable: running dbscan.Run against it recovers at least one
// and at most the requested number of clusters, and not every point is
// Noise.
func TestGenerateProducesClustersDBSCANRecovers(t *testing.T) {
	cfg := Config{
		Seed:             5,
		Dim:              2,
		Clusters:         6,
		PointsPerCluster: 20,
		CenterGap:        20,
		MemberSpread:     1.0,
		NoisePoints:      10,
		Bound:            300,
	}
	pts := Generate(cfg)
	err := dbscan.Run(pts, 3, 5)
	assert.NoError(t, err)

	seen := map[int32]bool{}
	noiseCount := 0
	for _, l := range pts.Labels {
		if l == dbscan.Noise {
			noiseCount++
		} else {
			seen[l] = true
		}
	}
	assert.LessOrEqual(t, len(seen), cfg.Clusters)
	assert.Greater(t, len(seen), 0)
	assert.Less(t, noiseCount, len(pts.Labels))
}

func TestPlaceCentersRespectsGap(t *testing.T) {
	centers := placeCenters(1, 2, 12, 5)
	assert.Len(t, centers, 12)
	for i := range centers {
		for j := range centers {
			if i == j {
				continue
			}
			dx := centers[i][0] - centers[j][0]
			dy := centers[i][1] - centers[j][1]
			d2 := dx*dx + dy*dy
			assert.GreaterOrEqual(t, d2, 5*5-1e-9)
		}
	}
}

func TestPlaceCentersZero(t *testing.T) {
	assert.Nil(t, placeCenters(1, 2, 0, 5))
}
