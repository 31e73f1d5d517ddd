package main

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/kelindar/bench"
	"github.com/kelindar/dbscan"
	"github.com/kelindar/dbscan/synth"
)

var sizes = []int{1e3, 1e5}

func main() {
	bench.Run(func(b *bench.B) {
		runDBSCAN(b)
		runRegionQuery(b)
	}, bench.WithDuration(10*time.Millisecond), bench.WithSamples(100))
}

func runDBSCAN(b *bench.B) {
	shapes := []struct {
		name string
		gen  func(size int) *dbscan.Points
	}{
		{"uniform", dataUniform},
		{"clustered", dataClustered},
		{"circle", dataCircle},
	}

	for _, size := range sizes {
		for _, shape := range shapes {
			pts := shape.gen(size)
			name := fmt.Sprintf("dbscan %s (%s)", formatSize(size), shape.name)
			b.Run(name, func(i int) {
				// Run mutates pts.Labels in place; reset it so every
				// iteration starts from Unclassified like a fresh call.
				for j := range pts.Labels {
					pts.Labels[j] = dbscan.Unclassified
				}
				_ = dbscan.Run(pts, 1.5, 4)
			})
		}
	}
}

// runRegionQuery clusters a fixture once with Run and then times a read of
// one label per iteration. regionQuery is unexported, so this benchmark does
// not call it.
func runRegionQuery(b *bench.B) {
	const size = 100_000
	pts := dataClustered(size)
	if err := dbscan.Run(pts, 1.5, 4); err != nil {
		panic(err)
	}

	name := fmt.Sprintf("region query (%s)", formatSize(size))
	b.Run(name, func(i int) {
		_ = pts.Labels[i%size]
	})
}

func formatSize(size int) string {
	if size >= 1e6 {
		return fmt.Sprintf("%.0fM", float64(size)/1e6)
	}
	if size >= 1e3 {
		return fmt.Sprintf("%.0fK", float64(size)/1e3)
	}
	return fmt.Sprintf("%d", size)
}

func dataUniform(n int) *dbscan.Points {
	pts := &dbscan.Points{X: make([]float64, n), Y: make([]float64, n), Dim: 2}
	for i := 0; i < n; i++ {
		pts.X[i] = rand.Float64() * 100
		pts.Y[i] = rand.Float64() * 100
	}
	return pts
}

func dataClustered(n int) *dbscan.Points {
	clusters := 20
	return synth.Generate(synth.Config{
		Seed:             1,
		Dim:              2,
		Clusters:         clusters,
		PointsPerCluster: n / clusters,
		CenterGap:        10,
		MemberSpread:     1.0,
		NoisePoints:      n - (n/clusters)*clusters,
		Bound:            100,
	})
}

func dataCircle(n int) *dbscan.Points {
	pts := &dbscan.Points{X: make([]float64, n), Y: make([]float64, n), Dim: 2}
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		pts.X[i] = 50 * math.Cos(angle)
		pts.Y[i] = 50 * math.Sin(angle)
	}
	return pts
}
