package cluster

import (
	"math"
	"math/rand"
	"sort"

	montstats "github.com/montanaflynn/stats"

	"guesslab/domain/core"
	"guesslab/domain/dataset"
	"guesslab/internal/logging"
)

// maxIterations caps the assignment/update loop when it does not converge
const maxIterations = 300

// Labeler partitions a numeric column into k groups by one-dimensional
// k-means and appends the group labels to the dataset. Labels are arbitrary
// identifiers in [0,k): only co-membership is meaningful, and there is no
// label identity across calls on different data.
type Labeler struct {
	log *logging.Logger
}

// NewLabeler creates a cluster labeler
func NewLabeler(log *logging.Logger) *Labeler {
	if log == nil {
		log = logging.Default
	}
	return &Labeler{log: log}
}

// ClusterColumn assigns each row a cluster label and writes them to the
// "cluster" column, overwriting it if present. All parameters are validated
// before any mutation, so a failed call leaves the dataset untouched.
// Identical seed, k, and data yield identical labels.
func (l *Labeler) ClusterColumn(ds *dataset.Dataset, column string, k int, seed int64) error {
	if k <= 0 {
		return core.NewInvalidArgumentError("k", "must be >= 1")
	}
	col, err := ds.Column(column)
	if err != nil {
		return err
	}
	values, ok := col.Float64s()
	if !ok {
		return core.NewInvalidArgumentError("column "+column, "is not numeric")
	}
	if k > len(values) {
		return core.NewInvalidArgumentError("k", "exceeds row count")
	}

	labels := kmeans1D(values, k, seed)
	if err := ds.SetColumn(dataset.IntColumn(dataset.ColCluster, labels)); err != nil {
		return err
	}

	l.log.Info("clustering complete: added %q column with %d clusters", dataset.ColCluster, k)
	return nil
}

// kmeans1D runs Lloyd's algorithm on a one-dimensional feature. Initial
// centroids are drawn from the shuffled distinct values, so k equal to the
// row count separates every distinct value into its own cluster.
func kmeans1D(values []float64, k int, seed int64) []int64 {
	rng := rand.New(rand.NewSource(seed))

	uniq := distinctSorted(values)
	centroids := make([]float64, k)
	perm := rng.Perm(len(uniq))
	for i := range centroids {
		centroids[i] = uniq[perm[i%len(uniq)]]
	}

	labels := make([]int64, len(values))
	for iter := 0; iter < maxIterations; iter++ {
		changed := assign(values, centroids, labels)
		if iter > 0 && !changed {
			break
		}

		// Recompute each centroid as the mean of its members; reseed empty
		// clusters to the point farthest from its current centroid.
		for j := range centroids {
			members := make([]float64, 0, len(values))
			for i, v := range values {
				if labels[i] == int64(j) {
					members = append(members, v)
				}
			}
			if len(members) == 0 {
				centroids[j] = farthestPoint(values, centroids, labels)
				continue
			}
			mean, err := montstats.Mean(members)
			if err == nil {
				centroids[j] = mean
			}
		}
	}
	return labels
}

// assign moves every point to its nearest centroid, reporting whether any
// label changed
func assign(values, centroids []float64, labels []int64) bool {
	changed := false
	for i, v := range values {
		best := 0
		bestDist := math.Abs(v - centroids[0])
		for j := 1; j < len(centroids); j++ {
			if d := math.Abs(v - centroids[j]); d < bestDist {
				best, bestDist = j, d
			}
		}
		if labels[i] != int64(best) {
			labels[i] = int64(best)
			changed = true
		}
	}
	return changed
}

// farthestPoint picks the value with the greatest distance to its assigned
// centroid, a standard repair for an emptied cluster
func farthestPoint(values, centroids []float64, labels []int64) float64 {
	best := values[0]
	bestDist := -1.0
	for i, v := range values {
		if d := math.Abs(v - centroids[labels[i]]); d > bestDist {
			best, bestDist = v, d
		}
	}
	return best
}

// distinctSorted returns the unique values in ascending order, so the seeded
// shuffle over them is deterministic
func distinctSorted(values []float64) []float64 {
	seen := make(map[float64]bool, len(values))
	uniq := make([]float64, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			uniq = append(uniq, v)
		}
	}
	sort.Float64s(uniq)
	return uniq
}
