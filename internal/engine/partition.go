package engine

import (
	"math"
	"math/rand"
	"sort"

	"trip-planner-service/internal/domain"
)

const (
	// DefaultMinClusters and DefaultMaxClusters bound the geographic
	// partition size before clamping to the POI count.
	DefaultMinClusters = 3
	DefaultMaxClusters = 5

	partitionSeed          = 42
	partitionMaxIterations = 25
)

// PartitionPOIs groups POIs into k geographic clusters on the (lat, lon)
// plane using a self-contained Lloyd's-style iteration with a fixed seed, so
// repeated runs over the same input produce the same partition.
//
// k = clamp(len(pois), minK, maxK). Every POI lands in exactly one cluster;
// degenerate inputs (identical coordinates) may collapse to fewer non-empty
// clusters than k, which callers must tolerate. An empty input returns an
// empty map.
func PartitionPOIs(pois []domain.CandidatePOI, minK, maxK int) map[int][]domain.CandidatePOI {
	if len(pois) == 0 {
		return map[int][]domain.CandidatePOI{}
	}

	k := len(pois)
	if k > maxK {
		k = maxK
	}
	if k < minK {
		k = minK
	}
	if k > len(pois) {
		k = len(pois)
	}

	type point struct{ lat, lon float64 }

	// Seed centroids from a deterministic shuffle of the input.
	rng := rand.New(rand.NewSource(partitionSeed))
	perm := rng.Perm(len(pois))
	centroids := make([]point, k)
	for i := 0; i < k; i++ {
		p := pois[perm[i]]
		centroids[i] = point{lat: p.Lat, lon: p.Lon}
	}

	assignments := make([]int, len(pois))
	for iter := 0; iter < partitionMaxIterations; iter++ {
		changed := false
		for i, poi := range pois {
			best := 0
			bestDist := math.MaxFloat64
			for c, ctr := range centroids {
				dLat := poi.Lat - ctr.lat
				dLon := poi.Lon - ctr.lon
				d := dLat*dLat + dLon*dLon
				if d < bestDist {
					bestDist = d
					best = c
				}
			}
			if assignments[i] != best {
				assignments[i] = best
				changed = true
			}
		}
		if !changed && iter > 0 {
			break
		}

		// Recompute centroids as mean member position. A cluster that lost
		// all members keeps its previous centroid.
		sums := make([]point, k)
		counts := make([]int, k)
		for i, poi := range pois {
			c := assignments[i]
			sums[c].lat += poi.Lat
			sums[c].lon += poi.Lon
			counts[c]++
		}
		for c := 0; c < k; c++ {
			if counts[c] > 0 {
				centroids[c] = point{lat: sums[c].lat / float64(counts[c]), lon: sums[c].lon / float64(counts[c])}
			}
		}
	}

	clusters := make(map[int][]domain.CandidatePOI, k)
	for i, poi := range pois {
		clusters[assignments[i]] = append(clusters[assignments[i]], poi)
	}
	return clusters
}

// RankClusters orders cluster ids by the summed score of their members,
// descending. Ties break on the numeric cluster id ascending so consumers
// see a deterministic order.
func RankClusters(clusters map[int][]domain.CandidatePOI, scores map[string]float64) []int {
	ids := make([]int, 0, len(clusters))
	totals := make(map[int]float64, len(clusters))
	for id, members := range clusters {
		ids = append(ids, id)
		var sum float64
		for _, poi := range members {
			sum += scores[poi.ID]
		}
		totals[id] = sum
	}

	sort.Slice(ids, func(i, j int) bool {
		if totals[ids[i]] != totals[ids[j]] {
			return totals[ids[i]] > totals[ids[j]]
		}
		return ids[i] < ids[j]
	})
	return ids
}
