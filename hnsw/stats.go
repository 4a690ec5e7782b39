package hnsw

// LayerStats reports the structural shape of one layer: how many nodes
// participate in it and their total/average out-degree.
type LayerStats struct {
	Layer           int
	NodeCount       int
	ConnectionCount int
	AvgConnections  float64
}

// Stats reports per-layer structural statistics, useful for validating
// degree-bound and connectivity invariants without reaching into package
// internals.
func (idx *Index) Stats() []LayerStats {
	if idx.maxLevel < 0 {
		return nil
	}

	stats := make([]LayerStats, idx.maxLevel+1)
	for layer := range stats {
		stats[layer].Layer = layer
	}

	for _, n := range idx.nodes {
		for layer := 0; layer <= n.level; layer++ {
			stats[layer].NodeCount++
			stats[layer].ConnectionCount += n.Degree(layer)
		}
	}

	for i := range stats {
		if stats[i].NodeCount > 0 {
			stats[i].AvgConnections = float64(stats[i].ConnectionCount) / float64(stats[i].NodeCount)
		}
	}

	return stats
}
