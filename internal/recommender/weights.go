package recommender

// PriorityWeights maps every configured category to its weight. The first
// min(5, len(priorities)) valid entries take the fixed ladder
// 0.25/0.20/0.15/0.10/0.05; every remaining category shares the unassigned
// remainder equally, so the weights always sum to 1.0. Duplicate and unknown
// priority ids are skipped.
func (cfg Config) PriorityWeights(priorities []string) map[string]float64 {
	ranked := make(map[string]float64, len(cfg.RankedWeights))
	taken := 0.0
	for _, id := range priorities {
		if len(ranked) >= len(cfg.RankedWeights) {
			break
		}
		if !cfg.HasCategory(id) {
			continue
		}
		if _, dup := ranked[id]; dup {
			continue
		}
		w := cfg.RankedWeights[len(ranked)]
		ranked[id] = w
		taken += w
	}

	rest := len(cfg.Categories) - len(ranked)
	share := 0.0
	if rest > 0 {
		share = (1 - taken) / float64(rest)
	}

	weights := make(map[string]float64, len(cfg.Categories))
	for _, cat := range cfg.Categories {
		if w, ok := ranked[cat.ID]; ok {
			weights[cat.ID] = w
		} else {
			weights[cat.ID] = share
		}
	}
	return weights
}
