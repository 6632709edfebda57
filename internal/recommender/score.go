package recommender

import "math"

// Bonus/penalty thresholds for the boolean profile nudges. Each nudge is
// independent and additive; the boundary value itself earns neither.
const (
	nudgeBonus   = 5.0
	nudgePenalty = -10.0

	bonusThreshold          = 80
	compliancePenaltyBelow  = 60
	integrationPenaltyBelow = 50
	supportPenaltyBelow     = 60
)

// ScoreTool computes a tool's weighted total and the full contribution
// trace. Pure function of its inputs: no hidden state, no randomness.
func ScoreTool(cfg Config, tool Tool, profile Profile, weights map[string]float64) WeightedScore {
	details := make(map[string]CategoryDetail, len(cfg.Categories))
	total := 0.0
	for _, cat := range cfg.Categories {
		score := categoryScore(tool, cat.ID)
		w := weights[cat.ID]
		contribution := float64(score) * w
		details[cat.ID] = CategoryDetail{Score: score, Weight: w, Contribution: contribution}
		total += contribution
	}

	var adjustments []Adjustment
	apply := func(name string, delta float64) {
		adjustments = append(adjustments, Adjustment{Name: name, Delta: delta})
		total += delta
	}

	if profile.SensitiveData {
		compliance := categoryScore(tool, "compliance")
		if compliance >= bonusThreshold {
			apply("compliance_bonus", nudgeBonus)
		} else if compliance < compliancePenaltyBelow {
			apply("compliance_penalty", nudgePenalty)
		}
	}
	if profile.APIAccess {
		integration := categoryScore(tool, "integration")
		if integration >= bonusThreshold {
			apply("integration_bonus", nudgeBonus)
		} else if integration < integrationPenaltyBelow {
			apply("integration_penalty", nudgePenalty)
		}
	}
	if profile.SupportCritical {
		support := categoryScore(tool, "support")
		if support >= bonusThreshold {
			apply("support_bonus", nudgeBonus)
		} else if support < supportPenaltyBelow {
			apply("support_penalty", nudgePenalty)
		}
	}

	total = math.Round(total*10) / 10
	return WeightedScore{Total: total, Details: details, Adjustments: adjustments}
}

func categoryScore(tool Tool, category string) int {
	if score, ok := tool.Scores[category]; ok {
		return score
	}
	return defaultCategoryScore
}
