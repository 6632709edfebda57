package recommender

import (
	"fmt"
	"strings"
)

const (
	genericVerdict   = "A solid all-round choice in this category."
	runnerUpEdgeGap  = 10
	tradeoffScoreGap = 10.0
	maxTradeoffs     = 3
)

func buildExplanation(cfg Config, profile Profile, top ScoredTool) string {
	parts := make([]string, 0, 3)
	parts = append(parts, fmt.Sprintf("%s is the strongest fit for %s at %s.",
		top.Name, teamPhrase(cfg, profile.TeamSize), budgetPhrase(cfg, profile.Budget)))

	if len(profile.Priorities) > 0 && cfg.HasCategory(profile.Priorities[0]) {
		topPriority := profile.Priorities[0]
		parts = append(parts, fmt.Sprintf("It scores %d/100 on %s, your top priority.",
			categoryScore(top.Tool, topPriority), cfg.CategoryLabel(topPriority)))
	} else {
		parts = append(parts, "With no ranked priorities, every criterion was weighted equally.")
	}

	verdict := strings.TrimSpace(top.Verdict)
	if verdict == "" {
		verdict = genericVerdict
	}
	parts = append(parts, verdict)
	return strings.Join(parts, " ")
}

// buildRunnerUpNote names the first category where the runner-up beats the
// top pick by more than 10 points; otherwise it is just a close second.
func buildRunnerUpNote(cfg Config, top, runner ScoredTool) string {
	for _, cat := range cfg.Categories {
		diff := categoryScore(runner.Tool, cat.ID) - categoryScore(top.Tool, cat.ID)
		if diff > runnerUpEdgeGap {
			return fmt.Sprintf("%s scores %d points higher on %s, worth a look if that matters more to you.",
				runner.Name, diff, cfg.CategoryLabel(cat.ID))
		}
	}
	return fmt.Sprintf("%s is a close second overall.", runner.Name)
}

// buildTradeoffs covers the ranked tools after the runner-up, up to three.
func buildTradeoffs(top ScoredTool, ranked []ScoredTool) []Tradeoff {
	out := make([]Tradeoff, 0, maxTradeoffs)
	for i := 2; i < len(ranked) && len(out) < maxTradeoffs; i++ {
		tool := ranked[i]
		gap := top.WeightedScore.Total - tool.WeightedScore.Total
		var sentence string
		if gap > tradeoffScoreGap {
			sentence = fmt.Sprintf("Trails %s by %.1f points overall.", top.Name, gap)
		} else {
			sentence = fmt.Sprintf("Scores close to %s overall; the difference comes down to your priorities.", top.Name)
		}
		out = append(out, Tradeoff{Tool: tool.Name, Slug: tool.Slug, Tradeoff: sentence})
	}
	return out
}

func buildBudgetNote(pick ScoredTool) string {
	if pick.Pricing.PerUser <= 0 {
		return fmt.Sprintf("%s is the cheapest qualifying option: it is free.", pick.Name)
	}
	return fmt.Sprintf("%s is the cheapest qualifying option at $%s/user/mo.", pick.Name, formatPrice(pick.Pricing.PerUser))
}

func teamPhrase(cfg Config, teamSize string) string {
	if phrase, ok := cfg.TeamSizePhrases[teamSize]; ok {
		return phrase
	}
	return "your team"
}

func budgetPhrase(cfg Config, budget string) string {
	if phrase, ok := cfg.BudgetPhrases[budget]; ok {
		return phrase
	}
	return "no budget cap"
}

func formatPrice(value float64) string {
	if value == float64(int64(value)) {
		return fmt.Sprintf("%d", int64(value))
	}
	return fmt.Sprintf("%.2f", value)
}
