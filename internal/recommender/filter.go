package recommender

// FilterByBudget keeps tools priced at or under the ceiling for the given
// budget band, preserving order. An unknown or empty budget is a no-op, and
// an unpriced tool (perUser 0) always passes. Applied after scoring, so the
// retained tools keep their rank order from the full sorted list.
func FilterByBudget(cfg Config, tools []ScoredTool, budget string) []ScoredTool {
	ceiling, ok := cfg.BudgetCeilings[budget]
	if !ok {
		return tools
	}
	out := make([]ScoredTool, 0, len(tools))
	for _, tool := range tools {
		if tool.Pricing.PerUser <= ceiling {
			out = append(out, tool)
		}
	}
	return out
}
