package recommender

import "testing"

func scoredWithPrice(slug string, price float64) ScoredTool {
	return ScoredTool{Tool: Tool{Slug: slug, Name: slug, Pricing: Pricing{PerUser: price}}}
}

func TestFilterByBudgetInclusiveCeiling(t *testing.T) {
	cfg := DefaultConfig()
	tools := []ScoredTool{
		scoredWithPrice("at-ceiling", 50),
		scoredWithPrice("over", 51),
		scoredWithPrice("free", 0),
		scoredWithPrice("cheap", 12),
	}

	out := FilterByBudget(cfg, tools, "25to50")

	if len(out) != 3 {
		t.Fatalf("expected 3 tools, got %d", len(out))
	}
	for i, slug := range []string{"at-ceiling", "free", "cheap"} {
		if out[i].Slug != slug {
			t.Fatalf("position %d: expected %s, got %s (order must be preserved)", i, slug, out[i].Slug)
		}
	}
}

func TestFilterByBudgetUnknownBandIsNoOp(t *testing.T) {
	cfg := DefaultConfig()
	tools := []ScoredTool{scoredWithPrice("a", 500), scoredWithPrice("b", 1)}

	for _, budget := range []string{"", "whatever"} {
		out := FilterByBudget(cfg, tools, budget)
		if len(out) != len(tools) {
			t.Fatalf("budget %q should be a no-op, got %d tools", budget, len(out))
		}
	}
}

func TestFilterByBudgetOver100KeepsEverything(t *testing.T) {
	cfg := DefaultConfig()
	tools := []ScoredTool{scoredWithPrice("a", 5000)}

	out := FilterByBudget(cfg, tools, "over100")
	if len(out) != 1 {
		t.Fatalf("over100 has no ceiling, expected 1 tool, got %d", len(out))
	}
}
