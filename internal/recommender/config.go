package recommender

import "math"

// Category is one scoring dimension every catalog tool is rated on.
type Category struct {
	ID    string
	Label string
}

// Config carries the closed category set and the static presets the engine
// scores against. It is immutable and passed explicitly so tests can swap in
// substitute category sets.
type Config struct {
	Categories      []Category
	RankedWeights   []float64
	BudgetCeilings  map[string]float64
	BudgetPhrases   map[string]string
	TeamSizePhrases map[string]string
	Industries      []string
	UseCases        map[string][]string
}

// defaultCategoryScore substitutes for a missing per-category score.
const defaultCategoryScore = 50

// DefaultConfig returns the production category set, weight ladder, and
// budget/team-size bands.
func DefaultConfig() Config {
	return Config{
		Categories: []Category{
			{ID: "core_ai", Label: "Core AI Capability"},
			{ID: "privacy", Label: "Privacy"},
			{ID: "compliance", Label: "Compliance"},
			{ID: "pricing", Label: "Pricing Value"},
			{ID: "integration", Label: "Integration"},
			{ID: "support", Label: "Support"},
			{ID: "reliability", Label: "Reliability"},
			{ID: "safety", Label: "Safety"},
			{ID: "transparency", Label: "Transparency"},
			{ID: "innovation", Label: "Innovation"},
		},
		RankedWeights: []float64{0.25, 0.20, 0.15, 0.10, 0.05},
		BudgetCeilings: map[string]float64{
			"under10": 10,
			"10to25":  25,
			"25to50":  50,
			"50to100": 100,
			"over100": math.Inf(1),
		},
		BudgetPhrases: map[string]string{
			"under10": "under $10/user/mo",
			"10to25":  "$10-25/user/mo",
			"25to50":  "$25-50/user/mo",
			"50to100": "$50-100/user/mo",
			"over100": "over $100/user/mo",
		},
		TeamSizePhrases: map[string]string{
			"solo":       "a solo operator",
			"small":      "a small team",
			"mid":        "a mid-sized team",
			"large":      "a large organization",
			"enterprise": "an enterprise rollout",
		},
		Industries: []string{
			"Healthcare", "Finance", "Legal", "Education", "Technology",
			"Marketing", "Retail", "Manufacturing", "Government", "Nonprofit",
		},
		UseCases: map[string][]string{
			"writing": {"Blog drafts", "Marketing copy", "Technical docs"},
			"coding":  {"Code review", "Autocomplete", "Test generation"},
			"image":   {"Product shots", "Concept art", "Ad creative"},
			"chat":    {"Customer support", "Internal Q&A", "Research"},
		},
	}
}

// HasCategory reports whether id is part of the configured category set.
func (cfg Config) HasCategory(id string) bool {
	for _, cat := range cfg.Categories {
		if cat.ID == id {
			return true
		}
	}
	return false
}

// CategoryLabel returns the display name for a category id, or the id itself
// if it is not configured.
func (cfg Config) CategoryLabel(id string) string {
	for _, cat := range cfg.Categories {
		if cat.ID == id {
			return cat.Label
		}
	}
	return id
}
