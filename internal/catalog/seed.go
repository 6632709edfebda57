package catalog

import "context"

// Seed loads a starter catalog into the repo, used for dev and tests when
// no database is configured. Errors on individual upserts abort the seed.
func Seed(ctx context.Context, repo Repo) error {
	for _, tool := range seedTools() {
		if err := repo.Upsert(ctx, tool); err != nil {
			return err
		}
	}
	return nil
}

func seedTools() []Tool {
	return []Tool{
		{
			Slug: "draftwise", Name: "DraftWise", Category: "writing",
			Verdict:      "Consistently strong long-form output with the best revision workflow we tested.",
			PricePerUser: 19,
			Scores: map[string]int{
				"core_ai": 90, "privacy": 72, "compliance": 68, "pricing": 85,
				"integration": 74, "support": 70, "reliability": 88, "safety": 76,
				"transparency": 64, "innovation": 81,
			},
		},
		{
			Slug: "prosepilot", Name: "ProsePilot", Category: "writing",
			Verdict:      "Polished editor integrations, but the free tier is heavily capped.",
			PricePerUser: 29,
			Scores: map[string]int{
				"core_ai": 84, "privacy": 80, "compliance": 82, "pricing": 66,
				"integration": 88, "support": 79, "reliability": 83, "safety": 78,
				"transparency": 71, "innovation": 73,
			},
		},
		{
			Slug: "quillforge", Name: "QuillForge", Category: "writing",
			Verdict:      "Budget pick: fewer templates, solid core drafting.",
			PricePerUser: 9,
			Scores: map[string]int{
				"core_ai": 74, "privacy": 66, "compliance": 55, "pricing": 92,
				"integration": 58, "support": 52, "reliability": 77, "safety": 70,
				"transparency": 60, "innovation": 62,
			},
		},
		{
			Slug: "verbatimai", Name: "Verbatim AI", Category: "writing",
			Verdict:      "Enterprise-grade compliance posture; pricing to match.",
			PricePerUser: 79,
			Scores: map[string]int{
				"core_ai": 81, "privacy": 91, "compliance": 94, "pricing": 48,
				"integration": 84, "support": 89, "reliability": 90, "safety": 88,
				"transparency": 82, "innovation": 68,
			},
		},
		{
			Slug: "codelens", Name: "CodeLens", Category: "coding",
			Verdict:      "Best-in-class code review suggestions with deep IDE hooks.",
			PricePerUser: 24,
			Scores: map[string]int{
				"core_ai": 92, "privacy": 75, "compliance": 70, "pricing": 78,
				"integration": 93, "support": 74, "reliability": 86, "safety": 80,
				"transparency": 69, "innovation": 87,
			},
		},
		{
			Slug: "stubgen", Name: "StubGen", Category: "coding",
			Verdict:      "Test generation is the standout; everything else is average.",
			PricePerUser: 12,
			Scores: map[string]int{
				"core_ai": 76, "privacy": 68, "compliance": 62, "pricing": 86,
				"integration": 72, "support": 58, "reliability": 79, "safety": 73,
				"transparency": 57, "innovation": 75,
			},
		},
		{
			Slug: "pixelmuse", Name: "PixelMuse", Category: "image",
			Verdict:      "The strongest ad-creative generator in this price band.",
			PricePerUser: 35,
			Scores: map[string]int{
				"core_ai": 88, "privacy": 62, "compliance": 58, "pricing": 72,
				"integration": 66, "support": 64, "reliability": 82, "safety": 71,
				"transparency": 55, "innovation": 90,
			},
		},
	}
}
