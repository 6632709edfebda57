package recommender

import (
	"context"
	"fmt"
	"sort"
)

const emptyCatalogMessage = "We don't have enough verified data in this category yet. Browse the full tool directory instead."

// CatalogProvider supplies the tool records to score for a product category.
type CatalogProvider interface {
	ToolsForCategory(ctx context.Context, category string) ([]Tool, error)
}

// AnalyticsRecorder captures submitted profiles, best effort. Implementations
// must never block and never surface failures to the caller.
type AnalyticsRecorder interface {
	RecordSubmission(profile Profile)
}

// Engine produces ranked recommendations from a buyer profile and the tool
// catalog. Every invocation is independent and side-effect-free apart from
// the catalog read and the fire-and-forget analytics write.
type Engine struct {
	Catalog   CatalogProvider
	Analytics AnalyticsRecorder
	Config    Config
}

// NewEngine builds an engine; analytics may be nil.
func NewEngine(catalog CatalogProvider, analytics AnalyticsRecorder, cfg Config) *Engine {
	return &Engine{Catalog: catalog, Analytics: analytics, Config: cfg}
}

// Generate runs the full pipeline: fetch, score, rank, budget-filter,
// classify confidence, and assemble the explanation and elimination trace.
func (e *Engine) Generate(ctx context.Context, profile Profile) (Result, error) {
	if e.Analytics != nil {
		e.Analytics.RecordSubmission(profile)
	}

	tools, err := e.Catalog.ToolsForCategory(ctx, profile.Category)
	if err != nil {
		return Result{}, fmt.Errorf("fetch catalog: %w", err)
	}
	if len(tools) == 0 {
		return Result{Confidence: ConfidenceLow, Message: emptyCatalogMessage}, nil
	}

	weights := e.Config.PriorityWeights(profile.Priorities)

	scored := make([]ScoredTool, 0, len(tools))
	for _, tool := range tools {
		scored = append(scored, ScoredTool{
			Tool:          tool,
			WeightedScore: ScoreTool(e.Config, tool, profile, weights),
		})
	}
	rankTools(scored)

	filtered := FilterByBudget(e.Config, scored, profile.Budget)

	result := Result{
		Confidence: classifyConfidence(filtered),
		Tradeoffs:  []Tradeoff{},
		Calculation: &Calculation{
			InputsUsed: InputsUsed{
				TeamSize:        profile.TeamSize,
				Industry:        profile.Industry,
				Budget:          profile.Budget,
				Priorities:      append([]string{}, profile.Priorities...),
				SensitiveData:   profile.SensitiveData,
				APIAccess:       profile.APIAccess,
				SupportCritical: profile.SupportCritical,
			},
			PriorityWeights:  weights,
			ToolsEvaluated:   len(tools),
			EliminationSteps: buildEliminationSteps(e.Config, profile, len(scored), len(filtered)),
		},
	}

	if len(filtered) == 0 {
		return result, nil
	}

	top := filtered[0]
	result.TopRecommendation = &TopPick{
		Tool:        top,
		Explanation: buildExplanation(e.Config, profile, top),
		Score:       top.WeightedScore.Total,
	}
	if len(filtered) > 1 {
		runner := filtered[1]
		result.RunnerUp = &RunnerUpPick{
			Tool:  runner,
			Note:  buildRunnerUpNote(e.Config, top, runner),
			Score: runner.WeightedScore.Total,
		}
	}
	if alt, ok := cheapestAlternative(filtered, top.Slug); ok {
		result.BudgetAlternative = &BudgetPick{Tool: alt, Note: buildBudgetNote(alt)}
	}
	result.Tradeoffs = buildTradeoffs(top, filtered)

	return result, nil
}

// rankTools sorts by weighted total, descending. The sort is stable, so
// catalog order wins ties.
func rankTools(tools []ScoredTool) {
	sort.SliceStable(tools, func(i, j int) bool {
		return tools[i].WeightedScore.Total > tools[j].WeightedScore.Total
	})
}

func classifyConfidence(filtered []ScoredTool) string {
	switch {
	case len(filtered) == 0:
		return ConfidenceLow
	case len(filtered) >= 3 && filtered[0].WeightedScore.Total-filtered[1].WeightedScore.Total >= 5:
		return ConfidenceHigh
	default:
		return ConfidenceMedium
	}
}

// cheapestAlternative returns the lowest-priced qualifying tool whose slug
// differs from the top pick. Price ties keep rank order.
func cheapestAlternative(filtered []ScoredTool, topSlug string) (ScoredTool, bool) {
	var best ScoredTool
	found := false
	for _, tool := range filtered {
		if tool.Slug == topSlug {
			continue
		}
		if !found || tool.Pricing.PerUser < best.Pricing.PerUser {
			best = tool
			found = true
		}
	}
	return best, found
}

// buildEliminationSteps assembles the transparency trace: the initial pool
// always, the budget filter only when it removed at least one tool, and the
// priority-weighting step always.
func buildEliminationSteps(cfg Config, profile Profile, scoredCount, filteredCount int) []EliminationStep {
	categoryName := profile.Category
	if categoryName == "" {
		categoryName = "all tools"
	}

	steps := []EliminationStep{{
		Step:        "Initial pool",
		Count:       scoredCount,
		Description: fmt.Sprintf("%d tools evaluated in %s", scoredCount, categoryName),
	}}

	if removed := scoredCount - filteredCount; removed > 0 {
		steps = append(steps, EliminationStep{
			Step:        "Budget filter",
			Count:       filteredCount,
			Eliminated:  removed,
			Description: fmt.Sprintf("%d removed for exceeding %s", removed, budgetPhrase(cfg, profile.Budget)),
		})
	}

	steps = append(steps, EliminationStep{
		Step:        "Priority weighting",
		Count:       filteredCount,
		Description: "Remaining tools ranked by priority-weighted score",
	})
	return steps
}
