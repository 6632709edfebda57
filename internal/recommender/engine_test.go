package recommender

import (
	"context"
	"errors"
	"testing"
)

type stubCatalog struct {
	tools []Tool
	err   error
}

func (s stubCatalog) ToolsForCategory(ctx context.Context, category string) ([]Tool, error) {
	return s.tools, s.err
}

type countingRecorder struct {
	calls int
	last  Profile
}

func (r *countingRecorder) RecordSubmission(profile Profile) {
	r.calls++
	r.last = profile
}

// uniformTool scores the same in every category, so with no ranked
// priorities its weighted total equals that score.
func uniformTool(cfg Config, slug string, score int, price float64) Tool {
	return Tool{
		Slug:    slug,
		Name:    slug,
		Scores:  uniformScores(cfg, score),
		Pricing: Pricing{PerUser: price},
	}
}

func TestGenerateHighConfidence(t *testing.T) {
	cfg := DefaultConfig()
	engine := NewEngine(stubCatalog{tools: []Tool{
		uniformTool(cfg, "alpha", 80, 30),
		uniformTool(cfg, "beta", 75, 20),
		uniformTool(cfg, "gamma", 60, 10),
	}}, nil, cfg)

	result, err := engine.Generate(context.Background(), Profile{Category: "writing"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if result.Confidence != ConfidenceHigh {
		t.Fatalf("gap of 5.0 across 3 tools should be high, got %s", result.Confidence)
	}
	if result.TopRecommendation == nil || result.TopRecommendation.Tool.Slug != "alpha" {
		t.Fatalf("expected alpha on top, got %+v", result.TopRecommendation)
	}
	if result.RunnerUp == nil || result.RunnerUp.Tool.Slug != "beta" {
		t.Fatalf("expected beta as runner-up, got %+v", result.RunnerUp)
	}
	if len(result.Tradeoffs) != 1 || result.Tradeoffs[0].Slug != "gamma" {
		t.Fatalf("expected one tradeoff for gamma, got %+v", result.Tradeoffs)
	}
	if result.Tradeoffs[0].Tradeoff != "Trails alpha by 20.0 points overall." {
		t.Fatalf("unexpected tradeoff sentence: %q", result.Tradeoffs[0].Tradeoff)
	}
}

func TestGenerateMediumWhenGapNarrow(t *testing.T) {
	cfg := DefaultConfig()
	engine := NewEngine(stubCatalog{tools: []Tool{
		uniformTool(cfg, "alpha", 80, 30),
		uniformTool(cfg, "beta", 76, 20),
		uniformTool(cfg, "gamma", 60, 10),
	}}, nil, cfg)

	result, err := engine.Generate(context.Background(), Profile{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if result.Confidence != ConfidenceMedium {
		t.Fatalf("gap of 4.0 should be medium, got %s", result.Confidence)
	}
}

func TestGenerateMediumWithTwoTools(t *testing.T) {
	cfg := DefaultConfig()
	engine := NewEngine(stubCatalog{tools: []Tool{
		uniformTool(cfg, "alpha", 80, 30),
		uniformTool(cfg, "beta", 70, 20),
	}}, nil, cfg)

	result, err := engine.Generate(context.Background(), Profile{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if result.Confidence != ConfidenceMedium {
		t.Fatalf("fewer than 3 survivors should cap at medium, got %s", result.Confidence)
	}
	if len(result.Tradeoffs) != 0 {
		t.Fatalf("two tools leave nothing to trade off, got %+v", result.Tradeoffs)
	}
}

func TestGenerateLowWhenBudgetEliminatesEverything(t *testing.T) {
	cfg := DefaultConfig()
	engine := NewEngine(stubCatalog{tools: []Tool{
		uniformTool(cfg, "alpha", 80, 30),
		uniformTool(cfg, "beta", 70, 45),
		uniformTool(cfg, "gamma", 60, 99),
	}}, nil, cfg)

	result, err := engine.Generate(context.Background(), Profile{Budget: "under10", Category: "writing"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if result.Confidence != ConfidenceLow {
		t.Fatalf("zero survivors should be low, got %s", result.Confidence)
	}
	if result.TopRecommendation != nil {
		t.Fatalf("no survivors, expected nil top recommendation")
	}
	if result.Calculation == nil {
		t.Fatalf("calculation must still be present when the filter empties the pool")
	}

	steps := result.Calculation.EliminationSteps
	if len(steps) != 3 {
		t.Fatalf("expected 3 elimination steps, got %+v", steps)
	}
	if steps[0].Step != "Initial pool" || steps[0].Count != 3 {
		t.Fatalf("unexpected initial pool step: %+v", steps[0])
	}
	if steps[1].Step != "Budget filter" || steps[1].Eliminated != 3 || steps[1].Count != 0 {
		t.Fatalf("unexpected budget filter step: %+v", steps[1])
	}
	if steps[2].Step != "Priority weighting" || steps[2].Count != 0 {
		t.Fatalf("unexpected priority weighting step: %+v", steps[2])
	}
}

func TestGenerateOmitsBudgetStepWhenNothingRemoved(t *testing.T) {
	cfg := DefaultConfig()
	engine := NewEngine(stubCatalog{tools: []Tool{
		uniformTool(cfg, "alpha", 80, 5),
		uniformTool(cfg, "beta", 70, 8),
	}}, nil, cfg)

	result, err := engine.Generate(context.Background(), Profile{Budget: "under10"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	steps := result.Calculation.EliminationSteps
	if len(steps) != 2 {
		t.Fatalf("no removals, expected 2 steps, got %+v", steps)
	}
	if steps[0].Step != "Initial pool" || steps[1].Step != "Priority weighting" {
		t.Fatalf("unexpected steps: %+v", steps)
	}
}

func TestGenerateEmptyCatalog(t *testing.T) {
	cfg := DefaultConfig()
	engine := NewEngine(stubCatalog{}, nil, cfg)

	result, err := engine.Generate(context.Background(), Profile{Category: "niche"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if result.Confidence != ConfidenceLow {
		t.Fatalf("empty catalog should be low confidence, got %s", result.Confidence)
	}
	if result.Message == "" {
		t.Fatalf("empty catalog should carry a user-facing message")
	}
	if result.Calculation != nil {
		t.Fatalf("empty catalog should not include a calculation block")
	}
}

func TestGenerateCatalogErrorPropagates(t *testing.T) {
	cfg := DefaultConfig()
	wantErr := errors.New("db down")
	engine := NewEngine(stubCatalog{err: wantErr}, nil, cfg)

	_, err := engine.Generate(context.Background(), Profile{})
	if err == nil || !errors.Is(err, wantErr) {
		t.Fatalf("catalog read errors must propagate, got %v", err)
	}
}

func TestGenerateTieKeepsCatalogOrder(t *testing.T) {
	cfg := DefaultConfig()
	engine := NewEngine(stubCatalog{tools: []Tool{
		uniformTool(cfg, "first", 75, 10),
		uniformTool(cfg, "second", 75, 10),
	}}, nil, cfg)

	result, err := engine.Generate(context.Background(), Profile{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if result.TopRecommendation.Tool.Slug != "first" {
		t.Fatalf("ties must keep catalog order, got top %s", result.TopRecommendation.Tool.Slug)
	}
}

func TestGenerateBudgetAlternativeExcludesTopPick(t *testing.T) {
	cfg := DefaultConfig()
	// Top pick is also the cheapest; the alternative must be a different tool.
	engine := NewEngine(stubCatalog{tools: []Tool{
		uniformTool(cfg, "alpha", 90, 5),
		uniformTool(cfg, "beta", 70, 12),
		uniformTool(cfg, "gamma", 60, 8),
	}}, nil, cfg)

	result, err := engine.Generate(context.Background(), Profile{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if result.BudgetAlternative == nil {
		t.Fatalf("expected a budget alternative")
	}
	if result.BudgetAlternative.Tool.Slug != "gamma" {
		t.Fatalf("expected gamma as cheapest non-top pick, got %s", result.BudgetAlternative.Tool.Slug)
	}
}

func TestGenerateRecordsAnalyticsOnce(t *testing.T) {
	cfg := DefaultConfig()
	recorder := &countingRecorder{}
	engine := NewEngine(stubCatalog{tools: []Tool{uniformTool(cfg, "alpha", 80, 10)}}, recorder, cfg)

	profile := Profile{Category: "writing", Budget: "10to25", Priorities: []string{"core_ai"}}
	if _, err := engine.Generate(context.Background(), profile); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if recorder.calls != 1 {
		t.Fatalf("expected exactly one analytics record, got %d", recorder.calls)
	}
	if recorder.last.Category != "writing" || recorder.last.Budget != "10to25" {
		t.Fatalf("recorded profile mismatch: %+v", recorder.last)
	}
}

func TestGenerateEndToEndWithBudgetFilter(t *testing.T) {
	cfg := DefaultConfig()
	engine := NewEngine(stubCatalog{tools: []Tool{
		uniformTool(cfg, "alpha", 88, 19),
		uniformTool(cfg, "beta", 82, 9),
		uniformTool(cfg, "gamma", 74, 24),
		uniformTool(cfg, "delta", 70, 79),
		uniformTool(cfg, "epsilon", 65, 35),
	}}, nil, cfg)

	result, err := engine.Generate(context.Background(), Profile{
		Category:   "writing",
		Budget:     "10to25",
		Priorities: []string{"core_ai", "pricing"},
		TeamSize:   "small",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	calc := result.Calculation
	if calc == nil {
		t.Fatalf("expected calculation block")
	}
	if calc.ToolsEvaluated != 5 {
		t.Fatalf("expected 5 tools evaluated, got %d", calc.ToolsEvaluated)
	}
	if calc.EliminationSteps[0].Count != 5 {
		t.Fatalf("initial pool must count the fetched tools, got %d", calc.EliminationSteps[0].Count)
	}
	if calc.EliminationSteps[1].Eliminated != 2 {
		t.Fatalf("delta and epsilon exceed the band, expected 2 eliminated, got %d", calc.EliminationSteps[1].Eliminated)
	}
	if result.TopRecommendation.Tool.Slug != "alpha" {
		t.Fatalf("expected alpha on top, got %s", result.TopRecommendation.Tool.Slug)
	}
	if got := calc.InputsUsed.Budget; got != "10to25" {
		t.Fatalf("inputs echo mismatch, got budget %q", got)
	}
}
