package recommender

import (
	"math"
	"reflect"
	"testing"
)

func uniformScores(cfg Config, score int) map[string]int {
	scores := make(map[string]int, len(cfg.Categories))
	for _, cat := range cfg.Categories {
		scores[cat.ID] = score
	}
	return scores
}

func TestScoreToolDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	profile := Profile{Priorities: []string{"core_ai", "privacy"}, SensitiveData: true}
	tool := Tool{Slug: "a", Name: "A", Scores: map[string]int{"core_ai": 90, "privacy": 80, "compliance": 85}}
	weights := cfg.PriorityWeights(profile.Priorities)

	first := ScoreTool(cfg, tool, profile, weights)
	second := ScoreTool(cfg, tool, profile, weights)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("scoring must be deterministic: %+v vs %+v", first, second)
	}
}

func TestScoreToolMissingCategoriesDefault(t *testing.T) {
	cfg := DefaultConfig()
	tool := Tool{Slug: "a", Name: "A", Scores: map[string]int{"core_ai": 90}}
	weights := cfg.PriorityWeights(nil)

	result := ScoreTool(cfg, tool, Profile{}, weights)

	// 90*0.1 + 9 * 50*0.1
	if result.Total != 54.0 {
		t.Fatalf("expected total 54.0, got %f", result.Total)
	}
	if result.Details["privacy"].Score != 50 {
		t.Fatalf("missing category must default to 50, got %d", result.Details["privacy"].Score)
	}
	if len(result.Adjustments) != 0 {
		t.Fatalf("no flags set, expected no adjustments, got %v", result.Adjustments)
	}
}

func TestScoreToolNudgeBoundaries(t *testing.T) {
	cfg := DefaultConfig()
	weights := cfg.PriorityWeights(nil)

	cases := []struct {
		name        string
		score       int
		profile     Profile
		wantTotal   float64
		adjustments int
	}{
		{"compliance bonus at 80", 80, Profile{SensitiveData: true}, 85.0, 1},
		{"compliance neutral at 60", 60, Profile{SensitiveData: true}, 60.0, 0},
		{"compliance penalty at 59", 59, Profile{SensitiveData: true}, 49.0, 1},
		{"integration bonus at 80", 80, Profile{APIAccess: true}, 85.0, 1},
		{"integration neutral at 50", 50, Profile{APIAccess: true}, 50.0, 0},
		{"integration penalty at 49", 49, Profile{APIAccess: true}, 39.0, 1},
		{"support bonus at 80", 80, Profile{SupportCritical: true}, 85.0, 1},
		{"support neutral at 60", 60, Profile{SupportCritical: true}, 60.0, 0},
		{"support penalty at 59", 59, Profile{SupportCritical: true}, 49.0, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tool := Tool{Slug: "t", Name: "T", Scores: uniformScores(cfg, tc.score)}
			result := ScoreTool(cfg, tool, tc.profile, weights)
			if math.Abs(result.Total-tc.wantTotal) > 1e-9 {
				t.Fatalf("expected total %f, got %f", tc.wantTotal, result.Total)
			}
			if len(result.Adjustments) != tc.adjustments {
				t.Fatalf("expected %d adjustments, got %v", tc.adjustments, result.Adjustments)
			}
		})
	}
}

func TestScoreToolNudgesStack(t *testing.T) {
	cfg := DefaultConfig()
	weights := cfg.PriorityWeights(nil)
	tool := Tool{Slug: "t", Name: "T", Scores: uniformScores(cfg, 85)}
	profile := Profile{SensitiveData: true, APIAccess: true, SupportCritical: true}

	result := ScoreTool(cfg, tool, profile, weights)
	if result.Total != 100.0 {
		t.Fatalf("three bonuses on a uniform 85 should total 100.0, got %f", result.Total)
	}
	if len(result.Adjustments) != 3 {
		t.Fatalf("expected 3 adjustments, got %v", result.Adjustments)
	}
}

func TestScoreToolRoundsToOneDecimal(t *testing.T) {
	cfg := DefaultConfig()
	weights := cfg.PriorityWeights([]string{"core_ai", "privacy"})
	tool := Tool{Slug: "t", Name: "T", Scores: map[string]int{"core_ai": 90, "privacy": 80, "support": 57}}

	result := ScoreTool(cfg, tool, Profile{}, weights)

	// 90*0.25 + 80*0.20 + 57*0.06875 + 7*50*0.06875 = 66.48125
	if result.Total != 66.5 {
		t.Fatalf("expected total rounded to 66.5, got %f", result.Total)
	}
}
