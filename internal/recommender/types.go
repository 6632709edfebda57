package recommender

// Profile is the buyer's submitted inputs. All fields are optional; missing
// values degrade to defaults rather than erroring.
type Profile struct {
	TeamSize        string   `json:"teamSize,omitempty"`
	Industry        string   `json:"industry,omitempty"`
	Budget          string   `json:"budget,omitempty"`
	Priorities      []string `json:"priorities"`
	SensitiveData   bool     `json:"sensitiveData,omitempty"`
	APIAccess       bool     `json:"apiAccess,omitempty"`
	SupportCritical bool     `json:"supportCritical,omitempty"`
	UseCases        []string `json:"useCases,omitempty"`
	Category        string   `json:"category,omitempty"`
}

// Pricing is the per-seat monthly price of a tool. Zero means free.
type Pricing struct {
	PerUser float64 `json:"perUser"`
}

// Tool is a catalog record as seen by the engine: read-only input.
type Tool struct {
	Slug    string         `json:"slug"`
	Name    string         `json:"name"`
	Verdict string         `json:"verdict,omitempty"`
	Scores  map[string]int `json:"scores"`
	Pricing Pricing        `json:"pricing"`
}

// CategoryDetail records how one category contributed to a tool's total.
type CategoryDetail struct {
	Score        int     `json:"score"`
	Weight       float64 `json:"weight"`
	Contribution float64 `json:"contribution"`
}

// Adjustment is a bonus or penalty applied on top of the weighted sum.
type Adjustment struct {
	Name  string  `json:"name"`
	Delta float64 `json:"delta"`
}

// WeightedScore is the full scoring trace for one tool. Total is a pure
// function of the tool's scores, its price, and the profile.
type WeightedScore struct {
	Total       float64                   `json:"total"`
	Details     map[string]CategoryDetail `json:"details"`
	Adjustments []Adjustment              `json:"adjustments,omitempty"`
}

// ScoredTool is a catalog tool with its weighted score attached.
type ScoredTool struct {
	Tool
	WeightedScore WeightedScore `json:"weightedScore"`
}

// Confidence levels for a generated recommendation.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// TopPick is the highest-ranked tool with its explanation.
type TopPick struct {
	Tool        ScoredTool `json:"tool"`
	Explanation string     `json:"explanation"`
	Score       float64    `json:"score"`
}

// RunnerUpPick is the second-ranked tool with a comparison note.
type RunnerUpPick struct {
	Tool  ScoredTool `json:"tool"`
	Note  string     `json:"note"`
	Score float64    `json:"score"`
}

// BudgetPick is the cheapest qualifying tool distinct from the top pick.
type BudgetPick struct {
	Tool ScoredTool `json:"tool"`
	Note string     `json:"note"`
}

// Tradeoff is a one-sentence comparison for a lower-ranked tool.
type Tradeoff struct {
	Tool     string `json:"tool"`
	Slug     string `json:"slug"`
	Tradeoff string `json:"tradeoff"`
}

// EliminationStep is one user-facing entry in the ranking transparency trace.
type EliminationStep struct {
	Step        string `json:"step"`
	Count       int    `json:"count"`
	Eliminated  int    `json:"eliminated,omitempty"`
	Description string `json:"description"`
}

// InputsUsed echoes the profile fields that influenced the ranking.
type InputsUsed struct {
	TeamSize        string   `json:"teamSize,omitempty"`
	Industry        string   `json:"industry,omitempty"`
	Budget          string   `json:"budget,omitempty"`
	Priorities      []string `json:"priorities"`
	SensitiveData   bool     `json:"sensitiveData"`
	APIAccess       bool     `json:"apiAccess"`
	SupportCritical bool     `json:"supportCritical"`
}

// Calculation is the transparency block attached to every recommendation.
type Calculation struct {
	InputsUsed       InputsUsed         `json:"inputsUsed"`
	PriorityWeights  map[string]float64 `json:"priorityWeights"`
	ToolsEvaluated   int                `json:"toolsEvaluated"`
	EliminationSteps []EliminationStep  `json:"eliminationSteps"`
}

// Result is a complete recommendation. Message is set only on the
// empty-catalog degenerate path, where Calculation stays nil.
type Result struct {
	Confidence        string        `json:"confidence"`
	Message           string        `json:"message,omitempty"`
	TopRecommendation *TopPick      `json:"topRecommendation"`
	RunnerUp          *RunnerUpPick `json:"runnerUp"`
	BudgetAlternative *BudgetPick   `json:"budgetAlternative"`
	Tradeoffs         []Tradeoff    `json:"tradeoffs"`
	Calculation       *Calculation  `json:"calculation"`
}
