package catalog

import "time"

// ToolResponse is the outward-facing representation of a catalog tool. Its
// shape matches what the recommendation engine and widgets consume.
type ToolResponse struct {
	Slug     string         `json:"slug"`
	Name     string         `json:"name"`
	Category string         `json:"category"`
	Verdict  string         `json:"verdict,omitempty"`
	Scores   map[string]int `json:"scores"`
	Pricing  PricingBody    `json:"pricing"`
	Updated  time.Time      `json:"updatedAt"`
}

// PricingBody nests the per-seat price the way the widgets expect.
type PricingBody struct {
	PerUser float64 `json:"perUser"`
}

func toResponse(tool Tool) ToolResponse {
	scores := tool.Scores
	if scores == nil {
		scores = map[string]int{}
	}
	return ToolResponse{
		Slug:     tool.Slug,
		Name:     tool.Name,
		Category: tool.Category,
		Verdict:  tool.Verdict,
		Scores:   scores,
		Pricing:  PricingBody{PerUser: tool.PricePerUser},
		Updated:  tool.UpdatedAt,
	}
}
