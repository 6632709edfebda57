package catalog

import "time"

// Tool is one reviewed AI tool in the catalog.
type Tool struct {
	Slug         string
	Name         string
	Category     string
	Verdict      string
	Scores       map[string]int
	PricePerUser float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
