package llm

import "strings"

// modelAliases are the short names accepted in BANDWISE_*_MODEL variables.
// Anything else is passed to the backend unchanged.
var modelAliases = map[string]string{
	"claude-haiku":      "claude-haiku-4-5-20251001",
	"claude-sonnet":     "claude-sonnet-4-5-20250929",
	"gpt-mini":          "gpt-4o-mini",
	"gpt-4.1-mini":      "gpt-4.1-mini",
	"gemini-flash":      "gemini-2.5-flash",
	"gemini-flash-lite": "gemini-2.5-flash-lite",
	"gemini-pro":        "gemini-2.5-pro",
}

func resolveModel(name string) string {
	if id, ok := modelAliases[name]; ok {
		return id
	}
	return name
}

// ModelCost is USD per million tokens.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost returns the USD cost of the given token counts.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return (float64(inputTokens)*c.InputPerMTok + float64(outputTokens)*c.OutputPerMTok) / 1e6
}

// modelCosts covers the alias targets and backend defaults. Prices from
// models.dev, 2026-02.
var modelCosts = map[string]ModelCost{
	"claude-haiku-4-5-20251001":  {1, 5},
	"claude-sonnet-4-5-20250929": {3, 15},
	"gpt-4o-mini":                {0.15, 0.6},
	"gpt-4.1-mini":               {0.4, 1.6},
	"gemini-2.5-flash":           {0.3, 2.5},
	"gemini-2.5-flash-lite":      {0.1, 0.4},
	"gemini-2.5-pro":             {1.25, 10},
}

// LookupCost returns pricing for a model as reported in a Response. It
// accepts aliases, OpenRouter "vendor/model" IDs and dated snapshots such as
// "gpt-4o-mini-2024-07-18". Unknown models return nil.
func LookupCost(model string) *ModelCost {
	id := resolveModel(model)
	if i := strings.LastIndexByte(id, '/'); i >= 0 {
		id = id[i+1:]
	}
	if c, ok := modelCosts[id]; ok {
		return &c
	}
	best := ""
	for known := range modelCosts {
		if strings.HasPrefix(id, known+"-") && len(known) > len(best) {
			best = known
		}
	}
	if best == "" {
		return nil
	}
	c := modelCosts[best]
	return &c
}
