package usage

// modelPricing holds per-model pricing in USD. Text models are priced per
// 1M tokens; speech models per 1M input characters.
type modelPricing struct {
	InputPerMillion  float64
	OutputPerMillion float64
	PerMillionChars  float64
}

// priceTable maps model identifiers to their pricing.
var priceTable = map[string]modelPricing{
	// Google models
	"gemini-2.5-flash":             {InputPerMillion: 0.30, OutputPerMillion: 2.50},
	"gemini-2.0-flash":             {InputPerMillion: 0.10, OutputPerMillion: 0.40},
	"gemini-2.5-flash-preview-tts": {PerMillionChars: 10.00},

	// OpenAI models
	"gpt-4o":          {InputPerMillion: 2.50, OutputPerMillion: 10.00},
	"gpt-4o-mini":     {InputPerMillion: 0.15, OutputPerMillion: 0.60},
	"gpt-4o-mini-tts": {PerMillionChars: 12.00},
	"tts-1":           {PerMillionChars: 15.00},
}

// EstimateCost returns the estimated cost in USD for one call. Returns 0
// if the model is not in the price table.
func EstimateCost(model string, inputTokens, outputTokens, characters int) float64 {
	pricing, ok := priceTable[model]
	if !ok {
		return 0
	}

	cost := float64(inputTokens) / 1_000_000.0 * pricing.InputPerMillion
	cost += float64(outputTokens) / 1_000_000.0 * pricing.OutputPerMillion
	cost += float64(characters) / 1_000_000.0 * pricing.PerMillionChars
	return cost
}
