package genai

import (
	"fmt"
	"strings"

	"github.com/ykhadiri/alkimiya/internal/elements"
)

// detailsPrompt asks for the structured detail payload for one element.
func detailsPrompt(el elements.Element) string {
	return fmt.Sprintf(`Provide detailed information about the chemical element %s (%s).
I need the response in a structured JSON format containing a description (approx 50 words),
a list of 3 common applications, and a short fun or historical fact, each in both French and Arabic.
Use exactly these JSON keys: descriptionFr, descriptionAr, applicationsFr, applicationsAr, funFactFr, funFactAr.`,
		el.NameFr, el.Symbol)
}

// mixPrompt asks the model to resolve an ordered element sequence to a
// compound. Stoichiometry is deliberately ignored: the model picks the most
// plausible compound for the combination, or reports that no notable
// reaction occurs (e.g. for noble gases).
func mixPrompt(els []elements.Element) string {
	symbols := make([]string, len(els))
	for i, el := range els {
		symbols[i] = el.Symbol
	}
	return fmt.Sprintf(`A chemistry student combines these elements in order: %s.
Ignoring exact stoichiometry, identify the best-known real compound these elements could form
(for example H + O gives water). If the combination does not react under standard conditions,
report that instead. Respond in structured JSON with exactly these keys:
success (boolean); on success: formula, nameFr, nameAr, descriptionFr, descriptionAr,
state (e.g. "Liquid", "Gas", "Solid"), color (optional);
on no reaction: errorFr and errorAr explaining briefly why.`,
		strings.Join(symbols, " + "))
}

// detailsSchema is the Gemini response schema for detail requests.
const detailsSchema = `{
  "type": "OBJECT",
  "properties": {
    "descriptionFr": {"type": "STRING", "description": "Scientific description in French (approx 50 words)"},
    "descriptionAr": {"type": "STRING", "description": "Scientific description in Arabic (approx 50 words)"},
    "applicationsFr": {"type": "ARRAY", "items": {"type": "STRING"}, "description": "List of 3 common uses in French"},
    "applicationsAr": {"type": "ARRAY", "items": {"type": "STRING"}, "description": "List of 3 common uses in Arabic"},
    "funFactFr": {"type": "STRING", "description": "A short fun or historical fact in French"},
    "funFactAr": {"type": "STRING", "description": "A short fun or historical fact in Arabic"}
  },
  "required": ["descriptionFr", "descriptionAr", "applicationsFr", "applicationsAr", "funFactFr", "funFactAr"]
}`

// compoundSchema is the Gemini response schema for mixing requests.
const compoundSchema = `{
  "type": "OBJECT",
  "properties": {
    "success": {"type": "BOOLEAN"},
    "nameFr": {"type": "STRING"},
    "nameAr": {"type": "STRING"},
    "formula": {"type": "STRING"},
    "descriptionFr": {"type": "STRING"},
    "descriptionAr": {"type": "STRING"},
    "state": {"type": "STRING"},
    "color": {"type": "STRING"},
    "errorFr": {"type": "STRING"},
    "errorAr": {"type": "STRING"}
  },
  "required": ["success"]
}`
