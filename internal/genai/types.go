package genai

import (
	"encoding/json"
	"strings"
)

// ElementDetails is the validated detail payload for one element.
type ElementDetails struct {
	DescriptionFr  string   `json:"descriptionFr"`
	DescriptionAr  string   `json:"descriptionAr"`
	ApplicationsFr []string `json:"applicationsFr"`
	ApplicationsAr []string `json:"applicationsAr"`
	FunFactFr      string   `json:"funFactFr"`
	FunFactAr      string   `json:"funFactAr"`
}

// missingFields lists the required detail fields absent from d.
func (d *ElementDetails) missingFields() []string {
	var missing []string
	if strings.TrimSpace(d.DescriptionFr) == "" {
		missing = append(missing, "descriptionFr")
	}
	if strings.TrimSpace(d.DescriptionAr) == "" {
		missing = append(missing, "descriptionAr")
	}
	if len(d.ApplicationsFr) == 0 {
		missing = append(missing, "applicationsFr")
	}
	if len(d.ApplicationsAr) == 0 {
		missing = append(missing, "applicationsAr")
	}
	if strings.TrimSpace(d.FunFactFr) == "" {
		missing = append(missing, "funFactFr")
	}
	if strings.TrimSpace(d.FunFactAr) == "" {
		missing = append(missing, "funFactAr")
	}
	return missing
}

// parseElementDetails validates a raw JSON detail payload at the boundary.
func parseElementDetails(provider string, raw []byte) (*ElementDetails, error) {
	var d ElementDetails
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, upstream(provider, OpDetails, "malformed details payload", err)
	}
	if missing := d.missingFields(); len(missing) > 0 {
		return nil, upstream(provider, OpDetails, "details payload missing required fields: "+strings.Join(missing, ", "), nil)
	}
	return &d, nil
}

// Compound is the discriminated outcome of a mixing request. Success false
// with optional localized reasons is a valid business result, not an error.
type Compound struct {
	Success       bool   `json:"success"`
	NameFr        string `json:"nameFr,omitempty"`
	NameAr        string `json:"nameAr,omitempty"`
	Formula       string `json:"formula,omitempty"`
	DescriptionFr string `json:"descriptionFr,omitempty"`
	DescriptionAr string `json:"descriptionAr,omitempty"`
	State         string `json:"state,omitempty"` // e.g. "Liquid", "Gas"
	Color         string `json:"color,omitempty"` // hex code or generic name
	ErrorFr       string `json:"errorFr,omitempty"`
	ErrorAr       string `json:"errorAr,omitempty"`
}

// parseCompound validates a raw JSON mixing payload at the boundary.
func parseCompound(provider string, raw []byte) (*Compound, error) {
	var c Compound
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, upstream(provider, OpMix, "malformed compound payload", err)
	}
	if c.Success {
		var missing []string
		if strings.TrimSpace(c.Formula) == "" {
			missing = append(missing, "formula")
		}
		if strings.TrimSpace(c.NameFr) == "" {
			missing = append(missing, "nameFr")
		}
		if strings.TrimSpace(c.NameAr) == "" {
			missing = append(missing, "nameAr")
		}
		if strings.TrimSpace(c.DescriptionFr) == "" {
			missing = append(missing, "descriptionFr")
		}
		if strings.TrimSpace(c.DescriptionAr) == "" {
			missing = append(missing, "descriptionAr")
		}
		if strings.TrimSpace(c.State) == "" {
			missing = append(missing, "state")
		}
		if len(missing) > 0 {
			return nil, upstream(provider, OpMix, "compound payload missing required fields: "+strings.Join(missing, ", "), nil)
		}
	}
	return &c, nil
}
