// Package advisor produces restock suggestions for a completed check from
// an AI model. The feature is optional; the service runs without it.
package advisor

import (
	"context"
	"fmt"
	"strings"

	"firstaidcheck/internal/domain"
)

// Prompt is the instruction sent ahead of the check report.
const Prompt = `You are reviewing a first aid box inspection. Below is the box,
the check date, and one line per catalog item with its standard quantity,
counted quantity, stock status, expiry date and expiry status.
Suggest restock actions only for items that need attention (low stock,
expired, or expiring soon). Respond in plain text, one suggestion per line,
format: item name | action`

// Finding is one annotated item of a check, as handed to an advisor.
type Finding struct {
	Name             string
	StandardQuantity int
	CurrentQuantity  int
	ExpiryDate       string
	StockStatus      domain.StockStatus
	ExpiryStatus     domain.ExpiryStatus
}

// Suggestion is one restock action proposed by the model.
type Suggestion struct {
	Item   string `json:"item_name"`
	Action string `json:"action"`
}

// Advice is the parsed model output plus the raw text for debugging.
type Advice struct {
	Suggestions []Suggestion `json:"suggestions"`
	RawResponse string       `json:"-"`
}

// RestockAdvisor turns an annotated check into restock suggestions.
type RestockAdvisor interface {
	Advise(ctx context.Context, check *domain.Check, findings []Finding) (*Advice, error)
}

// BuildPrompt renders the full prompt for one check.
func BuildPrompt(check *domain.Check, findings []Finding) string {
	var b strings.Builder
	b.WriteString(Prompt)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Box: %s\nCheck date: %s\n", check.BoxName, check.CheckDate)
	if check.GeneralNotes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", check.GeneralNotes)
	}
	b.WriteString("\nItems:\n")
	for _, f := range findings {
		expiry := f.ExpiryDate
		if expiry == "" {
			expiry = "n/a"
		}
		fmt.Fprintf(&b, "%s | standard %d | counted %d | %s | expires %s | %s\n",
			f.Name, f.StandardQuantity, f.CurrentQuantity, f.StockStatus, expiry, f.ExpiryStatus)
	}
	return b.String()
}

// ParseResponse parses model output in format: item name | action.
// One suggestion per line; preamble lines without a separator are skipped.
func ParseResponse(raw string) []Suggestion {
	lines := strings.Split(raw, "\n")
	suggestions := make([]Suggestion, 0)

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || !strings.Contains(line, "|") {
			continue
		}

		parts := strings.SplitN(line, "|", 2)
		item := strings.TrimSpace(parts[0])
		action := strings.TrimSpace(parts[1])
		if item == "" || action == "" {
			continue
		}

		suggestions = append(suggestions, Suggestion{Item: item, Action: action})
	}

	return suggestions
}
