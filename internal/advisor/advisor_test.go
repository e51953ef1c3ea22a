package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"firstaidcheck/internal/domain"
)

func TestBuildPrompt(t *testing.T) {
	check := &domain.Check{BoxName: "Cafe", CheckDate: "2025-06-01", GeneralNotes: "quarterly"}
	findings := []Finding{
		{Name: "Safety Pins", StandardQuantity: 6, CurrentQuantity: 2, StockStatus: domain.StockLow, ExpiryStatus: domain.ExpiryNone},
		{Name: "Assorted Sterile Plasters", StandardQuantity: 20, CurrentQuantity: 20, ExpiryDate: "2024-01-01", StockStatus: domain.StockOK, ExpiryStatus: domain.ExpiryExpired},
	}

	prompt := BuildPrompt(check, findings)

	assert.Contains(t, prompt, "Box: Cafe")
	assert.Contains(t, prompt, "Check date: 2025-06-01")
	assert.Contains(t, prompt, "Notes: quarterly")
	assert.Contains(t, prompt, "Safety Pins | standard 6 | counted 2 | LOW_STOCK | expires n/a | NONE")
	assert.Contains(t, prompt, "expires 2024-01-01 | EXPIRED")
}

func TestParseResponse(t *testing.T) {
	raw := `Here are the restock actions:

Safety Pins | buy 4 more
Assorted Sterile Plasters | replace, expired 2024-01-01
`
	suggestions := ParseResponse(raw)

	assert.Equal(t, []Suggestion{
		{Item: "Safety Pins", Action: "buy 4 more"},
		{Item: "Assorted Sterile Plasters", Action: "replace, expired 2024-01-01"},
	}, suggestions)
}

func TestParseResponseEmpty(t *testing.T) {
	assert.Empty(t, ParseResponse("All items are fully stocked, nothing to do."))
	assert.Empty(t, ParseResponse(""))
}
