package claude

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"firstaidcheck/internal/advisor"
)

func TestNewClaudeAdvisor(t *testing.T) {
	a := NewClaudeAdvisor("sk-test", "claude-3-5-haiku-latest")

	assert.NotNil(t, a.client)
	assert.Equal(t, "claude-3-5-haiku-latest", a.model)
	assert.Implements(t, (*advisor.RestockAdvisor)(nil), a)
}
