// Package claude implements advisor.RestockAdvisor on the Anthropic
// Messages API.
package claude

import (
	"context"
	"fmt"

	anthropic "github.com/liushuangls/go-anthropic/v2"

	"firstaidcheck/internal/advisor"
	"firstaidcheck/internal/domain"
)

type ClaudeAdvisor struct {
	client *anthropic.Client
	model  string
}

func NewClaudeAdvisor(apiKey, model string) *ClaudeAdvisor {
	return &ClaudeAdvisor{
		client: anthropic.NewClient(apiKey),
		model:  model,
	}
}

func (a *ClaudeAdvisor) Advise(ctx context.Context, check *domain.Check, findings []advisor.Finding) (*advisor.Advice, error) {
	resp, err := a.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model: anthropic.Model(a.model),
		// A full nine-item box report needs well under 1024 tokens of
		// suggestions.
		MaxTokens: 1024,
		Messages: []anthropic.Message{
			anthropic.NewUserTextMessage(advisor.BuildPrompt(check, findings)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call claude: %w", err)
	}

	var text string
	for _, block := range resp.Content {
		if block.Type == anthropic.MessagesContentTypeText && block.Text != nil {
			text = *block.Text
			break
		}
	}

	return &advisor.Advice{
		Suggestions: advisor.ParseResponse(text),
		RawResponse: text,
	}, nil
}
