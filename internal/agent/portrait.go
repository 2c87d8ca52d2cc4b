package agent

import (
	"context"
	"fmt"
	"strings"

	"diagdoc/internal/session"
)

// PortraitExtractor runs the fact-extraction stage: it derives a flat list of
// client facts from the raw transcript and stores them in state.
type PortraitExtractor struct {
	client  *Client
	prompts *PromptBuilder
}

func NewPortraitExtractor(client *Client) *PortraitExtractor {
	return &PortraitExtractor{client: client, prompts: &PromptBuilder{}}
}

func (e *PortraitExtractor) Extract(ctx context.Context, st *session.State, transcript string) ([]string, error) {
	prompt := e.prompts.BuildPortraitPrompt(transcript)
	text, err := e.client.generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("portrait extraction failed: %w", err)
	}

	facts := ParseFacts(text)
	if len(facts) == 0 {
		return nil, fmt.Errorf("portrait extraction returned no facts")
	}
	for _, fact := range facts {
		st.AppendUnique(session.KeyPersonalData, fact)
	}
	return facts, nil
}

// ParseFacts splits model output into one fact per line, dropping blank lines
// and markdown headings the model sometimes adds despite instructions.
func ParseFacts(text string) []string {
	var facts []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		facts = append(facts, line)
	}
	return facts
}
