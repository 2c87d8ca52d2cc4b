package agent

import (
	"context"
	"fmt"
	"log"

	"diagdoc/internal/plan"
	"diagdoc/internal/session"
)

// StructurePlanner runs the planning stage: it asks the model for a document
// plan over the extracted facts and stores the result in state under
// doc_structure.
type StructurePlanner struct {
	client  *Client
	prompts *PromptBuilder
}

func NewStructurePlanner(client *Client) *StructurePlanner {
	return &StructurePlanner{client: client, prompts: &PromptBuilder{}}
}

// Plan stores the normalized plan when the model output parses, and the raw
// model text otherwise. The renderer's normalizer is the single arbiter of
// plan shape, so a malformed response still reaches it with full diagnostics.
func (p *StructurePlanner) Plan(ctx context.Context, st *session.State, structurePrompt string) error {
	facts, ok := st.Get(session.KeyPersonalData)
	if !ok {
		return fmt.Errorf("personal_data not found in state: run the portrait extractor first")
	}
	factList, ok := facts.([]string)
	if !ok || len(factList) == 0 {
		return fmt.Errorf("personal_data is empty")
	}

	prompt := p.prompts.BuildPlanPrompt(factList, structurePrompt, st.GetString(session.KeyLanguage))
	raw, err := p.client.generate(ctx, prompt)
	if err != nil {
		return fmt.Errorf("structure planning failed: %w", err)
	}

	if parsed, err := plan.Normalize(raw); err == nil {
		st.Set(session.KeyDocStructure, parsed)
	} else {
		log.Printf("Warning: planner output did not normalize (%v), storing raw text", err)
		st.Set(session.KeyDocStructure, raw)
	}
	return nil
}
