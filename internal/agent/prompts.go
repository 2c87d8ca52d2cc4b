package agent

import (
	"fmt"
	"strings"
)

// PromptBuilder constructs the prompts for the two model-backed stages.
type PromptBuilder struct{}

func (pb *PromptBuilder) BuildPortraitPrompt(transcript string) string {
	var sb strings.Builder
	sb.WriteString("Role: Expert at building client portraits from diagnostic session transcripts.\n")
	sb.WriteString("Task: Extract MAXIMUM information about the client. Every detail, nuance, and observation matters.\n\n")
	sb.WriteString("Cover all of these categories where the transcript provides material:\n")
	sb.WriteString("- Personal information (name, age, profession, living situation)\n")
	sb.WriteString("- Lifestyle and daily routine\n")
	sb.WriteString("- Nutrition and eating habits\n")
	sb.WriteString("- Physical activity and sports history\n")
	sb.WriteString("- Medical history (conditions, injuries, diagnoses, pain patterns)\n")
	sb.WriteString("- Physical assessment findings (posture, alignment, breathing, mobility tests)\n")
	sb.WriteString("- Emotional and mental state\n")
	sb.WriteString("- Habits and behaviors\n")
	sb.WriteString("- Specific observations from tests, including left/right comparisons\n")
	sb.WriteString("- Implicit information: read between the lines, note patterns and changes over time\n")
	sb.WriteString("- Recommendations mentioned by the trainer\n\n")
	sb.WriteString("Rules: extract every fact no matter how small; include trainer observations, ")
	sb.WriteString("not just client statements; include quantitative data when available; ")
	sb.WriteString("use present tense for current state and past tense for history.\n\n")
	sb.WriteString("Output format: one fact per line. No numbering, no bullets, no headings. ")
	sb.WriteString("Start immediately with facts, no introduction.\n\n")
	sb.WriteString("<transcript>\n")
	sb.WriteString(transcript)
	sb.WriteString("\n</transcript>\n")
	return sb.String()
}

func (pb *PromptBuilder) BuildPlanPrompt(facts []string, structurePrompt string, language string) string {
	var sb strings.Builder
	sb.WriteString("Role: Expert document planner. Task: Create a detailed structure for a diagnostic report from the personal data below.\n\n")
	sb.WriteString("GUIDELINES:\n")
	sb.WriteString("- Prefer placing elements directly in sections rather than using subsections\n")
	sb.WriteString("- Use tables extensively for structured data: personal info, medical history, test results, recommendations\n")
	sb.WriteString("- Use paragraph elements for narrative text, lists for enumerations, quote elements for notable client statements\n")
	sb.WriteString("- Each section needs a clear title and may include a description and a conclusion\n")
	if language != "" {
		fmt.Fprintf(&sb, "- Write all titles and content in language code %q\n", language)
	}
	if structurePrompt != "" {
		sb.WriteString("\nDOCUMENT STRUCTURE REQUIREMENTS:\n")
		sb.WriteString(structurePrompt)
		sb.WriteString("\n")
	}
	sb.WriteString("\nOUTPUT FORMAT: a single JSON object, no commentary. Schema:\n")
	sb.WriteString(`{"sections":[{"title":"...","description":"...","conclusion":"...",` + "\n")
	sb.WriteString(`"elements":[{"type":"p|ul|ol|li|table|quote|h1..h6","content":"...",` + "\n")
	sb.WriteString(`"list_items":["..."],"table_data":[["header",...],["row",...]],"quote_text":"..."}],` + "\n")
	sb.WriteString(`"subsections":[{"title":"...","elements":[...]}]}]}` + "\n")
	sb.WriteString("Prefer list_items over newline-separated content for lists and table_data over markdown tables; the first table_data row is the header row.\n\n")
	sb.WriteString("<personal_data>\n")
	for _, fact := range facts {
		sb.WriteString("- ")
		sb.WriteString(fact)
		sb.WriteString("\n")
	}
	sb.WriteString("</personal_data>\n")
	return sb.String()
}
