package report

import (
	"testing"

	"diagdoc/internal/plan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPlan_SectionCountAndOrder(t *testing.T) {
	p := &plan.DocumentPlan{Sections: []plan.Section{
		{Title: "Anamnesis"},
		{Title: "Assessment"},
		{Title: "Recommendations"},
	}}

	sink := &memSink{}
	RenderPlan(p, sink)

	var level1 []string
	for _, b := range sink.blocks {
		if b.kind == "heading" && b.level == 1 {
			level1 = append(level1, b.text)
		}
	}
	assert.Equal(t, []string{"Anamnesis", "Assessment", "Recommendations"}, level1)
}

func TestRenderPlan_SectionLayout(t *testing.T) {
	p := &plan.DocumentPlan{Sections: []plan.Section{{
		Title:       "Physical Assessment",
		Description: "Observed during the session.",
		Conclusion:  "Mobility work recommended.",
		Elements: []plan.Element{
			{Type: "p", Content: "Shoulders are uneven."},
		},
		Subsections: []plan.Subsection{{
			Title: "Breathing",
			Elements: []plan.Element{
				{Type: "p", Content: "Chest-dominant pattern."},
			},
		}},
	}}}

	sink := &memSink{}
	RenderPlan(p, sink)

	kinds := make([]string, len(sink.blocks))
	for i, b := range sink.blocks {
		kinds[i] = b.kind
	}
	require.Equal(t, []string{"heading", "paragraph", "paragraph", "heading", "paragraph", "paragraph"}, kinds)

	// Subsection heading is one level below the section heading.
	assert.Equal(t, 1, sink.blocks[0].level)
	assert.Equal(t, 2, sink.blocks[3].level)
	// Conclusion trails the subsections.
	assert.Equal(t, "Mobility work recommended.", sink.blocks[5].text)
}

func TestRenderPlan_ElementsAndSubsectionsBothRender(t *testing.T) {
	p := &plan.DocumentPlan{Sections: []plan.Section{{
		Title:       "Overlap",
		Elements:    []plan.Element{{Type: "p", Content: "direct"}},
		Subsections: []plan.Subsection{{Title: "Nested", Elements: []plan.Element{{Type: "p", Content: "direct"}}}},
	}}}

	sink := &memSink{}
	RenderPlan(p, sink)

	// No deduplication across the two content locations, even when it overlaps.
	assert.Equal(t, []string{"direct", "direct"}, sink.texts("paragraph"))
}

func TestRenderPlan_EmptyPlanIsValid(t *testing.T) {
	sink := &memSink{}
	RenderPlan(&plan.DocumentPlan{}, sink)
	RenderPlan(nil, sink)

	assert.Empty(t, sink.blocks)
}

func TestRenderPlan_TitleOnlySection(t *testing.T) {
	sink := &memSink{}
	RenderPlan(&plan.DocumentPlan{Sections: []plan.Section{{Title: "Empty"}}}, sink)

	require.Len(t, sink.blocks, 1)
	assert.Equal(t, "heading", sink.blocks[0].kind)
}
