package report

import "diagdoc/internal/plan"

// RenderPlan walks the plan in order and emits every section to the sink.
// Sections carry content in Elements, in Subsections, or both; both locations
// are rendered without deduplication. An empty plan yields a document with no
// body, which is a valid result.
func RenderPlan(p *plan.DocumentPlan, sink Sink) {
	if p == nil {
		return
	}
	for _, sec := range p.Sections {
		sink.Heading(sec.Title, 1)
		if sec.Description != "" {
			sink.Paragraph(sec.Description)
		}
		for _, el := range sec.Elements {
			RenderElement(el, sink)
		}
		for _, sub := range sec.Subsections {
			sink.Heading(sub.Title, 2)
			for _, el := range sub.Elements {
				RenderElement(el, sink)
			}
		}
		if sec.Conclusion != "" {
			sink.Paragraph(sec.Conclusion)
		}
	}
}
