package report

import (
	"strings"

	"diagdoc/internal/plan"
)

// RenderElement maps one plan element to document blocks on the sink. It
// never fails: the plan is machine-generated, so malformed or partial
// elements degrade to the closest renderable form instead of aborting the
// run. Structured fields win over legacy markdown-encoded content.
func RenderElement(el plan.Element, sink Sink) {
	if level := el.HeadingLevel(); level > 0 {
		sink.Heading(el.Content, level)
		return
	}

	switch el.Type {
	case plan.TypeParagraph:
		sink.Paragraph(el.Content)
	case plan.TypeUnorderedList:
		for _, item := range listItems(el) {
			sink.BulletItem(item)
		}
	case plan.TypeOrderedList:
		for _, item := range listItems(el) {
			sink.NumberedItem(item)
		}
	case plan.TypeListItem:
		// Legacy singleton list entry. Always numbered, matching the
		// planner's historical output.
		sink.NumberedItem(el.Content)
	case plan.TypeTable:
		renderTable(el, sink)
	case plan.TypeQuote:
		text := el.QuoteText
		if text == "" {
			text = el.Content
		}
		if text != "" {
			sink.Quote(text)
		}
	default:
		// Unknown element kinds render as plain paragraphs so future planner
		// output cannot abort rendering.
		sink.Paragraph(el.Content)
	}
}

func listItems(el plan.Element) []string {
	if len(el.ListItems) > 0 {
		return el.ListItems
	}
	return el.Lines()
}

func renderTable(el plan.Element, sink Sink) {
	if len(el.TableData) > 0 {
		cols := 0
		for _, row := range el.TableData {
			if len(row) > cols {
				cols = len(row)
			}
		}
		if cols == 0 {
			return
		}
		sink.Table(el.TableData, cols)
		return
	}

	rows := parseMarkdownTable(el.Content)
	if len(rows) == 0 {
		return
	}
	sink.Table(rows, len(rows[0]))
}

// parseMarkdownTable splits pipe-delimited markdown into cell rows. The first
// row fixes the column count; the sink drops cells beyond it.
func parseMarkdownTable(content string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(strings.TrimSpace(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var cells []string
		for _, cell := range strings.Split(strings.Trim(line, "|"), "|") {
			cells = append(cells, strings.TrimSpace(cell))
		}
		rows = append(rows, cells)
	}
	return rows
}
