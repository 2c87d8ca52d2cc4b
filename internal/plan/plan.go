package plan

import "strings"

// Element type codes as emitted by the structure planner. The short HTML-ish
// codes are the planner's historical wire format and are kept as-is.
const (
	TypeParagraph     = "p"
	TypeUnorderedList = "ul"
	TypeOrderedList   = "ol"
	TypeListItem      = "li"
	TypeTable         = "table"
	TypeQuote         = "quote"
)

// DocumentPlan is the canonical in-memory representation of the report to be
// rendered. Section order is meaningful and preserved end to end.
type DocumentPlan struct {
	Sections []Section `json:"sections"`
}

// Section carries content either directly in Elements (preferred) or in
// Subsections (legacy planner output). Both may coexist and both are rendered.
type Section struct {
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Conclusion  string       `json:"conclusion,omitempty"`
	Elements    []Element    `json:"elements,omitempty"`
	Subsections []Subsection `json:"subsections,omitempty"`
}

type Subsection struct {
	Title    string    `json:"title"`
	Elements []Element `json:"elements,omitempty"`
}

// Element is one renderable unit. The planner's output schema evolved over
// time: structured fields (ListItems, TableData, QuoteText) are the current
// shape, Content holds the legacy markdown-encoded form. Renderers prefer the
// structured field and fall back to Content, so both shapes stay renderable.
type Element struct {
	Type      string     `json:"type"`
	Content   string     `json:"content,omitempty"`
	ListItems []string   `json:"list_items,omitempty"`
	TableData [][]string `json:"table_data,omitempty"`
	QuoteText string     `json:"quote_text,omitempty"`
}

// HeadingLevel returns the level for h1..h6 type codes, or 0 when the element
// is not a heading.
func (e Element) HeadingLevel() int {
	if len(e.Type) != 2 || e.Type[0] != 'h' {
		return 0
	}
	switch e.Type[1] {
	case '1', '2', '3', '4', '5', '6':
		return int(e.Type[1] - '0')
	}
	return 0
}

// Lines splits Content on newlines, discarding blank lines. Used as the
// legacy fallback for list elements.
func (e Element) Lines() []string {
	var out []string
	for _, line := range strings.Split(e.Content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
