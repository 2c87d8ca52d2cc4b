package plan

import (
	"encoding/json"
	"fmt"
	"strings"
)

const snippetLen = 100

// Normalize accepts a document plan in any of the shapes the structure
// planner has historically emitted (typed plan, untyped mapping, JSON text,
// fenced JSON text) and produces one canonical DocumentPlan. It checks
// structure only; semantic defects such as ragged table rows are left for the
// renderer to absorb.
func Normalize(raw any) (*DocumentPlan, error) {
	switch v := raw.(type) {
	case nil:
		return nil, ErrPlanMissing
	case *DocumentPlan:
		if v == nil {
			return nil, ErrPlanMissing
		}
		return v, nil
	case DocumentPlan:
		return &v, nil
	case string:
		return normalizeText(v)
	case []byte:
		return normalizeText(string(v))
	case map[string]any:
		return normalizeMapping(v)
	default:
		return nil, &ShapeError{Field: "doc_structure", Reason: fmt.Sprintf("unsupported type %T", raw)}
	}
}

func normalizeText(text string) (*DocumentPlan, error) {
	text = StripFence(text)
	var decoded any
	if err := json.Unmarshal([]byte(text), &decoded); err != nil {
		return nil, &ParseError{Snippet: snippet(text), Err: err}
	}
	m, ok := decoded.(map[string]any)
	if !ok {
		return nil, &ShapeError{Field: "doc_structure", Reason: fmt.Sprintf("expected a JSON object, got %T", decoded)}
	}
	return normalizeMapping(m)
}

func normalizeMapping(m map[string]any) (*DocumentPlan, error) {
	if _, ok := m["sections"]; !ok {
		return nil, &ShapeError{Field: "sections", Reason: "key is required"}
	}
	if err := validateShape(m); err != nil {
		return nil, err
	}

	// Round-trip through JSON to coerce the untyped mapping into the model.
	b, err := json.Marshal(m)
	if err != nil {
		return nil, &ShapeError{Field: "doc_structure", Reason: err.Error()}
	}
	var p DocumentPlan
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, &ShapeError{Field: "doc_structure", Reason: err.Error()}
	}
	return &p, nil
}

// StripFence removes markdown code-block markers (``` or ```json) around a
// model-produced payload. Text without fences is returned trimmed.
func StripFence(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}

func snippet(text string) string {
	if len(text) > snippetLen {
		return text[:snippetLen]
	}
	return text
}
