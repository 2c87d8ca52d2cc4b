package report

import (
	"path/filepath"

	"diagdoc/internal/plan"
	"diagdoc/internal/session"
)

// Defaults used when neither the caller nor the state provide a value.
const (
	DefaultOutputName = "diagnostic_report.docx"
	DefaultLanguage   = "uk"
)

// Generate renders the document plan held in state into a DOCX file and
// returns the absolute output path.
//
// outputPath and language may be empty: resolution falls back to the state
// entry, then to the package default. The plan is located exclusively through
// the doc_structure state entry; when it is absent the call fails with
// plan.ErrPlanMissing and nothing is written. On success the only state
// mutations are generated_docx and document_language.
func Generate(st *session.State, outputPath, language string) (string, error) {
	if outputPath == "" {
		outputPath = st.GetString(session.KeyOutputPath)
	}
	if outputPath == "" {
		outputPath = DefaultOutputName
	}
	if language == "" {
		language = st.GetString(session.KeyLanguage)
	}
	if language == "" {
		language = DefaultLanguage
	}

	raw, ok := st.Get(session.KeyDocStructure)
	if !ok {
		return "", plan.ErrPlanMissing
	}
	p, err := plan.Normalize(raw)
	if err != nil {
		return "", err
	}

	sink := NewDocxSink()
	RenderPlan(p, sink)
	if err := sink.Save(outputPath); err != nil {
		return "", err
	}

	abs, err := filepath.Abs(outputPath)
	if err != nil {
		abs = outputPath
	}
	st.Set(session.KeyGeneratedDocx, abs)
	st.Set(session.KeyDocumentLanguage, language)
	return abs, nil
}
