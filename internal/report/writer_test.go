package report

import (
	"os"
	"path/filepath"
	"testing"

	"diagdoc/internal/plan"
	"diagdoc/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_MissingPlanWritesNothing(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "report.docx")

	st := session.Seed(map[string]any{session.KeyOutputPath: out})
	_, err := Generate(st, "", "")

	assert.ErrorIs(t, err, plan.ErrPlanMissing)
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
	assert.False(t, st.Has(session.KeyGeneratedDocx))
}

func TestGenerate_WritesDocumentAndState(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "nested", "report.docx")

	st := session.Seed(map[string]any{
		session.KeyOutputPath: out,
		session.KeyLanguage:   "ru",
	})
	st.Set(session.KeyDocStructure, &plan.DocumentPlan{Sections: []plan.Section{
		{Title: "Overview", Elements: []plan.Element{{Type: "p", Content: "hello"}}},
	}})

	path, err := Generate(st, "", "")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(path))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	assert.Equal(t, path, st.GetString(session.KeyGeneratedDocx))
	assert.Equal(t, "ru", st.GetString(session.KeyDocumentLanguage))
}

func TestGenerate_ExplicitArgsOverrideState(t *testing.T) {
	dir := t.TempDir()
	stateOut := filepath.Join(dir, "from_state.docx")
	argOut := filepath.Join(dir, "from_arg.docx")

	st := session.Seed(map[string]any{
		session.KeyOutputPath: stateOut,
		session.KeyLanguage:   "uk",
	})
	st.Set(session.KeyDocStructure, map[string]any{"sections": []any{}})

	_, err := Generate(st, argOut, "en")
	require.NoError(t, err)

	_, statErr := os.Stat(argOut)
	assert.NoError(t, statErr)
	_, statErr = os.Stat(stateOut)
	assert.True(t, os.IsNotExist(statErr))
	assert.Equal(t, "en", st.GetString(session.KeyDocumentLanguage))
}

func TestGenerate_DefaultLanguage(t *testing.T) {
	dir := t.TempDir()
	st := session.New()
	st.Set(session.KeyDocStructure, "```json\n{\"sections\":[]}\n```")

	_, err := Generate(st, filepath.Join(dir, "r.docx"), "")
	require.NoError(t, err)
	assert.Equal(t, DefaultLanguage, st.GetString(session.KeyDocumentLanguage))
}

func TestGenerate_MalformedPlanSurfacesShapeError(t *testing.T) {
	dir := t.TempDir()
	st := session.New()
	st.Set(session.KeyDocStructure, map[string]any{"no_sections": true})

	_, err := Generate(st, filepath.Join(dir, "r.docx"), "")
	var shapeErr *plan.ShapeError
	assert.ErrorAs(t, err, &shapeErr)
}
