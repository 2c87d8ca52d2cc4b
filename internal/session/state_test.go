package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateSeedAndAccess(t *testing.T) {
	st := Seed(map[string]any{
		KeyLanguage:   "uk",
		KeyOutputPath: "out.docx",
	})

	assert.Equal(t, "uk", st.GetString(KeyLanguage))
	assert.True(t, st.Has(KeyOutputPath))
	assert.False(t, st.Has(KeyDocStructure))

	st.Set(KeyGeneratedDocx, "/abs/out.docx")
	v, ok := st.Get(KeyGeneratedDocx)
	require.True(t, ok)
	assert.Equal(t, "/abs/out.docx", v)
}

func TestStateGetStringIgnoresNonStrings(t *testing.T) {
	st := New()
	st.Set(KeyPersonalData, []string{"fact"})

	assert.Equal(t, "", st.GetString(KeyPersonalData))
}

func TestStateAppendUnique(t *testing.T) {
	st := New()
	st.AppendUnique(KeyPersonalData, "client is 30")
	st.AppendUnique(KeyPersonalData, "works remotely")
	st.AppendUnique(KeyPersonalData, "client is 30")

	v, ok := st.Get(KeyPersonalData)
	require.True(t, ok)
	assert.Equal(t, []string{"client is 30", "works remotely"}, v)
}

func TestStateSnapshotIsACopy(t *testing.T) {
	st := Seed(map[string]any{KeyLanguage: "ru"})
	snap := st.Snapshot()
	snap[KeyLanguage] = "en"

	assert.Equal(t, "ru", st.GetString(KeyLanguage))
}

func TestSaveSnapshot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run", "state.json")

	st := Seed(map[string]any{
		KeyLanguage:     "uk",
		KeyPersonalData: []string{"client is 30 years old"},
	})
	// Channels are not JSON-serializable; the snapshot must stringify them
	// instead of failing.
	st.Set("raw_handle", make(chan int))

	require.NoError(t, st.SaveSnapshot(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, "uk", decoded[KeyLanguage])
	assert.IsType(t, "", decoded["raw_handle"])
}
