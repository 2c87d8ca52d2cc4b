package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Keys written and read by the pipeline stages. Stages communicate only
// through state, so the orchestrator can surface every mutation.
const (
	KeyDocStructure     = "doc_structure"
	KeyOutputPath       = "output_path"
	KeyLanguage         = "language"
	KeyDocumentLanguage = "document_language"
	KeyGeneratedDocx    = "generated_docx"
	KeyPersonalData     = "personal_data"
	KeyTranscript       = "transcript"
)

// State is the shared key-value context of one pipeline invocation. It is
// created per invocation and passed by reference between stages; concurrent
// invocations never share an instance.
type State struct {
	values map[string]any
}

func New() *State {
	return &State{values: make(map[string]any)}
}

// Seed creates a State pre-populated by the orchestrating caller.
func Seed(values map[string]any) *State {
	s := New()
	for k, v := range values {
		s.values[k] = v
	}
	return s
}

func (s *State) Set(key string, value any) {
	s.values[key] = value
}

func (s *State) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

// GetString returns the value under key when it is a string, else "".
func (s *State) GetString(key string) string {
	if v, ok := s.values[key]; ok {
		if str, ok := v.(string); ok {
			return str
		}
	}
	return ""
}

// AppendUnique appends value to the string list under key, creating the list
// when absent and skipping values already present.
func (s *State) AppendUnique(key string, value string) {
	list, _ := s.values[key].([]string)
	for _, v := range list {
		if v == value {
			return
		}
	}
	s.values[key] = append(list, value)
}

func (s *State) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Snapshot returns a shallow copy of the current state.
func (s *State) Snapshot() map[string]any {
	out := make(map[string]any, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// SaveSnapshot persists the state as JSON. Values that cannot be serialized
// are stored as their string form so a snapshot write never fails on content.
func (s *State) SaveSnapshot(path string) error {
	serializable := make(map[string]any, len(s.values))
	for k, v := range s.values {
		if _, err := json.Marshal(v); err != nil {
			serializable[k] = fmt.Sprintf("%v", v)
			continue
		}
		serializable[k] = v
	}

	b, err := json.MarshalIndent(serializable, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0644)
}
